package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/screen-keeper/internal/settings"
)

func TestParseFlags(t *testing.T) {
	// Save original args and restore them after the test
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "no flags",
			args: []string{"screenkeeper"},
			want: Config{},
		},
		{
			name: "interval in seconds",
			args: []string{"screenkeeper", "-i", "90"},
			want: Config{Interval: 90 * time.Second},
		},
		{
			name: "interval as duration",
			args: []string{"screenkeeper", "--interval", "2m"},
			want: Config{Interval: 2 * time.Minute},
		},
		{
			name: "key action",
			args: []string{"screenkeeper", "-a", "key", "-k", "f15"},
			want: Config{Action: settings.ActionKey, Key: "f15"},
		},
		{
			name: "legacy action name",
			args: []string{"screenkeeper", "--action", "mouse"},
			want: Config{Action: settings.ActionPointer},
		},
		{
			name: "window 24h",
			args: []string{"screenkeeper", "-w", "09:00-17:30"},
			want: Config{WindowStart: "09:00", WindowEnd: "17:30"},
		},
		{
			name: "window 12h",
			args: []string{"screenkeeper", "--window", "9:00AM-5:00PM"},
			want: Config{WindowStart: "09:00", WindowEnd: "17:00"},
		},
		{
			name: "daily",
			args: []string{"screenkeeper", "--daily", "8:15AM"},
			want: Config{Daily: "08:15"},
		},
		{
			name: "modes",
			args: []string{"screenkeeper", "--start", "--headless", "--config", "/tmp/s.yaml"},
			want: Config{Start: true, Headless: true, ConfigPath: "/tmp/s.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg, err := ParseFlags("test-version")
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		contain string
	}{
		{name: "zero interval", args: []string{"-i", "0"}, contain: "invalid interval format"},
		{name: "bad interval", args: []string{"-i", "soon"}, contain: "Valid formats"},
		{name: "unknown action", args: []string{"-a", "scroll"}, wantErr: settings.ErrInvalidConfiguration},
		{name: "window without dash", args: []string{"-w", "09:00"}, contain: "invalid window format"},
		{name: "window bad end", args: []string{"-w", "09:00-25:00"}, contain: "invalid time format"},
		{name: "bad daily", args: []string{"--daily", "noon"}, contain: "invalid time format"},
		{name: "unknown flag", args: []string{"--duration", "2h"}, contain: "flag provided but not defined"},
		{name: "positional", args: []string{"extra"}, contain: "unexpected arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.contain != "" {
				assert.Contains(t, err.Error(), tt.contain)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"-h"}, &out)
	require.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "screenkeeper [flags]")
}

func TestApply(t *testing.T) {
	base := settings.Defaults()

	cfg := &Config{
		Interval:    90*time.Second + 400*time.Millisecond,
		Action:      settings.ActionKey,
		Key:         "shift",
		WindowStart: "08:00",
		WindowEnd:   "16:00",
		Daily:       "07:30",
	}
	got := cfg.Apply(base)

	assert.Equal(t, 90, got.IntervalSeconds)
	assert.Equal(t, settings.ActionKey, got.ActionType)
	assert.Equal(t, "shift", got.Key)
	assert.True(t, got.UseTimeRestriction)
	assert.Equal(t, "08:00", got.StartTime)
	assert.Equal(t, "16:00", got.EndTime)
	assert.True(t, got.DailyAutoStart)
	assert.Equal(t, "07:30", got.DailyStartTime)

	assert.Equal(t, base, (&Config{Start: true}).Apply(base), "unset options keep stored values")
}

func TestFormatError(t *testing.T) {
	_, err := Parse([]string{"-i", "soon"}, &bytes.Buffer{})
	require.Error(t, err)

	boxed := formatError(err)
	assert.Contains(t, boxed, "invalid interval format: soon")
	assert.Contains(t, boxed, "Seconds: 60, 90")
	assert.Contains(t, boxed, "╭")

	plain := formatError(errors.New("boom"))
	assert.Contains(t, plain, "boom")
}

func TestFlagsTableMatchesParser(t *testing.T) {
	values := map[string]string{
		"interval": "60",
		"action":   "key",
		"key":      "space",
		"window":   "09:00-17:00",
		"daily":    "09:00",
		"config":   "settings.yaml",
	}

	for _, f := range Flags {
		names := []string{f.Long}
		if f.Short != "" {
			names = append(names, f.Short)
		}
		for _, name := range names {
			args := []string{"--" + name}
			if f.Arg != "" {
				args = append(args, values[f.Long])
			}
			_, err := Parse(args, &bytes.Buffer{})
			assert.NoError(t, err, name)
		}
	}
}
