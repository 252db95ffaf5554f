package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/screen-keeper/internal/clock"
	"github.com/stigoleg/screen-keeper/internal/settings"
	"github.com/stigoleg/screen-keeper/internal/ui"
	"github.com/stigoleg/screen-keeper/internal/util"
)

// Config holds the command line options. Zero values mean "use the stored
// setting".
type Config struct {
	Interval    time.Duration
	Action      settings.ActionType
	Key         string
	WindowStart string
	WindowEnd   string
	Daily       string
	ConfigPath  string
	Start       bool
	Headless    bool
	ShowVersion bool
}

// Flag describes one command line flag for help output and generated docs.
type Flag struct {
	Long  string
	Short string
	Arg   string
	Usage string
}

// Flags lists every flag ParseFlags understands.
var Flags = []Flag{
	{Long: "interval", Short: "i", Arg: "string", Usage: "Time between actions in seconds or as a duration (e.g., \"90\", \"2m\")"},
	{Long: "action", Short: "a", Arg: "string", Usage: "Action to perform: pointer or key"},
	{Long: "key", Short: "k", Arg: "string", Usage: "Key to press when the action is key (e.g., \"space\", \"f15\")"},
	{Long: "window", Short: "w", Arg: "string", Usage: "Only act between these times (e.g., \"09:00-17:00\")"},
	{Long: "daily", Arg: "string", Usage: "Start automation every day at this time (e.g., \"09:00\")"},
	{Long: "config", Arg: "string", Usage: "Settings file to use"},
	{Long: "start", Usage: "Start automation immediately"},
	{Long: "headless", Usage: "Run without the terminal UI and log events to stderr"},
	{Long: "version", Short: "v", Usage: "Show version information"},
}

func formatError(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "Valid formats:") {
		parts := strings.SplitN(msg, "\n\n", 2)
		if len(parts) == 2 {
			errorBox := ui.Current.Help.
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#FF4040"))

			header := lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF4040")).
				Render(parts[0])

			details := lipgloss.NewStyle().
				Foreground(lipgloss.Color("#999999")).
				Render(parts[1])

			return errorBox.Render(fmt.Sprintf("%s\n\n%s", header, details))
		}
	}
	return ui.Current.Error.Render(msg)
}

// ParseFlags parses os.Args. It exits after printing help, the version or a
// formatted error.
func ParseFlags(version string) (*Config, error) {
	cfg, err := Parse(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Println(formatError(err))
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Printf("Screen Keeper Version: %s\n", version)
		os.Exit(0)
	}
	return cfg, nil
}

// Parse parses args without exiting. Help output goes to out.
func Parse(args []string, out io.Writer) (*Config, error) {
	flags := flag.NewFlagSet("screenkeeper", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {
		model := ui.InitialModel(ui.Options{})
		model.ShowHelp = true
		fmt.Fprint(out, model.View())
	}

	var (
		interval, action, key, window string
		cfg                           Config
	)
	flags.StringVar(&interval, "interval", "", "")
	flags.StringVar(&interval, "i", "", "")
	flags.StringVar(&action, "action", "", "")
	flags.StringVar(&action, "a", "", "")
	flags.StringVar(&key, "key", "", "")
	flags.StringVar(&key, "k", "", "")
	flags.StringVar(&window, "window", "", "")
	flags.StringVar(&window, "w", "", "")
	flags.StringVar(&cfg.Daily, "daily", "", "")
	flags.StringVar(&cfg.ConfigPath, "config", "", "")
	flags.BoolVar(&cfg.Start, "start", false, "")
	flags.BoolVar(&cfg.Headless, "headless", false, "")
	flags.BoolVar(&cfg.ShowVersion, "version", false, "")
	flags.BoolVar(&cfg.ShowVersion, "v", false, "")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(flags.Args(), " "))
	}

	if interval != "" {
		d, err := util.ParseInterval(interval)
		if err != nil {
			return nil, err
		}
		cfg.Interval = d
	}

	if action != "" {
		a, err := settings.ParseActionType(action)
		if err != nil {
			return nil, err
		}
		cfg.Action = a
	}

	cfg.Key = strings.TrimSpace(key)

	if window != "" {
		start, end, err := parseWindow(window)
		if err != nil {
			return nil, err
		}
		cfg.WindowStart, cfg.WindowEnd = start.String(), end.String()
	}

	if cfg.Daily != "" {
		at, err := clock.ParseTimeOfDay(cfg.Daily)
		if err != nil {
			return nil, err
		}
		cfg.Daily = at.String()
	}

	return &cfg, nil
}

func parseWindow(s string) (start, end clock.TimeOfDay, err error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return start, end, fmt.Errorf("invalid window format: %s\n\nValid formats:\n"+
			"• 24-hour: 09:00-17:00\n"+
			"• 12-hour: 9:00AM-5:00PM", s)
	}
	if start, err = clock.ParseTimeOfDay(strings.TrimSpace(from)); err != nil {
		return start, end, err
	}
	if end, err = clock.ParseTimeOfDay(strings.TrimSpace(to)); err != nil {
		return start, end, err
	}
	return start, end, nil
}

// Apply overrides s with the options that were given on the command line.
func (c *Config) Apply(s settings.Settings) settings.Settings {
	if c.Interval > 0 {
		s.IntervalSeconds = int(c.Interval.Round(time.Second) / time.Second)
	}
	if c.Action != "" {
		s.ActionType = c.Action
	}
	if c.Key != "" {
		s.Key = c.Key
	}
	if c.WindowStart != "" {
		s.UseTimeRestriction = true
		s.StartTime = c.WindowStart
		s.EndTime = c.WindowEnd
	}
	if c.Daily != "" {
		s.DailyAutoStart = true
		s.DailyStartTime = c.Daily
	}
	return s
}
