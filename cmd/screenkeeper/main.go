package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stigoleg/screen-keeper/internal/config"
	"github.com/stigoleg/screen-keeper/internal/keepalive"
	"github.com/stigoleg/screen-keeper/internal/platform"
	"github.com/stigoleg/screen-keeper/internal/settings"
	"github.com/stigoleg/screen-keeper/internal/ui"
)

const (
	appName    = "screen-keeper"
	appVersion = "0.1.0"
)

func main() {
	cfg, err := config.ParseFlags(appVersion)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, ui.Current.Error.Render(err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if !cfg.Headless {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	store, err := openStore(cfg.ConfigPath)
	if err != nil {
		return err
	}
	stored, err := settings.Load(store)
	if err != nil {
		log.Printf("settings: %v, using defaults", err)
	}
	current := cfg.Apply(stored)

	actuator, err := platform.NewInputActuator()
	if err != nil {
		log.Printf("platform: %v", err)
	}
	notice := platform.DependencyMessage()
	if notice != "" {
		log.Printf("platform: %s", notice)
	}

	notifier := keepalive.NewNotifier()
	sched := keepalive.NewScheduler(keepalive.Options{
		Actuator: actuator,
		Notifier: notifier,
	})

	shutdown := keepalive.NewShutdown(5 * time.Second)
	shutdown.AddScheduler(sched)
	defer func() {
		if err := shutdown.Run(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if current.DailyAutoStart {
		if err := sched.ConfigureDaily(true, current.DailyStartTime, current); err != nil {
			return err
		}
	}
	if cfg.Start {
		if err := sched.Start(current); err != nil {
			return err
		}
	}

	if cfg.Headless {
		return runHeadless(sched, notifier, shutdown)
	}
	return runInteractive(ui.Options{
		Scheduler: sched,
		Store:     store,
		Settings:  current,
		Version:   appVersion,
		Notice:    notice,
	}, notifier, shutdown)
}

func openStore(path string) (*settings.FileStore, error) {
	if path == "" {
		var err error
		path, err = settings.DefaultPath(appName)
		if err != nil {
			return nil, err
		}
	}
	return settings.OpenFileStore(path)
}

func runHeadless(sched *keepalive.Scheduler, notifier *keepalive.Notifier, shutdown *keepalive.Shutdown) error {
	notifier.SetObserver(func(e keepalive.Event) {
		log.Printf("event: %s", e)
	})
	log.Printf("%s", ui.StatusLine(sched))

	if !sched.IsRunning() {
		if _, ok := sched.DailyStartTime(); !ok {
			return fmt.Errorf("nothing to do: pass --start or --daily, or enable the daily start in the settings")
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)

	for sig := range sigChan {
		if isSIGTSTPForPlatform(sig) {
			log.Printf("Ignoring signal: %v", sig)
			continue
		}
		log.Printf("Received signal: %v", sig)
		return shutdown.Run()
	}
	return nil
}

func runInteractive(opts ui.Options, notifier *keepalive.Notifier, shutdown *keepalive.Shutdown) error {
	events, cancel := notifier.Subscribe(64)
	shutdown.Add("event stream", func() error {
		cancel()
		return nil
	})
	opts.Events = events

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)

	p := tea.NewProgram(
		ui.InitialModel(opts),
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	go func() {
		for sig := range sigChan {
			if isSIGTSTPForPlatform(sig) {
				continue
			}
			log.Printf("Received signal: %v", sig)
			if err := shutdown.Run(); err != nil {
				log.Printf("Error during shutdown: %v", err)
			}
			p.Kill()
			return
		}
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
