package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/toastbox/internal/config"
	"github.com/jmylchreest/toastbox/internal/dbus"
	"github.com/jmylchreest/toastbox/internal/scenario"
	"github.com/jmylchreest/toastbox/internal/tui"
)

var demoOpts struct {
	scenarioPath string
	dbusMonitor  bool
	watchConfig  bool
	fps          int
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive toast demo",
	Long: `Launch the terminal demo host.

Key bindings:
  n           Spawn a toast at the current anchor
  i           Spawn a sticky toast (never times out)
  a           Cycle through the nine anchors
  tab         Move the simulated pointer to the next toast
  enter       Press the hovered toast (dismisses it)
  p           Pause/resume the world
  ?           Show help
  q           Quit

With --scenario, a YAML script replays timed toasts into the world.
With --dbus, desktop notifications captured off the session bus appear
as toasts alongside whatever you spawn by hand.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoOpts.scenarioPath, "scenario", "",
		"Path to a scenario YAML file to replay")
	demoCmd.Flags().BoolVar(&demoOpts.dbusMonitor, "dbus", false,
		"Show desktop notifications captured from the session bus")
	demoCmd.Flags().BoolVar(&demoOpts.watchConfig, "watch-config", false,
		"Hot-reload the config file on change")
	demoCmd.Flags().IntVar(&demoOpts.fps, "fps", 0,
		"Frame rate override (default from config)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	if demoOpts.fps > 0 {
		cfg.Demo.FPS = demoOpts.fps
	}

	opts := tui.Options{
		Config: cfg,
		Logger: logger,
	}

	if demoOpts.scenarioPath != "" {
		sc, err := scenario.Load(demoOpts.scenarioPath)
		if err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
		base, err := cfg.BaseRequest()
		if err != nil {
			return err
		}
		compiled, err := sc.Compile(base)
		if err != nil {
			return fmt.Errorf("failed to compile scenario: %w", err)
		}
		opts.Player = scenario.NewPlayer(logger, compiled)
		logger.Info("loaded scenario", "name", sc.Name, "steps", len(compiled))
	}

	if demoOpts.watchConfig {
		reloads := make(chan *config.Config, 1)
		path := globalOpts.configPath
		if path == "" {
			path = config.ConfigPath()
		}
		watcher, err := config.NewWatcher(path, func(c *config.Config) {
			select {
			case reloads <- c:
			default:
			}
		})
		if err != nil {
			return fmt.Errorf("failed to create config watcher: %w", err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to start config watcher: %w", err)
		}
		defer watcher.Stop()
		opts.ConfigReloads = reloads
	}

	m, err := tui.NewModel(opts)
	if err != nil {
		return err
	}

	if demoOpts.dbusMonitor {
		base, err := cfg.BaseRequest()
		if err != nil {
			return err
		}
		monitor := dbus.NewMonitor(logger)
		monitor.SetNotifyHandler(func(n *dbus.Notification) {
			m.Send(n.ToRequest(base))
		})
		if err := monitor.Start(); err != nil {
			logger.Warn("D-Bus monitor unavailable, continuing without it", "error", err)
		} else {
			defer monitor.Stop()
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo exited with error: %w", err)
	}
	return nil
}
