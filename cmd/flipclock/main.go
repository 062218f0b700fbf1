// Command flipclock runs an animated wheel-digit clock or countdown in
// the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/flipclock/cmd/flipclock/internal/config"
	"github.com/go-drift/flipclock/pkg/wheel"
	"github.com/go-drift/flipclock/pkg/wheelterm"
)

func main() {
	var (
		configPath string
		target     string
		noSeconds  bool
		twelve     bool
	)
	flag.StringVar(&configPath, "config", "flipclock.yaml", "config file path")
	flag.StringVar(&target, "target", "", "countdown target (RFC 3339); implies countdown mode")
	flag.BoolVar(&noSeconds, "no-seconds", false, "hide the seconds unit")
	flag.BoolVar(&twelve, "12h", false, "twelve-hour clock display")
	flag.Parse()

	cfg, err := load(configPath, target, noSeconds, twelve)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flipclock: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(wheelterm.New(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "flipclock: %v\n", err)
		os.Exit(1)
	}
}

// load merges the optional config file with flag overrides.
func load(configPath, target string, noSeconds, twelve bool) (wheel.Config, error) {
	fileCfg, err := config.LoadOptional(configPath)
	if err != nil {
		return wheel.Config{}, err
	}

	cfg, err := fileCfg.Resolve()
	if err != nil {
		return wheel.Config{}, err
	}

	if target != "" {
		t, err := time.Parse(time.RFC3339, target)
		if err != nil {
			return wheel.Config{}, fmt.Errorf("unparseable -target %q: %w", target, err)
		}
		cfg.Source = wheel.SourceCountdown
		cfg.Target = &t
	}
	if noSeconds {
		cfg.IncludeSeconds = false
	}
	if twelve {
		cfg.TwelveHour = true
	}
	return cfg, nil
}
