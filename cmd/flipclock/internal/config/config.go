// Package config loads the optional flipclock.yaml configuration for
// the demo binary and resolves it into an engine config.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/flipclock/pkg/errors"
	"github.com/go-drift/flipclock/pkg/wheel"
)

// Config represents the optional flipclock.yaml configuration.
type Config struct {
	// Source is "clock" or "countdown". Empty means clock.
	Source string `yaml:"source,omitempty"`
	// Target is the countdown deadline, RFC 3339.
	Target string `yaml:"target,omitempty"`
	// IncludeSeconds defaults to true when omitted.
	IncludeSeconds *bool `yaml:"include_seconds,omitempty"`
	// TwelveHour displays clock hours as 1..12.
	TwelveHour bool `yaml:"twelve_hour,omitempty"`
	// TickIntervalFrames throttles scheduler work ticks.
	TickIntervalFrames int `yaml:"tick_interval_frames,omitempty"`
	// StartDelayMs postpones the tick loop.
	StartDelayMs int `yaml:"start_delay_ms,omitempty"`
	// CompletionEarlyMs overrides the early-completion threshold used
	// when seconds are hidden.
	CompletionEarlyMs int `yaml:"completion_early_ms,omitempty"`
	// TransitionMs is the digit roll duration.
	TransitionMs int `yaml:"transition_ms,omitempty"`
	// LegacyResolver opts into mode-only direction resolution.
	LegacyResolver bool `yaml:"legacy_resolver,omitempty"`
	// Labels overrides the per-unit display strings.
	Labels map[string]string `yaml:"labels,omitempty"`
}

// LoadOptional reads the config file if present. A missing file yields
// an empty config; a malformed one is an error.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve converts the file config into an engine config.
//
// An unknown source string is an error. An unparseable target is not: it
// is diagnosed and left unset, which keeps the countdown displaying
// zeros without ever completing, matching the engine's degrade-don't-fail
// policy.
func (c *Config) Resolve() (wheel.Config, error) {
	out := wheel.Config{
		TwelveHour:         c.TwelveHour,
		TickIntervalFrames: c.TickIntervalFrames,
		StartDelay:         time.Duration(c.StartDelayMs) * time.Millisecond,
		CompletionEarly:    time.Duration(c.CompletionEarlyMs) * time.Millisecond,
		Transition: wheel.TrackerOptions{
			Duration:       time.Duration(c.TransitionMs) * time.Millisecond,
			LegacyResolver: c.LegacyResolver,
		},
	}

	switch c.Source {
	case "", "clock":
		out.Source = wheel.SourceClock
	case "countdown":
		out.Source = wheel.SourceCountdown
	default:
		return out, fmt.Errorf("unknown source %q (want clock or countdown)", c.Source)
	}

	out.IncludeSeconds = true
	if c.IncludeSeconds != nil {
		out.IncludeSeconds = *c.IncludeSeconds
	}

	if c.Target != "" {
		t, err := time.Parse(time.RFC3339, c.Target)
		if err != nil {
			errors.Reportf("config.Resolve", errors.KindConfig,
				fmt.Errorf("unparseable target %q: %w", c.Target, err))
		} else {
			out.Target = &t
		}
	}

	if len(c.Labels) > 0 {
		out.Labels = make(map[wheel.Unit]string, len(c.Labels))
		for unit, label := range c.Labels {
			out.Labels[wheel.Unit(unit)] = label
		}
	}
	return out, nil
}
