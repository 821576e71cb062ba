// Package scenario loads scripted toast sequences from YAML and replays
// them into a running world. Scenarios drive the demo and make timing
// behavior reproducible.
package scenario

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/toastbox/internal/style"
	"github.com/jmylchreest/toastbox/internal/toast"
)

// Step is one scripted toast. Fields left empty fall back to the base
// request the scenario is compiled against.
type Step struct {
	At         string `yaml:"at"` // Offset from scenario start, e.g. "1.5s"
	Message    string `yaml:"message"`
	Anchor     string `yaml:"anchor,omitempty"`
	ShowTime   string `yaml:"show_time,omitempty"` // "0s" means indefinite
	Background string `yaml:"background,omitempty"`
}

// Scenario is an ordered list of scripted toasts.
type Scenario struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &sc, nil
}

// TimedRequest is a compiled step: the request to send and when.
type TimedRequest struct {
	At      time.Duration
	Request toast.Request
}

// Compile resolves every step against the base request, producing timed
// requests sorted by offset. Compilation fails on the first unparseable
// field.
func (s *Scenario) Compile(base toast.Request) ([]TimedRequest, error) {
	out := make([]TimedRequest, 0, len(s.Steps))

	for i, step := range s.Steps {
		at, err := time.ParseDuration(step.At)
		if err != nil {
			return nil, fmt.Errorf("step %d: invalid at: %w", i, err)
		}

		req := base
		req.Sections = []toast.TextSection{{
			Text:     step.Message,
			FontSize: toast.DefaultFontSize,
			Color:    toast.White,
		}}

		if step.Anchor != "" {
			anchor, err := toast.ParseAnchor(step.Anchor)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			req.Anchor = anchor
		}
		if step.ShowTime != "" {
			showTime, err := time.ParseDuration(step.ShowTime)
			if err != nil {
				return nil, fmt.Errorf("step %d: invalid show_time: %w", i, err)
			}
			req.ShowTime = showTime
		}
		if step.Background != "" {
			bg, err := style.ParseHex(step.Background)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			req.Background = bg
		}

		out = append(out, TimedRequest{At: at, Request: req})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At < out[j].At
	})
	return out, nil
}
