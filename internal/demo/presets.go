// Package demo provides sample rockets for trying the calculator
// without typing in stage data.
package demo

import (
	"fmt"
	"os"
	"sort"

	"deltav.dev/deltav/internal/engine"
)

// DefaultRocket is loaded into the interactive calculator in demo mode
const DefaultRocket = "two-stage"

// Rocket is a named set of stages in burn order
type Rocket struct {
	Name        string
	Description string
	Stages      []engine.RawStage
}

var rockets = map[string]Rocket{
	"single-stage": {
		Name:        "single-stage",
		Description: "Small sounding rocket (kg)",
		Stages: []engine.RawStage{
			{Wet: "500", Dry: "100", Isp: "320"},
		},
	},
	"two-stage": {
		Name:        "two-stage",
		Description: "Two-stage orbital launcher (kg)",
		Stages: []engine.RawStage{
			{Wet: "1000", Dry: "200", Isp: "250"},
			{Wet: "300", Dry: "50", Isp: "300"},
		},
	},
	"saturn-v": {
		Name:        "saturn-v",
		Description: "Saturn V without payload (t)",
		Stages: []engine.RawStage{
			{Wet: "2290", Dry: "130", Isp: "263"},
			{Wet: "496", Dry: "40", Isp: "421"},
			{Wet: "123", Dry: "13.5", Isp: "421"},
		},
	},
}

// IsDemoMode returns true if DELTAV_DEMO environment variable is set
func IsDemoMode() bool {
	return os.Getenv("DELTAV_DEMO") != ""
}

// Names returns the sample rocket names in sorted order
func Names() []string {
	names := make([]string, 0, len(rockets))
	for name := range rockets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the sample rocket called name
func Lookup(name string) (Rocket, error) {
	r, ok := rockets[name]
	if !ok {
		return Rocket{}, fmt.Errorf("unknown example %q (available: %v)", name, Names())
	}
	stages := make([]engine.RawStage, len(r.Stages))
	copy(stages, r.Stages)
	r.Stages = stages
	return r, nil
}
