package engine

import (
	"math"
	"strconv"
	"strings"

	"deltav.dev/deltav/internal/errors"
)

// Validate parses raw stage fields in burn order and checks each stage.
// The first failure is returned; stages are numbered from 1.
func Validate(raw []RawStage) ([]Stage, error) {
	stages := make([]Stage, 0, len(raw))
	for i, r := range raw {
		num := i + 1

		wet, err := parseField(num, FieldNameWet, r.Wet)
		if err != nil {
			return nil, err
		}
		dry, err := parseField(num, FieldNameDry, r.Dry)
		if err != nil {
			return nil, err
		}
		isp, err := parseField(num, FieldNameIsp, r.Isp)
		if err != nil {
			return nil, err
		}

		if wet <= dry {
			return nil, errors.NewInvalidStageError(num, errors.ReasonWetNotAboveDry)
		}
		if isp <= 0 {
			return nil, errors.NewInvalidStageError(num, errors.ReasonInvalidIsp)
		}
		if dry <= 0 {
			return nil, errors.NewInvalidStageError(num, errors.ReasonInvalidDry)
		}

		stages = append(stages, Stage{WetMass: wet, DryMass: dry, SpecificImpulse: isp})
	}

	if len(stages) == 0 {
		return nil, errors.NewEmptySequenceError()
	}
	return stages, nil
}

func parseField(stageNum int, name, value string) (float64, error) {
	text := strings.TrimSpace(value)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.NewParseError(stageNum, name, value, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.NewParseError(stageNum, name, value, nil)
	}
	return v, nil
}

// Compute applies the rocket equation to each stage in burn order.
//
// A stage lifts everything still stacked above it, so its initial mass is
// its own wet mass plus the wet mass of every later stage, and its final mass
// is its dry mass plus that same upper-stage wet mass.
func Compute(stages []Stage) (Result, error) {
	if len(stages) == 0 {
		return Result{}, errors.NewEmptySequenceError()
	}

	dvs := make([]float64, len(stages))
	var above float64 // wet mass of stages i+1..N
	for i := len(stages) - 1; i >= 0; i-- {
		s := stages[i]
		initial := s.WetMass + above
		final := s.DryMass + above
		if final <= 0 {
			return Result{}, errors.NewComputationError(i+1, "final mass is not positive")
		}

		dv := StageDeltaV(s.SpecificImpulse, initial, final)
		if math.IsNaN(dv) || math.IsInf(dv, 0) {
			return Result{}, errors.NewComputationError(i+1, "result is not a finite number")
		}
		dvs[i] = dv
		above += s.WetMass
	}

	var total float64
	for _, dv := range dvs {
		total += dv
	}

	return Result{StageDeltaV: dvs, Total: total}, nil
}

// Calculate validates raw stage fields and computes their delta-v
func Calculate(raw []RawStage) (Result, error) {
	stages, err := Validate(raw)
	if err != nil {
		return Result{}, err
	}
	return Compute(stages)
}

// StageDeltaV returns the classical single-stage rocket equation result
func StageDeltaV(isp, initialMass, finalMass float64) float64 {
	return isp * G0 * math.Log(initialMass/finalMass)
}
