package engine

// G0 is standard gravity in m/s², used to turn specific impulse into exhaust velocity
const G0 = 9.80665

// RawStage holds the user-entered text for one stage, before validation
type RawStage struct {
	Wet string
	Dry string
	Isp string
}

// Stage is a validated rocket stage.
// WetMass > DryMass > 0 and SpecificImpulse > 0 always hold.
type Stage struct {
	WetMass         float64
	DryMass         float64
	SpecificImpulse float64
}

// Result is the delta-v breakdown of a stage sequence
type Result struct {
	// StageDeltaV has one entry per stage, in burn order
	StageDeltaV []float64
	Total       float64
}

// Len returns the number of stages in the result
func (r Result) Len() int {
	return len(r.StageDeltaV)
}

// Field names as shown to the user
const (
	FieldNameWet = "Wet Mass"
	FieldNameDry = "Dry Mass"
	FieldNameIsp = "Isp"
)
