package actions

import (
	"fmt"

	"deltav.dev/deltav/internal/stage"
)

// Kind is the type of a user intent
type Kind int

const (
	// AddStage appends an empty stage
	AddStage Kind = iota
	// RemoveStage removes the stage with Action.StageID
	RemoveStage
	// SetField sets Action.Field of Action.StageID to Action.Value
	SetField
	// MoveStage moves Action.StageID by Action.Offset positions
	MoveStage
	// Calculate validates the stages and computes delta-v
	Calculate
	// Plot charts the last successful calculation
	Plot
)

func (k Kind) String() string {
	switch k {
	case AddStage:
		return "add-stage"
	case RemoveStage:
		return "remove-stage"
	case SetField:
		return "set-field"
	case MoveStage:
		return "move-stage"
	case Calculate:
		return "calculate"
	case Plot:
		return "plot"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Action is a user intent
type Action struct {
	Kind    Kind
	StageID stage.ID
	Field   stage.Field
	Value   string
	Offset  int
}

func (a Action) String() string {
	switch a.Kind {
	case RemoveStage:
		return fmt.Sprintf("%s %s", a.Kind, a.StageID)
	case SetField:
		return fmt.Sprintf("%s %s %s=%q", a.Kind, a.StageID, a.Field.Label(), a.Value)
	case MoveStage:
		return fmt.Sprintf("%s %s %+d", a.Kind, a.StageID, a.Offset)
	}
	return a.Kind.String()
}

// NewAddStage returns an AddStage action
func NewAddStage() Action {
	return Action{Kind: AddStage}
}

// NewRemoveStage returns a RemoveStage action
func NewRemoveStage(id stage.ID) Action {
	return Action{Kind: RemoveStage, StageID: id}
}

// NewSetField returns a SetField action
func NewSetField(id stage.ID, field stage.Field, value string) Action {
	return Action{Kind: SetField, StageID: id, Field: field, Value: value}
}

// NewMoveStage returns a MoveStage action
func NewMoveStage(id stage.ID, offset int) Action {
	return Action{Kind: MoveStage, StageID: id, Offset: offset}
}

// NewCalculate returns a Calculate action
func NewCalculate() Action {
	return Action{Kind: Calculate}
}

// NewPlot returns a Plot action
func NewPlot() Action {
	return Action{Kind: Plot}
}
