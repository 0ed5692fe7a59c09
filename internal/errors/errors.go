// Package errors provides sentinel errors and custom error types for the deltav application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrParse indicates that a stage field is not a valid number
	ErrParse = errors.New("invalid number")

	// ErrInvalidStage indicates that a stage violates a physical constraint
	ErrInvalidStage = errors.New("invalid stage")

	// ErrEmptySequence indicates that there are no stages to calculate
	ErrEmptySequence = errors.New("no stages added")

	// ErrComputation indicates that the rocket equation produced no finite result
	ErrComputation = errors.New("delta-v computation failed")

	// ErrStageNotFound indicates that no stage has the given identity
	ErrStageNotFound = errors.New("stage not found")
)

// ParseError represents a stage field that could not be parsed as a number
type ParseError struct {
	Stage int // 1-based
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not convert %s in Stage %d to a number: %q", e.Field, e.Stage, e.Value)
}

// Is returns true if the target error is ErrParse
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(stage int, field, value string, err error) *ParseError {
	return &ParseError{
		Stage: stage,
		Field: field,
		Value: value,
		Err:   err,
	}
}

// Reasons an InvalidStageError can carry
const (
	ReasonWetNotAboveDry = "wet-not-above-dry"
	ReasonInvalidIsp     = "invalid-isp"
	ReasonInvalidDry     = "invalid-dry"
)

// InvalidStageError represents a stage whose values are numbers but not a usable rocket stage
type InvalidStageError struct {
	Stage  int // 1-based
	Reason string
}

func (e *InvalidStageError) Error() string {
	switch e.Reason {
	case ReasonWetNotAboveDry:
		return fmt.Sprintf("Wet mass <= Dry mass in Stage %d", e.Stage)
	case ReasonInvalidIsp:
		return fmt.Sprintf("Invalid Isp in Stage %d", e.Stage)
	case ReasonInvalidDry:
		return fmt.Sprintf("Invalid Dry mass in Stage %d", e.Stage)
	}
	return fmt.Sprintf("Invalid Stage %d", e.Stage)
}

// Is returns true if the target error is ErrInvalidStage
func (e *InvalidStageError) Is(target error) bool {
	return target == ErrInvalidStage
}

// NewInvalidStageError creates a new InvalidStageError
func NewInvalidStageError(stage int, reason string) *InvalidStageError {
	return &InvalidStageError{Stage: stage, Reason: reason}
}

// EmptySequenceError represents a calculation request with no stages
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "No stages added"
}

// Is returns true if the target error is ErrEmptySequence
func (e *EmptySequenceError) Is(target error) bool {
	return target == ErrEmptySequence
}

// NewEmptySequenceError creates a new EmptySequenceError
func NewEmptySequenceError() *EmptySequenceError {
	return &EmptySequenceError{}
}

// ComputationError represents a stage whose delta-v is infinite or undefined
type ComputationError struct {
	Stage   int // 1-based
	Message string
}

func (e *ComputationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Cannot compute delta-v for Stage %d: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("Cannot compute delta-v for Stage %d", e.Stage)
}

// Is returns true if the target error is ErrComputation
func (e *ComputationError) Is(target error) bool {
	return target == ErrComputation
}

// NewComputationError creates a new ComputationError
func NewComputationError(stage int, message string) *ComputationError {
	return &ComputationError{Stage: stage, Message: message}
}

// StageNotFoundError represents an operation on a stage identity that is not in the sequence
type StageNotFoundError struct {
	ID string
}

func (e *StageNotFoundError) Error() string {
	return fmt.Sprintf("stage %s does not exist", e.ID)
}

// Is returns true if the target error is ErrStageNotFound
func (e *StageNotFoundError) Is(target error) bool {
	return target == ErrStageNotFound
}

// NewStageNotFoundError creates a new StageNotFoundError
func NewStageNotFoundError(id string) *StageNotFoundError {
	return &StageNotFoundError{ID: id}
}

// IsValidation reports whether err is one of the input validation failures
// that is shown to the user rather than treated as a fault.
func IsValidation(err error) bool {
	return errors.Is(err, ErrParse) ||
		errors.Is(err, ErrInvalidStage) ||
		errors.Is(err, ErrEmptySequence) ||
		errors.Is(err, ErrComputation)
}
