// Package stage manages the ordered, user-editable list of rocket stages.
//
// Position in the sequence is burn order: stage 1 burns first and carries
// every later stage until separation. Each entry has an ID that stays the
// same while stages around it are added, removed or moved, so callers can
// refer to a stage without tracking its current number.
package stage

import (
	"github.com/google/uuid"

	"deltav.dev/deltav/internal/engine"
	"deltav.dev/deltav/internal/errors"
)

// ID identifies a stage for its whole lifetime in a sequence
type ID string

// Field selects one of the editable values of a stage
type Field int

const (
	// FieldWet is the wet mass (with propellant)
	FieldWet Field = iota
	// FieldDry is the dry mass (propellant expended)
	FieldDry
	// FieldIsp is the specific impulse in seconds
	FieldIsp
)

// Fields lists the editable fields in display order
var Fields = []Field{FieldWet, FieldDry, FieldIsp}

// Label returns the label shown next to the field's input
func (f Field) Label() string {
	switch f {
	case FieldWet:
		return "Wet Mass (kg):"
	case FieldDry:
		return "Dry Mass (kg):"
	case FieldIsp:
		return "Isp (s):"
	}
	return ""
}

// Entry is one stage as the user entered it
type Entry struct {
	ID     ID
	Number int // 1-based display position
	Wet    string
	Dry    string
	Isp    string
}

// Value returns the raw text of a field
func (e Entry) Value(f Field) string {
	switch f {
	case FieldWet:
		return e.Wet
	case FieldDry:
		return e.Dry
	case FieldIsp:
		return e.Isp
	}
	return ""
}

// Raw converts the entry to the engine's input form
func (e Entry) Raw() engine.RawStage {
	return engine.RawStage{Wet: e.Wet, Dry: e.Dry, Isp: e.Isp}
}

// Sequence is an ordered list of stages. It is not safe for concurrent use.
type Sequence struct {
	entries []Entry
	newID   func() ID
}

// NewSequence creates an empty sequence that assigns random UUIDs
func NewSequence() *Sequence {
	return NewSequenceWithIDs(func() ID {
		return ID(uuid.New().String())
	})
}

// NewSequenceWithIDs creates an empty sequence with a custom ID generator.
// newID must never return the same ID twice.
func NewSequenceWithIDs(newID func() ID) *Sequence {
	return &Sequence{newID: newID}
}

// Append adds a stage with empty fields at the end and returns its ID
func (s *Sequence) Append() ID {
	id := s.newID()
	s.entries = append(s.entries, Entry{ID: id, Number: len(s.entries) + 1})
	return id
}

// Remove deletes the stage with the given ID and renumbers the rest.
// It reports whether a stage was removed; an unknown ID leaves the sequence unchanged.
func (s *Sequence) Remove(id ID) bool {
	idx := s.IndexOf(id)
	if idx < 0 {
		return false
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	s.renumber()
	return true
}

// Move shifts a stage by offset positions in burn order, clamped to the ends.
// It reports whether the stage changed position.
func (s *Sequence) Move(id ID, offset int) bool {
	from := s.IndexOf(id)
	if from < 0 {
		return false
	}
	to := from + offset
	if to < 0 {
		to = 0
	}
	if to > len(s.entries)-1 {
		to = len(s.entries) - 1
	}
	if to == from {
		return false
	}

	moved := s.entries[from]
	s.entries = append(s.entries[:from], s.entries[from+1:]...)
	s.entries = append(s.entries[:to], append([]Entry{moved}, s.entries[to:]...)...)
	s.renumber()
	return true
}

// Set updates one field of a stage
func (s *Sequence) Set(id ID, field Field, value string) error {
	idx := s.IndexOf(id)
	if idx < 0 {
		return errors.NewStageNotFoundError(string(id))
	}

	e := &s.entries[idx]
	switch field {
	case FieldWet:
		e.Wet = value
	case FieldDry:
		e.Dry = value
	case FieldIsp:
		e.Isp = value
	}
	return nil
}

// Len returns the number of stages
func (s *Sequence) Len() int {
	return len(s.entries)
}

// IndexOf returns the 0-based position of a stage, or -1 if it is not present
func (s *Sequence) IndexOf(id ID) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Get returns the stage with the given ID
func (s *Sequence) Get(id ID) (Entry, bool) {
	idx := s.IndexOf(id)
	if idx < 0 {
		return Entry{}, false
	}
	return s.entries[idx], true
}

// At returns the stage at a 0-based position
func (s *Sequence) At(idx int) (Entry, bool) {
	if idx < 0 || idx >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[idx], true
}

// Entries returns a copy of the stages in burn order
func (s *Sequence) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// IDs returns the stage IDs in burn order
func (s *Sequence) IDs() []ID {
	ids := make([]ID, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.ID
	}
	return ids
}

// Raw returns the raw fields of every stage in burn order
func (s *Sequence) Raw() []engine.RawStage {
	raw := make([]engine.RawStage, len(s.entries))
	for i, e := range s.entries {
		raw[i] = e.Raw()
	}
	return raw
}

func (s *Sequence) renumber() {
	for i := range s.entries {
		s.entries[i].Number = i + 1
	}
}
