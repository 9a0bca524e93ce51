package bbs

import (
	"fmt"
	"math"
	"strings"
)

// MemberType selects the formula set and the parameters that apply
type MemberType int

const (
	Ties MemberType = iota + 1
	Beam
	Column
)

// String returns the lower-case name used in parameter files and flags
func (m MemberType) String() string {
	switch m {
	case Ties:
		return "ties"
	case Beam:
		return "beam"
	case Column:
		return "column"
	}
	return fmt.Sprintf("MemberType(%d)", int(m))
}

// Mark is the short bar mark printed in the schedule
func (m MemberType) Mark() string {
	switch m {
	case Ties:
		return "ST"
	case Beam:
		return "BM"
	case Column:
		return "CL"
	}
	return ""
}

// Label is the member description printed in the schedule
func (m MemberType) Label() string {
	switch m {
	case Ties:
		return "Stirrups/Ties"
	case Beam:
		return "Beam"
	case Column:
		return "Column"
	}
	return ""
}

// ShapeNote describes the bent shape of the bar group
func (m MemberType) ShapeNote() string {
	switch m {
	case Ties:
		return "Rect with hooks"
	case Beam:
		return "Straight + development at ends"
	case Column:
		return "Straight + lap"
	}
	return ""
}

// ParseMemberType parses a member name such as "ties" or "Column"
func ParseMemberType(s string) (MemberType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ties", "tie", "stirrups", "stirrup", "st":
		return Ties, nil
	case "beam", "bm":
		return Beam, nil
	case "column", "col", "cl":
		return Column, nil
	}
	return 0, &ValidationError{Field: "type", Msg: fmt.Sprintf("unknown member type %q", s)}
}

// Common holds the parameters every member type needs
type Common struct {
	Cover       float64 `json:"cover" yaml:"cover"`               // mm, clear cover to bar surface
	BarDiameter float64 `json:"bar_diameter" yaml:"bar_diameter"` // mm
}

// Input is a parameter set for one member. Each member type has its own
// concrete input so that only the relevant fields exist.
type Input interface {
	Member() MemberType
	Validate() error
}

// TiesInput holds rectangular stirrup parameters
type TiesInput struct {
	Common

	ClearA       float64 `json:"clear_a" yaml:"clear_a"`             // mm, short clear side
	ClearB       float64 `json:"clear_b" yaml:"clear_b"`             // mm, long clear side
	MemberHeight float64 `json:"member_height" yaml:"member_height"` // mm, length along which ties are spaced
	Pitch        float64 `json:"pitch" yaml:"pitch"`                 // mm, c/c spacing

	HookMultiplier          float64 `json:"hook_multiplier" yaml:"hook_multiplier"`                     // × d per hook
	BendDeductionMultiplier float64 `json:"bend_deduction_multiplier" yaml:"bend_deduction_multiplier"` // × d per bend
}

// BeamInput holds simple beam main bar parameters
type BeamInput struct {
	Common

	ClearSpan         float64 `json:"clear_span" yaml:"clear_span"`                 // mm
	DevelopmentLength float64 `json:"development_length" yaml:"development_length"` // mm, each end
	MainBarCount      int     `json:"main_bar_count" yaml:"main_bar_count"`
}

// ColumnInput holds column vertical bar parameters
type ColumnInput struct {
	Common

	ClearHeight      float64 `json:"clear_height" yaml:"clear_height"` // mm
	LapLength        float64 `json:"lap_length" yaml:"lap_length"`     // mm
	VerticalBarCount int     `json:"vertical_bar_count" yaml:"vertical_bar_count"`
}

func (TiesInput) Member() MemberType   { return Ties }
func (BeamInput) Member() MemberType   { return Beam }
func (ColumnInput) Member() MemberType { return Column }

// Validate checks the common parameters
func (c Common) Validate() error {
	if err := nonNegative("cover", c.Cover); err != nil {
		return err
	}
	return positive("bar_diameter", c.BarDiameter)
}

// Validate checks every ties parameter against its domain
func (in TiesInput) Validate() error {
	if err := in.Common.Validate(); err != nil {
		return err
	}
	checks := []struct {
		field string
		value float64
	}{
		{"clear_a", in.ClearA},
		{"clear_b", in.ClearB},
		{"member_height", in.MemberHeight},
		{"hook_multiplier", in.HookMultiplier},
		{"bend_deduction_multiplier", in.BendDeductionMultiplier},
	}
	for _, c := range checks {
		if err := nonNegative(c.field, c.value); err != nil {
			return err
		}
	}
	return positive("pitch", in.Pitch)
}

// Validate checks every beam parameter against its domain
func (in BeamInput) Validate() error {
	if err := in.Common.Validate(); err != nil {
		return err
	}
	if err := nonNegative("clear_span", in.ClearSpan); err != nil {
		return err
	}
	if err := nonNegative("development_length", in.DevelopmentLength); err != nil {
		return err
	}
	if in.MainBarCount < 1 {
		return &ValidationError{Field: "main_bar_count", Msg: fmt.Sprintf("must be at least 1, got %d", in.MainBarCount)}
	}
	return nil
}

// Validate checks every column parameter against its domain
func (in ColumnInput) Validate() error {
	if err := in.Common.Validate(); err != nil {
		return err
	}
	if err := nonNegative("clear_height", in.ClearHeight); err != nil {
		return err
	}
	if err := nonNegative("lap_length", in.LapLength); err != nil {
		return err
	}
	if in.VerticalBarCount < 2 {
		return &ValidationError{Field: "vertical_bar_count", Msg: fmt.Sprintf("must be at least 2, got %d", in.VerticalBarCount)}
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Msg: "must be a finite number"}
	}
	if v < 0 {
		return &ValidationError{Field: field, Msg: fmt.Sprintf("must not be negative, got %g", v)}
	}
	return nil
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Msg: "must be a finite number"}
	}
	if v <= 0 {
		return &ValidationError{Field: field, Msg: fmt.Sprintf("must be positive, got %g", v)}
	}
	return nil
}

// ValidationError reports a missing or out-of-domain input
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// GeometryError reports valid inputs that produce a non-physical bar
type GeometryError struct {
	Msg string
}

func (e *GeometryError) Error() string {
	return "invalid geometry: " + e.Msg
}
