package bbs

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobbs/internal/rebar"
)

// ScheduleRow is one computed bar group. Values are kept at full precision;
// rounding happens only in ExportRows.
type ScheduleRow struct {
	Mark        string   `json:"mark"`
	Member      string   `json:"member"`
	BarDiameter float64  `json:"bar_diameter_mm"`
	Count       int      `json:"bar_count"`
	Spacing     *float64 `json:"spacing_mm,omitempty"` // ties only
	CutLength   float64  `json:"cut_length_mm"`
	TotalLength float64  `json:"total_length_m"`
	UnitWeight  float64  `json:"unit_weight_kg_per_m"`
	TotalWeight float64  `json:"total_weight_kg"`
	Shape       string   `json:"shape_note"`
}

// Schedule is an ordered list of rows. A new Schedule is built for every
// compute request and is not modified afterwards.
type Schedule struct {
	Rows []ScheduleRow `json:"rows"`
}

// Len returns the number of rows
func (s *Schedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}

// TotalLength sums the total bar length (m) over all rows
func (s *Schedule) TotalLength() float64 {
	var sum float64
	for _, r := range s.Rows {
		sum += r.TotalLength
	}
	return sum
}

// TotalWeight sums the steel weight (kg) over all rows
func (s *Schedule) TotalWeight() float64 {
	var sum float64
	for _, r := range s.Rows {
		sum += r.TotalWeight
	}
	return sum
}

// Compute builds a one-row schedule for the given member.
// It returns a *ValidationError for bad inputs (before any formula runs)
// or a *GeometryError when the inputs produce a non-physical bar.
func Compute(in Input) (*Schedule, error) {
	row, err := computeRow(in)
	if err != nil {
		return nil, err
	}
	return &Schedule{Rows: []ScheduleRow{row}}, nil
}

// ComputeBatch builds one row per input, in input order. The first failing
// input aborts the batch and no schedule is returned.
func ComputeBatch(inputs []Input) (*Schedule, error) {
	if len(inputs) == 0 {
		return nil, &ValidationError{Msg: "no members to compute"}
	}

	rows := make([]ScheduleRow, 0, len(inputs))
	for i, in := range inputs {
		row, err := computeRow(in)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return &Schedule{Rows: rows}, nil
}

// deref lets callers pass either values or pointers
func deref(in Input) Input {
	switch p := in.(type) {
	case *TiesInput:
		if p != nil {
			return *p
		}
		return nil
	case *BeamInput:
		if p != nil {
			return *p
		}
		return nil
	case *ColumnInput:
		if p != nil {
			return *p
		}
		return nil
	}
	return in
}

// maxStirrups bounds the stirrup count of one member
const maxStirrups = math.MaxInt32

func computeRow(in Input) (ScheduleRow, error) {
	in = deref(in)
	if in == nil {
		return ScheduleRow{}, &ValidationError{Field: "type", Msg: "member input is required"}
	}
	if err := in.Validate(); err != nil {
		return ScheduleRow{}, err
	}

	var (
		common  Common
		count   int
		cut     float64
		spacing *float64
	)

	switch v := in.(type) {
	case TiesInput:
		common = v.Common
		a, b := rebar.TiesEffectiveSides(v.ClearA, v.ClearB, v.Cover, v.BarDiameter)
		if a <= 0 || b <= 0 {
			return ScheduleRow{}, &GeometryError{Msg: fmt.Sprintf("stirrup effective sides must be positive, got a=%.2f mm, b=%.2f mm", a, b)}
		}
		if q := v.MemberHeight / v.Pitch; math.IsInf(q, 0) || math.IsNaN(q) || q >= maxStirrups {
			return ScheduleRow{}, &GeometryError{Msg: fmt.Sprintf("member height %g mm at pitch %g mm gives too many stirrups", v.MemberHeight, v.Pitch)}
		}
		count = rebar.StirrupCount(v.MemberHeight, v.Pitch)
		cut = rebar.TiesCuttingLength(v.ClearA, v.ClearB, v.Cover, v.BarDiameter, v.HookMultiplier, v.BendDeductionMultiplier)
		pitch := v.Pitch
		spacing = &pitch

	case BeamInput:
		common = v.Common
		count = v.MainBarCount
		cut = rebar.BeamMainBarLength(v.ClearSpan, v.Cover, v.BarDiameter, v.DevelopmentLength)

	case ColumnInput:
		common = v.Common
		count = v.VerticalBarCount
		cut = rebar.ColumnLongitudinalLength(v.ClearHeight, v.Cover, v.BarDiameter, v.LapLength)

	default:
		return ScheduleRow{}, &ValidationError{Field: "type", Msg: fmt.Sprintf("unsupported member input %T", in)}
	}

	if math.IsNaN(cut) || math.IsInf(cut, 0) || cut <= 0 {
		return ScheduleRow{}, &GeometryError{Msg: fmt.Sprintf("cutting length must be positive, got %.2f mm", cut)}
	}

	unitWt := rebar.UnitWeight(common.BarDiameter)
	totalLen := (cut / rebar.MMPerM) * float64(count)
	totalWt := totalLen * unitWt
	for _, v := range []float64{unitWt, totalLen, totalWt} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ScheduleRow{}, &GeometryError{Msg: "bar length or weight is out of range"}
		}
	}
	m := in.Member()

	return ScheduleRow{
		Mark:        m.Mark(),
		Member:      m.Label(),
		BarDiameter: common.BarDiameter,
		Count:       count,
		Spacing:     spacing,
		CutLength:   cut,
		TotalLength: totalLen,
		UnitWeight:  unitWt,
		TotalWeight: totalWt,
		Shape:       m.ShapeNote(),
	}, nil
}
