package bbs

import (
	"math"
	"strconv"
)

// Columns is the fixed header of an exported schedule
var Columns = []string{
	"Mark",
	"Member",
	"Bar Diameter (mm)",
	"Count",
	"Spacing/Pitch (mm)",
	"Cut Length (mm)",
	"Total Length (m)",
	"Unit Weight (kg/m)",
	"Total Weight (kg)",
	"Shape",
}

// Record is a schedule row rounded for presentation
type Record struct {
	Mark        string
	Member      string
	BarDiameter float64
	Count       int
	Spacing     *float64
	CutLength   float64 // whole mm
	TotalLength float64 // 2 dp
	UnitWeight  float64 // 3 dp
	TotalWeight float64 // 2 dp
	Shape       string
}

// ExportRows converts a schedule into presentation records, one per row and
// in row order. The schedule itself is left untouched.
func ExportRows(s *Schedule) []Record {
	if s == nil {
		return nil
	}
	records := make([]Record, 0, len(s.Rows))
	for _, r := range s.Rows {
		rec := Record{
			Mark:        r.Mark,
			Member:      r.Member,
			BarDiameter: r.BarDiameter,
			Count:       r.Count,
			CutLength:   round(r.CutLength, 0),
			TotalLength: round(r.TotalLength, 2),
			UnitWeight:  round(r.UnitWeight, 3),
			TotalWeight: round(r.TotalWeight, 2),
			Shape:       r.Shape,
		}
		if r.Spacing != nil {
			sp := *r.Spacing
			rec.Spacing = &sp
		}
		records = append(records, rec)
	}
	return records
}

// Values returns the ten cells in column order. A missing spacing is an
// empty string so tabular sinks leave the cell blank.
func (r Record) Values() []any {
	var spacing any = ""
	if r.Spacing != nil {
		spacing = *r.Spacing
	}
	return []any{
		r.Mark,
		r.Member,
		r.BarDiameter,
		r.Count,
		spacing,
		r.CutLength,
		r.TotalLength,
		r.UnitWeight,
		r.TotalWeight,
		r.Shape,
	}
}

// Strings returns the ten cells formatted as text
func (r Record) Strings() []string {
	spacing := ""
	if r.Spacing != nil {
		spacing = formatFloat(*r.Spacing)
	}
	return []string{
		r.Mark,
		r.Member,
		formatFloat(r.BarDiameter),
		strconv.Itoa(r.Count),
		spacing,
		formatFloat(r.CutLength),
		formatFloat(r.TotalLength),
		formatFloat(r.UnitWeight),
		formatFloat(r.TotalWeight),
		r.Shape,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
