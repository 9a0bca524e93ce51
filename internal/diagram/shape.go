package diagram

import (
	"fmt"

	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/alexiusacademia/gobbs/internal/rebar"
)

// ShapeDiagramData holds the dimensions needed to draw one bar shape
type ShapeDiagramData struct {
	Member bbs.MemberType
	Mark   string

	// Ties: centerline sides and hook length (mm)
	SideA      float64
	SideB      float64
	HookLength float64

	// Beam/column: straight body and the extension at each end (mm).
	// For columns EndB is the lap.
	Body float64
	EndA float64
	EndB float64

	BarDiameter float64
	CutLength   float64
	Count       int
}

// NewShapeData derives drawing dimensions from a member input and its
// computed row
func NewShapeData(in bbs.Input, row bbs.ScheduleRow) (ShapeDiagramData, error) {
	data := ShapeDiagramData{
		Mark:        row.Mark,
		BarDiameter: row.BarDiameter,
		CutLength:   row.CutLength,
		Count:       row.Count,
	}

	switch v := in.(type) {
	case bbs.TiesInput:
		data.Member = bbs.Ties
		data.SideA, data.SideB = rebar.TiesEffectiveSides(v.ClearA, v.ClearB, v.Cover, v.BarDiameter)
		data.HookLength = v.HookMultiplier * v.BarDiameter
	case bbs.BeamInput:
		data.Member = bbs.Beam
		data.Body = v.ClearSpan
		data.EndA = v.Cover + v.DevelopmentLength
		data.EndB = data.EndA
	case bbs.ColumnInput:
		data.Member = bbs.Column
		data.Body = v.ClearHeight
		data.EndA = 2 * v.Cover
		data.EndB = v.LapLength
	case *bbs.TiesInput:
		return NewShapeData(*v, row)
	case *bbs.BeamInput:
		return NewShapeData(*v, row)
	case *bbs.ColumnInput:
		return NewShapeData(*v, row)
	default:
		return ShapeDiagramData{}, fmt.Errorf("no shape for member input %T", in)
	}

	return data, nil
}
