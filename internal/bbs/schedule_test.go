package bbs

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/gobbs/internal/rebar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tiesScenario() TiesInput {
	return TiesInput{
		Common:                  Common{Cover: 25, BarDiameter: 8},
		ClearA:                  230,
		ClearB:                  300,
		MemberHeight:            3000,
		Pitch:                   150,
		HookMultiplier:          10,
		BendDeductionMultiplier: 2,
	}
}

func beamScenario() BeamInput {
	return BeamInput{
		Common:            Common{Cover: 25, BarDiameter: 16},
		ClearSpan:         4000,
		DevelopmentLength: 200,
		MainBarCount:      2,
	}
}

func columnScenario() ColumnInput {
	return ColumnInput{
		Common:           Common{Cover: 40, BarDiameter: 20},
		ClearHeight:      3000,
		LapLength:        800,
		VerticalBarCount: 8,
	}
}

func TestCompute_Ties(t *testing.T) {
	s, err := Compute(tiesScenario())
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	row := s.Rows[0]
	assert.Equal(t, "ST", row.Mark)
	assert.Equal(t, "Stirrups/Ties", row.Member)
	assert.Equal(t, "Rect with hooks", row.Shape)
	assert.Equal(t, 8.0, row.BarDiameter)
	assert.Equal(t, 21, row.Count)
	require.NotNil(t, row.Spacing)
	assert.Equal(t, 150.0, *row.Spacing)

	// sides 272 and 342: 2(272+342) + 160 − 64
	assert.InDelta(t, 1324.0, row.CutLength, 1e-9)
	assert.InDelta(t, 27.804, row.TotalLength, 1e-9)
	assert.InDelta(t, 0.395062, row.UnitWeight, 1e-6)
	assert.InDelta(t, 10.984296, row.TotalWeight, 1e-6)
}

func TestCompute_Beam(t *testing.T) {
	s, err := Compute(beamScenario())
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	row := s.Rows[0]
	assert.Equal(t, "BM", row.Mark)
	assert.Equal(t, "Beam", row.Member)
	assert.Equal(t, "Straight + development at ends", row.Shape)
	assert.Nil(t, row.Spacing)
	assert.Equal(t, 2, row.Count)
	assert.Equal(t, 4450.0, row.CutLength)
	assert.InDelta(t, 8.9, row.TotalLength, 1e-9)
	assert.InDelta(t, 1.580247, row.UnitWeight, 1e-6)
	assert.InDelta(t, 14.064198, row.TotalWeight, 1e-6)
}

func TestCompute_Column(t *testing.T) {
	s, err := Compute(columnScenario())
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	row := s.Rows[0]
	assert.Equal(t, "CL", row.Mark)
	assert.Equal(t, "Column", row.Member)
	assert.Equal(t, "Straight + lap", row.Shape)
	assert.Nil(t, row.Spacing)
	assert.Equal(t, 8, row.Count)
	assert.Equal(t, 3880.0, row.CutLength)
	assert.InDelta(t, 31.04, row.TotalLength, 1e-9)
	assert.InDelta(t, 2.469136, row.UnitWeight, 1e-6)
	assert.InDelta(t, 76.641975, row.TotalWeight, 1e-6)
}

func TestCompute_PointerInput(t *testing.T) {
	in := beamScenario()
	s, err := Compute(&in)
	require.NoError(t, err)
	assert.Equal(t, 4450.0, s.Rows[0].CutLength)

	var nilBeam *BeamInput
	_, err = Compute(nilBeam)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestCompute_Idempotent(t *testing.T) {
	for _, in := range []Input{tiesScenario(), beamScenario(), columnScenario()} {
		first, err := Compute(in)
		require.NoError(t, err)
		second, err := Compute(in)
		require.NoError(t, err)

		assert.Equal(t, first.Rows, second.Rows)
		assert.NotSame(t, first, second)
	}
}

func TestCompute_SchedulesAreIndependent(t *testing.T) {
	first, err := Compute(tiesScenario())
	require.NoError(t, err)
	second, err := Compute(tiesScenario())
	require.NoError(t, err)

	*second.Rows[0].Spacing = 999
	second.Rows[0].Count = 1

	assert.Equal(t, 150.0, *first.Rows[0].Spacing)
	assert.Equal(t, 21, first.Rows[0].Count)
}

func TestCompute_WeightChainInvariant(t *testing.T) {
	for _, in := range []Input{tiesScenario(), beamScenario(), columnScenario()} {
		s, err := Compute(in)
		require.NoError(t, err)
		row := s.Rows[0]

		assert.Equal(t, row.CutLength/1000*float64(row.Count), row.TotalLength)
		assert.Equal(t, row.TotalLength*row.UnitWeight, row.TotalWeight)
		assert.InDelta(t, row.TotalLength*rebar.UnitWeight(row.BarDiameter), row.TotalWeight, 1e-6)
	}
}

func TestCompute_TiesZeroHeightGivesOneStirrup(t *testing.T) {
	in := tiesScenario()
	in.MemberHeight = 0

	s, err := Compute(in)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Rows[0].Count)
}

func TestCompute_TiesCoverBoundaries(t *testing.T) {
	in := tiesScenario()
	in.ClearA = 100
	in.Cover = 60

	s, err := Compute(in)
	require.NoError(t, err)
	assert.Greater(t, s.Rows[0].CutLength, 0.0)

	// Effective sides grow with cover, so a large cover is still a valid rectangle.
	in.Cover = 200
	s, err = Compute(in)
	require.NoError(t, err)
	assert.Greater(t, s.Rows[0].CutLength, 0.0)
}

func TestCompute_GeometryErrors(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{
			name: "ties side shorter than bar",
			in: TiesInput{
				Common: Common{Cover: 0, BarDiameter: 8},
				ClearA: 0, ClearB: 300, Pitch: 150,
			},
		},
		{
			name: "ties side exactly zero",
			in: TiesInput{
				Common: Common{Cover: 2, BarDiameter: 8},
				ClearA: 4, ClearB: 300, Pitch: 150,
			},
		},
		{
			name: "ties bend deduction exceeds perimeter",
			in: TiesInput{
				Common: Common{Cover: 0, BarDiameter: 10},
				ClearA: 20, ClearB: 20, Pitch: 150,
				BendDeductionMultiplier: 10,
			},
		},
		{
			name: "ties stirrup count out of range",
			in: TiesInput{
				Common: Common{Cover: 25, BarDiameter: 8},
				ClearA: 230, ClearB: 300, MemberHeight: 1e20, Pitch: 1,
				HookMultiplier: 10, BendDeductionMultiplier: 2,
			},
		},
		{
			name: "beam unit weight overflows",
			in: BeamInput{
				Common:    Common{Cover: 25, BarDiameter: 1e200},
				ClearSpan: 4000, DevelopmentLength: 200, MainBarCount: 2,
			},
		},
		{
			name: "column cut length overflows",
			in: ColumnInput{
				Common:      Common{Cover: 40, BarDiameter: 20},
				ClearHeight: 1e308, LapLength: 1e308, VerticalBarCount: 8,
			},
		},
		{
			name: "beam total weight overflows",
			in: BeamInput{
				Common:    Common{Cover: 25, BarDiameter: 1e153},
				ClearSpan: 1e300, DevelopmentLength: 200, MainBarCount: 2,
			},
		},
		{
			name: "beam of zero length",
			in:   BeamInput{Common: Common{BarDiameter: 12}, MainBarCount: 2},
		},
		{
			name: "column of zero length",
			in:   ColumnInput{Common: Common{BarDiameter: 12}, VerticalBarCount: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Compute(tt.in)
			assert.Nil(t, s)
			var gErr *GeometryError
			require.ErrorAs(t, err, &gErr)
			assert.Contains(t, err.Error(), "invalid geometry")
		})
	}
}

func TestCompute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{"zero pitch", func() Input { in := tiesScenario(); in.Pitch = 0; return in }(), "pitch"},
		{"negative pitch", func() Input { in := tiesScenario(); in.Pitch = -150; return in }(), "pitch"},
		{"zero diameter", func() Input { in := tiesScenario(); in.BarDiameter = 0; return in }(), "bar_diameter"},
		{"negative cover", func() Input { in := beamScenario(); in.Cover = -1; return in }(), "cover"},
		{"negative clear side", func() Input { in := tiesScenario(); in.ClearB = -5; return in }(), "clear_b"},
		{"negative hook multiplier", func() Input { in := tiesScenario(); in.HookMultiplier = -1; return in }(), "hook_multiplier"},
		{"NaN height", func() Input { in := tiesScenario(); in.MemberHeight = math.NaN(); return in }(), "member_height"},
		{"infinite span", func() Input { in := beamScenario(); in.ClearSpan = math.Inf(1); return in }(), "clear_span"},
		{"no main bars", func() Input { in := beamScenario(); in.MainBarCount = 0; return in }(), "main_bar_count"},
		{"negative development", func() Input { in := beamScenario(); in.DevelopmentLength = -1; return in }(), "development_length"},
		{"one vertical bar", func() Input { in := columnScenario(); in.VerticalBarCount = 1; return in }(), "vertical_bar_count"},
		{"negative lap", func() Input { in := columnScenario(); in.LapLength = -10; return in }(), "lap_length"},
		{"nil input", nil, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Compute(tt.in)
			assert.Nil(t, s)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)

			var gErr *GeometryError
			assert.False(t, errors.As(err, &gErr))
		})
	}
}

func TestComputeBatch(t *testing.T) {
	s, err := ComputeBatch([]Input{columnScenario(), tiesScenario(), beamScenario()})
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	assert.Equal(t, "CL", s.Rows[0].Mark)
	assert.Equal(t, "ST", s.Rows[1].Mark)
	assert.Equal(t, "BM", s.Rows[2].Mark)

	want := s.Rows[0].TotalWeight + s.Rows[1].TotalWeight + s.Rows[2].TotalWeight
	assert.InDelta(t, want, s.TotalWeight(), 1e-9)
	assert.InDelta(t, 31.04+27.804+8.9, s.TotalLength(), 1e-9)
}

func TestComputeBatch_FailsWhole(t *testing.T) {
	bad := beamScenario()
	bad.MainBarCount = 0

	s, err := ComputeBatch([]Input{tiesScenario(), bad})
	assert.Nil(t, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "member 2")

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = ComputeBatch(nil)
	assert.ErrorAs(t, err, &vErr)
}

func TestParseMemberType(t *testing.T) {
	tests := map[string]MemberType{
		"ties":     Ties,
		"Stirrups": Ties,
		" beam ":   Beam,
		"COLUMN":   Column,
		"cl":       Column,
	}
	for in, want := range tests {
		got, err := ParseMemberType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMemberType("slab")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "ties", Ties.String())
	assert.Equal(t, "MemberType(9)", MemberType(9).String())
}
