package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shapeFor(t *testing.T, in bbs.Input) ShapeDiagramData {
	t.Helper()
	s, err := bbs.Compute(in)
	require.NoError(t, err)
	data, err := NewShapeData(in, s.Rows[0])
	require.NoError(t, err)
	return data
}

var (
	ties = bbs.TiesInput{
		Common: bbs.Common{Cover: 25, BarDiameter: 8},
		ClearA: 230, ClearB: 300, MemberHeight: 3000, Pitch: 150,
		HookMultiplier: 10, BendDeductionMultiplier: 2,
	}
	beam = bbs.BeamInput{
		Common:    bbs.Common{Cover: 25, BarDiameter: 16},
		ClearSpan: 4000, DevelopmentLength: 200, MainBarCount: 2,
	}
	column = bbs.ColumnInput{
		Common:      bbs.Common{Cover: 40, BarDiameter: 20},
		ClearHeight: 3000, LapLength: 800, VerticalBarCount: 8,
	}
)

func TestNewShapeData(t *testing.T) {
	st := shapeFor(t, ties)
	assert.Equal(t, bbs.Ties, st.Member)
	assert.Equal(t, 272.0, st.SideA)
	assert.Equal(t, 342.0, st.SideB)
	assert.Equal(t, 80.0, st.HookLength)

	bm := shapeFor(t, &beam)
	assert.Equal(t, bbs.Beam, bm.Member)
	assert.Equal(t, bm.CutLength, bm.Body+bm.EndA+bm.EndB)

	cl := shapeFor(t, column)
	assert.Equal(t, bbs.Column, cl.Member)
	assert.Equal(t, 800.0, cl.EndB)
	assert.Equal(t, cl.CutLength, cl.Body+cl.EndA+cl.EndB)

	_, err := NewShapeData(nil, bbs.ScheduleRow{})
	assert.Error(t, err)
}

func TestDrawASCIIShape(t *testing.T) {
	st := DrawASCIIShape(shapeFor(t, ties))
	assert.Contains(t, st, "STIRRUP SHAPE (ST)")
	assert.Contains(t, st, "a = 272 mm")
	assert.Contains(t, st, "b = 342 mm")
	assert.Contains(t, st, "Cut length = 1324 mm, 21 nos.")

	bm := DrawASCIIShape(shapeFor(t, beam))
	assert.Contains(t, bm, "MAIN BAR (BM)")
	assert.Contains(t, bm, "4000 span")
	assert.Contains(t, bm, "Cut length = 4450 mm")

	cl := DrawASCIIShape(shapeFor(t, column))
	assert.Contains(t, cl, "VERTICAL BAR (CL)")
	assert.Contains(t, cl, "lap")
	assert.Contains(t, cl, "Cut length = 3880 mm")

	assert.Empty(t, DrawASCIIShape(ShapeDiagramData{}))
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("TOTAL", []string{"Weight: 10.98 kg", "φ8"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 6)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func TestExportShapeDiagram(t *testing.T) {
	dir := t.TempDir()

	for name, in := range map[string]bbs.Input{"ties.png": ties, "beam.svg": beam, "column": column} {
		path, err := ExportShapeDiagram(shapeFor(t, in), filepath.Join(dir, "shapes", name))
		require.NoError(t, err, name)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	_, err := os.Stat(filepath.Join(dir, "shapes", "column.png"))
	assert.NoError(t, err)

	_, err = ExportShapeDiagram(ShapeDiagramData{}, filepath.Join(dir, "none.png"))
	assert.Error(t, err)
}
