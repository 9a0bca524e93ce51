package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/alexiusacademia/gobbs/internal/export"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	s, err := bbs.ComputeBatch([]bbs.Input{
		bbs.BeamInput{Common: bbs.Common{Cover: 25, BarDiameter: 16}, ClearSpan: 4000, DevelopmentLength: 200, MainBarCount: 2},
		bbs.ColumnInput{Common: bbs.Common{Cover: 40, BarDiameter: 20}, ClearHeight: 3000, LapLength: 800, VerticalBarCount: 8},
		bbs.BeamInput{Common: bbs.Common{Cover: 25, BarDiameter: 12}, ClearSpan: 3000, DevelopmentLength: 300, MainBarCount: 3},
	})
	require.NoError(t, err)

	c.RecordSchedule(s)
	c.RecordExport("xlsx")
	c.RecordError(&bbs.ValidationError{Field: "pitch", Msg: "must be positive"})
	c.RecordError(fmt.Errorf("member 2: %w", &bbs.GeometryError{Msg: "bad"}))
	c.RecordError(errors.New("decode json parameters: unexpected EOF"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.schedulesComputed.WithLabelValues("beam")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.schedulesComputed.WithLabelValues("column")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.exports.WithLabelValues("xlsx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.computeErrors.WithLabelValues(KindValidation)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.computeErrors.WithLabelValues(KindGeometry)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.computeErrors.WithLabelValues(KindDecode)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.computeErrors.WithLabelValues(KindExport)))

	count, err := testutil.GatherAndCount(reg, "gobbs_schedule_weight_kg")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindExport, Kind(&export.ExportError{Op: "xlsx", Err: export.ErrEmptySchedule}))
	assert.Equal(t, KindValidation, Kind(fmt.Errorf("members[0]: %w", &bbs.ValidationError{Field: "cover"})))
	assert.Equal(t, KindDecode, Kind(errors.New("boom")))
}
