package metrics

import (
	"errors"

	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/alexiusacademia/gobbs/internal/export"
	"github.com/prometheus/client_golang/prometheus"
)

// Error kinds recorded by RecordError
const (
	KindValidation = "validation"
	KindGeometry   = "geometry"
	KindDecode     = "decode"
	KindExport     = "export"
)

// Collector holds the Prometheus instruments of the schedule service
type Collector struct {
	schedulesComputed *prometheus.CounterVec
	computeErrors     *prometheus.CounterVec
	exports           *prometheus.CounterVec
	scheduleWeight    prometheus.Histogram
}

// NewCollector creates the instruments and registers them on reg
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		schedulesComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gobbs_schedules_computed_total",
			Help: "Total number of schedule rows computed, by member type",
		}, []string{"member"}),
		computeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gobbs_compute_errors_total",
			Help: "Total number of rejected compute requests, by error kind",
		}, []string{"kind"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gobbs_exports_total",
			Help: "Total number of exported schedules, by format",
		}, []string{"format"}),
		scheduleWeight: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gobbs_schedule_weight_kg",
			Help:    "Total steel weight per computed schedule in kilograms",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	for _, col := range []prometheus.Collector{c.schedulesComputed, c.computeErrors, c.exports, c.scheduleWeight} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordSchedule records a computed schedule
func (c *Collector) RecordSchedule(s *bbs.Schedule) {
	for _, r := range s.Rows {
		c.schedulesComputed.WithLabelValues(memberLabel(r.Mark)).Inc()
	}
	c.scheduleWeight.Observe(s.TotalWeight())
}

// RecordError records a rejected request, classifying err
func (c *Collector) RecordError(err error) {
	c.computeErrors.WithLabelValues(Kind(err)).Inc()
}

// RecordExport records an exported schedule
func (c *Collector) RecordExport(format string) {
	c.exports.WithLabelValues(format).Inc()
}

// Kind classifies an error from the compute path
func Kind(err error) string {
	var vErr *bbs.ValidationError
	var gErr *bbs.GeometryError
	var eErr *export.ExportError
	switch {
	case errors.As(err, &vErr):
		return KindValidation
	case errors.As(err, &gErr):
		return KindGeometry
	case errors.As(err, &eErr):
		return KindExport
	}
	return KindDecode
}

func memberLabel(mark string) string {
	for _, m := range []bbs.MemberType{bbs.Ties, bbs.Beam, bbs.Column} {
		if m.Mark() == mark {
			return m.String()
		}
	}
	return "unknown"
}
