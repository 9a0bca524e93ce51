package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/alexiusacademia/gobbs/internal/export"
	"github.com/alexiusacademia/gobbs/internal/input"
	"github.com/alexiusacademia/gobbs/internal/metrics"
	"go.uber.org/zap"
)

// maxBodyBytes bounds a parameter document
const maxBodyBytes = 1 << 20

// ScheduleResponse is the body of POST /api/v1/schedules
type ScheduleResponse struct {
	Project     string              `json:"project,omitempty"`
	Rows        []bbs.ScheduleRow   `json:"rows"`
	Records     []export.JSONRecord `json:"records"`
	TotalWeight float64             `json:"total_weight_kg"`
	RequestID   string              `json:"request_id"`
}

type handler struct {
	logger  *zap.Logger
	metrics *metrics.Collector
	export  export.Options
}

// computeSchedule decodes the parameter document of r and builds its
// schedule. The returned status is meaningful only when err is non-nil.
func (h *handler) computeSchedule(w http.ResponseWriter, r *http.Request) (*input.Batch, *bbs.Schedule, int, error) {
	format, err := input.ParseFormat(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, nil, http.StatusUnsupportedMediaType, err
	}

	batch, err := input.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), format)
	if err != nil {
		return nil, nil, statusFor(err), err
	}

	s, err := bbs.ComputeBatch(batch.Members)
	if err != nil {
		return nil, nil, statusFor(err), err
	}
	return batch, s, http.StatusOK, nil
}

// Schedules handles POST /api/v1/schedules
func (h *handler) Schedules(w http.ResponseWriter, r *http.Request) {
	requestID := RequestIDFromContext(r.Context())

	batch, s, status, err := h.computeSchedule(w, r)
	if err != nil {
		h.fail(w, status, err, requestID)
		return
	}
	h.recordSchedule(s)

	h.logger.Info("schedule computed",
		zap.String("project", batch.Project),
		zap.Int("rows", s.Len()),
		zap.Float64("total_weight_kg", s.TotalWeight()),
		zap.String("request_id", requestID),
	)

	h.respond(w, http.StatusOK, ScheduleResponse{
		Project:     batch.Project,
		Rows:        s.Rows,
		Records:     export.JSONRecords(bbs.ExportRows(s)),
		TotalWeight: s.TotalWeight(),
		RequestID:   requestID,
	}, requestID)
}

// respond writes v as JSON, falling back to a 500 when v cannot be encoded
func (h *handler) respond(w http.ResponseWriter, status int, v any, requestID string) {
	if err := writeJSON(w, status, v); err != nil {
		h.logger.Error("encode response",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("encode response: %v", err), requestID)
	}
}

// Export handles POST /api/v1/schedules/export?format=
func (h *handler) Export(w http.ResponseWriter, r *http.Request) {
	requestID := RequestIDFromContext(r.Context())

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.fail(w, http.StatusBadRequest, err, requestID)
		return
	}

	batch, s, status, err := h.computeSchedule(w, r)
	if err != nil {
		h.fail(w, status, err, requestID)
		return
	}
	h.recordSchedule(s)

	opts := h.export
	opts.Project = batch.Project

	var buf bytes.Buffer
	if err := export.Write(&buf, format, s, opts); err != nil {
		h.fail(w, http.StatusInternalServerError, err, requestID)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordExport(string(format))
	}

	h.logger.Info("schedule exported",
		zap.String("format", string(format)),
		zap.Int("bytes", buf.Len()),
		zap.String("request_id", requestID),
	)

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "bbs."+string(format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Health handles GET /healthz
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) recordSchedule(s *bbs.Schedule) {
	if h.metrics != nil {
		h.metrics.RecordSchedule(s)
	}
}

func (h *handler) fail(w http.ResponseWriter, status int, err error, requestID string) {
	if h.metrics != nil {
		h.metrics.RecordError(err)
	}
	logFn := h.logger.Warn
	if status >= http.StatusInternalServerError {
		logFn = h.logger.Error
	}
	logFn("request failed",
		zap.Int("status", status),
		zap.Error(err),
		zap.String("request_id", requestID),
	)
	writeError(w, status, err.Error(), requestID)
}

// statusFor maps compute and decode errors to HTTP status codes
func statusFor(err error) int {
	var vErr *bbs.ValidationError
	var gErr *bbs.GeometryError
	var eErr *export.ExportError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &vErr), errors.As(err, &gErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &eErr):
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
