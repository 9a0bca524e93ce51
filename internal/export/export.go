package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gobbs/internal/bbs"
)

// Format is a tabular sink
type Format string

const (
	XLSX Format = "xlsx"
	CSV  Format = "csv"
	PDF  Format = "pdf"
	JSON Format = "json"
)

// Defaults for template-based workbook export
const (
	DefaultSheet      = "BBS"
	DefaultHeaderRows = 5
)

// ErrEmptySchedule is returned when there is nothing to export
var ErrEmptySchedule = errors.New("nothing to export, compute a schedule first")

// Options control how records are written
type Options struct {
	// Template is an xlsx workbook whose header region is kept. Empty means
	// a plain workbook with a single header row.
	Template string

	// Sheet is the template sheet receiving the records
	Sheet string

	// HeaderRows is the number of template rows kept above the records
	HeaderRows int

	// Project and Title appear in the PDF heading
	Project string
	Title   string
}

func (o Options) withDefaults() Options {
	if o.Sheet == "" {
		o.Sheet = DefaultSheet
	}
	if o.HeaderRows <= 0 {
		o.HeaderRows = DefaultHeaderRows
	}
	if o.Title == "" {
		o.Title = "Bar Bending Schedule"
	}
	return o
}

// ExportError reports a sink that could not accept the records
type ExportError struct {
	Op   string
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("export %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// FormatFromPath picks the sink from a file extension
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// ParseFormat parses a format name such as "xlsx"
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case XLSX:
		return XLSX, nil
	case CSV:
		return CSV, nil
	case PDF:
		return PDF, nil
	case JSON:
		return JSON, nil
	}
	return "", &ExportError{Op: "format", Err: fmt.Errorf("unsupported export format %q (use xlsx, csv, pdf or json)", s)}
}

// ContentType returns the media type of a format
func (f Format) ContentType() string {
	switch f {
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case CSV:
		return "text/csv"
	case PDF:
		return "application/pdf"
	case JSON:
		return "application/json"
	}
	return "application/octet-stream"
}

// Write exports the schedule records to w
func Write(w io.Writer, format Format, s *bbs.Schedule, opts Options) error {
	if s.Len() == 0 {
		return &ExportError{Op: string(format), Err: ErrEmptySchedule}
	}

	opts = opts.withDefaults()
	records := bbs.ExportRows(s)

	var err error
	switch format {
	case XLSX:
		err = writeXLSX(w, records, opts)
	case CSV:
		err = writeCSV(w, records)
	case PDF:
		err = writePDF(w, s, records, opts)
	case JSON:
		err = writeJSON(w, s, records, opts)
	default:
		_, err = ParseFormat(string(format))
		return err
	}

	if err != nil {
		var exportErr *ExportError
		if errors.As(err, &exportErr) {
			return err
		}
		return &ExportError{Op: string(format), Err: err}
	}
	return nil
}

// WriteFile exports the schedule to path, picking the format from the
// extension. Missing parent directories are created.
func WriteFile(path string, s *bbs.Schedule, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if s.Len() == 0 {
		return &ExportError{Op: string(format), Path: path, Err: ErrEmptySchedule}
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &ExportError{Op: string(format), Path: path, Err: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Op: string(format), Path: path, Err: err}
	}

	werr := Write(f, format, s, opts)
	cerr := f.Close()
	if werr != nil {
		os.Remove(path)
		var exportErr *ExportError
		if errors.As(werr, &exportErr) && exportErr.Path == "" {
			exportErr.Path = path
		}
		return werr
	}
	if cerr != nil {
		return &ExportError{Op: string(format), Path: path, Err: cerr}
	}
	return nil
}
