package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/goccy/go-json"
	"github.com/phpdave11/gofpdf"
)

func writeCSV(w io.Writer, records []bbs.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(bbs.Columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Strings()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONRecord is the JSON form of a record, keeping the column order of the
// schedule
type JSONRecord struct {
	Mark        string   `json:"mark"`
	Member      string   `json:"member"`
	BarDiameter float64  `json:"bar_diameter_mm"`
	Count       int      `json:"count"`
	Spacing     *float64 `json:"spacing_mm"`
	CutLength   float64  `json:"cut_length_mm"`
	TotalLength float64  `json:"total_length_m"`
	UnitWeight  float64  `json:"unit_weight_kg_per_m"`
	TotalWeight float64  `json:"total_weight_kg"`
	Shape       string   `json:"shape"`
}

// JSONRecords converts records for JSON encoding
func JSONRecords(records []bbs.Record) []JSONRecord {
	out := make([]JSONRecord, 0, len(records))
	for _, r := range records {
		out = append(out, JSONRecord(r))
	}
	return out
}

type jsonDocument struct {
	Project     string       `json:"project,omitempty"`
	Columns     []string     `json:"columns"`
	Records     []JSONRecord `json:"records"`
	TotalWeight float64      `json:"total_weight_kg"`
}

func writeJSON(w io.Writer, s *bbs.Schedule, records []bbs.Record, opts Options) error {
	doc := jsonDocument{
		Project:     opts.Project,
		Columns:     bbs.Columns,
		Records:     JSONRecords(records),
		TotalWeight: math.Round(s.TotalWeight()*100) / 100,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Column widths (mm) on an A4 landscape page
var pdfWidths = []float64{14, 30, 24, 16, 28, 26, 26, 26, 26, 61}

func writePDF(w io.Writer, s *bbs.Schedule, records []bbs.Record, opts Options) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, opts.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if opts.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", opts.Project))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range bbs.Columns {
		pdf.CellFormat(pdfWidths[i], 8, c, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, rec := range records {
		for i, cell := range rec.Strings() {
			align := "R"
			if i == 0 || i == 1 || i == len(bbs.Columns)-1 {
				align = "L"
			}
			pdf.CellFormat(pdfWidths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total length: %.2f m    Total weight: %.2f kg", s.TotalLength(), s.TotalWeight()))

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
