package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gobbs/internal/bbs"
	"github.com/alexiusacademia/gobbs/internal/diagram"
	"github.com/alexiusacademia/gobbs/internal/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	doubleRule = "═══════════════════════════════════════════════════════════════"
	singleRule = "───────────────────────────────────────────────────────────────"
)

// outputOptions are the export and diagram flags shared by the schedule
// commands
type outputOptions struct {
	output     string
	template   string
	diagram    bool
	shapeImage string
}

func addOutputFlags(cmd *cobra.Command, o *outputOptions) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Export the schedule to file (xlsx, csv, pdf, json)")
	cmd.Flags().StringVar(&o.template, "template", "", "Excel template whose header rows are kept (overrides settings)")
	cmd.Flags().BoolVar(&o.diagram, "diagram", false, "Show ASCII bar shape diagram")
	cmd.Flags().StringVar(&o.shapeImage, "shape-image", "", "Export the bar shape to file (png, svg, pdf)")
}

// runSchedule computes the schedule of members, prints it and writes the
// requested exports
func runSchedule(cmd *cobra.Command, title, project string, members []bbs.Input, o outputOptions) error {
	logger.Debug("computing schedule", zap.String("title", title), zap.Int("members", len(members)))

	var (
		s   *bbs.Schedule
		err error
	)
	if len(members) == 1 {
		s, err = bbs.Compute(members[0])
	} else {
		s, err = bbs.ComputeBatch(members)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, title)
	if project != "" {
		fmt.Fprintf(out, "Project: %s\n\n", project)
	}
	if len(members) == 1 {
		printInputs(out, members[0])
	}
	printSchedule(out, s)

	if o.diagram {
		for i, in := range members {
			data, err := diagram.NewShapeData(in, s.Rows[i])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, diagram.DrawASCIIShape(data))
		}
	}

	if o.shapeImage != "" {
		for i, in := range members {
			data, err := diagram.NewShapeData(in, s.Rows[i])
			if err != nil {
				return err
			}
			name := cfg.OutputPath(o.shapeImage)
			if len(members) > 1 {
				name = indexedName(name, i+1)
			}
			exported, err := diagram.ExportShapeDiagram(data, name)
			if err != nil {
				return fmt.Errorf("export shape diagram: %w", err)
			}
			fmt.Fprintf(out, "Shape diagram exported to: %s\n", exported)
		}
	}

	if o.output != "" {
		path := cfg.OutputPath(o.output)
		opts := export.Options{
			Template:   cfg.Export.Template,
			Sheet:      cfg.Export.Sheet,
			HeaderRows: cfg.Export.HeaderRows,
			Project:    project,
		}
		if o.template != "" {
			opts.Template = o.template
		}
		if err := export.WriteFile(path, s, opts); err != nil {
			return err
		}
		logger.Info("schedule exported", zap.String("path", path), zap.Int("rows", s.Len()))
		fmt.Fprintf(out, "Schedule exported to: %s\n", path)
	}

	fmt.Fprintf(out, "Computed %d BBS row(s).\n", s.Len())
	return nil
}

func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintf(out, "     BAR BENDING SCHEDULE - %s\n", title)
	fmt.Fprintln(out, doubleRule)
	fmt.Fprintln(out)
}

func printInputs(out io.Writer, in bbs.Input) {
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, singleRule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	switch v := in.(type) {
	case bbs.TiesInput:
		fmt.Fprintf(w, "  Clear Side a:\t%.0f mm\n", v.ClearA)
		fmt.Fprintf(w, "  Clear Side b:\t%.0f mm\n", v.ClearB)
		fmt.Fprintf(w, "  Member Height:\t%.0f mm\n", v.MemberHeight)
		fmt.Fprintf(w, "  Pitch:\t%.0f mm\n", v.Pitch)
		fmt.Fprintf(w, "  Hook Length:\t%g d\n", v.HookMultiplier)
		fmt.Fprintf(w, "  Bend Deduction:\t%g d per bend\n", v.BendDeductionMultiplier)
		printCommon(w, v.Common)
	case bbs.BeamInput:
		fmt.Fprintf(w, "  Clear Span:\t%.0f mm\n", v.ClearSpan)
		fmt.Fprintf(w, "  Development Length (Ld):\t%.0f mm\n", v.DevelopmentLength)
		fmt.Fprintf(w, "  Main Bars:\t%d nos.\n", v.MainBarCount)
		printCommon(w, v.Common)
	case bbs.ColumnInput:
		fmt.Fprintf(w, "  Clear Height:\t%.0f mm\n", v.ClearHeight)
		fmt.Fprintf(w, "  Lap Length:\t%.0f mm\n", v.LapLength)
		fmt.Fprintf(w, "  Vertical Bars:\t%d nos.\n", v.VerticalBarCount)
		printCommon(w, v.Common)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printCommon(w io.Writer, c bbs.Common) {
	fmt.Fprintf(w, "  Concrete Cover:\t%.0f mm\n", c.Cover)
	fmt.Fprintf(w, "  Bar Diameter:\t%.0f mm\n", c.BarDiameter)
}

func printSchedule(out io.Writer, s *bbs.Schedule) {
	fmt.Fprintln(out, "SCHEDULE:")
	fmt.Fprintln(out, singleRule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  %s\n", strings.Join(bbs.Columns, "\t"))
	for _, rec := range bbs.ExportRows(s) {
		fmt.Fprintf(w, "  %s\n", strings.Join(rec.Strings(), "\t"))
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("SCHEDULE TOTAL", []string{
		fmt.Sprintf("Total length = %.2f m", s.TotalLength()),
		fmt.Sprintf("Total weight = %.2f kg", s.TotalWeight()),
	}))
	fmt.Fprintln(out)
}

// indexedName inserts a 1-based member index before the extension
func indexedName(name string, i int) string {
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), i, ext)
}
