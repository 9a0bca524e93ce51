package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gobbs/internal/bbs"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	barColor  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	lapColor  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	markColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportShapeDiagram exports the bar shape to an image file.
// The format follows the extension (png, svg, pdf); anything else gets
// a .png suffix.
func ExportShapeDiagram(data ShapeDiagramData, filename string) (string, error) {
	p := plot.New()
	p.X.Label.Text = "mm"
	p.Y.Label.Text = "mm"

	var err error
	switch data.Member {
	case bbs.Ties:
		p.Title.Text = fmt.Sprintf("Stirrup %s: cut length %.0f mm", data.Mark, data.CutLength)
		err = plotStirrup(p, data)
	case bbs.Beam, bbs.Column:
		p.Title.Text = fmt.Sprintf("Bar %s: cut length %.0f mm", data.Mark, data.CutLength)
		err = plotStraight(p, data)
	default:
		err = fmt.Errorf("no shape for member %v", data.Member)
	}
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}

	// Create directory if needed
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, filename); err != nil {
		return "", err
	}
	return filename, nil
}

func plotStirrup(p *plot.Plot, data ShapeDiagramData) error {
	a, b := data.SideA, data.SideB
	outline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: b, Y: 0},
		{X: b, Y: a},
		{X: 0, Y: a},
		{X: 0, Y: 0},
	})
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(3)
	outline.LineStyle.Color = barColor
	p.Add(outline)

	// Two 135° hooks bent into the core from the top-left corner
	h := data.HookLength / math.Sqrt2
	for _, start := range []plotter.XY{{X: 0, Y: a}, {X: data.BarDiameter, Y: a}} {
		hook, err := plotter.NewLine(plotter.XYs{start, {X: start.X + h, Y: start.Y - h}})
		if err != nil {
			return err
		}
		hook.LineStyle.Width = vg.Points(3)
		hook.LineStyle.Color = barColor
		p.Add(hook)
	}

	return addLabels(p, []label{
		{b / 2, -0.08 * a, fmt.Sprintf("b=%.0fmm", b)},
		{b + 0.04*b, a / 2, fmt.Sprintf("a=%.0fmm", a)},
		{h + 0.05*b, a - h, fmt.Sprintf("hook=%.0fmm", data.HookLength)},
	})
}

func plotStraight(p *plot.Plot, data ShapeDiagramData) error {
	x0 := 0.0
	x1 := data.EndA
	x2 := x1 + data.Body
	x3 := x2 + data.EndB

	body, err := plotter.NewLine(plotter.XYs{{X: x0, Y: 0}, {X: x2, Y: 0}})
	if err != nil {
		return err
	}
	body.LineStyle.Width = vg.Points(3)
	body.LineStyle.Color = barColor
	p.Add(body)

	end, err := plotter.NewLine(plotter.XYs{{X: x2, Y: 0}, {X: x3, Y: 0}})
	if err != nil {
		return err
	}
	end.LineStyle.Width = vg.Points(3)
	end.LineStyle.Color = barColor
	if data.Member == bbs.Column {
		end.LineStyle.Color = lapColor
		end.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	}
	p.Add(end)

	// Support faces / floor levels
	marks, err := plotter.NewScatter(plotter.XYs{{X: x1, Y: 0}, {X: x2, Y: 0}})
	if err != nil {
		return err
	}
	marks.GlyphStyle.Color = markColor
	marks.GlyphStyle.Radius = vg.Points(5)
	marks.GlyphStyle.Shape = draw.PlusGlyph{}
	p.Add(marks)

	p.Y.Min = -1
	p.Y.Max = 1

	endLabel := "Ld"
	if data.Member == bbs.Column {
		endLabel = "lap"
	}
	return addLabels(p, []label{
		{x1 / 2, 0.2, fmt.Sprintf("%.0f", data.EndA)},
		{(x1 + x2) / 2, 0.2, fmt.Sprintf("%.0f", data.Body)},
		{(x2 + x3) / 2, 0.2, fmt.Sprintf("%.0f %s", data.EndB, endLabel)},
	})
}

type label struct {
	x, y float64
	text string
}

func addLabels(p *plot.Plot, labels []label) error {
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}
	return nil
}
