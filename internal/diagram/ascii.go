package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gobbs/internal/bbs"
)

// DrawASCIIShape creates an ASCII sketch of the bar shape with its
// dimensions and cutting length
func DrawASCIIShape(data ShapeDiagramData) string {
	switch data.Member {
	case bbs.Ties:
		return drawASCIIStirrup(data)
	case bbs.Beam, bbs.Column:
		return drawASCIIStraight(data)
	}
	return ""
}

func drawASCIIStirrup(data ShapeDiagramData) string {
	var sb strings.Builder

	// Scale the long side to a fixed width and keep the aspect roughly
	widthChars := 30
	heightChars := 8
	if data.SideB > 0 {
		heightChars = int(float64(widthChars) * data.SideA / data.SideB / 2)
	}
	heightChars = clamp(heightChars, 3, 12)

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  STIRRUP SHAPE (%s)\n", data.Mark))
	sb.WriteString("  ─────────────────\n\n")

	// 135° hooks at the top-left corner
	sb.WriteString("    ╲╲\n")
	sb.WriteString(fmt.Sprintf("  ┌──╲╲%s┐\n", strings.Repeat("─", widthChars-4)))
	for i := 1; i < heightChars; i++ {
		line := fmt.Sprintf("  │%s│", strings.Repeat(" ", widthChars))
		if i == heightChars/2 {
			line += fmt.Sprintf("  a = %.0f mm", data.SideA)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	sb.WriteString(fmt.Sprintf("  %s\n", center(fmt.Sprintf("b = %.0f mm", data.SideB), widthChars+2)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Hooks: 2 × %.0f mm\n", data.HookLength))
	sb.WriteString(fmt.Sprintf("  Cut length = %.0f mm, %d nos. φ%.0f\n", data.CutLength, data.Count, data.BarDiameter))

	return sb.String()
}

func drawASCIIStraight(data ShapeDiagramData) string {
	var sb strings.Builder

	title := "MAIN BAR (%s)"
	endLabel := "cover + Ld"
	if data.Member == bbs.Column {
		title = "VERTICAL BAR (%s)"
		endLabel = "lap"
	}

	total := data.Body + data.EndA + data.EndB
	widthChars := 44
	endA, endB := 6, 6
	if total > 0 {
		endA = clamp(int(float64(widthChars)*data.EndA/total), 2, 14)
		endB = clamp(int(float64(widthChars)*data.EndB/total), 2, 14)
	}
	body := widthChars - endA - endB

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  "+title+"\n", data.Mark))
	sb.WriteString("  ──────────────\n\n")
	sb.WriteString(fmt.Sprintf("  ├%s┼%s┼%s┤\n", strings.Repeat("═", endA), strings.Repeat("═", body), strings.Repeat("═", endB)))

	if data.Member == bbs.Column {
		sb.WriteString(fmt.Sprintf("  %s%s%s\n",
			center(fmt.Sprintf("%.0f", data.EndA), endA+1),
			center(fmt.Sprintf("%.0f clear", data.Body), body+1),
			center(fmt.Sprintf("%.0f", data.EndB), endB+2)))
		sb.WriteString(fmt.Sprintf("  %s%s\n", center("2 × cover", endA+body+2), center(endLabel, endB+2)))
	} else {
		sb.WriteString(fmt.Sprintf("  %s%s%s\n",
			center(fmt.Sprintf("%.0f", data.EndA), endA+1),
			center(fmt.Sprintf("%.0f span", data.Body), body+1),
			center(fmt.Sprintf("%.0f", data.EndB), endB+2)))
		sb.WriteString(fmt.Sprintf("  %s%s%s\n", center(endLabel, endA+1), strings.Repeat(" ", body+1), center(endLabel, endB+2)))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Cut length = %.0f mm, %d nos. φ%.0f\n", data.CutLength, data.Count, data.BarDiameter))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s + " "
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
