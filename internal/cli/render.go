package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ColorBorder = lipgloss.Color("#3B4252")
	ColorMuted  = lipgloss.Color("#7B8394")
	ColorText   = lipgloss.Color("#ECEFF4")
	ColorAccent = lipgloss.Color("#88C0D0")
	ColorGood   = lipgloss.Color("#A3BE8C")
	ColorWarn   = lipgloss.Color("#EBCB8B")
	ColorBad    = lipgloss.Color("#BF616A")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	labelStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	ruleStyle   = lipgloss.NewStyle().Foreground(ColorBorder)
	goodStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorGood)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	badStyle    = lipgloss.NewStyle().Foreground(ColorBad)
)

// Good, Warn, Bad and Muted colour a fragment of text.
func Good(s string) string  { return goodStyle.Render(s) }
func Warn(s string) string  { return warnStyle.Render(s) }
func Bad(s string) string   { return badStyle.Render(s) }
func Muted(s string) string { return labelStyle.Render(s) }

// Table is a bordered text table. The first column is left-aligned and the rest
// are right-aligned. A row holding the single cell "---" renders as a separator.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a title inside a rounded box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(max(48, lipgloss.Width(title)+4)).
		Align(lipgloss.Center).
		Padding(0, 1)
	return box.Render(titleStyle.Render(title))
}

// RenderKeyValues renders aligned "label  value" lines.
func RenderKeyValues(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(padRight(p[0], width)))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(p[1]))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderTable renders t with box-drawing borders.
func RenderTable(t Table) string {
	cols := len(t.Headers)
	for _, row := range t.Rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return ""
	}

	// Widths are measured in terminal cells so Hangul lines up.
	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	b.WriteString(rule(widths, "╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(row(t.Headers, widths, headerStyle))
		b.WriteString(rule(widths, "├", "┼", "┤"))
	}
	for _, r := range t.Rows {
		if isSeparator(r) {
			b.WriteString(rule(widths, "├", "┼", "┤"))
			continue
		}
		b.WriteString(row(r, widths, valueStyle))
	}
	b.WriteString(rule(widths, "╰", "┴", "╯"))
	return b.String()
}

// RenderBars draws one horizontal bar per label, scaled to the largest value.
// Highlighted rows are drawn in the good colour.
func RenderBars(labels []string, values []int64, highlight []bool, width int) string {
	var peak int64
	labelWidth := 0
	for i, v := range values {
		peak = max(peak, v)
		labelWidth = max(labelWidth, lipgloss.Width(labels[i]))
	}
	if peak <= 0 {
		peak = 1
	}

	var b strings.Builder
	for i, v := range values {
		n := 0
		if v > 0 {
			n = int(float64(v) / float64(peak) * float64(width))
		}
		bar := strings.Repeat("█", n) + strings.Repeat("░", width-n)
		if i < len(highlight) && highlight[i] {
			bar = goodStyle.Render(bar)
		} else {
			bar = labelStyle.Render(bar)
		}
		b.WriteString("  " + padLeft(labels[i], labelWidth) + " " + bar + "\n")
	}
	return b.String()
}

func isSeparator(r []string) bool {
	return len(r) == 1 && r[0] == "---"
}

func rule(widths []int, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return ruleStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
}

func row(cells []string, widths []int, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(ruleStyle.Render("│"))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == 0 {
			cell = padRight(cell, w)
		} else {
			cell = padLeft(cell, w)
		}
		b.WriteString(style.Render(" " + cell + " "))
		b.WriteString(ruleStyle.Render("│"))
	}
	b.WriteString("\n")
	return b.String()
}

func padRight(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-lipgloss.Width(s)))
}

func padLeft(s string, w int) string {
	return strings.Repeat(" ", max(0, w-lipgloss.Width(s))) + s
}
