// Package chart renders a delta-v breakdown as a terminal bar chart.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"deltav.dev/deltav/internal/engine"
)

const (
	// Title is printed above the chart
	Title = "Delta-V Distribution per Stage"
	// YLabel names the value axis
	YLabel = "Delta-V (m/s)"
	// XLabel names the category axis
	XLabel = "Stage"
	// TotalLabel names the final bar
	TotalLabel = "Total"
)

// Palette is the bar color cycle
var Palette = [][]int{
	{76, 203, 241},  // Light blue
	{77, 202, 125},  // Green
	{110, 173, 38},  // Dark green
	{245, 200, 0},   // Yellow
	{248, 144, 72},  // Orange
	{244, 98, 81},   // Red
	{235, 130, 188}, // Pink
	{159, 131, 228}, // Purple
}

// Bar is one column of the chart
type Bar struct {
	Label string
	Value float64
	Total bool
}

// Data is the content of a chart
type Data struct {
	Bars []Bar
}

// Options controls chart geometry
type Options struct {
	Height   int // rows available to the tallest bar
	BarWidth int // minimum column width
}

// DefaultOptions returns the geometry used when none is configured
func DefaultOptions() Options {
	return Options{Height: 12, BarWidth: 9}
}

// FromResult builds one bar per stage plus a final total bar
func FromResult(result engine.Result) Data {
	bars := make([]Bar, 0, result.Len()+1)
	var sum float64
	for i, dv := range result.StageDeltaV {
		bars = append(bars, Bar{Label: fmt.Sprintf("Stage %d", i+1), Value: dv})
		sum += dv
	}
	bars = append(bars, Bar{Label: TotalLabel, Value: sum, Total: true})
	return Data{Bars: bars}
}

// FormatValue formats a bar value the way it is labelled on the chart
func FormatValue(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// Max returns the largest bar value, or 0 for an empty chart
func (d Data) Max() float64 {
	var m float64
	for _, b := range d.Bars {
		if b.Value > m {
			m = b.Value
		}
	}
	return m
}

// heights scales each bar to whole rows. Positive values always get at least one row.
func (d Data) heights(rows int) []int {
	maxValue := d.Max()
	out := make([]int, len(d.Bars))
	if maxValue <= 0 {
		return out
	}
	for i, b := range d.Bars {
		if b.Value <= 0 {
			continue
		}
		h := int(b.Value/maxValue*float64(rows) + 0.5)
		if h < 1 {
			h = 1
		}
		out[i] = h
	}
	return out
}

// Render draws the chart. Bars are vertical, labelled with their value on top.
func Render(data Data, opts Options) string {
	if opts.Height < 1 {
		opts.Height = DefaultOptions().Height
	}
	if opts.BarWidth < 1 {
		opts.BarWidth = DefaultOptions().BarWidth
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(Title))
	b.WriteString("\n")

	if len(data.Bars) == 0 {
		b.WriteString(dimStyle.Render("(no data)"))
		b.WriteString("\n")
		return b.String()
	}

	colWidth := opts.BarWidth
	values := make([]string, len(data.Bars))
	for i, bar := range data.Bars {
		values[i] = FormatValue(bar.Value)
		colWidth = max(colWidth, lipgloss.Width(values[i])+1)
		colWidth = max(colWidth, lipgloss.Width(bar.Label)+1)
	}
	fill := max(colWidth-2, 1)

	topTick := FormatValue(data.Max())
	axisWidth := max(lipgloss.Width(topTick), lipgloss.Width("0"))
	heights := data.heights(opts.Height)

	b.WriteString(dimStyle.Render(YLabel))
	b.WriteString("\n")

	// One extra row above the tallest bar holds its value label.
	for row := opts.Height + 1; row >= 1; row-- {
		tick := ""
		if row == opts.Height {
			tick = topTick
		}
		b.WriteString(padLeft(tick, axisWidth))
		b.WriteString(" │")

		for i, bar := range data.Bars {
			var cell string
			switch {
			case row <= heights[i]:
				cell = barStyle(i, bar).Render(strings.Repeat("█", fill))
				cell = center(cell, fill, colWidth)
			case row == heights[i]+1:
				cell = center(values[i], lipgloss.Width(values[i]), colWidth)
			default:
				cell = strings.Repeat(" ", colWidth)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString(padLeft("0", axisWidth))
	b.WriteString(" └")
	b.WriteString(strings.Repeat("─", colWidth*len(data.Bars)))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", axisWidth+2))
	for _, bar := range data.Bars {
		b.WriteString(center(bar.Label, lipgloss.Width(bar.Label), colWidth))
	}
	b.WriteString("\n")

	plotWidth := colWidth * len(data.Bars)
	b.WriteString(strings.Repeat(" ", axisWidth+2))
	b.WriteString(center(dimStyle.Render(XLabel), len(XLabel), plotWidth))
	b.WriteString("\n")

	return b.String()
}

func barStyle(idx int, bar Bar) lipgloss.Style {
	color := Palette[idx%len(Palette)]
	if bar.Total {
		color = []int{80, 132, 243}
	}
	hex := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color[0], color[1], color[2]))
	return lipgloss.NewStyle().Foreground(hex)
}

// center pads s (whose visible width is w) to width cells
func center(s string, w, width int) string {
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func padLeft(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
