package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar draws a bracketed bar filled to percent of width. An overflowing
// bar is drawn full in the over style.
func ProgressBar(percent float64, over bool, width int, s Styles) string {
	if width <= 0 {
		return ""
	}

	filled := Cells(ClampPercent(percent), 100, width)
	fill := s.BarFill
	if over {
		filled = width
		fill = s.BarOver
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.BarBracket.Render("["),
		fill.Render(strings.Repeat("=", filled)),
		s.BarEmpty.Render(strings.Repeat("-", width-filled)),
		s.BarBracket.Render("]"),
	)
}

// HBar draws an unbracketed bar of value scaled against max.
func HBar(value, max float64, width int, style lipgloss.Style) string {
	filled := Cells(value, max, width)
	return style.Render(strings.Repeat("█", filled)) + strings.Repeat(" ", width-filled)
}

// Cells scales value against max onto width cells.
func Cells(value, max float64, width int) int {
	if width <= 0 || max <= 0 || value <= 0 {
		return 0
	}
	cells := int(math.Round(float64(width) * value / max))
	if cells > width {
		return width
	}
	return cells
}

func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// InterpolateColor maps value in [min, max] onto the 240..255 greyscale ramp.
func InterpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}

// Grams formats a macro amount with one decimal, dropping a trailing ".0".
func Grams(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
