package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingoflow/internal/ui/theme"
)

// ProgressBar renders a horizontal bar for a 0-100 value such as mastery.
type ProgressBar struct {
	Label       string
	Value       float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, value float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Value:       value,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// Cells returns the filled and empty cell counts for a bar of width cells.
func (p ProgressBar) Cells(width int) (filled, empty int) {
	filled = int(float64(width) * p.Value / 100)
	filled = max(0, min(width, filled))
	return filled, width - filled
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Label.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 8 // "  100.0%"
	}
	barWidth := max(4, p.Width-labelWidth-percentWidth)
	filled, empty := p.Cells(barWidth)

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %.1f%%", p.Value))
	}
	return result
}
