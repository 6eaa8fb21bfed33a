package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/docksim/internal/rendezvous"
)

var (
	Panel         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444466")).Padding(1, 2)
	Subtle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	StatusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	StatusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	StatusFault   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))

	// Mode badges.
	ModeDirect = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0a0a0a")).Background(lipgloss.Color("#00ccff")).Padding(0, 1)
	ModeGated  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0a0a0a")).Background(lipgloss.Color("#ff00ff")).Padding(0, 1)

	Warning     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
	MetricValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)
	MetricLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899")).Width(14)
	KeyHint     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("#444466"))
	GraphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	TableCell   = lipgloss.NewStyle().Padding(0, 1)
	TableHeader = TableCell.Bold(true).Foreground(lipgloss.Color("#00ffff"))
)

// ModeBadge renders the controller mode as a coloured tag.
func ModeBadge(m rendezvous.Mode) string {
	label := strings.ToUpper(m.String())
	if m == rendezvous.ModeGated {
		return ModeGated.Render(label)
	}
	return ModeDirect.Render(label)
}

// Metric renders one "label value" row.
func Metric(label, value string) string {
	return MetricLabel.Render(label) + MetricValue.Render(value)
}

// WarningCount highlights a non-zero safety warning count.
func WarningCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if n > 0 {
		return Warning.Render(s)
	}
	return MetricValue.Render(s)
}

// Table renders rows under a header with padded, left aligned columns.
func Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(style lipgloss.Style, cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = style.Width(widths[i] + 2).Render(cell)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	var b strings.Builder
	b.WriteString(line(TableHeader, header))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(line(TableCell, row))
		b.WriteByte('\n')
	}
	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// ProgressBar renders a filled bar for percent in [0, 1].
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
