package progress

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studylit/internal/timer"
)

const barWidth = 30

// Palette colours the rendered summary.
type Palette struct {
	Header lipgloss.Style
	Filled lipgloss.Style
	Empty  lipgloss.Style
	Muted  lipgloss.Style
}

// DefaultPalette suits both light and dark terminals.
func DefaultPalette() Palette {
	return Palette{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Filled: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Render formats a progress summary for the terminal.
func Render(sum Summary, p Palette) string {
	var b strings.Builder

	b.WriteString(p.Header.Render("Today"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %3.0f%%  %s / %s\n",
		p.bar(sum.Goal, barWidth),
		sum.Goal*100,
		timer.FormatDuration(sum.TodaySeconds),
		timer.FormatDuration(sum.GoalSeconds),
	)

	b.WriteString("\n")
	b.WriteString(p.Header.Render("Last 7 days"))
	b.WriteString("\n")
	peak := 0.0
	for _, d := range sum.Week {
		if d.Hours > peak {
			peak = d.Hours
		}
	}
	for _, d := range sum.Week {
		fraction := 0.0
		if peak > 0 {
			fraction = d.Hours / peak
		}
		fmt.Fprintf(&b, "  %s %s %4.1fh\n", d.Label, p.bar(fraction, barWidth), d.Hours)
	}

	b.WriteString("\n")
	b.WriteString(p.Header.Render("By subject"))
	b.WriteString("\n")
	if len(sum.Breakdown) == 0 {
		b.WriteString(p.Muted.Render("  No study time recorded yet."))
		b.WriteString("\n")
	}
	for _, s := range sum.Breakdown {
		fmt.Fprintf(&b, "  %-24s %s %3.0f%%  %s\n", s.Title, p.bar(s.Share, barWidth/2), s.Share*100, timer.FormatDuration(s.Seconds))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (p Palette) bar(fraction float64, width int) string {
	filled, empty := Bar(fraction, width)
	return p.Filled.Render(filled) + p.Empty.Render(empty)
}
