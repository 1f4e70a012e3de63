package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tzsync/internal/anchor"
	"github.com/five82/tzsync/internal/timemath"
)

// Each location renders as an info line, a timeline and a badge line.
const rowHeight = 3

// cellKind classifies one timeline cell.
type cellKind int

const (
	cellNight cellKind = iota
	cellDay
	cellWork
	cellCursor
)

// timelineCells lays a 24 hour window across width cells with the current
// minute fixed at the centre cell, matching a bar that scrolls under a
// static cursor.
func timelineCells(width, current int, solar timemath.SolarCycle) []cellKind {
	if width <= 0 {
		return nil
	}
	cells := make([]cellKind, width)
	center := width / 2
	for i := range cells {
		offset := float64(i-center) * timemath.MinutesPerDay / float64(width)
		m := timemath.NormalizeMinutes(current + int(math.Round(offset)))
		switch {
		case i == center:
			cells[i] = cellCursor
		case m >= anchor.WorkStartMinutes && m < anchor.WorkEndMinutes:
			cells[i] = cellWork
		case solar.IsDaytime(m):
			cells[i] = cellDay
		default:
			cells[i] = cellNight
		}
	}
	return cells
}

// renderTimeline draws the cells, batching runs of the same kind.
func (m Model) renderTimeline(row anchor.Row, width int) string {
	cells := timelineCells(width, row.Parts.TotalMinutes, row.Solar)
	cursor := m.theme.Accent
	if row.Working {
		cursor = m.theme.Success
	}

	style := func(k cellKind) (lipgloss.Style, string) {
		switch k {
		case cellCursor:
			return lipgloss.NewStyle().Foreground(lipgloss.Color(cursor)).Bold(true), "┃"
		case cellWork:
			return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Work)).Background(lipgloss.Color(m.theme.Daylight)), "▂"
		case cellDay:
			return lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Daylight)), " "
		default:
			return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint)).Background(lipgloss.Color(m.theme.Night)), "·"
		}
	}

	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && cells[j] == cells[i] {
			j++
		}
		st, glyph := style(cells[i])
		b.WriteString(st.Render(strings.Repeat(glyph, j-i)))
		i = j
	}
	return b.String()
}

// renderRows renders every location for the list viewport.
func (m Model) renderRows() string {
	if len(m.rows) == 0 {
		styles := m.theme.Styles()
		return styles.MutedText.Render("  No locations yet. Press / to add one.")
	}
	lines := make([]string, 0, len(m.rows)*rowHeight)
	for i, row := range m.rows {
		lines = append(lines, m.renderRow(row, i == m.selected)...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(row anchor.Row, selected bool) []string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Background)
	width := m.width
	if width <= 0 {
		width = 80
	}

	marker := "  "
	nameStyle := styles.Text.Bold(true)
	if selected {
		marker = "▸ "
		nameStyle = styles.AccentText.Bold(true)
	}

	left := []string{
		bg.Render(marker, styles.AccentText) + bg.Render(truncate(row.Location.DisplayName(), 28), nameStyle),
	}
	if row.IsHome {
		left = append(left, styles.BadgeStyle("home").Render("HOME"))
	}
	if row.OffsetLabel != "" {
		left = append(left, bg.Render(row.OffsetLabel, styles.MutedText))
	}
	if row.DiffLabel != "" {
		left = append(left, bg.Render(row.DiffLabel, styles.InfoText))
	}

	timeStyle := styles.Text.Bold(true)
	if !row.Parts.Valid {
		timeStyle = styles.DangerText
	}
	right := bg.Render(row.DateLabel, styles.MutedText) + bg.Spaces(2) + bg.Render(padLeft(row.TimeLabel, 8), timeStyle)

	info := strings.Join(left, bg.Spaces(2))
	gap := width - lipgloss.Width(info) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	info = info + bg.Spaces(gap) + right

	barWidth := width - 4
	if barWidth < 8 {
		barWidth = 8
	}
	timeline := bg.Spaces(2) + m.renderTimeline(row, barWidth)

	return []string{
		bg.FillLine(info, width),
		bg.FillLine(timeline, width),
		bg.FillLine(m.renderBadges(row, styles, bg), width),
	}
}

func (m Model) renderBadges(row anchor.Row, styles Styles, bg BgStyle) string {
	var badges []string
	if row.Working {
		badges = append(badges, styles.BadgeStyle("work").Render("Working Hours"))
	}
	if row.Daytime {
		badges = append(badges, styles.BadgeStyle("day").Render("☀ Day"))
	} else {
		badges = append(badges, styles.BadgeStyle("night").Render("☾ Night"))
	}
	sun := fmt.Sprintf("↑%s ↓%s",
		timemath.FormatClock(int(row.Solar.SunriseMinutes), m.format),
		timemath.FormatClock(int(math.Min(row.Solar.SunsetMinutes, timemath.MinutesPerDay-1)), m.format))
	badges = append(badges, bg.Render(sun, styles.FaintText))
	return bg.Spaces(2) + strings.Join(badges, bg.Space())
}

// updateList refreshes the viewport content and keeps the selection visible.
func (m *Model) updateList() {
	if !m.ready {
		return
	}
	m.list.Width = m.width
	m.list.Height = m.listHeight()
	m.list.SetContent(m.renderRows())

	top := m.selected * rowHeight
	switch {
	case top < m.list.YOffset:
		m.list.SetYOffset(top)
	case top+rowHeight > m.list.YOffset+m.list.Height:
		m.list.SetYOffset(top + rowHeight - m.list.Height)
	}
}

func (m Model) listHeight() int {
	h := m.height - headerLines - 1
	if m.searching {
		h -= searchHeight
	}
	if h < rowHeight {
		h = rowHeight
	}
	return h
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	if m.searching {
		b.WriteString(m.renderSearch())
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}
