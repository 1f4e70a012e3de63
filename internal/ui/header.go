package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tzsync/internal/timemath"
)

// Header and command bar lines above the list.
const headerLines = 2

// renderHeader renders the status bar: logo, home summary and the real clock.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("tzsync", styles.Logo)}

	if len(m.rows) == 0 {
		parts = append(parts, bg.Render("No locations", styles.WarningText))
	} else {
		home := m.rows[0]
		parts = append(parts,
			bg.Render("Home:", styles.MutedText)+bg.Space()+
				bg.Render(home.Location.Name, styles.Text.Bold(true)),
			bg.Render(home.DateLabel, styles.MutedText),
			bg.Render(home.TimeLabel, styles.AccentText.Bold(true)),
		)
		if m.width >= 100 {
			parts = append(parts,
				bg.Render("UTC", styles.FaintText)+bg.Space()+
					bg.Render(m.snapshot.State.Instant.UTC().Format("2006-01-02 15:04"), styles.MutedText))
		}
	}

	left := bg.Join(parts, "  ")
	now := m.now.Local()
	clock := bg.Render("now", styles.FaintText) + bg.Space() +
		bg.Render(timemath.FormatClock(now.Hour()*60+now.Minute(), m.format), styles.Text)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(clock) - 2
	if gap < 2 {
		return styles.Header.Width(m.width).Render(left)
	}
	return styles.Header.Width(m.width).Render(left + bg.Spaces(gap) + clock)
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	commands := []cmd{
		{"j/k", "Select"},
		{"J/K", "Move"},
		{"H", "Home"},
		{"h/l", "∓30m"},
		{"+/-", "Home ±30m"},
		{"/", "Add"},
		{"x", "Remove"},
		{"n", "Now"},
		{"f", m.formatLabel()},
		{"?", "More"},
	}
	if m.width < 100 {
		commands = []cmd{{"j/k", "Select"}, {"h/l", "∓30m"}, {"/", "Add"}, {"?", "More"}}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderFooter shows transient status messages.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	text := m.status
	if text == "" {
		text = plural(len(m.rows), "location", "locations")
		return styles.Footer.Width(m.width).Render(bg.Render(text, styles.FaintText))
	}
	return styles.Footer.Width(m.width).Render(bg.Render(truncate(text, m.width-2), styles.WarningText))
}

func (m Model) formatLabel() string {
	if m.format == timemath.Format24Hour {
		return "24h"
	}
	return "12h"
}
