package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tzsync/internal/anchor"
	"github.com/five82/tzsync/internal/catalog"
)

// Input line plus the result slots.
const searchHeight = 1 + catalog.DefaultSearchLimit

func (m *Model) openSearch() {
	m.searching = true
	m.results = nil
	m.resultIdx = 0
	m.search.SetValue("")
	m.search.Focus()
	m.updateList()
}

func (m *Model) closeSearch() {
	m.searching = false
	m.results = nil
	m.resultIdx = 0
	m.search.Blur()
	m.search.SetValue("")
	m.updateList()
}

// handleSearchKey processes keys while the add-location box is open.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeSearch()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.resultIdx < len(m.results) {
			m.addEntry(m.results[m.resultIdx])
		}
		m.closeSearch()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if m.resultIdx > 0 {
			m.resultIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if m.resultIdx < len(m.results)-1 {
			m.resultIdx++
		}
		return m, nil

	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.results = catalog.Search(m.search.Value(), catalog.DefaultSearchLimit)
	if m.resultIdx >= len(m.results) {
		m.resultIdx = 0
	}
	return m, cmd
}

// addEntry appends a new location built from e and selects it.
func (m *Model) addEntry(e catalog.Entry) {
	loc := catalog.NewLocation(e)
	m.apply(func(st anchor.State) anchor.State { return m.sync.Add(st, loc) })
	m.selectRow(len(m.rows) - 1)
	m.status = "Added " + loc.DisplayName()
	m.logger.Info("location added", "id", loc.ID, "zone", loc.TimeZone)
}

// renderSearch renders the input line and up to five matches.
func (m Model) renderSearch() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	lines := make([]string, 0, searchHeight)
	lines = append(lines, bg.FillLine(m.search.View(), m.width))

	for i := 0; i < catalog.DefaultSearchLimit; i++ {
		var line string
		switch {
		case i < len(m.results):
			e := m.results[i]
			label := e.Name + ", " + e.Country
			if e.State != "" {
				label = e.Name + ", " + e.State + ", " + e.Country
			}
			style := styles.Text
			prefix := "  "
			if i == m.resultIdx {
				style = styles.Selected
				prefix = "▸ "
			}
			line = bg.Render(prefix, styles.AccentText) + bg.Render(label, style) +
				bg.Spaces(2) + bg.Render(e.TimeZone, styles.FaintText)
		case i == 0 && strings.TrimSpace(m.search.Value()) != "":
			line = bg.Render("  No matching cities found.", styles.MutedText)
		}
		lines = append(lines, bg.FillLine(line, m.width))
	}
	return strings.Join(lines, "\n")
}
