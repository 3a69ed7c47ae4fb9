// Package tui provides an interactive, scrollable view of a listing table.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"photo-album-cli/src/presenter"
)

const (
	// Cells wider than this are truncated with "...".
	maxColumnWidth = 80
	defaultHeight  = 20
	// header row and its rule, counted in the table height
	headerHeight = 2
	// title (1) + search (1) + frame (2) + help (1)
	chromeHeight = 5
)

// ListingModel is the Bubble Tea model for one listing.
type ListingModel struct {
	title  string
	rows   []table.Row
	table  table.Model
	styles *StyleConfig

	searchQuery string
	searchMode  bool
}

// NewListingModel builds the model for t, sizing columns like the console table.
func NewListingModel(title string, t presenter.Table, styles *StyleConfig) ListingModel {
	if styles == nil {
		styles = DefaultStyles()
	}

	rows := make([]table.Row, len(t.Rows))
	for i, row := range t.Rows {
		cells := make(table.Row, len(row))
		for j, cell := range row {
			cells[j] = Truncate(cell, maxColumnWidth)
		}
		rows[i] = cells
	}

	widths := presenter.ColumnWidths(t.Headers, t.Rows)
	columns := make([]table.Column, len(t.Headers))
	for i, header := range t.Headers {
		columns[i] = table.Column{Title: header, Width: min(widths[i], maxColumnWidth)}
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(max(len(rows), 1), defaultHeight)+headerHeight),
	)
	tbl.SetStyles(styles.TableStyles())

	return ListingModel{
		title:  title,
		rows:   rows,
		table:  tbl,
		styles: styles,
	}
}

// Init initializes the model. Required by tea.Model interface.
func (m ListingModel) Init() tea.Cmd {
	return nil
}

// Update handles resize, search input and exit keys; everything else scrolls
// the table.
func (m ListingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(min(max(msg.Height-chromeHeight, headerHeight+1), max(len(m.rows), 1)+headerHeight))
		return m, nil

	case tea.KeyMsg:
		if m.searchMode {
			return m.updateSearch(msg), nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.searchQuery != "" {
				m.setQuery("")
				return m, nil
			}
			return m, tea.Quit
		case "/":
			m.searchMode = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ListingModel) updateSearch(msg tea.KeyMsg) ListingModel {
	switch msg.Type {
	case tea.KeyEnter:
		m.searchMode = false
	case tea.KeyEsc, tea.KeyCtrlC:
		m.searchMode = false
		m.setQuery("")
	case tea.KeyBackspace:
		if runes := []rune(m.searchQuery); len(runes) > 0 {
			m.setQuery(string(runes[:len(runes)-1]))
		}
	case tea.KeyRunes, tea.KeySpace:
		m.setQuery(m.searchQuery + string(msg.Runes))
	}
	return m
}

func (m *ListingModel) setQuery(query string) {
	m.searchQuery = query
	m.table.SetRows(filterRows(m.rows, query))
	m.table.GotoTop()
}

// View renders the title, the search line, the framed table and a help line.
func (m ListingModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.TitleStyle().Render(fmt.Sprintf("%s (%d)", m.title, m.Visible())))
	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle().Render(searchLine(m.searchQuery, m.searchMode)))
	b.WriteString("\n")
	b.WriteString(m.styles.FrameStyle().Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle().Render("↑/↓ scroll • / search • q quit"))

	return b.String()
}

// Cursor returns the index of the highlighted row.
func (m ListingModel) Cursor() int {
	return m.table.Cursor()
}

// Visible returns the number of rows left after the search filter.
func (m ListingModel) Visible() int {
	return len(m.table.Rows())
}
