package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
)

// filterRows keeps the rows with at least one cell containing query,
// ignoring case. An empty query keeps every row.
func filterRows(rows []table.Row, query string) []table.Row {
	if query == "" {
		return rows
	}

	query = strings.ToLower(query)
	var filtered []table.Row
	for _, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), query) {
				filtered = append(filtered, row)
				break
			}
		}
	}
	return filtered
}

// searchLine renders the search prompt shown under the title.
func searchLine(query string, active bool) string {
	switch {
	case active:
		return "Search: " + query + "█"
	case query != "":
		return "Search: " + query
	default:
		return "[/] to search"
	}
}
