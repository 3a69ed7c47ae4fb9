package presenter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"photo-album-cli/src/photos"
)

// FieldSeparator joins the padded fields of a listing line.
const FieldSeparator = " | "

var (
	albumHeaders = []string{"Id", "Title"}
	imageHeaders = []string{"Album Id", "Id", "Title", "Image Url"}
)

// Table is a header plus same-arity detail rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AlbumTable maps albums to (id, title) rows.
func AlbumTable(albums []photos.Album) Table {
	rows := make([][]string, 0, len(albums))
	for _, album := range albums {
		rows = append(rows, []string{
			strconv.Itoa(album.ID),
			album.Title,
		})
	}
	return Table{Headers: albumHeaders, Rows: rows}
}

// ImageTable maps images to (album id, id, title, url) rows.
func ImageTable(images []photos.Image) Table {
	rows := make([][]string, 0, len(images))
	for _, image := range images {
		rows = append(rows, []string{
			strconv.Itoa(image.AlbumID),
			strconv.Itoa(image.ID),
			image.Title,
			image.URL,
		})
	}
	return Table{Headers: imageHeaders, Rows: rows}
}

// VisualWidth returns the display width of text, accounting for multi-byte characters
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads s with spaces up to width display cells.
func PadRight(s string, width int) string {
	if w := VisualWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// ColumnWidths returns, per column, the widest of the header and every row field.
func ColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = VisualWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := VisualWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// RenderTable lays out a listing: the header line, one line per row in input
// order, then the header line again.
func RenderTable(headers []string, rows [][]string) []string {
	widths := ColumnWidths(headers, rows)
	header := joinPadded(headers, widths)

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, header)
	for _, row := range rows {
		lines = append(lines, joinPadded(row, widths))
	}
	return append(lines, header)
}

// Render is RenderTable for t.
func (t Table) Render() []string {
	return RenderTable(t.Headers, t.Rows)
}

func joinPadded(fields []string, widths []int) string {
	padded := make([]string, len(fields))
	for i, field := range fields {
		if i < len(widths) {
			field = PadRight(field, widths[i])
		}
		padded[i] = field
	}
	return strings.Join(padded, FieldSeparator)
}
