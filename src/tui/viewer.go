package tui

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"photo-album-cli/src/presenter"
)

// ErrNotTerminal is returned when the viewer cannot take over the screen.
var ErrNotTerminal = errors.New("interactive output requires a terminal")

// Viewer runs a ListingModel full screen until the user quits.
type Viewer struct {
	in     io.Reader
	out    io.Writer
	styles *StyleConfig
}

// NewViewer creates a viewer on the given streams.
func NewViewer(in io.Reader, out io.Writer) *Viewer {
	return &Viewer{in: in, out: out, styles: DefaultStyles()}
}

// Show blocks until the listing is dismissed. It fails fast with ErrNotTerminal
// when out is not a terminal so callers can print the plain table instead.
func (v *Viewer) Show(title string, t presenter.Table) error {
	if !isTerminal(v.out) {
		return ErrNotTerminal
	}

	program := tea.NewProgram(
		NewListingModel(title, t, v.styles),
		tea.WithInput(v.in),
		tea.WithOutput(v.out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
