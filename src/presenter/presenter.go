// Package presenter renders retrieval results for the console.
//
// Listings are laid out as a header line, one line per record and the header
// line again. Column widths are recomputed on every call.
package presenter

import (
	"encoding/json"

	"photo-album-cli/src/config"
	"photo-album-cli/src/photos"
)

const (
	NoResultsMessage        = "No results found."
	UnhandledErrorMessage   = "An unexpected error has occurred, please try again."
	jsonEncodeFailedMessage = "Unable to encode results as JSON."
)

// Console is the subset of the console the presenter writes to.
type Console interface {
	WriteLine(text string)
	WriteErrorLine(text string)
	WriteWarningLine(text string)
	WriteInfoLine(text string)
}

// Viewer shows a table interactively.
type Viewer interface {
	Show(title string, t Table) error
}

// Presenter writes listings and status messages to a Console.
type Presenter struct {
	con    Console
	mode   config.OutputMode
	viewer Viewer
}

// New creates a Presenter. viewer is only used in config.OutputInteractive mode
// and may be nil otherwise.
func New(con Console, mode config.OutputMode, viewer Viewer) *Presenter {
	if mode == "" {
		mode = config.OutputTable
	}
	return &Presenter{con: con, mode: mode, viewer: viewer}
}

// ShowAlbumListing prints albums. The caller only calls it with a non-empty slice.
func (p *Presenter) ShowAlbumListing(albums []photos.Album) {
	p.show("Albums", AlbumTable(albums), albums)
}

// ShowImageListing prints images. The caller only calls it with a non-empty slice.
func (p *Presenter) ShowImageListing(images []photos.Image) {
	p.show("Images", ImageTable(images), images)
}

func (p *Presenter) ShowNoResultsFoundMessage() {
	p.con.WriteWarningLine(NoResultsMessage)
}

// ShowUnhandledErrorMessage prints the generic failure line. The underlying
// error is never shown to the user.
func (p *Presenter) ShowUnhandledErrorMessage() {
	p.con.WriteErrorLine(UnhandledErrorMessage)
}

func (p *Presenter) show(title string, t Table, records any) {
	switch p.mode {
	case config.OutputJSON:
		p.writeJSON(records)
		return
	case config.OutputInteractive:
		if p.viewer != nil && p.viewer.Show(title, t) == nil {
			return
		}
	}
	p.writeTable(t)
}

func (p *Presenter) writeTable(t Table) {
	lines := t.Render()
	last := len(lines) - 1
	for i, line := range lines {
		if i == 0 || i == last {
			p.con.WriteWarningLine(line)
		} else {
			p.con.WriteInfoLine(line)
		}
	}
}

func (p *Presenter) writeJSON(records any) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		p.con.WriteErrorLine(jsonEncodeFailedMessage)
		return
	}
	p.con.WriteLine(string(data))
}
