// Package app wires the command parser, the photo API and the presenter into a
// single request/response cycle.
package app

import (
	"context"
	"fmt"

	"photo-album-cli/src/command"
	"photo-album-cli/src/logger"
	"photo-album-cli/src/photos"
)

// Retriever fetches records from the photo API.
type Retriever interface {
	RetrieveAlbums(ctx context.Context, filter photos.Filter) ([]photos.Album, error)
	RetrieveImages(ctx context.Context, filter photos.Filter) ([]photos.Image, error)
}

// Presenter shows the outcome of a retrieval.
type Presenter interface {
	ShowAlbumListing(albums []photos.Album)
	ShowImageListing(images []photos.Image)
	ShowNoResultsFoundMessage()
	ShowUnhandledErrorMessage()
}

// App runs one command per invocation.
type App struct {
	con       command.Console
	retriever Retriever
	presenter Presenter
	log       logger.Logger
}

// New creates an App from its collaborators.
func New(con command.Console, retriever Retriever, presenter Presenter, log logger.Logger) *App {
	if log == nil {
		log = logger.NewSilentLogger()
	}
	return &App{
		con:       con,
		retriever: retriever,
		presenter: presenter,
		log:       log,
	}
}

// Run parses args (program path first), performs the retrieval and prints
// exactly one outcome: usage, a validation message, a listing, the empty-result
// message or the generic error message.
func (a *App) Run(ctx context.Context, args []string) {
	cmd := command.Parse(args, a.con)
	if cmd == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			a.log.Error("panic while running %s %s: %v", cmd.Action, cmd.Resource, r)
			a.presenter.ShowUnhandledErrorMessage()
		}
	}()

	if err := a.execute(ctx, cmd); err != nil {
		a.log.Error("%s %s failed: %v", cmd.Action, cmd.Resource, err)
		a.presenter.ShowUnhandledErrorMessage()
	}
}

func (a *App) execute(ctx context.Context, cmd *command.Command) error {
	filter := FilterFor(cmd)

	switch cmd.Resource {
	case command.Albums:
		albums, err := a.retriever.RetrieveAlbums(ctx, filter)
		if err != nil {
			return fmt.Errorf("retrieve albums: %w", err)
		}
		a.log.Debug("retrieved %d albums", len(albums))
		if len(albums) == 0 {
			a.presenter.ShowNoResultsFoundMessage()
			return nil
		}
		a.presenter.ShowAlbumListing(albums)

	case command.Images:
		images, err := a.retriever.RetrieveImages(ctx, filter)
		if err != nil {
			return fmt.Errorf("retrieve images: %w", err)
		}
		a.log.Debug("retrieved %d images", len(images))
		if len(images) == 0 {
			a.presenter.ShowNoResultsFoundMessage()
			return nil
		}
		a.presenter.ShowImageListing(images)

	default:
		return fmt.Errorf("unsupported resource %v", cmd.Resource)
	}

	return nil
}

// FilterFor converts the command flags into a retrieval filter.
func FilterFor(cmd *command.Command) photos.Filter {
	var filter photos.Filter
	if id, ok := cmd.AlbumID(); ok {
		filter.AlbumID = &id
	}
	if text, ok := cmd.SearchText(); ok {
		filter.SearchText = text
	}
	return filter
}
