// Package mcp exposes album and image retrieval as Model Context Protocol tools.
package mcp

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"photo-album-cli/src/app"
	"photo-album-cli/src/logger"
	"photo-album-cli/src/photos"
	"photo-album-cli/src/presenter"
)

const (
	serverName    = "photoalbum"
	serverVersion = "1.0.0"

	argAlbumID    = "album_id"
	argSearchText = "search_text"
)

// Server is the MCP server for the photo-album API.
type Server struct {
	mcpServer *server.MCPServer
	retriever app.Retriever
	log       logger.Logger
}

// NewServer creates a server whose tools query retriever.
func NewServer(retriever app.Retriever, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewSilentLogger()
	}

	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	srv := &Server{
		mcpServer: s,
		retriever: retriever,
		log:       log,
	}
	srv.registerTools()

	return srv
}

// registerTools registers get_albums and get_images.
func (s *Server) registerTools() {
	albumsTool := mcp.NewTool("get_albums",
		mcp.WithDescription("List photo albums as a text table (Id | Title). Optionally restrict to one album id or to titles containing the search text (case-insensitive)."),
		mcp.WithNumber(argAlbumID,
			mcp.Description("Only return the album with this id"),
		),
		mcp.WithString(argSearchText,
			mcp.Description("Only return albums whose title contains this text"),
		),
	)

	imagesTool := mcp.NewTool("get_images",
		mcp.WithDescription("List images as a text table (Album Id | Id | Title | Image Url). Optionally restrict to one album or to titles containing the search text (case-insensitive)."),
		mcp.WithNumber(argAlbumID,
			mcp.Description("Only return images that belong to this album"),
		),
		mcp.WithString(argSearchText,
			mcp.Description("Only return images whose title contains this text"),
		),
	)

	s.mcpServer.AddTool(albumsTool, s.handleGetAlbums)
	s.mcpServer.AddTool(imagesTool, s.handleGetImages)
}

// Run serves the tools over stdio until stdin closes.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) handleGetAlbums(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := filterFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	albums, err := s.retriever.RetrieveAlbums(ctx, filter)
	if err != nil {
		s.log.Error("get_albums failed: %v", err)
		return mcp.NewToolResultError(presenter.UnhandledErrorMessage), nil
	}
	if len(albums) == 0 {
		return mcp.NewToolResultText(presenter.NoResultsMessage), nil
	}

	return mcp.NewToolResultText(renderText(presenter.AlbumTable(albums))), nil
}

func (s *Server) handleGetImages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter, err := filterFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	images, err := s.retriever.RetrieveImages(ctx, filter)
	if err != nil {
		s.log.Error("get_images failed: %v", err)
		return mcp.NewToolResultError(presenter.UnhandledErrorMessage), nil
	}
	if len(images) == 0 {
		return mcp.NewToolResultText(presenter.NoResultsMessage), nil
	}

	return mcp.NewToolResultText(renderText(presenter.ImageTable(images))), nil
}

// filterFromRequest reads the optional tool arguments. album_id must be a
// non-negative whole number, the same rule the CLI applies to --albumId.
func filterFromRequest(request mcp.CallToolRequest) (photos.Filter, error) {
	var filter photos.Filter
	args := request.GetArguments()

	if raw, ok := args[argAlbumID]; ok && raw != nil {
		var n float64
		switch v := raw.(type) {
		case float64:
			n = v
		case int:
			n = float64(v)
		default:
			n = -1
		}
		if n < 0 || n != math.Trunc(n) || n > math.MaxInt32 {
			return photos.Filter{}, fmt.Errorf("%s must be a non-negative integer", argAlbumID)
		}
		id := int(n)
		filter.AlbumID = &id
	}

	filter.SearchText = request.GetString(argSearchText, "")
	return filter, nil
}

func renderText(t presenter.Table) string {
	return strings.Join(t.Render(), "\n")
}
