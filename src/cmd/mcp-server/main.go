// Package main provides the MCP server entry point for photoalbum.
// It serves the get_albums and get_images tools over stdin/stdout.
package main

import (
	"log"
	"os"

	"photo-album-cli/src/config"
	"photo-album-cli/src/logger"
	"photo-album-cli/src/mcp"
	"photo-album-cli/src/photos"
)

func main() {
	cfg := config.MustLoadFromEnv()

	// stdout carries the protocol, so diagnostics go to stderr
	appLog := logger.New(os.Stderr, cfg.LogLevel)
	client := photos.NewClient(cfg.BaseURL, cfg.HTTPTimeout, appLog)

	server := mcp.NewServer(client, appLog)
	if err := server.Run(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
