// Package photos provides a client for the jsonplaceholder photo-album API.
package photos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"photo-album-cli/src/logger"
)

const (
	// DefaultBaseURL is the public photo-album API.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	albumsPath = "/albums"
	imagesPath = "/photos"
)

// Client is a photo-album API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        logger.Logger
}

// NewClient creates a new client. An empty baseURL selects DefaultBaseURL and a
// zero timeout leaves the http.Client default in place.
func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = logger.NewSilentLogger()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// RetrieveAlbums fetches albums, optionally restricted to a single album id,
// and keeps those whose title contains filter.SearchText (case-insensitive).
func (c *Client) RetrieveAlbums(ctx context.Context, filter Filter) ([]Album, error) {
	query := url.Values{}
	if filter.AlbumID != nil {
		query.Set("id", strconv.Itoa(*filter.AlbumID))
	}

	var albums []Album
	if err := c.getJSON(ctx, "albums", albumsPath, query, &albums); err != nil {
		return nil, err
	}

	matched := make([]Album, 0, len(albums))
	for _, album := range albums {
		if titleMatches(album.Title, filter.SearchText) {
			matched = append(matched, album)
		}
	}

	return matched, nil
}

// RetrieveImages fetches images, optionally restricted to one album, and keeps
// those whose title contains filter.SearchText (case-insensitive).
func (c *Client) RetrieveImages(ctx context.Context, filter Filter) ([]Image, error) {
	query := url.Values{}
	if filter.AlbumID != nil {
		query.Set("albumId", strconv.Itoa(*filter.AlbumID))
	}

	var images []Image
	if err := c.getJSON(ctx, "images", imagesPath, query, &images); err != nil {
		return nil, err
	}

	matched := make([]Image, 0, len(images))
	for _, image := range images {
		if titleMatches(image.Title, filter.SearchText) {
			matched = append(matched, image)
		}
	}

	return matched, nil
}

func (c *Client) getJSON(ctx context.Context, resource, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("GET %s", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %w", ErrRetrieval, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &RetrievalError{
			Resource:   resource,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("%w: failed to decode %s: %w", ErrRetrieval, resource, err)
	}

	return nil
}

// titleMatches reports whether title contains search, ignoring case.
// A blank search matches everything.
func titleMatches(title, search string) bool {
	if strings.TrimSpace(search) == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(search))
}
