package photos

// Album is an entry from the /albums endpoint.
type Album struct {
	UserID int    `json:"userId,omitempty"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
}

// Image is an entry from the /photos endpoint.
type Image struct {
	AlbumID      int    `json:"albumId"`
	ID           int    `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Filter narrows a retrieval. A nil AlbumID means every album.
type Filter struct {
	AlbumID    *int
	SearchText string
}
