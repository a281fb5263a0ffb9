package models

// Song is the projection used inside playlists and catalog listings.
type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// SongDetail is the full catalog row for a song.
type SongDetail struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
	Performer string `json:"performer"`
	Genre     string `json:"genre,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}
