package models

// PlaylistSummary is the listing shape for a playlist: the row itself plus
// the owner's display name resolved through the users join.
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Playlist is the full detail shape returned when a single playlist is
// fetched, including the songs currently on it.
type Playlist struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Songs    []Song `json:"songs"`
}
