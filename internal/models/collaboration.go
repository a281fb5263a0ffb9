package models

// Collaboration grants a non-owner user access to a playlist.
type Collaboration struct {
	ID         string `json:"id"`
	PlaylistID string `json:"playlist_id"`
	UserID     string `json:"user_id"`
}
