package models

// User identifies an account that can own or collaborate on playlists.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}
