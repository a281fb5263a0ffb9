package httpapi

import (
	"context"
	"net/http"
	"strings"

	"openmusic/internal/models"
	"openmusic/internal/store"
)

// PlaylistService coordinates playlist lifecycle and membership operations.
type PlaylistService interface {
	Add(ctx context.Context, name, owner string) (string, error)
	List(ctx context.Context, userID string) ([]models.PlaylistSummary, error)
	Get(ctx context.Context, id, userID string) (models.Playlist, error)
	Rename(ctx context.Context, id, name, userID string) error
	Delete(ctx context.Context, id, userID string) error
	AddSong(ctx context.Context, playlistID, songID, userID string) (string, error)
	RemoveSong(ctx context.Context, playlistID, songID, userID string) error
}

// SongService coordinates song catalog operations.
type SongService interface {
	Add(ctx context.Context, song models.SongDetail) (string, error)
	List(ctx context.Context, filter store.SongFilter) ([]models.Song, error)
	Get(ctx context.Context, id string) (models.SongDetail, error)
	Update(ctx context.Context, id string, song models.SongDetail) error
	Delete(ctx context.Context, id string) error
}

// CollaborationService manages collaborator grants on playlists.
type CollaborationService interface {
	Add(ctx context.Context, playlistID, userID, requesterID string) (string, error)
	Remove(ctx context.Context, playlistID, userID, requesterID string) error
}

// UserService coordinates account registration and lookup.
type UserService interface {
	Register(ctx context.Context, username, password, fullname string) (string, error)
	Get(ctx context.Context, id string) (models.User, error)
}

// TokenVerifier turns a bearer token into a verified user identity.
type TokenVerifier interface {
	VerifyAccessToken(token string) (string, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	playlists      PlaylistService
	songs          SongService
	collaborations CollaborationService
	users          UserService
	tokens         TokenVerifier
}

// New configures a Server with the given service implementations.
func New(
	playlists PlaylistService,
	songs SongService,
	collaborations CollaborationService,
	users UserService,
	tokens TokenVerifier,
) *Server {
	return &Server{
		playlists:      playlists,
		songs:          songs,
		collaborations: collaborations,
		users:          users,
		tokens:         tokens,
	}
}

// Routes exposes the HTTP handlers for the playlist API.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("/playlists", s.handlePlaylists)
	mux.HandleFunc("/playlists/", s.handlePlaylist)

	mux.HandleFunc("/collaborations", s.handleCollaborations)

	mux.HandleFunc("/users", s.handleUsers)
	mux.HandleFunc("/users/", s.handleUser)

	mux.HandleFunc("/songs", s.handleSongs)
	mux.HandleFunc("/songs/", s.handleSong)

	return mux
}

// authenticate resolves the verified user id from the Authorization header.
// It writes the failure response itself and reports whether to continue.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := parseBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		respondFail(w, http.StatusUnauthorized, "missing access token")
		return "", false
	}
	userID, err := s.tokens.VerifyAccessToken(token)
	if err != nil {
		respondFail(w, http.StatusUnauthorized, "invalid access token")
		return "", false
	}
	return userID, true
}

func parseBearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
