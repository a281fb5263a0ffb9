package playlists

import (
	"context"
	"errors"

	"openmusic/internal/models"
)

// ErrForbidden signals the caller holds no right to act on the playlist.
var ErrForbidden = errors.New("playlist access forbidden")

// Store captures the persistence needs for playlist workflows.
type Store interface {
	CreatePlaylist(ctx context.Context, name, owner string) (string, error)
	ListPlaylistsForUser(ctx context.Context, userID string) ([]models.PlaylistSummary, error)
	PlaylistByID(ctx context.Context, id string) (models.PlaylistSummary, error)
	RenamePlaylist(ctx context.Context, id, name string) error
	DeletePlaylist(ctx context.Context, id string) error
	PlaylistOwner(ctx context.Context, id string) (string, error)
	AddSongToPlaylist(ctx context.Context, playlistID, songID string) (string, error)
	SongsOnPlaylist(ctx context.Context, playlistID string) ([]models.Song, error)
	RemoveSongFromPlaylist(ctx context.Context, playlistID, songID string) error
	SongByID(ctx context.Context, id string) (models.SongDetail, error)
}

// CollaboratorVerifier decides whether a user is a registered collaborator
// on a playlist.
type CollaboratorVerifier interface {
	VerifyCollaborator(ctx context.Context, playlistID, userID string) error
}

// Service coordinates playlist lifecycle and membership operations. Every
// operation that touches an existing playlist resolves the caller's access
// level before mutating or reading anything.
type Service interface {
	Add(ctx context.Context, name, owner string) (string, error)
	List(ctx context.Context, userID string) ([]models.PlaylistSummary, error)
	Get(ctx context.Context, id, userID string) (models.Playlist, error)
	Rename(ctx context.Context, id, name, userID string) error
	Delete(ctx context.Context, id, userID string) error
	AddSong(ctx context.Context, playlistID, songID, userID string) (string, error)
	RemoveSong(ctx context.Context, playlistID, songID, userID string) error
	VerifyOwner(ctx context.Context, id, userID string) error
	VerifyAccess(ctx context.Context, id, userID string) error
}

type service struct {
	store         Store
	collaborators CollaboratorVerifier
}

// New constructs a Service backed by the provided Store and collaborator
// authority.
func New(store Store, collaborators CollaboratorVerifier) Service {
	return &service{store: store, collaborators: collaborators}
}

func (s *service) Add(ctx context.Context, name, owner string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.CreatePlaylist(ctx, name, owner)
}

func (s *service) List(ctx context.Context, userID string) ([]models.PlaylistSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlaylistsForUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, id, userID string) (models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return models.Playlist{}, err
	}
	if err := s.VerifyAccess(ctx, id, userID); err != nil {
		return models.Playlist{}, err
	}

	summary, err := s.store.PlaylistByID(ctx, id)
	if err != nil {
		return models.Playlist{}, err
	}
	songs, err := s.store.SongsOnPlaylist(ctx, id)
	if err != nil {
		return models.Playlist{}, err
	}

	return models.Playlist{
		ID:       summary.ID,
		Name:     summary.Name,
		Username: summary.Username,
		Songs:    songs,
	}, nil
}

func (s *service) Rename(ctx context.Context, id, name, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.VerifyOwner(ctx, id, userID); err != nil {
		return err
	}
	return s.store.RenamePlaylist(ctx, id, name)
}

func (s *service) Delete(ctx context.Context, id, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.VerifyOwner(ctx, id, userID); err != nil {
		return err
	}
	return s.store.DeletePlaylist(ctx, id)
}

func (s *service) AddSong(ctx context.Context, playlistID, songID, userID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.VerifyAccess(ctx, playlistID, userID); err != nil {
		return "", err
	}
	// The membership row must never reference a song that does not exist.
	if _, err := s.store.SongByID(ctx, songID); err != nil {
		return "", err
	}
	return s.store.AddSongToPlaylist(ctx, playlistID, songID)
}

func (s *service) RemoveSong(ctx context.Context, playlistID, songID, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.VerifyAccess(ctx, playlistID, userID); err != nil {
		return err
	}
	return s.store.RemoveSongFromPlaylist(ctx, playlistID, songID)
}

// VerifyOwner succeeds only when the user is the playlist's owner. A missing
// playlist reports not-found, never forbidden.
func (s *service) VerifyOwner(ctx context.Context, id, userID string) error {
	owner, err := s.store.PlaylistOwner(ctx, id)
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrForbidden
	}
	return nil
}

// VerifyAccess grants access to owners and collaborators. The collaborator
// probe only runs when ownership was denied outright; its outcome is folded
// into the final decision by resolveAccess.
func (s *service) VerifyAccess(ctx context.Context, id, userID string) error {
	ownerErr := s.VerifyOwner(ctx, id, userID)
	if ownerErr == nil || !errors.Is(ownerErr, ErrForbidden) {
		return ownerErr
	}
	return resolveAccess(ownerErr, s.collaborators.VerifyCollaborator(ctx, id, userID))
}

// resolveAccess combines the ownership and collaboration outcomes into one
// access decision. A successful collaborator check grants access; any failed
// collaborator check surfaces the original ownership error, so callers never
// see a collaboration-internal error for a denied request.
func resolveAccess(ownerErr, collabErr error) error {
	if ownerErr == nil {
		return nil
	}
	if !errors.Is(ownerErr, ErrForbidden) {
		return ownerErr
	}
	if collabErr == nil {
		return nil
	}
	return ownerErr
}
