package collaborations

import (
	"context"

	"openmusic/internal/models"
)

// Store captures the persistence needs for collaboration workflows.
type Store interface {
	AddCollaboration(ctx context.Context, playlistID, userID string) (string, error)
	DeleteCollaboration(ctx context.Context, playlistID, userID string) error
	UserByID(ctx context.Context, id string) (models.User, error)
}

// OwnerVerifier gates collaborator management behind playlist ownership.
type OwnerVerifier interface {
	VerifyOwner(ctx context.Context, playlistID, userID string) error
}

// Service manages who may collaborate on a playlist. Only the playlist owner
// may grant or revoke collaborator access.
type Service interface {
	Add(ctx context.Context, playlistID, userID, requesterID string) (string, error)
	Remove(ctx context.Context, playlistID, userID, requesterID string) error
}

type service struct {
	store  Store
	owners OwnerVerifier
}

// New constructs a Service backed by the provided Store and ownership
// authority.
func New(store Store, owners OwnerVerifier) Service {
	return &service{store: store, owners: owners}
}

func (s *service) Add(ctx context.Context, playlistID, userID, requesterID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := s.owners.VerifyOwner(ctx, playlistID, requesterID); err != nil {
		return "", err
	}
	if _, err := s.store.UserByID(ctx, userID); err != nil {
		return "", err
	}
	return s.store.AddCollaboration(ctx, playlistID, userID)
}

func (s *service) Remove(ctx context.Context, playlistID, userID, requesterID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.owners.VerifyOwner(ctx, playlistID, requesterID); err != nil {
		return err
	}
	return s.store.DeleteCollaboration(ctx, playlistID, userID)
}
