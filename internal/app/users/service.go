package users

import (
	"context"

	"openmusic/internal/models"
)

// Store captures the persistence needs for account workflows.
type Store interface {
	CreateUser(ctx context.Context, username, password, fullname string) (string, error)
	UserByID(ctx context.Context, id string) (models.User, error)
}

// Service coordinates account registration and lookup. Token issuance is
// owned by the identity layer, not this service.
type Service interface {
	Register(ctx context.Context, username, password, fullname string) (string, error)
	Get(ctx context.Context, id string) (models.User, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Register(ctx context.Context, username, password, fullname string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.CreateUser(ctx, username, password, fullname)
}

func (s *service) Get(ctx context.Context, id string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	return s.store.UserByID(ctx, id)
}
