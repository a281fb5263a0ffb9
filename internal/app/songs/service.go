package songs

import (
	"context"

	"openmusic/internal/models"
	"openmusic/internal/store"
)

// Store captures the persistence needs for song catalog workflows.
type Store interface {
	AddSong(ctx context.Context, song models.SongDetail) (string, error)
	ListSongs(ctx context.Context, filter store.SongFilter) ([]models.Song, error)
	SongByID(ctx context.Context, id string) (models.SongDetail, error)
	UpdateSong(ctx context.Context, id string, song models.SongDetail) error
	DeleteSong(ctx context.Context, id string) error
}

// Service coordinates song catalog operations. No authorization rules attach
// to songs directly.
type Service interface {
	Add(ctx context.Context, song models.SongDetail) (string, error)
	List(ctx context.Context, filter store.SongFilter) ([]models.Song, error)
	Get(ctx context.Context, id string) (models.SongDetail, error)
	Update(ctx context.Context, id string, song models.SongDetail) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Add(ctx context.Context, song models.SongDetail) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.store.AddSong(ctx, song)
}

func (s *service) List(ctx context.Context, filter store.SongFilter) ([]models.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListSongs(ctx, filter)
}

func (s *service) Get(ctx context.Context, id string) (models.SongDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.SongDetail{}, err
	}
	return s.store.SongByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id string, song models.SongDetail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.UpdateSong(ctx, id, song)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteSong(ctx, id)
}
