package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"openmusic/internal/models"
)

// SongFilter defines criteria for filtering the song catalog.
type SongFilter struct {
	Title     string
	Performer string
}

// AddSong inserts a song into the catalog and returns the generated id.
func (s *Store) AddSong(ctx context.Context, song models.SongDetail) (string, error) {
	id := newID("song")

	var created string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO songs (id, title, year, performer, genre, duration)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		id, song.Title, song.Year, song.Performer, nullIfEmpty(song.Genre), song.Duration,
	).Scan(&created)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("insert song: %w", ErrNoRowsAffected)
	}
	if err != nil {
		return "", fmt.Errorf("insert song: %w", err)
	}
	return created, nil
}

// ListSongs returns catalog songs matching the filter.
func (s *Store) ListSongs(ctx context.Context, filter SongFilter) ([]models.Song, error) {
	query := `
		SELECT id, title, performer
		FROM songs
		WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Title != "" {
		query += fmt.Sprintf(" AND title ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Title+"%")
		argIdx++
	}
	if filter.Performer != "" {
		query += fmt.Sprintf(" AND performer ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Performer+"%")
		argIdx++
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query songs: %w", err)
	}
	defer rows.Close()

	songs := make([]models.Song, 0)
	for rows.Next() {
		var song models.Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}
	return songs, nil
}

// SongByID returns a single catalog song.
func (s *Store) SongByID(ctx context.Context, id string) (models.SongDetail, error) {
	var song models.SongDetail
	var genre sql.NullString
	var duration sql.NullInt32

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, year, performer, genre, duration
		FROM songs
		WHERE id = $1`, id).Scan(&song.ID, &song.Title, &song.Year, &song.Performer, &genre, &duration)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SongDetail{}, fmt.Errorf("get song: %w", ErrSongNotFound)
	}
	if err != nil {
		return models.SongDetail{}, fmt.Errorf("get song: %w", err)
	}

	song.Genre = genre.String
	if duration.Valid {
		song.Duration = int(duration.Int32)
	}
	return song, nil
}

// UpdateSong replaces the catalog fields of a song.
func (s *Store) UpdateSong(ctx context.Context, id string, song models.SongDetail) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE songs
		SET title = $1, year = $2, performer = $3, genre = $4, duration = $5
		WHERE id = $6`,
		song.Title, song.Year, song.Performer, nullIfEmpty(song.Genre), song.Duration, id)
	if err != nil {
		return fmt.Errorf("update song: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update song: %w", ErrSongNotFound)
	}
	return nil
}

// DeleteSong removes a song from the catalog. Membership rows referencing it
// are removed by the schema's cascade.
func (s *Store) DeleteSong(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete song: %w", ErrSongNotFound)
	}
	return nil
}

func nullIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
