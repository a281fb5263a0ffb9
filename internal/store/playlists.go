package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"openmusic/internal/models"
)

// CreatePlaylist persists a new playlist owned by the given user and returns
// the generated id.
func (s *Store) CreatePlaylist(ctx context.Context, name, owner string) (string, error) {
	id := newID("playlist")

	var created string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO playlists (id, name, owner)
		VALUES ($1, $2, $3)
		RETURNING id`, id, name, owner).Scan(&created)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("insert playlist: %w", ErrNoRowsAffected)
	}
	if err != nil {
		return "", fmt.Errorf("insert playlist: %w", err)
	}
	return created, nil
}

// ListPlaylistsForUser returns every playlist the user owns or collaborates
// on. Order is store-default and not meaningful.
func (s *Store) ListPlaylistsForUser(ctx context.Context, userID string) ([]models.PlaylistSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		LEFT JOIN users ON users.id = playlists.owner
		LEFT JOIN collaborations ON collaborations.playlist_id = playlists.id
		WHERE playlists.owner = $1 OR collaborations.user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	playlists := make([]models.PlaylistSummary, 0)
	for rows.Next() {
		var playlist models.PlaylistSummary
		if err := rows.Scan(&playlist.ID, &playlist.Name, &playlist.Username); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}
	return playlists, nil
}

// PlaylistByID returns a single playlist with the owner's username resolved.
func (s *Store) PlaylistByID(ctx context.Context, id string) (models.PlaylistSummary, error) {
	var playlist models.PlaylistSummary
	err := s.db.QueryRowContext(ctx, `
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		LEFT JOIN users ON users.id = playlists.owner
		WHERE playlists.id = $1`, id).Scan(&playlist.ID, &playlist.Name, &playlist.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PlaylistSummary{}, fmt.Errorf("get playlist: %w", ErrPlaylistNotFound)
	}
	if err != nil {
		return models.PlaylistSummary{}, fmt.Errorf("get playlist: %w", err)
	}
	return playlist, nil
}

// RenamePlaylist updates the playlist name only; ownership never changes.
func (s *Store) RenamePlaylist(ctx context.Context, id, name string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE playlists
		SET name = $1
		WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("rename playlist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("rename playlist: %w", ErrPlaylistNotFound)
	}
	return nil
}

// DeletePlaylist removes a playlist along with its membership and
// collaborator rows so no dangling references survive.
func (s *Store) DeletePlaylist(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM playlistsongs WHERE playlist_id = $1`, id); err != nil {
		return fmt.Errorf("delete playlist songs: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM collaborations WHERE playlist_id = $1`, id); err != nil {
		return fmt.Errorf("delete playlist collaborations: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete playlist: %w", ErrPlaylistNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit playlist delete: %w", err)
	}
	tx = nil

	return nil
}

// PlaylistOwner returns the owner of a playlist.
func (s *Store) PlaylistOwner(ctx context.Context, id string) (string, error) {
	var owner string
	err := s.db.QueryRowContext(ctx, `
		SELECT owner
		FROM playlists
		WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("get playlist owner: %w", ErrPlaylistNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("get playlist owner: %w", err)
	}
	return owner, nil
}

// AddSongToPlaylist records that a song is on a playlist and returns the
// membership id. Nothing prevents the same (playlist, song) pair from being
// inserted twice.
func (s *Store) AddSongToPlaylist(ctx context.Context, playlistID, songID string) (string, error) {
	id := newID("playlistsong")

	var created string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO playlistsongs (id, playlist_id, song_id)
		VALUES ($1, $2, $3)
		RETURNING id`, id, playlistID, songID).Scan(&created)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("insert playlist song: %w", ErrNoRowsAffected)
	}
	if err != nil {
		return "", fmt.Errorf("insert playlist song: %w", err)
	}
	return created, nil
}

// SongsOnPlaylist returns the songs currently on a playlist.
func (s *Store) SongsOnPlaylist(ctx context.Context, playlistID string) ([]models.Song, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT songs.id, songs.title, songs.performer
		FROM songs
		LEFT JOIN playlistsongs ON songs.id = playlistsongs.song_id
		WHERE playlistsongs.playlist_id = $1`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("list playlist songs: %w", err)
	}
	defer rows.Close()

	songs := make([]models.Song, 0)
	for rows.Next() {
		var song models.Song
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, fmt.Errorf("scan playlist song: %w", err)
		}
		songs = append(songs, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist songs: %w", err)
	}
	return songs, nil
}

// RemoveSongFromPlaylist deletes the membership row matching the
// (playlist, song) pair. A pair that matched nothing reports
// ErrNoRowsAffected, not a not-found error.
func (s *Store) RemoveSongFromPlaylist(ctx context.Context, playlistID, songID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM playlistsongs
		WHERE playlist_id = $1 AND song_id = $2`, playlistID, songID)
	if err != nil {
		return fmt.Errorf("delete playlist song: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete playlist song: %w", ErrNoRowsAffected)
	}
	return nil
}
