package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// AddCollaboration grants a user collaborator access to a playlist.
func (s *Store) AddCollaboration(ctx context.Context, playlistID, userID string) (string, error) {
	id := newID("collab")

	var created string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO collaborations (id, playlist_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id`, id, playlistID, userID).Scan(&created)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("insert collaboration: %w", ErrNoRowsAffected)
	}
	if err != nil {
		return "", fmt.Errorf("insert collaboration: %w", err)
	}
	return created, nil
}

// DeleteCollaboration revokes a user's collaborator access to a playlist.
func (s *Store) DeleteCollaboration(ctx context.Context, playlistID, userID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM collaborations
		WHERE playlist_id = $1 AND user_id = $2`, playlistID, userID)
	if err != nil {
		return fmt.Errorf("delete collaboration: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete collaboration: %w", ErrNoRowsAffected)
	}
	return nil
}

// VerifyCollaborator succeeds silently when a collaboration row exists for
// the (playlist, user) pair.
func (s *Store) VerifyCollaborator(ctx context.Context, playlistID, userID string) error {
	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT id
		FROM collaborations
		WHERE playlist_id = $1 AND user_id = $2`, playlistID, userID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("verify collaborator: %w", ErrNotCollaborator)
	}
	if err != nil {
		return fmt.Errorf("verify collaborator: %w", err)
	}
	return nil
}
