package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrPlaylistNotFound signals the referenced playlist does not exist.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrSongNotFound signals the referenced song does not exist.
	ErrSongNotFound = errors.New("song not found")
	// ErrUserNotFound signals the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists signals the username is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrNotCollaborator signals the user holds no collaboration on the playlist.
	ErrNotCollaborator = errors.New("user is not a collaborator")
	// ErrNoRowsAffected signals a mutation that should have touched exactly
	// one row touched none.
	ErrNoRowsAffected = errors.New("no rows affected")
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle. The handle is the
// process-wide connection pool; the caller owns its lifecycle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// newID builds entity ids like "playlist-0f2c09a1b4e8d763".
func newID(prefix string) string {
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
