package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"openmusic/internal/models"
)

// CreateUser registers a new account and returns the generated id. The
// password is stored bcrypt-hashed.
func (s *Store) CreateUser(ctx context.Context, username, password, fullname string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", fmt.Errorf("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id := newID("user")

	var created string
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, username, password, fullname)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, id, username, hash, fullname).Scan(&created)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("insert user: %w", ErrUserExists)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("insert user: %w", ErrNoRowsAffected)
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// UserByID returns a single account without credential fields.
func (s *Store) UserByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, fullname
		FROM users
		WHERE id = $1`, id).Scan(&user.ID, &user.Username, &user.Fullname)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("get user: %w", ErrUserNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
