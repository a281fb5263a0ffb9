package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreatePlaylist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO playlists (id, name, owner)
		VALUES ($1, $2, $3)
		RETURNING id`)).
		WithArgs(sqlmock.AnyArg(), "Road Trip", "user-123").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("playlist-0f2c09a1b4e8d763"))

	id, err := s.CreatePlaylist(context.Background(), "Road Trip", "user-123")
	if err != nil {
		t.Fatalf("CreatePlaylist error: %v", err)
	}
	if !strings.HasPrefix(id, "playlist-") {
		t.Fatalf("expected playlist- prefix, got %q", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreatePlaylistNoRowWritten(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO playlists (id, name, owner)
		VALUES ($1, $2, $3)
		RETURNING id`)).
		WithArgs(sqlmock.AnyArg(), "Road Trip", "user-123").
		WillReturnError(sql.ErrNoRows)

	_, err = s.CreatePlaylist(context.Background(), "Road Trip", "user-123")
	if !errors.Is(err, ErrNoRowsAffected) {
		t.Fatalf("expected ErrNoRowsAffected, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListPlaylistsForUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		LEFT JOIN users ON users.id = playlists.owner
		LEFT JOIN collaborations ON collaborations.playlist_id = playlists.id
		WHERE playlists.owner = $1 OR collaborations.user_id = $1`)).
		WithArgs("user-123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "username"}).
			AddRow("playlist-a", "Road Trip", "dicoding").
			AddRow("playlist-b", "Focus", "johndoe"))

	playlists, err := s.ListPlaylistsForUser(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("ListPlaylistsForUser error: %v", err)
	}
	if len(playlists) != 2 || playlists[0].Username != "dicoding" {
		t.Fatalf("unexpected playlists: %#v", playlists)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaylistByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT playlists.id, playlists.name, users.username
		FROM playlists
		LEFT JOIN users ON users.id = playlists.owner
		WHERE playlists.id = $1`)).
		WithArgs("playlist-missing").
		WillReturnError(sql.ErrNoRows)

	_, err = s.PlaylistByID(context.Background(), "playlist-missing")
	if !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRenamePlaylist(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "existing playlist", affected: 1},
		{name: "missing playlist", affected: 0, wantErr: ErrPlaylistNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock.New: %v", err)
			}
			defer db.Close()

			s := New(db)

			mock.ExpectExec(regexp.QuoteMeta(`
				UPDATE playlists
				SET name = $1
				WHERE id = $2`)).
				WithArgs("New Name", "playlist-a").
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			err = s.RenamePlaylist(context.Background(), "playlist-a", "New Name")
			if tc.wantErr == nil && err != nil {
				t.Fatalf("RenamePlaylist error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestDeletePlaylistCascades(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM playlistsongs WHERE playlist_id = $1`)).
		WithArgs("playlist-a").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM collaborations WHERE playlist_id = $1`)).
		WithArgs("playlist-a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM playlists WHERE id = $1`)).
		WithArgs("playlist-a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := s.DeletePlaylist(context.Background(), "playlist-a"); err != nil {
		t.Fatalf("DeletePlaylist error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeletePlaylistNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM playlistsongs WHERE playlist_id = $1`)).
		WithArgs("playlist-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM collaborations WHERE playlist_id = $1`)).
		WithArgs("playlist-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM playlists WHERE id = $1`)).
		WithArgs("playlist-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = s.DeletePlaylist(context.Background(), "playlist-missing")
	if !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaylistOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT owner
		FROM playlists
		WHERE id = $1`)).
		WithArgs("playlist-a").
		WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow("user-123"))

	owner, err := s.PlaylistOwner(context.Background(), "playlist-a")
	if err != nil {
		t.Fatalf("PlaylistOwner error: %v", err)
	}
	if owner != "user-123" {
		t.Fatalf("expected user-123, got %q", owner)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaylistOwnerNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT owner
		FROM playlists
		WHERE id = $1`)).
		WithArgs("playlist-missing").
		WillReturnError(sql.ErrNoRows)

	_, err = s.PlaylistOwner(context.Background(), "playlist-missing")
	if !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddSongToPlaylist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO playlistsongs (id, playlist_id, song_id)
		VALUES ($1, $2, $3)
		RETURNING id`)).
		WithArgs(sqlmock.AnyArg(), "playlist-a", "song-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("playlistsong-4b1d2c3a5e6f7081"))

	id, err := s.AddSongToPlaylist(context.Background(), "playlist-a", "song-1")
	if err != nil {
		t.Fatalf("AddSongToPlaylist error: %v", err)
	}
	if !strings.HasPrefix(id, "playlistsong-") {
		t.Fatalf("expected playlistsong- prefix, got %q", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSongsOnPlaylist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT songs.id, songs.title, songs.performer
		FROM songs
		LEFT JOIN playlistsongs ON songs.id = playlistsongs.song_id
		WHERE playlistsongs.playlist_id = $1`)).
		WithArgs("playlist-a").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "performer"}).
			AddRow("song-1", "Kenangan Mantan", "Dicoding"))

	songs, err := s.SongsOnPlaylist(context.Background(), "playlist-a")
	if err != nil {
		t.Fatalf("SongsOnPlaylist error: %v", err)
	}
	if len(songs) != 1 || songs[0].Title != "Kenangan Mantan" {
		t.Fatalf("unexpected songs: %#v", songs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSongsOnPlaylistEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT songs.id, songs.title, songs.performer
		FROM songs
		LEFT JOIN playlistsongs ON songs.id = playlistsongs.song_id
		WHERE playlistsongs.playlist_id = $1`)).
		WithArgs("playlist-a").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "performer"}))

	songs, err := s.SongsOnPlaylist(context.Background(), "playlist-a")
	if err != nil {
		t.Fatalf("SongsOnPlaylist error: %v", err)
	}
	if songs == nil || len(songs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", songs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRemoveSongFromPlaylistMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectExec(regexp.QuoteMeta(`
		DELETE FROM playlistsongs
		WHERE playlist_id = $1 AND song_id = $2`)).
		WithArgs("playlist-a", "song-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = s.RemoveSongFromPlaylist(context.Background(), "playlist-a", "song-missing")
	// Zero rows on this path is an invariant failure, not a not-found.
	if !errors.Is(err, ErrNoRowsAffected) {
		t.Fatalf("expected ErrNoRowsAffected, got %v", err)
	}
	if errors.Is(err, ErrPlaylistNotFound) || errors.Is(err, ErrSongNotFound) {
		t.Fatalf("missing membership must not map to a not-found error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
