package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"openmusic/internal/app/playlists"
	"openmusic/internal/store"
)

// envelope is the response shape shared by every endpoint.
type envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondSuccess(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, envelope{Status: "success", Message: message, Data: data})
}

func respondFail(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, envelope{Status: "fail", Message: message})
}

// respondError maps a service error onto the boundary contract: not-found
// entities are 404, denied access is 403, invariant failures are 400, and
// everything else is an opaque 500.
func respondError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Msg("unhandled service error")
		writeJSON(w, code, envelope{Status: "error", Message: "internal server error"})
		return
	}
	respondFail(w, code, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrPlaylistNotFound),
		errors.Is(err, store.ErrSongNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, playlists.ErrForbidden),
		errors.Is(err, store.ErrNotCollaborator):
		return http.StatusForbidden
	case errors.Is(err, store.ErrNoRowsAffected),
		errors.Is(err, store.ErrUserExists):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}
