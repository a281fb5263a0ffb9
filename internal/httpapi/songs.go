package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"openmusic/internal/models"
	"openmusic/internal/store"
)

type songPayload struct {
	Title     string `json:"title"`
	Year      int    `json:"year"`
	Performer string `json:"performer"`
	Genre     string `json:"genre"`
	Duration  int    `json:"duration"`
}

func (p songPayload) toDetail() models.SongDetail {
	return models.SongDetail{
		Title:     p.Title,
		Year:      p.Year,
		Performer: p.Performer,
		Genre:     p.Genre,
		Duration:  p.Duration,
	}
}

// handleSongs handles GET (list) and POST (create) for the song catalog.
func (s *Server) handleSongs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		filter := store.SongFilter{
			Title:     r.URL.Query().Get("title"),
			Performer: r.URL.Query().Get("performer"),
		}
		songs, err := s.songs.List(r.Context(), filter)
		if err != nil {
			respondError(w, err)
			return
		}
		respondSuccess(w, http.StatusOK, "", map[string]interface{}{"songs": songs})
	case http.MethodPost:
		var req songPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondFail(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Title == "" || req.Performer == "" {
			respondFail(w, http.StatusBadRequest, "title and performer are required")
			return
		}
		id, err := s.songs.Add(r.Context(), req.toDetail())
		if err != nil {
			respondError(w, err)
			return
		}
		respondSuccess(w, http.StatusCreated, "song created", map[string]interface{}{"songId": id})
	default:
		respondFail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleSong handles GET/PUT/DELETE for a single catalog song.
func (s *Server) handleSong(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/songs/")
	if id == "" || strings.Contains(id, "/") {
		respondFail(w, http.StatusBadRequest, "song id required")
		return
	}

	switch r.Method {
	case http.MethodGet:
		song, err := s.songs.Get(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondSuccess(w, http.StatusOK, "", map[string]interface{}{"song": song})
	case http.MethodPut:
		var req songPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondFail(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Title == "" || req.Performer == "" {
			respondFail(w, http.StatusBadRequest, "title and performer are required")
			return
		}
		if err := s.songs.Update(r.Context(), id, req.toDetail()); err != nil {
			respondError(w, err)
			return
		}
		respondSuccess(w, http.StatusOK, "song updated", nil)
	case http.MethodDelete:
		if err := s.songs.Delete(r.Context(), id); err != nil {
			respondError(w, err)
			return
		}
		respondSuccess(w, http.StatusOK, "song deleted", nil)
	default:
		respondFail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
