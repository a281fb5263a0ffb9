package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// handlePlaylists handles GET (list) and POST (create) for playlists.
func (s *Server) handlePlaylists(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listPlaylists(w, r)
	case http.MethodPost:
		s.createPlaylist(w, r)
	default:
		respondFail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handlePlaylist handles GET/PUT/DELETE for a specific playlist, and the
// songs sub-resource for playlist membership.
func (s *Server) handlePlaylist(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/playlists/")
	parts := strings.Split(path, "/")

	if len(parts) == 0 || parts[0] == "" {
		respondFail(w, http.StatusBadRequest, "playlist id required")
		return
	}
	playlistID := parts[0]

	if len(parts) == 2 && parts[1] == "songs" {
		switch r.Method {
		case http.MethodGet:
			s.getPlaylist(w, r, playlistID)
		case http.MethodPost:
			s.addSongToPlaylist(w, r, playlistID)
		case http.MethodDelete:
			s.removeSongFromPlaylist(w, r, playlistID)
		default:
			respondFail(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}
	if len(parts) > 1 {
		respondFail(w, http.StatusNotFound, "unknown playlist resource")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getPlaylist(w, r, playlistID)
	case http.MethodPut:
		s.renamePlaylist(w, r, playlistID)
	case http.MethodDelete:
		s.deletePlaylist(w, r, playlistID)
	default:
		respondFail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listPlaylists(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	playlists, err := s.playlists.List(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "", map[string]interface{}{"playlists": playlists})
}

func (s *Server) createPlaylist(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondFail(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := s.playlists.Add(r.Context(), req.Name, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "playlist created", map[string]interface{}{"playlistId": id})
}

func (s *Server) getPlaylist(w http.ResponseWriter, r *http.Request, id string) {
	userID, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	playlist, err := s.playlists.Get(r.Context(), id, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "", map[string]interface{}{"playlist": playlist})
}

func (s *Server) renamePlaylist(w http.ResponseWriter, r *http.Request, id string) {
	userID, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondFail(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := s.playlists.Rename(r.Context(), id, req.Name, userID); err != nil {
		respondError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "playlist updated", nil)
}

func (s *Server) deletePlaylist(w http.ResponseWriter, r *http.Request, id string) {
	userID, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	if err := s.playlists.Delete(r.Context(), id, userID); err != nil {
		respondError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "playlist deleted", nil)
}

func (s *Server) addSongToPlaylist(w http.ResponseWriter, r *http.Request, playlistID string) {
	userID, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SongID == "" {
		respondFail(w, http.StatusBadRequest, "songId is required")
		return
	}

	id, err := s.playlists.AddSong(r.Context(), playlistID, req.SongID, userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "song added to playlist", map[string]interface{}{"playlistSongId": id})
}

func (s *Server) removeSongFromPlaylist(w http.ResponseWriter, r *http.Request, playlistID string) {
	userID, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SongID == "" {
		respondFail(w, http.StatusBadRequest, "songId is required")
		return
	}

	if err := s.playlists.RemoveSong(r.Context(), playlistID, req.SongID, userID); err != nil {
		respondError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "song removed from playlist", nil)
}
