package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// handleUsers handles POST (register) for accounts.
func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondFail(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Fullname string `json:"fullname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondFail(w, http.StatusBadRequest, "username and password are required")
		return
	}

	id, err := s.users.Register(r.Context(), req.Username, req.Password, req.Fullname)
	if err != nil {
		respondError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, "user registered", map[string]interface{}{"userId": id})
}

// handleUser handles GET for a single account.
func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondFail(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/users/")
	if id == "" || strings.Contains(id, "/") {
		respondFail(w, http.StatusBadRequest, "user id required")
		return
	}

	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, "", map[string]interface{}{"user": user})
}
