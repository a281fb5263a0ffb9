package httpapi

import (
	"encoding/json"
	"net/http"
)

// handleCollaborations handles POST (grant) and DELETE (revoke) for
// playlist collaborators.
func (s *Server) handleCollaborations(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req struct {
		PlaylistID string `json:"playlistId"`
		UserID     string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PlaylistID == "" || req.UserID == "" {
		respondFail(w, http.StatusBadRequest, "playlistId and userId are required")
		return
	}

	switch r.Method {
	case http.MethodPost:
		id, err := s.collaborations.Add(r.Context(), req.PlaylistID, req.UserID, requesterID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondSuccess(w, http.StatusCreated, "collaboration added", map[string]interface{}{"collaborationId": id})
	case http.MethodDelete:
		if err := s.collaborations.Remove(r.Context(), req.PlaylistID, req.UserID, requesterID); err != nil {
			respondError(w, err)
			return
		}
		respondSuccess(w, http.StatusOK, "collaboration removed", nil)
	default:
		respondFail(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
