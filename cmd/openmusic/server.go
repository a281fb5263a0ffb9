package main

import (
	"net/http"
	"strings"

	"openmusic/internal/app/collaborations"
	"openmusic/internal/app/playlists"
	"openmusic/internal/app/songs"
	"openmusic/internal/app/users"
	"openmusic/internal/auth"
	"openmusic/internal/httpapi"
	"openmusic/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	playlistSvc := playlists.New(dataStore, dataStore)
	collaborationSvc := collaborations.New(dataStore, playlistSvc)
	songSvc := songs.New(dataStore)
	userSvc := users.New(dataStore)

	tokens := auth.NewTokenManager(cfg.AccessTokenKey)

	handler := httpapi.New(playlistSvc, songSvc, collaborationSvc, userSvc, tokens).Routes()
	handler = httpapi.RequestLogging()(handler)
	handler = httpapi.Recovery()(handler)
	return withCORS(cfg.AllowedOrigins, handler)
}

func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := func(origin string) bool {
		if len(allowedOrigins) == 0 || origin == "" {
			return false
		}
		for _, o := range allowedOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
