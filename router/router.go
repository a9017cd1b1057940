// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/equb-registry/handlers"
	"github.com/danielhkuo/equb-registry/middleware"
)

// NewRouter registers every route and wraps the mux with CORS and panic
// recovery.
func NewRouter(store handlers.MemberStore) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	memberHandler := handlers.NewMemberHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Listing (the wheel and the history tab)
	mux.HandleFunc("GET /members", middleware.WithLogging(middleware.Compress(memberHandler.ListPending)))
	mux.HandleFunc("GET /winners", middleware.WithLogging(middleware.Compress(memberHandler.ListWinners)))

	// Mutations
	mux.HandleFunc("POST /mark-winner", middleware.WithLogging(memberHandler.MarkWinner))
	mux.HandleFunc("POST /add-member", middleware.WithLogging(memberHandler.AddMember))
	mux.HandleFunc("POST /reset-cycle", middleware.WithLogging(memberHandler.ResetCycle))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("equb registry API v1"))
	})

	return middleware.Recover(middleware.CORS(mux))
}
