// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/sessiondesk/server/cliparse"
	"github.com/sessiondesk/server/handlers"
	"github.com/sessiondesk/server/middleware"
	"github.com/sessiondesk/server/sheet"
)

func NewRouter(store sheet.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(store, cfg)
	attendanceHandler := handlers.NewAttendanceHandler(store, cfg)
	feedbackHandler := handlers.NewFeedbackHandler(store, cfg)
	pageHandler := handlers.NewPageHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session management (admin operation)
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.UploadSession))

	// Attendance (public)
	mux.HandleFunc("POST /attendance/check-in", middleware.WithLogging(attendanceHandler.Checkin))
	mux.HandleFunc("GET /attendance/email-exists", middleware.WithLogging(attendanceHandler.EmailExists))

	// Feedback (public)
	mux.HandleFunc("POST /feedback", middleware.WithLogging(feedbackHandler.Submit))

	// Form pages
	mux.HandleFunc("GET /thankyou", pageHandler.ThankYou)
	mux.HandleFunc("GET /{$}", pageHandler.Index)

	return mux
}
