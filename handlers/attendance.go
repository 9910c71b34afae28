// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sessiondesk/server/attendance"
	"github.com/sessiondesk/server/cliparse"
	"github.com/sessiondesk/server/middleware"
	"github.com/sessiondesk/server/models"
	"github.com/sessiondesk/server/sheet"
)

var validate = validator.New()

type AttendanceHandler struct {
	store sheet.Store
	cfg   cliparse.Config
}

func NewAttendanceHandler(store sheet.Store, cfg cliparse.Config) *AttendanceHandler {
	return &AttendanceHandler{store: store, cfg: cfg}
}

// Checkin handles POST /attendance/check-in
func (h *AttendanceHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	var req models.CheckinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_id and a valid email are required")
		return
	}

	matcher := attendance.NewMatcher(h.store)
	marked, err := matcher.MarkPresent(req.SessionID, req.Email)

	if errors.Is(err, attendance.ErrNotOnRoster) || errors.Is(err, sheet.ErrWorksheetNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound,
			"This email is not on the roster for this session")
		return
	}
	if errors.Is(err, attendance.ErrMissingColumns) {
		slog.Error("attendance worksheet misconfigured", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Attendance sheet is misconfigured")
		return
	}
	if err != nil {
		slog.Error("failed to mark attendance", "error", err, "session_id", req.SessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Store error, please retry")
		return
	}

	message := "Attendance marked"
	if !marked {
		message = "Attendance was already marked"
	}

	slog.Info("check-in",
		"session_id", req.SessionID,
		"email", req.Email,
		"marked_now", marked,
		"ip", middleware.GetClientIP(r),
	)

	middleware.JSONResponse(w, http.StatusOK, models.CheckinResponse{
		SessionID: req.SessionID,
		Email:     req.Email,
		Marked:    true,
		Message:   message,
	})
}

// EmailExists handles GET /attendance/email-exists
// Read-only probe used by the feedback form to validate an email before
// letting a submission proceed.
func (h *AttendanceHandler) EmailExists(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	email := r.URL.Query().Get("email")
	if sessionID == "" || email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_id and email are required")
		return
	}

	matcher := attendance.NewMatcher(h.store)
	exists, err := matcher.EmailExists(sessionID, email)
	if err != nil {
		slog.Error("failed to probe email", "error", err, "session_id", sessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Store error, please retry")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EmailExistsResponse{Exists: exists})
}
