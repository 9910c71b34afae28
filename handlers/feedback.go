// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/sessiondesk/server/cliparse"
	"github.com/sessiondesk/server/feedback"
	"github.com/sessiondesk/server/middleware"
	"github.com/sessiondesk/server/models"
	"github.com/sessiondesk/server/sheet"
)

type FeedbackHandler struct {
	store sheet.Store
	cfg   cliparse.Config
}

func NewFeedbackHandler(store sheet.Store, cfg cliparse.Config) *FeedbackHandler {
	return &FeedbackHandler{store: store, cfg: cfg}
}

// Submit handles POST /feedback
// Recording the feedback row is the primary goal: the submission succeeds
// even when the attendance side effect reports not_on_roster or fails
// outright.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.FeedbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_id, name, and a valid email are required")
		return
	}

	rec := feedback.NewReconciler(h.store, h.cfg.AllowUnrostered)
	res, err := rec.Reconcile(feedback.Submission{
		SessionID:   req.SessionID,
		SessionName: req.SessionName,
		SessionDate: req.SessionDate,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Answers:     req.Answers(),
	})

	if err != nil && !res.Recorded {
		slog.Error("failed to record feedback", "error", err, "session_id", req.SessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record feedback")
		return
	}
	if err != nil {
		// Feedback row was written; the attendance side effect failed.
		slog.Warn("attendance side effect failed", "error", err, "session_id", req.SessionID, "email", req.Email)
	}

	slog.Info("feedback recorded",
		"session_id", req.SessionID,
		"email", req.Email,
		"attendance", res.Status,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.FeedbackResponse{
		Recorded:   true,
		MarkedNow:  res.MarkedNow,
		Attendance: res.Status,
	})
}
