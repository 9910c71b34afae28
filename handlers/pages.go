// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/sessiondesk/server/cliparse"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type PageHandler struct {
	cfg cliparse.Config
}

func NewPageHandler(cfg cliparse.Config) *PageHandler {
	return &PageHandler{cfg: cfg}
}

// Index handles GET /
// Renders the feedback form. Session name and id come from query parameters
// baked into the link shared with attendees (?session=HR_Orientation&session_id=...).
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	session := r.URL.Query().Get("session")
	if session == "" {
		session = "L&D Session"
	}
	data := map[string]string{
		"Session":   session,
		"SessionID": r.URL.Query().Get("session_id"),
	}
	if err := pages.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.Error("failed to render index", "error", err)
	}
}

// ThankYou handles GET /thankyou
func (h *PageHandler) ThankYou(w http.ResponseWriter, r *http.Request) {
	if err := pages.ExecuteTemplate(w, "thankyou.html", nil); err != nil {
		slog.Error("failed to render thankyou", "error", err)
	}
}
