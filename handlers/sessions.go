// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/sessiondesk/server/auth"
	"github.com/sessiondesk/server/cliparse"
	"github.com/sessiondesk/server/middleware"
	"github.com/sessiondesk/server/models"
	"github.com/sessiondesk/server/roster"
	"github.com/sessiondesk/server/sheet"
)

// maxUploadBytes caps roster workbook uploads.
const maxUploadBytes = 16 << 20

type SessionHandler struct {
	store sheet.Store
	cfg   cliparse.Config
}

func NewSessionHandler(store sheet.Store, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{store: store, cfg: cfg}
}

// UploadSession handles POST /sessions
// Imports an uploaded .xlsx roster into the attendance worksheet under a
// freshly generated session id.
func (h *SessionHandler) UploadSession(w http.ResponseWriter, r *http.Request) {
	// Validate admin key
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	sessionName := strings.TrimSpace(r.FormValue("session_name"))
	if sessionName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_name is required")
		return
	}
	sessionDate := strings.TrimSpace(r.FormValue("session_date"))
	if sessionDate == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_date is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	// Spool the upload to disk under a generated name; the workbook reader
	// needs a real file.
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".xlsx"
	}
	tmpPath := filepath.Join(h.cfg.UploadDir, uuid.NewString()+ext)
	dst, err := os.Create(tmpPath)
	if err != nil {
		slog.Error("failed to create upload file", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save upload")
		return
	}
	defer os.Remove(tmpPath)

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		slog.Error("failed to write upload file", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save upload")
		return
	}
	dst.Close()

	table, err := roster.ParseWorkbook(tmpPath)
	if err != nil {
		slog.Warn("failed to parse roster workbook", "error", err, "filename", header.Filename)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Could not read workbook: "+err.Error())
		return
	}

	importer := roster.NewImporter(h.store)
	sessionID, rows, err := importer.Import(table, sessionName, sessionDate)
	if err != nil {
		slog.Error("failed to import roster", "error", err, "session_name", sessionName)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to import roster")
		return
	}

	slog.Info("session uploaded",
		"session_id", sessionID,
		"rows", humanize.Comma(int64(rows)),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.UploadSessionResponse{
		SessionID: sessionID,
		Rows:      rows,
	})
}
