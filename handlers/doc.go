// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Session Desk API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - SessionHandler: roster workbook upload
  - AttendanceHandler: check-in and email-existence probe
  - FeedbackHandler: feedback submission with attendance reconciliation
  - PageHandler: server-rendered feedback form pages

Handlers are created via constructor functions that accept sheet.Store and
Config:

	sessionHandler := handlers.NewSessionHandler(store, cfg)

# Session Flow

An admin uploads a roster, then shares the returned session id:

	POST /sessions                       → UploadSession (X-Admin-Key required)
	POST /attendance/check-in            → Checkin
	GET  /attendance/email-exists        → EmailExists
	POST /feedback                       → Submit

# Error Mapping

Field validation failures are rejected with 400 before any store access.
"Not on roster" maps to 404 with an actionable message so the attendee can
correct a typo; store failures map to a generic 500. The feedback endpoint
returns 201 for any well-formed submission, reporting the attendance side
effect in the response body instead of failing the request.
*/
package handlers
