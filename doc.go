// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Session Desk server.

Session Desk collects session attendance check-ins and feedback submissions,
validating attendee emails against an uploaded roster and writing everything
to a shared sheet-like store (Master_Attendance and Master_Feedback
worksheets).

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=sessiondesk.db ADMIN_KEY=... go run .

Or against a real Google Sheets spreadsheet:

	go run . -b google -s <spreadsheet-id> -c service-account.json

# Configuration

Required settings:

  - ADMIN_KEY (--admin-key): Secret gating the roster upload endpoint
  - DATABASE_URL (-d): Connection string (sqlite/postgres backends)
  - SPREADSHEET_ID (-s), GOOGLE_CREDENTIALS_FILE (-c): google backend

Optional settings:

  - PORT (-p): Server port (default: 4170)
  - STORE_BACKEND (-b): sqlite (default), postgres, or google
  - UPLOAD_DIR (-u): Spool directory for uploaded workbooks
  - ALLOW_UNROSTERED (--allow-unrostered): Append a new attendance row for
    feedback from emails not on the roster instead of rejecting them

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (sessions, attendance, feedback, pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, JSON helpers
  - models: Request/response types
  - sheet: Worksheet store adapter (Google Sheets, sqlite, postgres)
  - roster: Excel roster import and session-id generation
  - attendance: Roster lookup and present-marking
  - feedback: Feedback/attendance reconciliation
  - auth: Admin key validation and suffix generation
  - db: Schema creation for the SQL backends
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
