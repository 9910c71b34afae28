// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	_ "modernc.org/sqlite"

	"github.com/sessiondesk/server/cliparse"
	"github.com/sessiondesk/server/db"
	"github.com/sessiondesk/server/sheet"
)

// SetupTestStore creates a fresh in-memory sqlite worksheet store.
func SetupTestStore(t *testing.T) *sheet.SQLStore {
	t.Helper()

	// A unique shared-cache name per test; the single pooled connection
	// keeps the in-memory database alive for the test's duration.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return sheet.NewSQLStore(conn)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      4170,
		Backend:   cliparse.BackendSQLite,
		AdminKey:  "test-admin-key",
		UploadDir: "",
	}
}

// RosterRow builds one canonical attendance worksheet row with empty
// Attendance and Timestamp cells.
func RosterRow(sessionID, sessionName, sessionDate, code, name, email, business string) []string {
	return []string{sessionID, sessionName, sessionDate, code, name, email, business, "", ""}
}

// SeedRoster creates the attendance worksheet (canonical header) and appends
// the given rows.
func SeedRoster(t *testing.T, store sheet.Store, rows ...[]string) {
	t.Helper()

	ws, err := sheet.Open(store, sheet.AttendanceSheet, sheet.AttendanceHeader)
	if err != nil {
		t.Fatalf("Failed to open attendance worksheet: %v", err)
	}
	if err := ws.AppendRows(rows); err != nil {
		t.Fatalf("Failed to seed roster: %v", err)
	}
}

// WorksheetValues returns all rows (header included) of the named worksheet.
func WorksheetValues(t *testing.T, store sheet.Store, name string) [][]string {
	t.Helper()

	ws, err := store.Worksheet(name)
	if err != nil {
		t.Fatalf("Failed to open worksheet %s: %v", name, err)
	}
	values, err := ws.AllValues()
	if err != nil {
		t.Fatalf("Failed to read worksheet %s: %v", name, err)
	}
	return values
}

// WriteTestWorkbook creates an .xlsx file with one sheet and returns its
// path. The first row is the header.
func WriteTestWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("Failed to build cell reference: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", ref, &row); err != nil {
			t.Fatalf("Failed to write workbook row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
