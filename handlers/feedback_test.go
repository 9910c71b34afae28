// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sessiondesk/server/models"
	"github.com/sessiondesk/server/sheet"
	"github.com/sessiondesk/server/testutil"
)

func TestSubmitFeedback(t *testing.T) {
	store := testutil.SetupTestStore(t)
	testutil.SeedRoster(t, store,
		testutil.RosterRow("S1", "Sales Kickoff", "2024-01-01", "E1", "Jane Doe", "jane@co.com", "Sales"),
	)
	handler := NewFeedbackHandler(store, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/feedback", models.FeedbackRequest{
		SessionID: "S1",
		Name:      "Jane Doe",
		Email:     "jane@co.com",
		Q1:        "5",
		Q2:        "4",
		Q3:        "5",
		Q4:        "3",
		Q5:        "4",
		Q6:        "5",
		Q7:        "5",
		Q8:        "4",
		Q9:        "5",
		Q10:       "5",
	}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.FeedbackResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Recorded {
		t.Error("Expected recorded=true")
	}
	if !resp.MarkedNow || resp.Attendance != models.StatusMarkedPresent {
		t.Errorf("Expected attendance marked via feedback, got %+v", resp)
	}
}

func TestSubmitFeedbackNotOnRoster(t *testing.T) {
	store := testutil.SetupTestStore(t)
	testutil.SeedRoster(t, store,
		testutil.RosterRow("S1", "Sales Kickoff", "2024-01-01", "E1", "Jane Doe", "jane@co.com", "Sales"),
	)
	handler := NewFeedbackHandler(store, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/feedback", models.FeedbackRequest{
		SessionID: "S1",
		Name:      "Stranger",
		Email:     "unknown@co.com",
		Q1:        "3",
	}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	// Feedback recording is the primary goal: still a 201.
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.FeedbackResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Attendance != models.StatusNotOnRoster {
		t.Errorf("Expected status %q, got %q", models.StatusNotOnRoster, resp.Attendance)
	}

	fbRows := testutil.WorksheetValues(t, store, sheet.FeedbackSheet)
	if got := len(fbRows) - 1; got != 1 {
		t.Errorf("Expected 1 feedback row, got %d", got)
	}
}

func TestSubmitFeedbackWorksheetFault(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewFeedbackHandler(store, testutil.GetTestConfig())

	// Attendance worksheet missing the Attendance and Timestamp columns:
	// a configuration fault, not a roster miss.
	ws, err := store.AddWorksheet(sheet.AttendanceSheet, 1, 2)
	if err != nil {
		t.Fatalf("Failed to add worksheet: %v", err)
	}
	if err := ws.AppendRow([]string{sheet.ColSessionID, sheet.ColEmail}); err != nil {
		t.Fatalf("Failed to write header: %v", err)
	}

	req := testutil.MakeRequest("POST", "/feedback", models.FeedbackRequest{
		SessionID: "S1",
		Name:      "Jane Doe",
		Email:     "jane@co.com",
		Q1:        "5",
	}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	// The feedback row still lands, but the client must not be told their
	// email is off the roster.
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.FeedbackResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Recorded {
		t.Error("Expected recorded=true")
	}
	if resp.Attendance != models.StatusAttendanceError {
		t.Errorf("Expected status %q, got %q", models.StatusAttendanceError, resp.Attendance)
	}
}

func TestSubmitFeedbackValidation(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewFeedbackHandler(store, testutil.GetTestConfig())

	tests := []struct {
		name string
		body models.FeedbackRequest
	}{
		{"missing session id", models.FeedbackRequest{Name: "Jane", Email: "jane@co.com"}},
		{"missing name", models.FeedbackRequest{SessionID: "S1", Email: "jane@co.com"}},
		{"malformed email", models.FeedbackRequest{SessionID: "S1", Name: "Jane", Email: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/feedback", tt.body, nil)
			w := httptest.NewRecorder()
			handler.Submit(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	// Nothing was appended for rejected submissions.
	if _, err := store.Worksheet(sheet.FeedbackSheet); err == nil {
		rows := testutil.WorksheetValues(t, store, sheet.FeedbackSheet)
		if len(rows) > 1 {
			t.Errorf("Expected no feedback rows after rejected submissions, got %d", len(rows)-1)
		}
	}
}

func TestSubmitFeedbackUnrosteredAllowed(t *testing.T) {
	store := testutil.SetupTestStore(t)
	testutil.SeedRoster(t, store,
		testutil.RosterRow("S1", "Sales Kickoff", "2024-01-01", "E1", "Jane Doe", "jane@co.com", "Sales"),
	)
	cfg := testutil.GetTestConfig()
	cfg.AllowUnrostered = true
	handler := NewFeedbackHandler(store, cfg)

	req := testutil.MakeRequest("POST", "/feedback", models.FeedbackRequest{
		SessionID:   "S1",
		SessionName: "Sales Kickoff",
		SessionDate: "2024-01-01",
		Name:        "Walk In",
		Email:       "walkin@co.com",
	}, nil)
	w := httptest.NewRecorder()
	handler.Submit(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.FeedbackResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Attendance != models.StatusNewEntryMarked {
		t.Errorf("Expected status %q, got %q", models.StatusNewEntryMarked, resp.Attendance)
	}

	attRows := testutil.WorksheetValues(t, store, sheet.AttendanceSheet)
	if got := len(attRows) - 1; got != 2 {
		t.Errorf("Expected a new attendance row, got %d rows", got)
	}
}
