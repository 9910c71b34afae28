// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package attendance

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sessiondesk/server/models"
	"github.com/sessiondesk/server/sheet"
)

var (
	// ErrMissingColumns means the attendance worksheet header lacks a
	// required column. This is a configuration fault, not bad user input.
	ErrMissingColumns = errors.New("required column missing from attendance worksheet")

	// ErrNotOnRoster means no roster row matches the (session, email) pair.
	ErrNotOnRoster = errors.New("email not on the roster for this session")
)

// TimestampFormat is the datetime layout written to the Timestamp column.
const TimestampFormat = "2006-01-02 15:04:05"

// Columns holds the resolved 1-based positions of the columns the matcher
// needs. Positions come from the header row, so reordering columns in the
// worksheet does not break matching as long as the names persist.
type Columns struct {
	SessionID  int
	Email      int
	Attendance int
	Timestamp  int
}

// ResolveColumns locates the required columns in a header row. Matching is
// case-sensitive and exact.
func ResolveColumns(header []string) (Columns, error) {
	cols := Columns{
		SessionID:  sheet.ColumnIndex(header, sheet.ColSessionID),
		Email:      sheet.ColumnIndex(header, sheet.ColEmail),
		Attendance: sheet.ColumnIndex(header, sheet.ColAttendance),
		Timestamp:  sheet.ColumnIndex(header, sheet.ColTimestamp),
	}
	for _, c := range []struct {
		name string
		pos  int
	}{
		{sheet.ColSessionID, cols.SessionID},
		{sheet.ColEmail, cols.Email},
		{sheet.ColAttendance, cols.Attendance},
		{sheet.ColTimestamp, cols.Timestamp},
	} {
		if c.pos == 0 {
			return Columns{}, fmt.Errorf("%w: %s", ErrMissingColumns, c.name)
		}
	}
	return cols, nil
}

// FindRow scans data rows in order for the first row matching the session id
// exactly and the email case-insensitively (trimmed). Returns the 1-based
// worksheet row number. Matching is assumed unique per (session, email);
// first match wins if duplicates exist.
func FindRow(values [][]string, cols Columns, sessionID, email string) (int, []string, bool) {
	want := emailKey(email)
	for i, row := range values {
		if i == 0 {
			continue // header
		}
		if sheet.Cell(row, cols.SessionID) == sessionID && emailKey(sheet.Cell(row, cols.Email)) == want {
			return i + 1, row, true
		}
	}
	return 0, nil, false
}

func emailKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Matcher looks up and mutates attendance records. It holds no state between
// calls; every lookup re-reads the full worksheet.
type Matcher struct {
	store sheet.Store
}

func NewMatcher(store sheet.Store) *Matcher {
	return &Matcher{store: store}
}

// MarkPresent marks the roster row for (sessionID, email) as Present with the
// current timestamp. Returns true when the row was mutated by this call and
// false when it was already Present (marking is idempotent). Returns
// ErrNotOnRoster when no row matches.
//
// Status and timestamp are two independent cell writes; a failure between
// them can leave a Present record with an empty timestamp.
func (m *Matcher) MarkPresent(sessionID, email string) (bool, error) {
	ws, err := m.store.Worksheet(sheet.AttendanceSheet)
	if err != nil {
		return false, err
	}

	header, err := ws.HeaderRow()
	if err != nil {
		return false, err
	}
	cols, err := ResolveColumns(header)
	if err != nil {
		return false, err
	}

	values, err := ws.AllValues()
	if err != nil {
		return false, err
	}

	rowNum, row, found := FindRow(values, cols, sessionID, email)
	if !found {
		return false, ErrNotOnRoster
	}

	if strings.EqualFold(strings.TrimSpace(sheet.Cell(row, cols.Attendance)), models.AttendanceMarked) {
		// Already marked; re-marking conveys no new information.
		return false, nil
	}

	if err := ws.UpdateCell(rowNum, cols.Attendance, models.AttendanceMarked); err != nil {
		return false, err
	}
	if err := ws.UpdateCell(rowNum, cols.Timestamp, time.Now().Format(TimestampFormat)); err != nil {
		return false, err
	}
	return true, nil
}

// EmailExists reports whether (sessionID, email) matches a roster row. It
// performs the same scan and matching as MarkPresent but never mutates.
// A missing attendance worksheet reads as "not found".
func (m *Matcher) EmailExists(sessionID, email string) (bool, error) {
	ws, err := m.store.Worksheet(sheet.AttendanceSheet)
	if errors.Is(err, sheet.ErrWorksheetNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	header, err := ws.HeaderRow()
	if err != nil {
		return false, err
	}
	cols, err := ResolveColumns(header)
	if err != nil {
		return false, err
	}

	values, err := ws.AllValues()
	if err != nil {
		return false, err
	}

	_, _, found := FindRow(values, cols, sessionID, email)
	return found, nil
}
