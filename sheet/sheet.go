// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"errors"
	"fmt"
)

// ErrWorksheetNotFound is returned by Store.Worksheet for unknown names.
var ErrWorksheetNotFound = errors.New("worksheet not found")

// Worksheet names used by the service.
const (
	AttendanceSheet = "Master_Attendance"
	FeedbackSheet   = "Master_Feedback"
)

// Attendance worksheet column names. Columns are resolved by name against the
// header row, never by fixed position.
const (
	ColSessionID    = "Session ID"
	ColSessionName  = "Session Name"
	ColSessionDate  = "Session Date"
	ColEmployeeCode = "Employee Code"
	ColEmployeeName = "Employee Name"
	ColEmail        = "Official Email"
	ColBusiness     = "Business"
	ColAttendance   = "Attendance"
	ColTimestamp    = "Timestamp"
)

// AttendanceHeader is the canonical header row written when the attendance
// worksheet is created lazily.
var AttendanceHeader = []string{
	ColSessionID, ColSessionName, ColSessionDate,
	ColEmployeeCode, ColEmployeeName, ColEmail, ColBusiness,
	ColAttendance, ColTimestamp,
}

// FeedbackHeader is the canonical header row of the feedback worksheet.
var FeedbackHeader = []string{
	"Timestamp", "Session ID", "Session Name", "Session Date",
	"Employee Name", "Email", "Phone",
	"Q1", "Q2", "Q3", "Q4", "Q5", "Q6", "Q7", "Q8", "Q9", "Q10",
}

// Worksheet is a named table with a header in row 1 and data from row 2.
// All coordinates are 1-based, matching the remote store's addressing.
type Worksheet interface {
	Name() string
	HeaderRow() ([]string, error)
	AllValues() ([][]string, error)
	AppendRow(values []string) error
	AppendRows(rows [][]string) error
	UpdateCell(row, col int, value string) error
}

// Store is a handle to a spreadsheet-like collection of named worksheets.
// Implementations must make every mutation visible to subsequent reads;
// callers must not assume multi-cell updates are atomic.
type Store interface {
	// Worksheet returns the named worksheet, or ErrWorksheetNotFound.
	Worksheet(name string) (Worksheet, error)
	// AddWorksheet creates an empty worksheet with the given dimensions.
	AddWorksheet(name string, rows, cols int) (Worksheet, error)
}

// Open returns the named worksheet, creating it with the given header row
// when it does not exist yet.
func Open(st Store, name string, header []string) (Worksheet, error) {
	ws, err := st.Worksheet(name)
	if errors.Is(err, ErrWorksheetNotFound) {
		ws, err = st.AddWorksheet(name, 100, 20)
		if err != nil {
			return nil, fmt.Errorf("failed to create worksheet %s: %w", name, err)
		}
		if err := ws.AppendRow(header); err != nil {
			return nil, fmt.Errorf("failed to write header for %s: %w", name, err)
		}
		return ws, nil
	}
	if err != nil {
		return nil, err
	}
	return ws, nil
}

// ColumnIndex returns the 1-based position of name in header, or 0 when the
// column is absent. Matching is case-sensitive and exact.
func ColumnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i + 1
		}
	}
	return 0
}

// Cell returns row[col-1], tolerating short rows the way the remote store
// does (trailing empty cells are often omitted from reads).
func Cell(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return row[col-1]
}
