// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/sessiondesk/server/db"
	"github.com/sessiondesk/server/sheet"
)

func setupStore(t *testing.T) *sheet.SQLStore {
	t.Helper()

	conn, err := sql.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
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

func TestWorksheetNotFound(t *testing.T) {
	store := setupStore(t)

	_, err := store.Worksheet("Nope")
	if !errors.Is(err, sheet.ErrWorksheetNotFound) {
		t.Errorf("Expected ErrWorksheetNotFound, got %v", err)
	}
}

func TestOpenCreatesWithHeader(t *testing.T) {
	store := setupStore(t)

	ws, err := sheet.Open(store, sheet.AttendanceSheet, sheet.AttendanceHeader)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	header, err := ws.HeaderRow()
	if err != nil {
		t.Fatalf("HeaderRow failed: %v", err)
	}
	if len(header) != len(sheet.AttendanceHeader) {
		t.Fatalf("Expected %d header columns, got %d", len(sheet.AttendanceHeader), len(header))
	}
	for i, want := range sheet.AttendanceHeader {
		if header[i] != want {
			t.Errorf("Header %d: expected %q, got %q", i, want, header[i])
		}
	}

	// Opening again must not write a second header.
	if _, err := sheet.Open(store, sheet.AttendanceSheet, sheet.AttendanceHeader); err != nil {
		t.Fatalf("Second Open failed: %v", err)
	}
	values, err := ws.AllValues()
	if err != nil {
		t.Fatalf("AllValues failed: %v", err)
	}
	if len(values) != 1 {
		t.Errorf("Expected only the header row, got %d rows", len(values))
	}
}

func TestAppendAndRead(t *testing.T) {
	store := setupStore(t)

	ws, err := sheet.Open(store, "Rows", []string{"A", "B"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if err := ws.AppendRow([]string{"1", "2"}); err != nil {
		t.Fatalf("AppendRow failed: %v", err)
	}
	if err := ws.AppendRows([][]string{{"3", "4"}, {"5", "6"}}); err != nil {
		t.Fatalf("AppendRows failed: %v", err)
	}

	values, err := ws.AllValues()
	if err != nil {
		t.Fatalf("AllValues failed: %v", err)
	}
	if len(values) != 4 {
		t.Fatalf("Expected 4 rows (header + 3), got %d", len(values))
	}
	if values[3][0] != "5" || values[3][1] != "6" {
		t.Errorf("Unexpected last row: %v", values[3])
	}
}

func TestUpdateCell(t *testing.T) {
	store := setupStore(t)

	ws, err := sheet.Open(store, "Cells", []string{"A", "B", "C"})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := ws.AppendRow([]string{"x", "y", "z"}); err != nil {
		t.Fatalf("AppendRow failed: %v", err)
	}

	// Mutation is immediately visible to subsequent reads.
	if err := ws.UpdateCell(2, 2, "updated"); err != nil {
		t.Fatalf("UpdateCell failed: %v", err)
	}
	values, err := ws.AllValues()
	if err != nil {
		t.Fatalf("AllValues failed: %v", err)
	}
	if values[1][1] != "updated" {
		t.Errorf("Expected cell (2,2) updated, got %q", values[1][1])
	}

	// Updating a column beyond the stored row width grows the row.
	if err := ws.UpdateCell(2, 5, "wide"); err != nil {
		t.Fatalf("UpdateCell beyond width failed: %v", err)
	}
	values, _ = ws.AllValues()
	if got := sheet.Cell(values[1], 5); got != "wide" {
		t.Errorf("Expected grown cell to hold 'wide', got %q", got)
	}

	// Updating a nonexistent row is an error.
	if err := ws.UpdateCell(99, 1, "nope"); err == nil {
		t.Error("Expected an error for a nonexistent row")
	}
}

func TestColumnIndex(t *testing.T) {
	header := []string{"Session ID", "Official Email", "Attendance"}

	tests := []struct {
		name string
		col  string
		want int
	}{
		{"first column", "Session ID", 1},
		{"last column", "Attendance", 3},
		{"missing column", "Timestamp", 0},
		{"case sensitive", "official email", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sheet.ColumnIndex(header, tt.col); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCellShortRow(t *testing.T) {
	row := []string{"a", "b"}
	if got := sheet.Cell(row, 2); got != "b" {
		t.Errorf("Expected 'b', got %q", got)
	}
	if got := sheet.Cell(row, 5); got != "" {
		t.Errorf("Expected empty string past row end, got %q", got)
	}
	if got := sheet.Cell(row, 0); got != "" {
		t.Errorf("Expected empty string for invalid column, got %q", got)
	}
}
