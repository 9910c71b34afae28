// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sessiondesk/server/auth"
	"github.com/sessiondesk/server/sheet"
)

var (
	// ErrEmptyWorkbook means the uploaded workbook has no sheets or no
	// header row.
	ErrEmptyWorkbook = errors.New("workbook has no data")

	// ErrIDCollision means a unique session id could not be generated.
	ErrIDCollision = errors.New("could not generate a unique session id")
)

const (
	suffixLen     = 4
	maxIDAttempts = 5
)

// Table is a parsed roster: trimmed column headers plus data rows with cells
// in header order.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ParseWorkbook reads the first sheet of an .xlsx workbook. Row 1 becomes the
// header (whitespace-trimmed); the remaining rows are data. Short rows are
// padded to header width, since the reader omits trailing empty cells.
func ParseWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorkbook
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		for len(row) < len(headers) {
			row = append(row, "")
		}
		data = append(data, row[:len(headers)])
	}

	return &Table{Headers: headers, Rows: data}, nil
}

// SessionID builds a session identifier from its parts: the session name with
// spaces replaced by underscores, the date string, and a random suffix.
func SessionID(name, date, suffix string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_") + "_" + date + "_" + suffix
}

// Importer merges parsed rosters into the attendance worksheet.
type Importer struct {
	store sheet.Store

	// suffix generates the random session-id suffix. Swapped out in tests
	// to force collisions.
	suffix func(n int) (string, error)
}

func NewImporter(store sheet.Store) *Importer {
	return &Importer{store: store, suffix: auth.GenerateSuffix}
}

// Import appends every roster row to the attendance worksheet under a freshly
// generated session id: three session columns are prepended to each row and
// empty Attendance/Timestamp columns appended, then all rows are written in
// one batched append. Returns the generated session id and the row count.
//
// The random suffix makes the id unique only probabilistically, so the
// generated id is checked against existing worksheet rows and re-rolled on
// collision, up to a bounded number of attempts.
func (im *Importer) Import(t *Table, sessionName, sessionDate string) (string, int, error) {
	ws, err := sheet.Open(im.store, sheet.AttendanceSheet, sheet.AttendanceHeader)
	if err != nil {
		return "", 0, err
	}

	existing, err := existingIDs(ws)
	if err != nil {
		return "", 0, err
	}

	var sessionID string
	for attempt := 0; ; attempt++ {
		if attempt == maxIDAttempts {
			return "", 0, ErrIDCollision
		}
		suffix, err := im.suffix(suffixLen)
		if err != nil {
			return "", 0, err
		}
		sessionID = SessionID(sessionName, sessionDate, suffix)
		if !existing[sessionID] {
			break
		}
	}

	out := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := make([]string, 0, len(r)+5)
		row = append(row, sessionID, sessionName, sessionDate)
		row = append(row, r...)
		row = append(row, "", "") // Attendance, Timestamp
		out = append(out, row)
	}

	if err := ws.AppendRows(out); err != nil {
		return "", 0, err
	}
	return sessionID, len(out), nil
}

// existingIDs collects every session id already present in the worksheet.
func existingIDs(ws sheet.Worksheet) (map[string]bool, error) {
	header, err := ws.HeaderRow()
	if err != nil {
		return nil, err
	}
	col := sheet.ColumnIndex(header, sheet.ColSessionID)
	if col == 0 {
		return nil, fmt.Errorf("attendance worksheet has no %s column", sheet.ColSessionID)
	}

	values, err := ws.AllValues()
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool)
	for i, row := range values {
		if i == 0 {
			continue
		}
		if id := sheet.Cell(row, col); id != "" {
			ids[id] = true
		}
	}
	return ids, nil
}
