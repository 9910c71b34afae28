// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleStore backs the worksheet store with a Google Sheets spreadsheet.
// Credentials are loaded once at construction and the handle is passed down;
// there is no package-level client state.
type GoogleStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewGoogleStore authenticates with a service-account credentials file and
// binds to the given spreadsheet.
func NewGoogleStore(ctx context.Context, credentialsFile, spreadsheetID string) (*GoogleStore, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return &GoogleStore{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *GoogleStore) Worksheet(name string) (Worksheet, error) {
	resp, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet: %w", err)
	}
	for _, sh := range resp.Sheets {
		if sh.Properties != nil && sh.Properties.Title == name {
			return &googleWorksheet{svc: s.svc, spreadsheetID: s.spreadsheetID, title: name}, nil
		}
	}
	return nil, ErrWorksheetNotFound
}

func (s *GoogleStore) AddWorksheet(name string, rows, cols int) (Worksheet, error) {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: name,
					GridProperties: &sheets.GridProperties{
						RowCount:    int64(rows),
						ColumnCount: int64(cols),
					},
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Do(); err != nil {
		return nil, fmt.Errorf("failed to add worksheet %s: %w", name, err)
	}
	return &googleWorksheet{svc: s.svc, spreadsheetID: s.spreadsheetID, title: name}, nil
}

type googleWorksheet struct {
	svc           *sheets.Service
	spreadsheetID string
	title         string
}

func (w *googleWorksheet) Name() string { return w.title }

func (w *googleWorksheet) HeaderRow() ([]string, error) {
	resp, err := w.svc.Spreadsheets.Values.Get(w.spreadsheetID, w.rangeRef("1:1")).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", w.title, err)
	}
	if len(resp.Values) == 0 {
		return []string{}, nil
	}
	return cellStrings(resp.Values[0]), nil
}

func (w *googleWorksheet) AllValues() ([][]string, error) {
	resp, err := w.svc.Spreadsheets.Values.Get(w.spreadsheetID, w.rangeRef("")).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", w.title, err)
	}
	all := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		all = append(all, cellStrings(row))
	}
	return all, nil
}

func (w *googleWorksheet) AppendRow(values []string) error {
	return w.AppendRows([][]string{values})
}

func (w *googleWorksheet) AppendRows(rows [][]string) error {
	vr := &sheets.ValueRange{Values: cellValues(rows)}
	_, err := w.svc.Spreadsheets.Values.Append(w.spreadsheetID, w.rangeRef("A1"), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", w.title, err)
	}
	return nil
}

func (w *googleWorksheet) UpdateCell(row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("invalid cell coordinates (%d, %d)", row, col)
	}
	ref := w.rangeRef(fmt.Sprintf("%s%d", columnLetter(col), row))
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := w.svc.Spreadsheets.Values.Update(w.spreadsheetID, ref, vr).
		ValueInputOption("USER_ENTERED").
		Do()
	if err != nil {
		return fmt.Errorf("failed to update cell (%d, %d) of %s: %w", row, col, w.title, err)
	}
	return nil
}

// rangeRef builds an A1 reference scoped to this worksheet. Titles are
// single-quoted so names with spaces stay valid.
func (w *googleWorksheet) rangeRef(a1 string) string {
	escaped := strings.ReplaceAll(w.title, "'", "''")
	if a1 == "" {
		return "'" + escaped + "'"
	}
	return "'" + escaped + "'!" + a1
}

// columnLetter converts a 1-based column index to its A1 letter form.
func columnLetter(col int) string {
	var b []byte
	for col > 0 {
		col--
		b = append([]byte{byte('A' + col%26)}, b...)
		col /= 26
	}
	return string(b)
}

func cellStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func cellValues(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		vals := make([]interface{}, len(row))
		for j, v := range row {
			vals[j] = v
		}
		out[i] = vals
	}
	return out
}
