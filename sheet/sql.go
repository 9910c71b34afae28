// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// SQLStore emulates a worksheet store on a relational database. Each row of a
// worksheet is one record in sheet_row, its cells JSON-encoded in order.
// Works with both postgres (lib/pq) and sqlite (modernc.org/sqlite); queries
// use $N placeholders, which both drivers accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Worksheet(name string) (Worksheet, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM worksheet WHERE name = $1)
	`, name).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to look up worksheet %s: %w", name, err)
	}
	if !exists {
		return nil, ErrWorksheetNotFound
	}
	return &sqlWorksheet{db: s.db, name: name}, nil
}

func (s *SQLStore) AddWorksheet(name string, rows, cols int) (Worksheet, error) {
	// rows/cols are sizing hints for grid-backed stores; nothing to
	// preallocate here.
	_, err := s.db.Exec(`
		INSERT INTO worksheet (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create worksheet %s: %w", name, err)
	}
	return &sqlWorksheet{db: s.db, name: name}, nil
}

type sqlWorksheet struct {
	db   *sql.DB
	name string
}

func (w *sqlWorksheet) Name() string { return w.name }

func (w *sqlWorksheet) HeaderRow() ([]string, error) {
	var cells string
	err := w.db.QueryRow(`
		SELECT cells FROM sheet_row WHERE sheet = $1 AND row_num = 1
	`, w.name).Scan(&cells)
	if err == sql.ErrNoRows {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", w.name, err)
	}
	return decodeCells(cells)
}

func (w *sqlWorksheet) AllValues() ([][]string, error) {
	rows, err := w.db.Query(`
		SELECT cells FROM sheet_row WHERE sheet = $1 ORDER BY row_num
	`, w.name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", w.name, err)
	}
	defer rows.Close()

	var all [][]string
	for rows.Next() {
		var cells string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("failed to scan row of %s: %w", w.name, err)
		}
		row, err := decodeCells(cells)
		if err != nil {
			return nil, err
		}
		all = append(all, row)
	}
	return all, rows.Err()
}

func (w *sqlWorksheet) AppendRow(values []string) error {
	cells, err := encodeCells(values)
	if err != nil {
		return err
	}
	// MAX over an empty table yields one NULL row, so this works for the
	// first append as well.
	_, err = w.db.Exec(`
		INSERT INTO sheet_row (sheet, row_num, cells)
		SELECT $1, COALESCE(MAX(row_num), 0) + 1, $2 FROM sheet_row WHERE sheet = $1
	`, w.name, cells)
	if err != nil {
		return fmt.Errorf("failed to append to %s: %w", w.name, err)
	}
	return nil
}

func (w *sqlWorksheet) AppendRows(rows [][]string) error {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin append to %s: %w", w.name, err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRow(`
		SELECT COALESCE(MAX(row_num), 0) + 1 FROM sheet_row WHERE sheet = $1
	`, w.name).Scan(&next); err != nil {
		return fmt.Errorf("failed to size %s: %w", w.name, err)
	}
	for i, row := range rows {
		cells, err := encodeCells(row)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO sheet_row (sheet, row_num, cells) VALUES ($1, $2, $3)
		`, w.name, next+i, cells); err != nil {
			return fmt.Errorf("failed to append to %s: %w", w.name, err)
		}
	}
	return tx.Commit()
}

func (w *sqlWorksheet) UpdateCell(row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("invalid cell coordinates (%d, %d)", row, col)
	}
	var cells string
	err := w.db.QueryRow(`
		SELECT cells FROM sheet_row WHERE sheet = $1 AND row_num = $2
	`, w.name, row).Scan(&cells)
	if err == sql.ErrNoRows {
		return fmt.Errorf("row %d of %s does not exist", row, w.name)
	}
	if err != nil {
		return fmt.Errorf("failed to read row %d of %s: %w", row, w.name, err)
	}

	values, err := decodeCells(cells)
	if err != nil {
		return err
	}
	for len(values) < col {
		values = append(values, "")
	}
	values[col-1] = value

	updated, err := encodeCells(values)
	if err != nil {
		return err
	}
	_, err = w.db.Exec(`
		UPDATE sheet_row SET cells = $1 WHERE sheet = $2 AND row_num = $3
	`, updated, w.name, row)
	if err != nil {
		return fmt.Errorf("failed to update cell (%d, %d) of %s: %w", row, col, w.name, err)
	}
	return nil
}

func encodeCells(values []string) (string, error) {
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode row: %w", err)
	}
	return string(b), nil
}

func decodeCells(cells string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(cells), &values); err != nil {
		return nil, fmt.Errorf("failed to decode row: %w", err)
	}
	return values, nil
}
