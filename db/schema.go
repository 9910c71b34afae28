// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the tables backing the SQL worksheet store.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Worksheets (one record per named tab)
CREATE TABLE IF NOT EXISTS worksheet (
    name TEXT PRIMARY KEY
);

-- Worksheet rows; cells holds the JSON-encoded cell array in column order.
-- row_num 1 is the header row.
CREATE TABLE IF NOT EXISTS sheet_row (
    sheet TEXT NOT NULL REFERENCES worksheet(name) ON DELETE CASCADE,
    row_num INTEGER NOT NULL,
    cells TEXT NOT NULL,
    PRIMARY KEY (sheet, row_num)
);

CREATE INDEX IF NOT EXISTS idx_sheet_row_sheet ON sheet_row(sheet);
`
