// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the relational schema for the SQL worksheet backend.

# Schema

Two tables:

  - worksheet: one record per named tab
  - sheet_row: (sheet, row_num) -> JSON-encoded cell array

The schema is portable across postgres and sqlite; CreateSchema is idempotent
and runs at startup when the sqlite or postgres backend is selected.

# Indexes

  - sheet_row (sheet, row_num) primary key
  - idx_sheet_row_sheet for full-worksheet reads
*/
package db
