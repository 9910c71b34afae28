// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheet abstracts a remote, sheet-like tabular store with named
worksheets, a header row per worksheet, and 1-based row/column addressing.

# Store Backends

Two Store implementations exist:

  - GoogleStore: a Google Sheets spreadsheet via google.golang.org/api.
  - SQLStore: a relational emulation (postgres or sqlite) that keeps each
    worksheet row as a JSON-encoded cell array. Used for local deployments
    and as the test double.

# Semantics

Every mutation is immediately visible to subsequent reads; there is no write
buffering. Multi-cell changes are NOT atomic: callers updating a status cell
and then a timestamp cell issue two independent writes, and a failure between
them can leave the second cell stale.

Worksheets are opened lazily via Open, which creates the worksheet with a
canonical header row when it does not exist yet:

	ws, err := sheet.Open(store, sheet.AttendanceSheet, sheet.AttendanceHeader)

Columns are resolved by header name with ColumnIndex; reordering header
columns does not affect callers as long as the names persist.
*/
package sheet
