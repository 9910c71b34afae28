// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared by the
Session Desk handlers and core packages.

Request types carry validator/v10 tags; handlers validate them before any
store access. AttendanceRecord mirrors the column order of the attendance
worksheet but is a convenience only — the core packages resolve columns by
header name, never by struct position.
*/
package models
