// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package attendance locates and mutates attendance records in the attendance
worksheet.

# Matching Rules

A record matches when its Session ID cell equals the requested session id
exactly and its Official Email cell equals the requested email after trimming
and lowercasing both sides. Rows are scanned in worksheet order and the first
match wins.

# Status Transition

The Attendance cell only ever moves from empty to "Present". Marking an
already-Present record is a success and a no-op, so concurrent marking
attempts for the same record are harmless: both observe or produce "Present",
and at worst the timestamp is written twice with last-write-wins.
*/
package attendance
