// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package feedback reconciles feedback submissions with attendance state.

A submission triggers two steps:

 1. Attendance side effect: the attendance worksheet is scanned exactly like
    package attendance does; a matching empty record is marked Present, a
    matching Present record is left alone, and an unmatched email is either
    rejected (default) or appended as a new Present row (ALLOW_UNROSTERED).
 2. Feedback append: a row with the submission timestamp, session fields,
    respondent fields, and the ten answers in fixed order is appended to the
    feedback worksheet regardless of step 1's outcome.

Feedback rows have no uniqueness constraint; duplicate submissions produce
duplicate rows.
*/
package feedback
