// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides random suffix generation for session identifiers and
admin key validation for the roster upload endpoint.

Attendance check-in and feedback submission are public; only the roster
upload is privileged, gated by the X-Admin-Key header compared in constant
time against ADMIN_KEY.
*/
package auth
