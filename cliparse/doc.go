// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses CLI flags with environment variable fallback.

Flags take precedence over environment variables. Required settings depend on
the selected backend: sqlite/postgres need DATABASE_URL (-d), google needs
SPREADSHEET_ID (-s) and GOOGLE_CREDENTIALS_FILE (-c). ADMIN_KEY is always
required; it gates the roster upload endpoint.

ALLOW_UNROSTERED=true switches the feedback reconciler from strict roster
validation to appending a new attendance row for unknown emails.
*/
package cliparse
