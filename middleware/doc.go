// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides request logging and JSON helpers shared by the
HTTP handlers.

WithLogging wraps a handler with start/completion slog lines including the
request duration. JSONResponse/ErrorResponse write the standard response and
error envelopes; ParseJSONBody decodes request bodies. GetClientIP resolves
the originating address behind proxies for check-in audit logs.
*/
package middleware
