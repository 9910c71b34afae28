// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes using Go 1.22+ method-qualified
patterns.

API routes are wrapped with the logging middleware; the form pages are not,
to keep page-view noise out of the request log.
*/
package router
