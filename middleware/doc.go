// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Admin Guard

Admin routes are wrapped with the session check:

	mux.HandleFunc("POST /admin/open_form",
		middleware.WithLogging(middleware.RequireAdmin(sessions, h.OpenForm)))

A missing, unknown, or expired session cookie yields a 401 JSON error before
the handler runs.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Body Parsing

Admin routes take JSON bodies via ParseJSONBody. Public routes accept both
JSON and form-encoded bodies through FormValues, since the QR code sends
attendees to a plain HTML form:

	vals, err := middleware.FormValues(r, "email", "fullname", "phone")
*/
package middleware
