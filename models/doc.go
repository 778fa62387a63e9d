// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models contains the request and response types for the Ticket Day API.

Every response is JSON. Errors use the shared envelope:

	{"error": "Conflict", "message": "You have already submitted this form today"}

Lookup responses distinguish "registered but waiting for the draw" from
"holding a number" via the status field, so clients never have to parse prose.
*/
package models
