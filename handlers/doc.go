// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Ticket Day API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - AdminHandler: login/logout and the day lifecycle (open, draw, close)
  - PublicHandler: attendee form submission and number lookup

# Day Lifecycle

The admin drives the day through the engine:

	POST /admin/login            → Login (session cookie)
	POST /admin/open_form        → OpenForm (reset + QR regeneration)
	POST /admin/generate_numbers → GenerateNumbers (one-shot random draw)
	POST /admin/close_form       → CloseForm (reset, no QR)
	GET  /admin                  → Panel (mode + submissions)

All of these except Login sit behind middleware.RequireAdmin.

# Attendee Flow

Attendees scan the QR, submit the form, and look their number up later:

	POST /form         → Submit (409 on a repeat email)
	GET/POST /check_number → CheckNumber (404 unknown, pending, or assigned)

After the draw, a late Submit returns the next sequential number directly in
the response; lookups for everyone in the draw return the drawn number.

# Side Effects

GenerateNumbers hands the committed batch to the notify dispatcher and
answers immediately; OpenForm rewrites the QR image after the engine reset.
Neither side effect can fail or stall the state transition.
*/
package handlers
