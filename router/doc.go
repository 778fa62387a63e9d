// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Ticket Day API.

# Route Registration

NewRouter creates a configured http.ServeMux from the app's dependencies:

	mux := router.NewRouter(router.Deps{
		Engine:     engine,
		Sessions:   sessions,
		Creds:      creds,
		QR:         qrGen,
		Dispatcher: dispatcher,
		Cfg:        cfg,
	})

# Endpoints

Health:

	GET /health

Admin (session cookie required except login):

	POST /admin/login            - Establish admin session
	POST /admin/logout           - End session
	GET  /admin                  - Day overview (mode + submissions)
	POST /admin/open_form        - Reset for a new day, regenerate QR
	POST /admin/generate_numbers - Random ticket draw
	POST /admin/close_form       - End-of-day reset

Attendees (public):

	GET  /form         - Form status
	POST /form         - Register (email, fullname, phone)
	GET  /check_number - Look up assigned number (?email=)
	POST /check_number - Look up assigned number (body)
	GET  /qr           - Current entry QR PNG
*/
package router
