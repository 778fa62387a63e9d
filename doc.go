// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ticket Day API server.

Ticket Day is a single-event-day ticketing service: attendees register
through a QR-linked form, an administrator triggers one random draw of ticket
numbers over everyone registered, and attendees look their number up by
email. All state lives in memory and is cleared when the admin opens or
closes the day.

# Starting the Server

The server requires admin credentials via environment variables, CLI flags,
or a .env file:

	ADMIN_USERNAME=admin ADMIN_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 8643 -admin-user admin -admin-pass ...

# Configuration

Required settings:

  - ADMIN_USERNAME (-admin-user): admin login
  - ADMIN_PASSWORD (-admin-pass): admin password

Optional settings:

  - PORT (-p): server port (default: 8643)
  - BASE_URL (-base-url): public URL the entry QR encodes
  - QR_PATH (-qr-path): QR image output path
  - SESSION_TTL: admin session lifetime (default: 12h)
  - SMTP_HOST, SMTP_PORT, SMTP_FROM, SMTP_USERNAME, SMTP_PASSWORD:
    ticket notification mail; disabled without SMTP_HOST

# Architecture

The server uses a handler-based architecture with dependency injection:

  - tickets: submission store and the assignment state machine
  - handlers: HTTP request handlers (admin lifecycle, public form)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers, admin session guard
  - models: request/response types
  - auth: admin credentials and session store
  - notify: async ticket-number notification over SMTP
  - qr: entry QR code image generation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
