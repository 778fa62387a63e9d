// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8643)
  - AdminUsername / AdminPassword: the shared admin login (required)
  - BaseURL: public base URL the entry QR points at (default: http://localhost:PORT)
  - QRPath: where the QR PNG is written (default: static/qr_code.png)
  - SessionTTL: admin session lifetime (default: 12h)
  - SMTP*: optional mail settings; notifications are disabled without SMTP_HOST

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	BASE_URL       → -base-url
	QR_PATH        → -qr-path
	ADMIN_USERNAME → -admin-user
	ADMIN_PASSWORD → -admin-pass
	SESSION_TTL, SMTP_HOST, SMTP_PORT, SMTP_FROM, SMTP_USERNAME, SMTP_PASSWORD

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - ADMIN_USERNAME must be provided
  - ADMIN_PASSWORD must be provided
  - SMTP_FROM must be provided whenever SMTP_HOST is set

Missing required configuration is the only condition that stops the process
at startup; everything after that returns outcomes instead of dying.
*/
package cliparse
