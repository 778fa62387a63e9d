package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          int
	AdminUsername string
	AdminPassword string
	BaseURL       string
	QRPath        string
	SessionTTL    time.Duration

	// SMTP settings are optional; notifications are disabled when Host is
	// empty.
	SMTPHost     string
	SMTPPort     int
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ticket-day", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public base URL encoded in the entry QR")
	fs.StringVar(&cfg.QRPath, "qr-path", "", "Path the entry QR PNG is written to")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminUsername, "admin-user", "", "Admin username (prefer env)")
	fs.StringVar(&cfg.AdminPassword, "admin-pass", "", "Admin password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8643 // default
		}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	if cfg.QRPath == "" {
		cfg.QRPath = os.Getenv("QR_PATH")
	}
	if cfg.QRPath == "" {
		cfg.QRPath = "static/qr_code.png"
	}

	// Admin credentials - MUST be provided
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = os.Getenv("ADMIN_USERNAME")
	}
	if cfg.AdminUsername == "" {
		return Config{}, errors.New("ADMIN_USERNAME required")
	}

	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	cfg.SessionTTL = 12 * time.Hour
	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		ttl, err := time.ParseDuration(ttlStr)
		if err != nil {
			return Config{}, errors.New("invalid SESSION_TTL env variable")
		}
		cfg.SessionTTL = ttl
	}

	// SMTP is env-only and optional
	cfg.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.SMTPFrom = os.Getenv("SMTP_FROM")
	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.SMTPPort = 587
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, errors.New("invalid SMTP_PORT env variable")
		}
		cfg.SMTPPort = port
	}
	if cfg.SMTPHost != "" && cfg.SMTPFrom == "" {
		return Config{}, errors.New("SMTP_FROM required when SMTP_HOST is set")
	}

	return cfg, nil
}
