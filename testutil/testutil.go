// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/ticket-day/auth"
	"github.com/danielhkuo/ticket-day/cliparse"
	"github.com/danielhkuo/ticket-day/notify"
	"github.com/danielhkuo/ticket-day/qr"
	"github.com/danielhkuo/ticket-day/tickets"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8643,
		AdminUsername: "admin",
		AdminPassword: "test-password",
		BaseURL:       "http://localhost:8643",
		SessionTTL:    time.Hour,
	}
}

// App bundles every dependency a handler test needs.
type App struct {
	Engine     *tickets.Engine
	Sessions   *auth.Sessions
	Creds      auth.Credentials
	QR         *qr.Generator
	Dispatcher *notify.Dispatcher
	Notifier   *CaptureNotifier
	Cfg        cliparse.Config
}

// NewTestApp builds an app with a deterministic engine, a temp-dir QR path,
// and a capturing notifier. The dispatcher is closed when the test ends.
func NewTestApp(t *testing.T) *App {
	t.Helper()

	cfg := GetTestConfig()
	cfg.QRPath = filepath.Join(t.TempDir(), "qr_code.png")

	notifier := &CaptureNotifier{}
	dispatcher := notify.NewDispatcher(notifier)
	t.Cleanup(dispatcher.Close)

	return &App{
		Engine:     tickets.NewEngineWithRand(rand.New(rand.NewPCG(1, 2))),
		Sessions:   auth.NewSessions(cfg.SessionTTL),
		Creds:      auth.Credentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword},
		QR:         qr.NewGenerator(cfg.QRPath),
		Dispatcher: dispatcher,
		Notifier:   notifier,
		Cfg:        cfg,
	}
}

// AdminCookie creates a live admin session and returns its cookie.
func AdminCookie(t *testing.T, app *App) *http.Cookie {
	t.Helper()

	id, err := app.Sessions.Create()
	if err != nil {
		t.Fatalf("Failed to create admin session: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookieName, Value: id}
}

// CaptureNotifier records notifications instead of sending them.
type CaptureNotifier struct {
	mu   sync.Mutex
	sent []tickets.Assignment
}

func (c *CaptureNotifier) Notify(email, fullName string, number int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, tickets.Assignment{Email: email, FullName: fullName, Number: number})
	return nil
}

// Sent returns a copy of everything delivered so far.
func (c *CaptureNotifier) Sent() []tickets.Assignment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]tickets.Assignment(nil), c.sent...)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
