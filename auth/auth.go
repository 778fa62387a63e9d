// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrNoSession          = errors.New("no valid admin session")
)

// SessionCookieName is the cookie carrying the admin session ID.
const SessionCookieName = "ticketday_session"

// Credentials holds the single shared admin login, loaded from configuration
// at startup.
type Credentials struct {
	Username string
	Password string
}

// Check compares the submitted login against the configured one in constant
// time.
func (c Credentials) Check(username, password string) error {
	userOK := hmac.Equal([]byte(username), []byte(c.Username))
	passOK := hmac.Equal([]byte(password), []byte(c.Password))
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

// Session is one authenticated admin session.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Sessions is an in-memory session store with TTL expiry.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewSessions creates a session store whose sessions expire after ttl.
func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create establishes a new session and returns its ID.
func (s *Sessions) Create() (string, error) {
	id, err := generateSessionID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	s.mu.Lock()
	s.sessions[id] = &Session{
		ID:        id,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.mu.Unlock()

	return id, nil
}

// Validate checks that id names a live session. Expired sessions are pruned
// on sight.
func (s *Sessions) Validate(id string) error {
	if id == "" {
		return ErrNoSession
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return ErrNoSession
	}
	if time.Now().After(sess.ExpiresAt) {
		s.Destroy(id)
		return ErrNoSession
	}
	return nil
}

// Destroy removes a session. Destroying an unknown ID is a no-op.
func (s *Sessions) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// generateSessionID creates a random URL-safe session ID with 192 bits of
// entropy.
func generateSessionID() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session ID: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}
