// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tickets

import "errors"

var ErrAlreadySubmitted = errors.New("a submission already exists for this email")

// Submission is one attendee's registration for the current day.
// TicketNumber is nil until the engine assigns one.
type Submission struct {
	Email        string
	FullName     string
	Phone        string
	TicketNumber *int
}

// Store holds the day's submissions keyed by email, preserving insertion
// order. It is not safe for concurrent use on its own; the Engine owns the
// lock that guards it.
type Store struct {
	records map[string]*Submission
	order   []string
}

func NewStore() *Store {
	return &Store{records: make(map[string]*Submission)}
}

// Insert adds a new submission with no ticket number. Returns
// ErrAlreadySubmitted if the email is already registered; the existing record
// is left untouched.
func (s *Store) Insert(email, fullName, phone string) error {
	if _, exists := s.records[email]; exists {
		return ErrAlreadySubmitted
	}
	s.records[email] = &Submission{
		Email:    email,
		FullName: fullName,
		Phone:    phone,
	}
	s.order = append(s.order, email)
	return nil
}

// Get looks up a submission by email.
func (s *Store) Get(email string) (Submission, bool) {
	rec, ok := s.records[email]
	if !ok {
		return Submission{}, false
	}
	return *rec, true
}

// All returns copies of every submission in insertion order.
func (s *Store) All() []Submission {
	out := make([]Submission, 0, len(s.order))
	for _, email := range s.order {
		out = append(out, *s.records[email])
	}
	return out
}

// Len reports the number of submissions.
func (s *Store) Len() int {
	return len(s.order)
}

// Clear removes every submission.
func (s *Store) Clear() {
	s.records = make(map[string]*Submission)
	s.order = nil
}

// setTicketNumber records an assigned number. Only the Engine calls this.
func (s *Store) setTicketNumber(email string, n int) {
	if rec, ok := s.records[email]; ok {
		num := n
		rec.TicketNumber = &num
	}
}
