// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tickets

import (
	"math/rand/v2"
	"sync"
)

// Day modes.
const (
	ModeOpen     = "open"
	ModeAssigned = "assigned"
)

// LookupStatus is the tri-state outcome of a number lookup.
type LookupStatus string

const (
	LookupNotFound LookupStatus = "not_found"
	LookupPending  LookupStatus = "pending"
	LookupAssigned LookupStatus = "assigned"
)

// LookupResult carries the lookup outcome. Number is meaningful only when
// Status is LookupAssigned.
type LookupResult struct {
	Status LookupStatus
	Number int
}

// Assignment is one committed (attendee, ticket number) pair from a batch
// draw, returned so callers can dispatch notifications outside the lock.
type Assignment struct {
	Email    string
	FullName string
	Number   int
}

// Engine owns the day state: the submission store, the mode flag, and the
// sequential counter handed to late submitters. Every mutation is serialized
// through one mutex, and no method does I/O while holding it.
type Engine struct {
	mu      sync.Mutex
	mode    string
	nextSeq int
	store   *Store
	rng     *rand.Rand
}

// NewEngine creates an engine in open mode with an empty store, seeded from
// the runtime's random source.
func NewEngine() *Engine {
	return NewEngineWithRand(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewEngineWithRand creates an engine drawing permutations from rng. Tests
// pass a fixed-seed source to make the draw deterministic.
func NewEngineWithRand(rng *rand.Rand) *Engine {
	return &Engine{
		mode:  ModeOpen,
		store: NewStore(),
		rng:   rng,
	}
}

// OpenDay resets to an empty open day. The caller regenerates the entry QR
// after this returns.
func (e *Engine) OpenDay() {
	e.reset()
}

// CloseDay resets to an empty open day with no QR side effect.
func (e *Engine) CloseDay() {
	e.reset()
}

func (e *Engine) reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Clear()
	e.mode = ModeOpen
	e.nextSeq = 0
}

// Submit registers an attendee. Before the draw the ticket number is left
// unassigned and the returned pointer is nil; after the draw the next
// sequential number is assigned atomically with the insert and returned.
// Duplicate emails fail with ErrAlreadySubmitted.
func (e *Engine) Submit(email, fullName, phone string) (*int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Insert(email, fullName, phone); err != nil {
		return nil, err
	}

	if e.mode == ModeAssigned {
		e.nextSeq++
		e.store.setTicketNumber(email, e.nextSeq)
		n := e.nextSeq
		return &n, nil
	}
	return nil, nil
}

// GenerateNumbers commits one uniform random permutation of 1..N over the
// current submissions in insertion order, flips the day to assigned mode, and
// returns the batch. If numbers were already generated it returns (nil, false)
// and changes nothing.
func (e *Engine) GenerateNumbers() ([]Assignment, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.mode == ModeAssigned {
		return nil, false
	}

	subs := e.store.All()
	perm := e.rng.Perm(len(subs))

	batch := make([]Assignment, 0, len(subs))
	for i, sub := range subs {
		n := perm[i] + 1
		e.store.setTicketNumber(sub.Email, n)
		batch = append(batch, Assignment{
			Email:    sub.Email,
			FullName: sub.FullName,
			Number:   n,
		})
	}

	e.mode = ModeAssigned
	e.nextSeq = len(subs)
	return batch, true
}

// Lookup reports whether email is registered and, once the draw has happened,
// which number it holds.
func (e *Engine) Lookup(email string) LookupResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.store.Get(email)
	if !ok {
		return LookupResult{Status: LookupNotFound}
	}
	if rec.TicketNumber == nil {
		return LookupResult{Status: LookupPending}
	}
	return LookupResult{Status: LookupAssigned, Number: *rec.TicketNumber}
}

// Mode reports the current day mode.
func (e *Engine) Mode() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Snapshot returns the mode and all submissions in insertion order, for the
// admin panel.
func (e *Engine) Snapshot() (string, []Submission) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode, e.store.All()
}
