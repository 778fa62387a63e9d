// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tickets implements the submission store and the ticket assignment
engine for a single event day.

# Day Lifecycle

A day moves through two modes:

	open ──GenerateNumbers──▶ assigned
	  ▲                          │
	  └────OpenDay/CloseDay──────┘

In open mode, submissions are accepted with no ticket number. GenerateNumbers
draws one uniform random permutation of 1..N over all current submissions and
commits it; the transition happens at most once per day (a second call is a
no-op). In assigned mode, late submissions receive sequential numbers N+1,
N+2, ... in arrival order. OpenDay and CloseDay both reset everything.

# Store

The store keys submissions by email and preserves insertion order, which is
the order the permutation is applied in:

	err := store.Insert("a@x.com", "Alice", "555-0100")

A duplicate email is rejected with ErrAlreadySubmitted and never touches the
existing record.

# Concurrency

One mutex serializes every mutation. GenerateNumbers snapshots and assigns
under the lock, so a racing Submit is either fully inside the batch or handled
by the sequential path afterward; it is never dropped or double-counted. The
engine performs no I/O while holding the lock; callers deliver notifications
from the batch it returns.

# Lookup

Lookup distinguishes three outcomes so the UI can tell "not registered" from
"wait for the draw":

	res := engine.Lookup(email)
	switch res.Status {
	case tickets.LookupNotFound:
	case tickets.LookupPending:
	case tickets.LookupAssigned: // res.Number is set
	}
*/
package tickets
