// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tickets

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
)

func newTestEngine() *Engine {
	return NewEngineWithRand(rand.New(rand.NewPCG(1, 2)))
}

func TestSubmitUniqueness(t *testing.T) {
	e := newTestEngine()

	if _, err := e.Submit("a@x.com", "Alice", "1"); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := e.Submit("a@x.com", "Alice Again", "2"); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}

	// Duplicates are rejected in assigned mode too
	e.GenerateNumbers()
	if _, err := e.Submit("a@x.com", "Alice Again", "3"); !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted after generation, got %v", err)
	}
}

func TestSubmitBeforeGenerationHasNoNumber(t *testing.T) {
	e := newTestEngine()

	n, err := e.Submit("a@x.com", "Alice", "1")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if n != nil {
		t.Errorf("expected no ticket number in open mode, got %d", *n)
	}

	res := e.Lookup("a@x.com")
	if res.Status != LookupPending {
		t.Errorf("expected pending lookup, got %s", res.Status)
	}
}

func TestGenerateNumbersIsPermutation(t *testing.T) {
	e := newTestEngine()

	const count = 50
	for i := 0; i < count; i++ {
		if _, err := e.Submit(fmt.Sprintf("user%d@x.com", i), "User", ""); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	batch, generated := e.GenerateNumbers()
	if !generated {
		t.Fatal("expected generation to run")
	}
	if len(batch) != count {
		t.Fatalf("expected %d assignments, got %d", count, len(batch))
	}

	// The assigned numbers must be exactly {1..count}, each once
	seen := make(map[int]string)
	for _, a := range batch {
		if a.Number < 1 || a.Number > count {
			t.Errorf("number %d for %s out of range 1..%d", a.Number, a.Email, count)
		}
		if prev, dup := seen[a.Number]; dup {
			t.Errorf("number %d assigned to both %s and %s", a.Number, prev, a.Email)
		}
		seen[a.Number] = a.Email
	}
	if len(seen) != count {
		t.Errorf("expected %d distinct numbers, got %d", count, len(seen))
	}

	// Lookups agree with the batch
	for _, a := range batch {
		res := e.Lookup(a.Email)
		if res.Status != LookupAssigned || res.Number != a.Number {
			t.Errorf("lookup %s: got (%s, %d), batch says %d", a.Email, res.Status, res.Number, a.Number)
		}
	}
}

func TestGenerateNumbersIdempotent(t *testing.T) {
	e := newTestEngine()
	e.Submit("a@x.com", "Alice", "")
	e.Submit("b@x.com", "Bob", "")

	first, generated := e.GenerateNumbers()
	if !generated {
		t.Fatal("expected first generation to run")
	}

	before := make(map[string]int)
	for _, a := range first {
		before[a.Email] = a.Number
	}

	second, generated := e.GenerateNumbers()
	if generated {
		t.Error("second generation should be a no-op")
	}
	if second != nil {
		t.Errorf("second generation returned a batch: %v", second)
	}

	// The first draw's mapping is unchanged
	for email, n := range before {
		res := e.Lookup(email)
		if res.Number != n {
			t.Errorf("%s: number changed from %d to %d after repeat generation", email, n, res.Number)
		}
	}
}

func TestGenerateNumbersEmptyDay(t *testing.T) {
	e := newTestEngine()

	batch, generated := e.GenerateNumbers()
	if !generated {
		t.Fatal("generation over zero submissions should still commit")
	}
	if len(batch) != 0 {
		t.Errorf("expected empty batch, got %d", len(batch))
	}

	// Late submitters start at 1
	n, err := e.Submit("a@x.com", "Alice", "")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if n == nil || *n != 1 {
		t.Errorf("expected first late submission to get 1, got %v", n)
	}
}

func TestPostGenerationSequentialNumbers(t *testing.T) {
	e := newTestEngine()
	e.Submit("a@x.com", "A", "1")
	e.Submit("b@x.com", "B", "2")
	e.Submit("c@x.com", "C", "3")
	e.GenerateNumbers()

	for i := 0; i < 5; i++ {
		email := fmt.Sprintf("late%d@x.com", i)
		n, err := e.Submit(email, "Late", "")
		if err != nil {
			t.Fatalf("submit %s: %v", email, err)
		}
		want := 4 + i
		if n == nil || *n != want {
			t.Errorf("%s: expected number %d, got %v", email, want, n)
		}
		res := e.Lookup(email)
		if res.Status != LookupAssigned || res.Number != want {
			t.Errorf("%s: lookup got (%s, %d), want assigned %d", email, res.Status, res.Number, want)
		}
	}
}

// TestConcurrentLateSubmissions verifies that racing submits after the draw
// never share a sequential number.
func TestConcurrentLateSubmissions(t *testing.T) {
	e := newTestEngine()
	e.Submit("a@x.com", "A", "")
	e.Submit("b@x.com", "B", "")
	e.GenerateNumbers()

	const workers = 20
	numbers := make([]int, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			n, err := e.Submit(fmt.Sprintf("late%d@x.com", idx), "Late", "")
			if err != nil || n == nil {
				t.Errorf("submit %d failed: n=%v err=%v", idx, n, err)
				return
			}
			numbers[idx] = *n
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for i, n := range numbers {
		if n < 3 || n > 2+workers {
			t.Errorf("submission %d got out-of-range number %d", i, n)
		}
		if seen[n] {
			t.Errorf("number %d handed out twice", n)
		}
		seen[n] = true
	}
}

// TestConcurrentSubmitDuringGeneration verifies that a submission racing the
// draw is either in the batch or numbered sequentially after it, never lost.
func TestConcurrentSubmitDuringGeneration(t *testing.T) {
	e := newTestEngine()
	const early = 10
	for i := 0; i < early; i++ {
		e.Submit(fmt.Sprintf("early%d@x.com", i), "Early", "")
	}

	const racers = 10
	var wg sync.WaitGroup
	wg.Add(racers + 1)

	go func() {
		defer wg.Done()
		e.GenerateNumbers()
	}()
	for i := 0; i < racers; i++ {
		go func(idx int) {
			defer wg.Done()
			e.Submit(fmt.Sprintf("racer%d@x.com", idx), "Racer", "")
		}(i)
	}
	wg.Wait()

	// Every submission ends up with exactly one number from 1..early+racers
	_, subs := e.Snapshot()
	if len(subs) != early+racers {
		t.Fatalf("expected %d submissions, got %d", early+racers, len(subs))
	}
	seen := make(map[int]string)
	for _, sub := range subs {
		if sub.TicketNumber == nil {
			t.Errorf("%s has no number after generation", sub.Email)
			continue
		}
		n := *sub.TicketNumber
		if n < 1 || n > early+racers {
			t.Errorf("%s: number %d out of range", sub.Email, n)
		}
		if prev, dup := seen[n]; dup {
			t.Errorf("number %d assigned to both %s and %s", n, prev, sub.Email)
		}
		seen[n] = sub.Email
	}
}

func TestResetClearsEverything(t *testing.T) {
	for _, reset := range []struct {
		name string
		fn   func(e *Engine)
	}{
		{"open_day", func(e *Engine) { e.OpenDay() }},
		{"close_day", func(e *Engine) { e.CloseDay() }},
	} {
		t.Run(reset.name, func(t *testing.T) {
			e := newTestEngine()
			e.Submit("a@x.com", "Alice", "")
			e.Submit("b@x.com", "Bob", "")
			e.GenerateNumbers()

			reset.fn(e)

			if e.Mode() != ModeOpen {
				t.Errorf("expected open mode after reset, got %s", e.Mode())
			}
			if res := e.Lookup("a@x.com"); res.Status != LookupNotFound {
				t.Errorf("expected not_found after reset, got %s", res.Status)
			}

			// A fresh draw starts over at 1..N
			e.Submit("c@x.com", "Carol", "")
			batch, generated := e.GenerateNumbers()
			if !generated {
				t.Fatal("generation after reset should run")
			}
			if len(batch) != 1 || batch[0].Number != 1 {
				t.Errorf("expected fresh batch [1], got %v", batch)
			}
		})
	}
}

func TestLookupTriState(t *testing.T) {
	e := newTestEngine()

	if res := e.Lookup("unknown@x.com"); res.Status != LookupNotFound {
		t.Errorf("unknown email: expected not_found, got %s", res.Status)
	}

	e.Submit("a@x.com", "Alice", "")
	if res := e.Lookup("a@x.com"); res.Status != LookupPending {
		t.Errorf("before draw: expected pending, got %s", res.Status)
	}

	e.GenerateNumbers()
	res := e.Lookup("a@x.com")
	if res.Status != LookupAssigned || res.Number != 1 {
		t.Errorf("after draw: expected assigned 1, got (%s, %d)", res.Status, res.Number)
	}
}

// TestDayScenario walks the full day from the admin's perspective.
func TestDayScenario(t *testing.T) {
	e := newTestEngine()
	e.OpenDay()

	for _, s := range []struct{ email, name, phone string }{
		{"a@x.com", "A", "1"},
		{"b@x.com", "B", "2"},
		{"c@x.com", "C", "3"},
	} {
		if _, err := e.Submit(s.email, s.name, s.phone); err != nil {
			t.Fatalf("submit %s: %v", s.email, err)
		}
	}

	batch, generated := e.GenerateNumbers()
	if !generated || len(batch) != 3 {
		t.Fatalf("expected a 3-entry batch, got generated=%v len=%d", generated, len(batch))
	}
	seen := map[int]bool{}
	for _, a := range batch {
		seen[a.Number] = true
	}
	if !seen[1] || !seen[2] || !seen[3] {
		t.Errorf("batch numbers are not a permutation of {1,2,3}: %v", batch)
	}

	n, err := e.Submit("d@x.com", "D", "4")
	if err != nil || n == nil || *n != 4 {
		t.Errorf("late submitter: expected ticket 4, got n=%v err=%v", n, err)
	}

	resA := e.Lookup("a@x.com")
	if resA.Status != LookupAssigned {
		t.Errorf("lookup a@x.com: expected assigned, got %s", resA.Status)
	}
	if res := e.Lookup("e@x.com"); res.Status != LookupNotFound {
		t.Errorf("lookup e@x.com: expected not_found, got %s", res.Status)
	}
}

// TestPermutationUniformity is a coarse bias check: over many draws with
// three entries, every one of the 6 orderings should show up.
func TestPermutationUniformity(t *testing.T) {
	counts := make(map[string]int)
	rng := rand.New(rand.NewPCG(7, 11))

	const draws = 600
	for i := 0; i < draws; i++ {
		e := NewEngineWithRand(rng)
		e.Submit("a@x.com", "A", "")
		e.Submit("b@x.com", "B", "")
		e.Submit("c@x.com", "C", "")
		batch, _ := e.GenerateNumbers()
		key := fmt.Sprintf("%d%d%d", batch[0].Number, batch[1].Number, batch[2].Number)
		counts[key]++
	}

	if len(counts) != 6 {
		t.Fatalf("expected all 6 orderings over %d draws, saw %d: %v", draws, len(counts), counts)
	}
	for key, c := range counts {
		// Expected 100 each; anything under 50 suggests bias
		if c < draws/12 {
			t.Errorf("ordering %s appeared only %d/%d times", key, c, draws)
		}
	}
}
