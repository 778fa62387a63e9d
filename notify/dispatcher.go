// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"log/slog"
	"sync"

	"github.com/danielhkuo/ticket-day/tickets"
)

// Dispatcher delivers ticket notifications off the request path. Handlers
// enqueue a whole batch and return immediately; one worker goroutine drains
// the queue so a slow mail server never stalls admission. A delivery failure
// for one recipient is logged and does not stop the rest.
type Dispatcher struct {
	notifier Notifier
	jobs     chan tickets.Assignment
	wg       sync.WaitGroup

	closeOnce sync.Once
}

// NewDispatcher starts the worker. Call Close to drain and stop it.
func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		jobs:     make(chan tickets.Assignment, 256),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for job := range d.jobs {
		if err := d.notifier.Notify(job.Email, job.FullName, job.Number); err != nil {
			slog.Error("ticket notification failed",
				"email", job.Email,
				"ticket_number", job.Number,
				"error", err,
			)
		}
	}
}

// Enqueue queues a batch of assignments for delivery. If the queue is full
// the overflow is dropped with a log line rather than blocking the caller.
func (d *Dispatcher) Enqueue(batch []tickets.Assignment) {
	for _, a := range batch {
		select {
		case d.jobs <- a:
		default:
			slog.Error("notification queue full, dropping", "email", a.Email)
		}
	}
}

// Close drains outstanding notifications and stops the worker.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.jobs)
	})
	d.wg.Wait()
}
