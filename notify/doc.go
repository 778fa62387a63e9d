// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify sends ticket-number notifications after the draw.

Delivery is best-effort and fully decoupled from the state machine: the
handler enqueues the batch the engine returned and answers the admin
immediately, while the dispatcher's worker goroutine works through the queue.
One bounced address never blocks another attendee's mail, and no SMTP call
ever happens under the engine's lock.

	dispatcher := notify.NewDispatcher(notify.FromConfig(cfg))
	defer dispatcher.Close()
	dispatcher.Enqueue(batch)

Without SMTP_HOST configured the notifier degrades to log lines, which keeps
local development runnable with no mail server.
*/
package notify
