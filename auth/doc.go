// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin credential check and session store.

# Credentials

There is one shared admin login, configured through the environment. The
comparison is constant-time:

	creds := auth.Credentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword}
	err := creds.Check(submittedUser, submittedPass)

# Sessions

Successful logins get a random 192-bit session ID stored in an in-memory map
with TTL expiry:

	sessions := auth.NewSessions(12 * time.Hour)
	id, err := sessions.Create()
	err = sessions.Validate(id)
	sessions.Destroy(id)

The ID travels in the SessionCookieName cookie; middleware.RequireAdmin
validates it before any admin operation runs. Sessions live only as long as
the process, which matches the rest of the day state.
*/
package auth
