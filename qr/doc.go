// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package qr generates the scannable entry code for the public form.

Opening the day rewrites the PNG with the current form URL; the image is
served at GET /qr so the admin can put it on a screen at the door. A failed
write is logged and does not fail the open operation.
*/
package qr
