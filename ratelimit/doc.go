// Package ratelimit tracks request counts per key over sliding windows.
//
// Semantics are sliding-window-by-reset: the first request for a key starts
// a window of length W; requests beyond the ceiling N within W are denied
// until the window rolls over, at which point the counter resets (no
// incremental decay).
//
// Reserve supports the "success does not count" mode used for login-style
// endpoints: the request provisionally consumes budget, and the caller
// releases the reservation after the downstream handler succeeds (or the
// request is cancelled), so only failed attempts are counted.
package ratelimit
