// Package auth defines the authenticated identity model for userd.
//
// A Principal is derived entirely from a verified token's claims and lives
// for one request. Token signing and verification live in auth/token,
// password hashing in auth/password, and context propagation in auth/authctx.
package auth
