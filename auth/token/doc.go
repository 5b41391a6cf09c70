// Package token signs and verifies the compact claims payload that carries
// a Principal between requests.
//
// The codec pins a single HMAC algorithm (HS256): tokens signed with any
// other method or key fail verification outright, so algorithm confusion is
// impossible. Verification failures are reported through sentinel errors
// (ErrMalformed, ErrExpired, ...) so the authentication stage can map them
// without string matching.
package token
