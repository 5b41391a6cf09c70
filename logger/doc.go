// Package logger provides structured logging for userd on top of zerolog.
//
// It exposes an instance Logger plus package-level helpers backed by a
// global instance, and a Redact helper that strips known-sensitive fields
// (passwords, tokens, digests) before any record is written.
package logger
