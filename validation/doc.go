// Package validation declares the request schemas and turns untrusted input
// into normalized values or a complete list of field violations.
//
// Each schema is a struct whose rules live in `validate` tags, checked by
// go-playground/validator. Normalization (trimming, lower-casing emails)
// happens before validation so the rules see the canonical form. Validation
// never fails fast: every violated field is reported in one pass.
package validation
