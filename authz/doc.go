// Package authz decides whether an authenticated Principal may perform an
// operation. Policies are pure predicates over already-validated identity:
// they never mutate state and never crash on a missing principal. Invoking
// authorization without prior authentication is itself a deny.
package authz
