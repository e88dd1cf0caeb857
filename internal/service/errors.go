// Package service implements the business operations of the rental store:
// identity and role resolution, catalog browsing, order placement, the
// tracking lifecycle, catalog and user administration, visibility rules
// and self-service profile updates. Services validate input, enforce
// authorization against the store (never against the session) and drive
// the repositories; the console surface only prompts and prints.
package service

import "errors"

// ErrInvalidCredentials is returned when a login/password pair does not
// match. A missing login and a wrong password are indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrForbidden is returned when the caller's role, as re-read from the
// store, does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ErrNotFound is returned when a record does not exist and, on the
// visibility paths, when it exists but belongs to another customer. The
// two cases stay indistinguishable so that order existence is not leaked
// to unrelated customers.
var ErrNotFound = errors.New("not found")

// ErrInvalidField is returned when a field value fails its length, range
// or type rule. The console surface recovers by re-prompting the field.
var ErrInvalidField = errors.New("invalid field")

// ErrEmptyOrder is returned when order placement is attempted with zero
// accepted items. Nothing is written.
var ErrEmptyOrder = errors.New("empty order")

// ErrPersistence wraps store failures during order placement. The whole
// transaction has been rolled back; nothing partial is visible.
var ErrPersistence = errors.New("persistence failure")
