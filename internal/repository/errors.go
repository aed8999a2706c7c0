// Package repository implements the data-access layer over the
// key-value store.  Sentinel errors defined here let handlers map
// failure cases onto HTTP statuses without inspecting error strings.
package repository

import "errors"

// ErrEmptyContent is returned when a user-authored record (note, post,
// comment) arrives with a blank title or body.  Handlers translate it
// into an HTTP 400 response; no state changes.
var ErrEmptyContent = errors.New("empty content")

// ErrPostNotFound is returned when a community operation references a
// post ID that does not exist.  Handlers translate it into HTTP 404.
var ErrPostNotFound = errors.New("post not found")
