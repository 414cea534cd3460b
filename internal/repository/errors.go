package repository

// Sentinel errors shared by the repositories.  They let higher layers tell a
// malformed query apart from a failing database.

import "errors"

// ErrUnknownField is returned when a predicate names a field the
// repository has no column for.  It indicates a programming error in the
// caller rather than a database failure.
var ErrUnknownField = errors.New("unknown predicate field")

// ErrInvalidExtension is returned when a performance row carries extension
// data that is not valid JSON.
var ErrInvalidExtension = errors.New("invalid performance extension")
