package vgccalc

import "errors"

// ErrInvalidInput marks a request that is malformed before any math runs:
// EVs off the legal ladder, IVs out of range, unknown nature or type names.
// Callers can match it with errors.Is. Bad values are never clamped.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotApplicable marks a request the engine cannot answer by its nature,
// as opposed to one that answers zero. Asking for damage from a status move
// is the main case.
var ErrNotApplicable = errors.New("not applicable")
