package recipes

import (
	"errors"
	"sort"
	"strings"
)

// State-conflict and lookup errors. Handlers translate these into HTTP
// statuses; none of them is fatal to the process.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrSelfSubscribe = errors.New("subscribing to yourself is not allowed")
	ErrInvalidLimit  = errors.New("recipes_limit must be a non-negative integer")

	// ErrEmptyCart is informational: the caller renders it as "no content",
	// not as a failure.
	ErrEmptyCart = errors.New("shopping cart is empty")
)

// FieldErrors collects validation failures keyed by input field so the
// caller gets a complete correction list rather than the first failure.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}
