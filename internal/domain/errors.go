package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("resource not found")

// ErrEntryNotFound is returned when a nested experience/education entry
// targeted by id does not exist on the caller's profile.
var ErrEntryNotFound = errors.New("entry not found")

var ErrDuplicateEmail = errors.New("user already exists")

var ErrUpstreamUnavailable = errors.New("upstream service unavailable")

// PartialFailure reports an interrupted account deletion. Completed is the
// number of saga steps that finished before Step failed. Every step is
// idempotent, so operators resolve this by retrying the deletion.
type PartialFailure struct {
	Completed int
	Step      string
	Err       error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("account deletion interrupted at %s after %d completed step(s): %v", e.Step, e.Completed, e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}
