package work

import "errors"

// Input errors. Callers match them with errors.Is.
var (
	ErrMissingStart      = errors.New("start time must be set")
	ErrConflictingTarget = errors.New("either a weekly or a daily target must be set, not both")
	ErrNonPositiveTarget = errors.New("target must be longer than zero")
	ErrNoBreaks          = errors.New("no breaks to pick the longest from")
)
