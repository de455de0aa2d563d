package scoring

import "errors"

// ErrUnknownGoal indicates a requested goal outside the supported set.
var ErrUnknownGoal = errors.New("unknown goal")

const (
	ErrorCodeUnknownGoal      = "UNKNOWN_GOAL"
	ErrorCodeModelUnavailable = "MODEL_UNAVAILABLE"
	ErrorCodeValidation       = "VALIDATION_ERROR"
	ErrorCodeInternal         = "INTERNAL_ERROR"
)
