package leave

import "errors"

var (
	ErrRequestNotFound         = errors.New("leave request not found")
	ErrRequestAlreadyProcessed = errors.New("leave request already approved or rejected")
	ErrInsufficientCredits     = errors.New("insufficient leave credits")
	ErrCreditNotFound          = errors.New("no leave credit balance for this type")
	ErrOverlappingRequest      = errors.New("an overlapping leave request already exists")
)
