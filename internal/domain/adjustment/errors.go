package adjustment

import "errors"

var (
	ErrRequestNotFound         = errors.New("adjustment request not found")
	ErrRequestAlreadyProcessed = errors.New("adjustment request already approved or rejected")
)
