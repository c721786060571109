package fridge

import (
	"errors"
	"fmt"
)

// ErrNoZoneAvailable is returned by AddItem when the fridge has no zones at
// all, so there is nowhere to place the item. The seeded fridge always has
// zones; hitting this means the aggregate is misconfigured.
var ErrNoZoneAvailable = errors.New("fridge has no zones to place the item in")

// ValidationError reports an invalid AddItemRequest field. The request is
// rejected before any mutation, so the caller can fix the field and retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AsValidationError unwraps err as a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
