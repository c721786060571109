package fridge

import (
	"math"
	"time"

	"frigo/internal/models"
)

const msPerDay = 86_400_000

// ComputeStatus classifies an item's freshness from its expiration date
// relative to now. Items without an expiration date never expire.
//
// The day difference is floored toward negative infinity, not truncated
// toward zero: an item that expired one second ago is already a negative
// fraction of a day out and must classify as expired.
func ComputeStatus(expirationDate *time.Time, now time.Time) models.ItemStatus {
	if expirationDate == nil {
		return models.StatusFresh
	}

	diffMs := expirationDate.Sub(now).Milliseconds()
	daysUntilExpiration := int(math.Floor(float64(diffMs) / msPerDay))

	switch {
	case daysUntilExpiration < 0:
		return models.StatusExpired
	case daysUntilExpiration <= 3:
		return models.StatusExpiringSoon
	default:
		return models.StatusFresh
	}
}
