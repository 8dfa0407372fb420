package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs.
// Pattern: adventura:{module}:{operation}:{identifier}:{params?}

const (
	TTL_CATALOG_DETAIL = 1 * time.Hour    // activity detail, changes rarely
	TTL_CATALOG_LIST   = 15 * time.Minute // activity listings
	TTL_AVAILABILITY   = 2 * time.Minute  // open slots, invalidated on every seat write
)

const (
	KEY_PREFIX_ACTIVITY     = "adventura:activities:detail:"
	KEY_PREFIX_AVAILABILITY = "adventura:availability:slots:"

	PATTERN_INVALIDATE_ACTIVITY_ALL = "adventura:activities:*"
)

func ActivityDetailKey(activityID string) string {
	return KEY_PREFIX_ACTIVITY + activityID
}

func AvailabilitySlotsKey(activityID, date string) string {
	return fmt.Sprintf("%s%s:%s", KEY_PREFIX_AVAILABILITY, activityID, date)
}

func AvailabilityInvalidatePattern(activityID string) string {
	return KEY_PREFIX_AVAILABILITY + activityID + ":*"
}
