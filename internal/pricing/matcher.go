package pricing

import (
	"time"

	"github.com/bookingproto/rategen/internal/domain"
)

// Matches reports whether rule applies to the given room on the given day.
// A rule matches iff it is enabled, day falls inside its inclusive date
// window, and its applies_to list is empty or names the room. Rules are not
// assumed non-overlapping, so this is evaluated independently per day.
func Matches(rule domain.Rule, roomID string, day time.Time) bool {
	if !rule.Enabled {
		return false
	}
	day = domain.Day(day)
	if day.Before(domain.Day(rule.DateFrom)) || day.After(domain.Day(rule.DateTo)) {
		return false
	}
	if len(rule.AppliesTo) == 0 {
		return true
	}
	for _, id := range rule.AppliesTo {
		if id == roomID {
			return true
		}
	}
	return false
}
