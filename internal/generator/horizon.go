package generator

import (
	"time"

	"github.com/bookingproto/rategen/internal/domain"
)

// Horizon resolves the pricing window the compressor will walk: the union of
// all enabled rule spans, widened so it always covers at least today through
// today+minDays. The engine itself never computes this; it is caller policy.
func Horizon(rules []domain.Rule, today time.Time, minDays int) (start, end time.Time) {
	today = domain.Day(today)
	start = today
	end = today.AddDate(0, 0, minDays)

	first := true
	for _, r := range rules {
		if !r.Enabled {
			continue
		}
		from, to := domain.Day(r.DateFrom), domain.Day(r.DateTo)
		if first {
			start, end = from, to
			first = false
			continue
		}
		if from.Before(start) {
			start = from
		}
		if to.After(end) {
			end = to
		}
	}

	if start.After(today) {
		start = today
	}
	if floor := today.AddDate(0, 0, minDays); end.Before(floor) {
		end = floor
	}
	return start, end
}
