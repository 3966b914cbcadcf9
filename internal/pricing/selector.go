package pricing

import (
	"sort"

	"github.com/bookingproto/rategen/internal/domain"
)

// higherPriority is the total order used to pick one rule out of several
// matching candidates. Keys, most significant first:
//  1. monthly_only rules before the rest,
//  2. larger room_min_nights first,
//  3. shorter date span first,
//  4. lower sheet row first.
//
// The row rank makes the order total, so the result never depends on the
// order candidates were handed in.
func higherPriority(a, b domain.Rule) bool {
	am, bm := 0, 0
	if !a.MonthlyOnly {
		am = 1
	}
	if !b.MonthlyOnly {
		bm = 1
	}
	if am != bm {
		return am < bm
	}
	if a.RoomMinNights != b.RoomMinNights {
		return a.RoomMinNights > b.RoomMinNights
	}
	if as, bs := a.SpanDays(), b.SpanDays(); as != bs {
		return as < bs
	}
	return a.RowRank < b.RowRank
}

// Select returns the highest-priority rule among candidates, or false when
// the slice is empty. The input is left untouched.
func Select(candidates []domain.Rule) (domain.Rule, bool) {
	if len(candidates) == 0 {
		return domain.Rule{}, false
	}
	best := candidates[0]
	for _, r := range candidates[1:] {
		if higherPriority(r, best) {
			best = r
		}
	}
	return best, true
}

// SortByPriority orders rules from highest to lowest priority, in place.
func SortByPriority(rules []domain.Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return higherPriority(rules[i], rules[j])
	})
}
