package pricing

import (
	"math"
	"time"

	"github.com/bookingproto/rategen/internal/domain"
)

// Calculator resolves calendar rules into nightly prices. It holds the full
// rule set for a run; rules and rooms are treated as an immutable snapshot.
type Calculator struct {
	rules []domain.Rule
}

func NewCalculator(rules []domain.Rule) *Calculator {
	return &Calculator{rules: rules}
}

// IsWeekend reports whether day prices as a weekend night. Weekend here is
// Friday through Sunday: Friday and Saturday nights are the high-demand
// nights and Sunday is kept in the set to match the published rate sheet.
func IsWeekend(day time.Time) bool {
	switch day.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return false
}

// MatchedRules returns the subset of the calculator's rules that apply to
// the room on the given day.
func (c *Calculator) MatchedRules(roomID string, day time.Time) []domain.Rule {
	var out []domain.Rule
	for _, r := range c.rules {
		if Matches(r, roomID, day) {
			out = append(out, r)
		}
	}
	return out
}

// PriceForDay combines the matched rules for one (room, day) pair into the
// final nightly price and minimum-stay override.
//
// Price precedence: a fixed-price rule beats a multiplier rule beats the
// room's base price. Within the winning rule, a weekend day prefers the
// weekend value and falls back to the weekday value when the preferred one
// is not positive (and vice versa). Multiplier prices round half away from
// zero. minNights is 0 when no rule overrides it; the caller applies the
// room default.
func (c *Calculator) PriceForDay(room domain.Room, day time.Time, matched []domain.Rule) (price, minNights int) {
	weekend := IsWeekend(day)

	var fixed, mult, withMin []domain.Rule
	for _, r := range matched {
		if r.HasFixedPrice() {
			fixed = append(fixed, r)
		}
		if r.HasMultiplier() {
			mult = append(mult, r)
		}
		if r.RoomMinNights > 0 {
			withMin = append(withMin, r)
		}
	}

	if r, ok := Select(withMin); ok {
		minNights = r.RoomMinNights
	}

	if r, ok := Select(fixed); ok {
		p := r.FixedWeekdayPrice
		if weekend && r.FixedWeekendPrice > 0 {
			p = r.FixedWeekendPrice
		}
		if p <= 0 {
			p = r.FixedWeekendPrice
		}
		return p, minNights
	}

	base := room.BaseWeekday
	if weekend {
		base = room.BaseWeekend
	}

	if r, ok := Select(mult); ok {
		m := r.WeekdayMultiplier
		if weekend && r.WeekendMultiplier > 0 {
			m = r.WeekendMultiplier
		}
		if m <= 0 {
			m = r.WeekendMultiplier
		}
		return int(math.Round(float64(base) * m)), minNights
	}

	return base, minNights
}
