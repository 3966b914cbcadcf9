package domain

import "time"

// DayLayout is the calendar date format used across sheet input and output.
const DayLayout = "2006-01-02"

// Day normalizes t to midnight UTC so calendar days compare with ==.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses an ISO calendar date (YYYY-MM-DD).
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// Room is one room type from the rooms tab. Immutable for the duration of a
// pricing run.
type Room struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	BaseWeekday         int      `json:"base_weekday"`
	BaseWeekend         int      `json:"base_weekend"`
	BedsTotal           int      `json:"beds_total"`
	BedsDesc            string   `json:"beds_desc"`
	TotalRooms          int      `json:"total_rooms"`
	CapAdults           int      `json:"cap_adults"`
	CapKids             int      `json:"cap_kids"`
	MinNightsDefault    int      `json:"min_nights_default"`
	MonthlyAllowed      bool     `json:"monthly_allowed"`
	MonthlyMinDays      int      `json:"monthly_min_days"`
	MonthlyDiscountPct  int      `json:"monthly_discount_pct"`
	BreakfastPriceAdult int      `json:"breakfast_price_adult"`
	BreakfastPriceChild int      `json:"breakfast_price_child"`
	Amenities           []string `json:"amenities"`
	Photos              []string `json:"photos"`
	Description         string   `json:"desc"`
}

// RuleType tags a calendar rule. The set is open: unrecognized tags still
// price through their fixed/multiplier/min-nights fields, only BLACKOUT is
// special-cased by name.
type RuleType string

const (
	RuleTypeHoliday  RuleType = "HOLIDAY"
	RuleTypeSpecial  RuleType = "SPECIAL"
	RuleTypeMonthly  RuleType = "MONTHLY"
	RuleTypeBlackout RuleType = "BLACKOUT"
)

// Rule is one row of the calendar_rules tab. DateFrom/DateTo are inclusive;
// an empty AppliesTo means the rule covers every room. RowRank is the
// original sheet row number and is used only as the final priority tiebreak.
type Rule struct {
	ID                string
	Enabled           bool
	Name              string
	DateFrom          time.Time
	DateTo            time.Time
	Type              RuleType
	AppliesTo         []string
	RoomMinNights     int
	WeekdayMultiplier float64
	WeekendMultiplier float64
	FixedWeekdayPrice int
	FixedWeekendPrice int
	MonthlyOnly       bool
	Notes             string
	RowRank           int
}

// SpanDays returns the inclusive length of the rule window in days.
func (r Rule) SpanDays() int {
	return int(Day(r.DateTo).Sub(Day(r.DateFrom))/(24*time.Hour)) + 1
}

// HasFixedPrice reports whether the rule carries a positive fixed price.
func (r Rule) HasFixedPrice() bool {
	return r.FixedWeekdayPrice > 0 || r.FixedWeekendPrice > 0
}

// HasMultiplier reports whether the rule carries a positive price multiplier.
func (r Rule) HasMultiplier() bool {
	return r.WeekdayMultiplier > 0 || r.WeekendMultiplier > 0
}

// RateRange is a maximal run of consecutive days with one price for one room.
// From and To are inclusive.
type RateRange struct {
	RoomID string
	From   time.Time
	To     time.Time
	Price  int
}
