package sheets

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bookingproto/rategen/internal/domain"
	"github.com/bookingproto/rategen/internal/log"
)

// firstDataRow is the sheet row number of the first data row (row 1 keys,
// row 2 description). Row ranks count from here.
const firstDataRow = 3

// LoadRooms converts rooms-tab rows into Room values. Rows without an id are
// skipped.
func LoadRooms(ctx context.Context, rows [][]string) ([]domain.Room, error) {
	records, err := recordsFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("rooms tab: %w", err)
	}

	var rooms []domain.Room
	for _, rec := range records {
		id := strings.TrimSpace(rec["id"])
		if id == "" {
			continue
		}
		rooms = append(rooms, domain.Room{
			ID:                  id,
			Name:                rec["name"],
			BaseWeekday:         parseInt(rec["base_weekday"], 0),
			BaseWeekend:         parseInt(rec["base_weekend"], 0),
			BedsTotal:           parseInt(rec["beds_total"], 0),
			BedsDesc:            rec["beds_desc"],
			TotalRooms:          parseInt(rec["total rooms"], 0),
			CapAdults:           parseInt(rec["capA"], 0),
			CapKids:             parseInt(rec["capK"], 0),
			MinNightsDefault:    parseInt(rec["min_nights_default"], 2),
			MonthlyAllowed:      parseYes(rec["monthly_allowed"]),
			MonthlyMinDays:      parseInt(rec["monthly_min_days"], 0),
			MonthlyDiscountPct:  parseInt(rec["monthly_discount_pct"], 0),
			BreakfastPriceAdult: parseInt(rec["breakfast_price_adult"], 0),
			BreakfastPriceChild: parseInt(rec["breakfast_price_child"], 0),
			Amenities:           splitList(rec["amenities"]),
			Photos:              splitList(rec["photos"]),
			Description:         rec["desc"],
		})
	}

	log.Info(ctx, "rooms loaded", zap.Int("count", len(rooms)))
	return rooms, nil
}

// LoadRules converts calendar_rules-tab rows into Rule values. Rows without
// an id, with a missing or malformed date, or with an inverted date window
// are dropped here so the engine only ever sees well-formed rules.
func LoadRules(ctx context.Context, rows [][]string) ([]domain.Rule, error) {
	records, err := recordsFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("calendar_rules tab: %w", err)
	}

	var rules []domain.Rule
	for i, rec := range records {
		rank := firstDataRow + i

		id := strings.TrimSpace(rec["rule_id"])
		if id == "" {
			continue
		}

		enabled := true
		if v, ok := rec["Enable"]; ok {
			enabled = parseYes(v)
		}

		from, okFrom := parseDay(rec["from"])
		to, okTo := parseDay(rec["to"])
		if !okFrom || !okTo {
			log.Warn(ctx, "rule dropped: missing or malformed date",
				zap.String("rule_id", id), zap.Int("row", rank))
			continue
		}
		if from.After(to) {
			log.Warn(ctx, "rule dropped: from is after to",
				zap.String("rule_id", id), zap.Int("row", rank))
			continue
		}

		rules = append(rules, domain.Rule{
			ID:                id,
			Enabled:           enabled,
			Name:              rec["name"],
			DateFrom:          from,
			DateTo:            to,
			Type:              domain.RuleType(strings.ToUpper(strings.TrimSpace(rec["rule_type"]))),
			AppliesTo:         splitList(rec["applies_to"]),
			RoomMinNights:     parseInt(rec["room_min_nights"], 0),
			WeekdayMultiplier: parseFloat(rec["weekday_multiplier"], 0),
			WeekendMultiplier: parseFloat(rec["weekend_multiplier"], 0),
			FixedWeekdayPrice: parseInt(rec["fixed_weekday_price"], 0),
			FixedWeekendPrice: parseInt(rec["fixed_weekend_price"], 0),
			MonthlyOnly:       parseYes(rec["monthly_only"]),
			Notes:             rec["notes"],
			RowRank:           rank,
		})
	}

	enabledCount := 0
	for _, r := range rules {
		if r.Enabled {
			enabledCount++
		}
	}
	log.Info(ctx, "rules loaded",
		zap.Int("count", len(rules)), zap.Int("enabled", enabledCount))
	return rules, nil
}
