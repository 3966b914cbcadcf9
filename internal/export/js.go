package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/bookingproto/rategen/internal/domain"
)

const header = "// AUTOGENERATED. Do not edit by hand.\n"

// jsQuote renders s as a double-quoted JS string literal. Newlines are
// flattened to spaces: every exported value is a single-line cell anyway.
func jsQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return `"` + s + `"`
}

func jsStringArray(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = jsQuote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// RoomTypesJS renders the room catalog plus the per-room inventory map as a
// script the booking page loads into window globals.
func RoomTypesJS(rooms []domain.Room) string {
	items := make([]string, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, fmt.Sprintf(
			"{id:%s,name:%s,desc:%s,base:%d,base_weekend:%d,beds_total:%d,beds_desc:%s,"+
				"total_rooms:%d,capA:%d,capK:%d,min:%d,min_nights_default:%d,"+
				"monthly_allowed:%t,monthly_min_days:%d,monthly_discount_pct:%d,"+
				"breakfast_price_adult:%d,breakfast_price_child:%d,amen:%s,photos:%s}",
			jsQuote(r.ID), jsQuote(r.Name), jsQuote(r.Description),
			r.BaseWeekday, r.BaseWeekend, r.BedsTotal, jsQuote(r.BedsDesc),
			r.TotalRooms, r.CapAdults, r.CapKids,
			r.MinNightsDefault, r.MinNightsDefault,
			r.MonthlyAllowed, r.MonthlyMinDays, r.MonthlyDiscountPct,
			r.BreakfastPriceAdult, r.BreakfastPriceChild,
			jsStringArray(r.Amenities), jsStringArray(r.Photos)))
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("window.ROOM_TYPES = [\n  ")
	b.WriteString(strings.Join(items, ",\n  "))
	b.WriteString("\n];\n")

	inv := make([]string, 0, len(rooms))
	for _, r := range rooms {
		inv = append(inv, fmt.Sprintf("%s: %d", jsQuote(r.ID), r.TotalRooms))
	}
	b.WriteString("\nwindow.INVENTORY = {" + strings.Join(inv, ", ") + "};\n")

	return b.String()
}

// RatesJS renders the compressed price ranges and the blackout date list.
func RatesJS(ranges []domain.RateRange, blackoutDays []time.Time) string {
	items := make([]string, 0, len(ranges))
	for _, rr := range ranges {
		items = append(items, fmt.Sprintf(
			"  { room_type_id: %s, from: %s, to: %s, price: %d }",
			jsQuote(rr.RoomID),
			jsQuote(rr.From.Format(domain.DayLayout)),
			jsQuote(rr.To.Format(domain.DayLayout)),
			rr.Price))
	}

	days := make([]string, 0, len(blackoutDays))
	for _, d := range blackoutDays {
		days = append(days, d.Format(domain.DayLayout))
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("window.RATES = [\n")
	b.WriteString(strings.Join(items, ",\n"))
	b.WriteString("\n];\n")
	b.WriteString("\nwindow.BLACKOUT_DATES = " + jsStringArray(days) + ";\n")
	return b.String()
}
