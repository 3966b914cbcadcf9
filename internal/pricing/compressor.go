package pricing

import (
	"time"

	"github.com/bookingproto/rategen/internal/domain"
)

// Compress walks every day of the inclusive [start, end] horizon for each
// room, prices it, and collapses consecutive days with the same price into
// ranges. Days matched by a BLACKOUT rule are recorded in the returned
// calendar; they still get a price like any other day.
//
// For every room the returned ranges cover the horizon exactly, in ascending
// order, with no gaps or overlaps. The computation is pure: identical inputs
// produce identical output.
func (c *Calculator) Compress(rooms []domain.Room, start, end time.Time) ([]domain.RateRange, *domain.BlackoutCalendar) {
	start = domain.Day(start)
	end = domain.Day(end)

	var ranges []domain.RateRange
	blackouts := domain.NewBlackoutCalendar()

	if end.Before(start) {
		return ranges, blackouts
	}

	for _, room := range rooms {
		runStart := start
		runPrice := 0
		open := false

		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			matched := c.MatchedRules(room.ID, day)
			for _, r := range matched {
				if r.Type == domain.RuleTypeBlackout {
					blackouts.Add(room.ID, day)
					break
				}
			}

			p, _ := c.PriceForDay(room, day, matched)
			if !open {
				runStart, runPrice, open = day, p, true
			} else if p != runPrice {
				ranges = append(ranges, domain.RateRange{
					RoomID: room.ID,
					From:   runStart,
					To:     day.AddDate(0, 0, -1),
					Price:  runPrice,
				})
				runStart, runPrice = day, p
			}
		}

		if open {
			ranges = append(ranges, domain.RateRange{
				RoomID: room.ID,
				From:   runStart,
				To:     end,
				Price:  runPrice,
			})
		}
	}

	return ranges, blackouts
}
