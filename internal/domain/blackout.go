package domain

import (
	"sort"
	"time"
)

// BlackoutCalendar collects non-bookable days found during a pricing run.
// Days are recorded per room; the exported set is the flattened union across
// rooms, which matches the downstream contract, but the per-room view is kept
// so a per-room output needs no recomputation.
type BlackoutCalendar struct {
	byRoom map[string]map[time.Time]struct{}
}

func NewBlackoutCalendar() *BlackoutCalendar {
	return &BlackoutCalendar{byRoom: make(map[string]map[time.Time]struct{})}
}

// Add marks day as blacked out for the given room.
func (b *BlackoutCalendar) Add(roomID string, day time.Time) {
	day = Day(day)
	set, ok := b.byRoom[roomID]
	if !ok {
		set = make(map[time.Time]struct{})
		b.byRoom[roomID] = set
	}
	set[day] = struct{}{}
}

// Days returns the sorted, deduplicated union of blackout days across all
// rooms.
func (b *BlackoutCalendar) Days() []time.Time {
	seen := make(map[time.Time]struct{})
	for _, set := range b.byRoom {
		for day := range set {
			seen[day] = struct{}{}
		}
	}
	out := make([]time.Time, 0, len(seen))
	for day := range seen {
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// RoomDays returns the sorted blackout days recorded for one room.
func (b *BlackoutCalendar) RoomDays(roomID string) []time.Time {
	set := b.byRoom[roomID]
	out := make([]time.Time, 0, len(set))
	for day := range set {
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Contains reports whether day is blacked out for any room.
func (b *BlackoutCalendar) Contains(day time.Time) bool {
	day = Day(day)
	for _, set := range b.byRoom {
		if _, ok := set[day]; ok {
			return true
		}
	}
	return false
}

// Len returns the number of distinct blackout days across all rooms.
func (b *BlackoutCalendar) Len() int {
	return len(b.Days())
}
