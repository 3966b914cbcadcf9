package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bookingproto/rategen/internal/domain"
)

// Rate is the JSON form of one compressed price range.
type Rate struct {
	RoomTypeID string `json:"room_type_id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Price      int    `json:"price"`
}

// Snapshot is the machine-readable result of one generator run. The preview
// server serves it as-is.
type Snapshot struct {
	RunID         string        `json:"run_id"`
	GeneratedAt   time.Time     `json:"generated_at"`
	HorizonFrom   string        `json:"horizon_from"`
	HorizonTo     string        `json:"horizon_to"`
	Rooms         []domain.Room `json:"rooms"`
	Rates         []Rate        `json:"rates"`
	BlackoutDates []string      `json:"blackout_dates"`
}

// NewSnapshot assembles a snapshot from engine output.
func NewSnapshot(runID string, rooms []domain.Room, ranges []domain.RateRange, blackoutDays []time.Time, from, to time.Time) Snapshot {
	rates := make([]Rate, 0, len(ranges))
	for _, rr := range ranges {
		rates = append(rates, Rate{
			RoomTypeID: rr.RoomID,
			From:       rr.From.Format(domain.DayLayout),
			To:         rr.To.Format(domain.DayLayout),
			Price:      rr.Price,
		})
	}

	days := make([]string, 0, len(blackoutDays))
	for _, d := range blackoutDays {
		days = append(days, d.Format(domain.DayLayout))
	}

	return Snapshot{
		RunID:         runID,
		GeneratedAt:   time.Now().UTC(),
		HorizonFrom:   from.Format(domain.DayLayout),
		HorizonTo:     to.Format(domain.DayLayout),
		Rooms:         rooms,
		Rates:         rates,
		BlackoutDates: days,
	}
}

// LoadSnapshot reads a snapshot written by a previous run.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return s, nil
}

// Files describes where WriteFiles puts its output.
type Files struct {
	Dir           string
	RoomTypesFile string
	RatesFile     string
	JSONFile      string
}

// WriteFiles writes the JS bundles and the JSON snapshot into f.Dir,
// creating the directory when needed.
func WriteFiles(f Files, rooms []domain.Room, ranges []domain.RateRange, blackoutDays []time.Time, snap Snapshot) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(f.Dir, f.RoomTypesFile), []byte(RoomTypesJS(rooms)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.RoomTypesFile, err)
	}
	if err := os.WriteFile(filepath.Join(f.Dir, f.RatesFile), []byte(RatesJS(ranges, blackoutDays)), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.RatesFile, err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(f.Dir, f.JSONFile), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.JSONFile, err)
	}
	return nil
}
