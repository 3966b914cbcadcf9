package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bookingproto/rategen/internal/domain"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestJSQuote(t *testing.T) {
	require.Equal(t, `"plain"`, jsQuote("plain"))
	require.Equal(t, `"say \"hi\""`, jsQuote(`say "hi"`))
	require.Equal(t, `"a\\b"`, jsQuote(`a\b`))
	require.Equal(t, `"two lines"`, jsQuote("two\nlines"))
}

func TestRoomTypesJS(t *testing.T) {
	rooms := []domain.Room{{
		ID: "std", Name: "Standard", BaseWeekday: 3000, BaseWeekend: 4000,
		BedsTotal: 2, TotalRooms: 10, MinNightsDefault: 2,
		MonthlyAllowed: true, Amenities: []string{"wifi", "tv"},
		Photos: []string{"a.jpg"}, Description: "Cosy.",
	}}

	out := RoomTypesJS(rooms)
	require.True(t, strings.HasPrefix(out, "// AUTOGENERATED"))
	require.Contains(t, out, "window.ROOM_TYPES = [")
	require.Contains(t, out, `id:"std"`)
	require.Contains(t, out, "base:3000")
	require.Contains(t, out, "base_weekend:4000")
	require.Contains(t, out, "min_nights_default:2")
	require.Contains(t, out, "monthly_allowed:true")
	require.Contains(t, out, `amen:["wifi", "tv"]`)
	require.Contains(t, out, `window.INVENTORY = {"std": 10};`)
}

func TestRatesJS(t *testing.T) {
	ranges := []domain.RateRange{
		{RoomID: "std", From: mustDay(t, "2024-06-01"), To: mustDay(t, "2024-06-03"), Price: 4800},
		{RoomID: "std", From: mustDay(t, "2024-06-04"), To: mustDay(t, "2024-06-06"), Price: 3000},
	}
	blackouts := []time.Time{mustDay(t, "2024-06-05")}

	out := RatesJS(ranges, blackouts)
	require.Contains(t, out, `{ room_type_id: "std", from: "2024-06-01", to: "2024-06-03", price: 4800 }`)
	require.Contains(t, out, `window.BLACKOUT_DATES = ["2024-06-05"];`)
}

func TestWriteFilesAndLoadSnapshot(t *testing.T) {
	dir := t.TempDir()
	rooms := []domain.Room{{ID: "std", Name: "Standard", TotalRooms: 5}}
	ranges := []domain.RateRange{
		{RoomID: "std", From: mustDay(t, "2024-06-01"), To: mustDay(t, "2024-06-30"), Price: 3000},
	}
	blackouts := []time.Time{mustDay(t, "2024-06-10")}

	snap := NewSnapshot("run-1", rooms, ranges, blackouts,
		mustDay(t, "2024-06-01"), mustDay(t, "2024-06-30"))

	files := Files{Dir: dir, RoomTypesFile: "room_types.js", RatesFile: "rates.js", JSONFile: "rates.json"}
	require.NoError(t, WriteFiles(files, rooms, ranges, blackouts, snap))

	for _, name := range []string{"room_types.js", "rates.js", "rates.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}

	loaded, err := LoadSnapshot(filepath.Join(dir, "rates.json"))
	require.NoError(t, err)
	require.Equal(t, "run-1", loaded.RunID)
	require.Len(t, loaded.Rates, 1)
	require.Equal(t, 3000, loaded.Rates[0].Price)
	require.Equal(t, []string{"2024-06-10"}, loaded.BlackoutDates)
}
