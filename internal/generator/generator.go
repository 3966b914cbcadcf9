package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookingproto/rategen/internal/cache"
	"github.com/bookingproto/rategen/internal/config"
	"github.com/bookingproto/rategen/internal/domain"
	"github.com/bookingproto/rategen/internal/export"
	"github.com/bookingproto/rategen/internal/log"
	"github.com/bookingproto/rategen/internal/pricing"
	"github.com/bookingproto/rategen/internal/sheets"
)

// Generator runs the full pipeline: load the two tabs, resolve the horizon,
// price every day, compress, and write the output files.
type Generator struct {
	cfg   *config.Config
	cache *cache.Cache
	sheet *sheets.Client
}

// New builds a generator from config. The Redis cache is optional: when the
// address is unset or unreachable the generator fetches directly.
func New(ctx context.Context, cfg *config.Config) *Generator {
	var cch *cache.Cache
	if cfg.Redis.Addr != "" {
		var err error
		cch, err = cache.NewCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn(ctx, "redis unavailable, fetching without cache",
				zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			cch = nil
		}
	}

	timeout := time.Duration(cfg.Sheets.TimeoutSeconds) * time.Second
	ttl := time.Duration(cfg.Redis.TTLMinutes) * time.Minute

	return &Generator{
		cfg:   cfg,
		cache: cch,
		sheet: sheets.NewClient(timeout, cch, ttl),
	}
}

// Close releases the cache connection, if any.
func (g *Generator) Close() error {
	if g.cache != nil {
		return g.cache.Close()
	}
	return nil
}

// Run executes one generation and returns the written snapshot.
func (g *Generator) Run(ctx context.Context) (export.Snapshot, error) {
	runID := uuid.NewString()
	ctx = log.WithRunID(ctx, runID)

	rooms, rules, err := g.load(ctx)
	if err != nil {
		return export.Snapshot{}, err
	}
	if len(rooms) == 0 {
		return export.Snapshot{}, fmt.Errorf("no rooms loaded")
	}

	start, end := Horizon(rules, time.Now(), g.cfg.Horizon.MinDays)
	log.Info(ctx, "horizon resolved",
		zap.String("from", start.Format(domain.DayLayout)),
		zap.String("to", end.Format(domain.DayLayout)))

	calc := pricing.NewCalculator(rules)
	ranges, blackouts := calc.Compress(rooms, start, end)
	blackoutDays := blackouts.Days()

	snap := export.NewSnapshot(runID, rooms, ranges, blackoutDays, start, end)
	files := export.Files{
		Dir:           g.cfg.Output.Dir,
		RoomTypesFile: g.cfg.Output.RoomTypesFile,
		RatesFile:     g.cfg.Output.RatesFile,
		JSONFile:      g.cfg.Output.JSONFile,
	}
	if err := export.WriteFiles(files, rooms, ranges, blackoutDays, snap); err != nil {
		return export.Snapshot{}, err
	}

	log.Info(ctx, "rates generated",
		zap.Int("rooms", len(rooms)),
		zap.Int("rules", len(rules)),
		zap.Int("rate_ranges", len(ranges)),
		zap.Int("blackout_days", len(blackoutDays)),
		zap.String("output_dir", g.cfg.Output.Dir))
	return snap, nil
}

func (g *Generator) load(ctx context.Context) ([]domain.Room, []domain.Rule, error) {
	var roomRows, ruleRows [][]string
	var err error

	if path := g.cfg.Sheets.XLSXPath; path != "" {
		ctx = log.WithSource(ctx, "xlsx")
		roomRows, ruleRows, err = sheets.LoadWorkbook(path)
		if err != nil {
			return nil, nil, err
		}
	} else {
		ctx = log.WithSource(ctx, "google-sheets")
		roomRows, err = g.sheet.FetchTab(ctx, g.cfg.Sheets.SheetID, g.cfg.Sheets.RoomsGID)
		if err != nil {
			return nil, nil, err
		}
		ruleRows, err = g.sheet.FetchTab(ctx, g.cfg.Sheets.SheetID, g.cfg.Sheets.RulesGID)
		if err != nil {
			return nil, nil, err
		}
	}

	rooms, err := sheets.LoadRooms(ctx, roomRows)
	if err != nil {
		return nil, nil, err
	}
	rules, err := sheets.LoadRules(ctx, ruleRows)
	if err != nil {
		return nil, nil, err
	}
	return rooms, rules, nil
}
