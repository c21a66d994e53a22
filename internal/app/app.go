// Package app wires the engine and its collaborators together for the
// CLI and the bot.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"saigon-foodtour/internal/config"
	"saigon-foodtour/internal/database"
	"saigon-foodtour/internal/hours"
	"saigon-foodtour/internal/ingest"
	"saigon-foodtour/internal/metrics"
	"saigon-foodtour/internal/planner"
	"saigon-foodtour/internal/schedule"
	"saigon-foodtour/internal/search"
	"saigon-foodtour/internal/storage"
	"saigon-foodtour/internal/theme"
	"saigon-foodtour/internal/venue"
)

// App holds the application's dependencies.
type App struct {
	cfg *config.Config
	db  *database.DB

	Venues    *venue.Repository
	Planner   *planner.Planner
	PlanStore *storage.PlanStore
	Metrics   *metrics.Store
	Ingester  *ingest.Ingester
}

// New opens the database and builds the full dependency graph.
func New(cfg *config.Config) (*App, error) {
	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	planStore, err := storage.NewPlanStore(cfg.PlanStoragePath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize plan store: %w", err)
	}

	venues := venue.NewRepository(db.SQL)
	catalog := theme.NewCatalog()
	finder := search.NewFinder(catalog, hours.NewEvaluator(hours.DefaultMinRemaining))

	return &App{
		cfg:       cfg,
		db:        db,
		Venues:    venues,
		Planner:   planner.NewPlanner(finder),
		PlanStore: planStore,
		Metrics:   metrics.NewStore(db.SQL),
		Ingester:  ingest.NewIngester(venues),
	}, nil
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.db.Close()
}

// DB exposes the underlying connection for collaborators that keep their
// own tables, such as chat sessions.
func (a *App) DB() *sql.DB {
	return a.db.SQL
}

// Plan runs one planning request end to end: load the dataset, generate
// the itinerary, persist it, and record a metric. The returned response
// is ready for the presentation layer.
func (a *App) Plan(ctx context.Context, req planner.Request) planner.Response {
	started := time.Now()

	dataset, skipped, err := a.Venues.LoadAll(ctx)
	if err != nil {
		log.Printf("Failed to load venue dataset: %v", err)
		return planner.Response{Error: true, Message: "Không thể tải dữ liệu địa điểm, vui lòng thử lại sau."}
	}
	for reason, n := range skipped {
		log.Printf("Dataset: %d rows skipped (%s)", n, reason)
	}

	plan, planErr := a.Planner.GeneratePlan(req, dataset)

	slotsTotal, slotsPlaced := 0, 0
	if plan != nil {
		slotsTotal = len(plan.Slots)
		slotsPlaced = countPlaced(plan)
	}
	if err := a.Metrics.Record(ctx, metrics.PlanningMetric{
		RadiusKM:    req.RadiusKM,
		Themes:      req.Themes,
		SlotsTotal:  slotsTotal,
		SlotsPlaced: slotsPlaced,
		RowsScanned: len(dataset),
		LatencyMS:   time.Since(started).Milliseconds(),
	}); err != nil {
		log.Printf("Warning: failed to record planning metric: %v", err)
	}

	if planErr == nil {
		if err := a.PlanStore.Save(plan); err != nil {
			log.Printf("Warning: failed to save plan %s: %v", plan.ID, err)
		}
	}
	return planner.NewResponse(plan, planErr)
}

// IngestFiles loads exported listing files into the venue table.
func (a *App) IngestFiles(ctx context.Context, paths []string) error {
	total := 0
	for _, path := range paths {
		n, err := a.Ingester.IngestFile(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", path, err)
		}
		log.Printf("Ingested %d venues from %s", n, path)
		total += n
	}
	count, err := a.Venues.Count(ctx)
	if err != nil {
		return err
	}
	log.Printf("Ingestion complete: %d rows stored this run, %d total", total, count)
	return nil
}

func countPlaced(plan *schedule.Plan) int {
	n := 0
	for _, s := range plan.Slots {
		if s.Venue != nil {
			n++
		}
	}
	return n
}
