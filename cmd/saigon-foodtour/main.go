// Command saigon-foodtour is the operator CLI: ingest venue exports,
// generate itineraries, and prune old metrics.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"saigon-foodtour/internal/app"
	"saigon-foodtour/internal/config"
	"saigon-foodtour/internal/geo"
	"saigon-foodtour/internal/planner"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to init app: %v", err)
	}
	defer application.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "ingest":
		runIngest(ctx, application, os.Args[2:])
	case "plan":
		runPlan(ctx, application, cfg, os.Args[2:])
	case "metrics-cleanup":
		runMetricsCleanup(ctx, application, os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func runIngest(ctx context.Context, application *app.App, paths []string) {
	if len(paths) == 0 {
		log.Fatal("ingest: at least one file path is required")
	}
	if err := application.IngestFiles(ctx, paths); err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
}

func runPlan(ctx context.Context, application *app.App, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "origin latitude")
	lon := fs.Float64("lon", 0, "origin longitude")
	radius := fs.Float64("radius", cfg.DefaultRadiusKM, "search radius in km")
	themes := fs.String("themes", "", "comma-separated theme ids")
	start := fs.String("start", "", "day start, HH:MM")
	end := fs.String("end", "", "day end, HH:MM")
	fs.Parse(args)

	resp := application.Plan(ctx, planner.Request{
		Origin:   geo.Point{Lat: *lat, Lon: *lon},
		RadiusKM: *radius,
		Themes:   planner.ParseThemeSelection(*themes),
		Start:    *start,
		End:      *end,
	})

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode response: %v", err)
	}
	fmt.Println(string(out))
	if resp.Error {
		os.Exit(1)
	}
}

func runMetricsCleanup(ctx context.Context, application *app.App, args []string) {
	fs := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
	days := fs.Int("days", 30, "keep metrics newer than this many days")
	fs.Parse(args)

	removed, err := application.Metrics.Cleanup(ctx, *days)
	if err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}
	log.Printf("Removed %d metric rows older than %d days", removed, *days)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: saigon-foodtour <command> [options]

Commands:
  ingest <file>...        load venue listing exports (.html or .csv)
  plan [options]          generate an itinerary and print it as JSON
  metrics-cleanup [-days] delete old planning metrics`)
}
