package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"saigon-foodtour/internal/app"
	"saigon-foodtour/internal/config"
	"saigon-foodtour/internal/geo"
	"saigon-foodtour/internal/planner"
)

const datasetCSV = `id,name,address,rating,opening_hours,latitude,longitude
v1,Phở Lệ,415 Nguyễn Trãi,4.5,Mở cả ngày,10.7760,106.7000
v2,Bún Thịt Nướng Chị Ba,Đề Thám,4.4,Mở cả ngày,10.7800,106.7020
v3,Cơm Tấm Ba Ghiền,Đặng Văn Ngữ,4.6,Mở cả ngày,10.7900,106.6800
v4,Nhà hàng Ngon 138,Nam Kỳ Khởi Nghĩa,4.3,Mở cả ngày,10.7730,106.6950
v5,Chè Kỳ Đồng,Kỳ Đồng,4.2,Mở cả ngày,10.7810,106.6850
v6,Cà phê Vợt,Phan Đình Phùng,4.7,Mở cả ngày,10.7950,106.6820
v7,Quán Không Tọa Độ,Q1,4.0,Mở cả ngày,,
`

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		DatabasePath:    filepath.Join(dir, "test.db"),
		PlanStoragePath: filepath.Join(dir, "plans"),
		DefaultRadiusKM: 5,
	}
	a, err := app.New(cfg)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestIngestThenPlan(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	csvPath := filepath.Join(t.TempDir(), "venues.csv")
	if err := os.WriteFile(csvPath, []byte(datasetCSV), 0644); err != nil {
		t.Fatal(err)
	}
	if err := a.IngestFiles(ctx, []string{csvPath}); err != nil {
		t.Fatalf("IngestFiles: %v", err)
	}
	n, err := a.Venues.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("stored %d venues, want 7", n)
	}

	resp := a.Plan(ctx, planner.Request{
		Origin:   geo.Point{Lat: 10.776, Lon: 106.700},
		RadiusKM: 5,
	})
	if resp.Error {
		t.Fatalf("planning failed: %s", resp.Message)
	}
	if resp.Plan == nil || len(resp.Plan.Slots) == 0 {
		t.Fatal("empty plan")
	}

	placed := 0
	seen := map[string]bool{}
	for _, s := range resp.Plan.Slots {
		if s.Venue == nil {
			continue
		}
		placed++
		if seen[s.Venue.ID] {
			t.Errorf("venue %s placed twice", s.Venue.ID)
		}
		seen[s.Venue.ID] = true
	}
	if placed == 0 {
		t.Fatal("no slot received a venue")
	}

	// The successful plan is persisted for later re-display.
	if !a.PlanStore.Exists(resp.Plan.ID) {
		t.Error("plan not saved to the plan store")
	}

	// The request shows up in the usage metrics.
	usage, err := a.Metrics.GetDailyUsage(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(usage) != 1 || usage[0].Requests != 1 {
		t.Errorf("usage = %+v", usage)
	}
}

func TestPlanWithoutRadiusIsUserError(t *testing.T) {
	a := newTestApp(t)

	resp := a.Plan(context.Background(), planner.Request{
		Origin: geo.Point{Lat: 10.776, Lon: 106.700},
	})
	if !resp.Error {
		t.Fatal("expected a user-facing error")
	}
	if resp.Message == "" {
		t.Error("error response must carry a message")
	}
}
