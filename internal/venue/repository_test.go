package venue_test

import (
	"context"
	"path/filepath"
	"testing"

	"saigon-foodtour/internal/database"
	"saigon-foodtour/internal/venue"
)

func newTestRepo(t *testing.T) *venue.Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return venue.NewRepository(db.SQL)
}

func TestRepositorySaveAndLoad(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	rows := []venue.Row{
		{ID: "v1", Name: "Phở Lệ", Rating: "4.5", Latitude: "10.7546", Longitude: "106.6650"},
		{ID: "v2", Name: "Ốc Đào", Rating: "bad", Latitude: "10.7600", Longitude: "106.6900"},
		{ID: "v3", Name: "Nơi Nào Đó"}, // no coordinates
	}
	for _, r := range rows {
		if err := repo.Save(ctx, r); err != nil {
			t.Fatalf("Save %s: %v", r.ID, err)
		}
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}

	dataset, skipped, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(dataset) != 2 {
		t.Fatalf("dataset = %d venues, want 2", len(dataset))
	}
	if skipped[venue.SkipMissingCoordinates] != 1 {
		t.Errorf("skipped = %v", skipped)
	}
	byID := map[string]venue.Venue{}
	for _, v := range dataset {
		byID[v.ID] = v
	}
	if byID["v1"].Rating != 4.5 {
		t.Errorf("v1 rating = %f", byID["v1"].Rating)
	}
	// The unparseable rating loads as zero rather than excluding the row.
	if byID["v2"].Rating != 0 {
		t.Errorf("v2 rating = %f", byID["v2"].Rating)
	}
}

func TestRepositorySaveUpserts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	row := venue.Row{ID: "v1", Name: "Phở Lệ", Latitude: "10.75", Longitude: "106.66"}
	if err := repo.Save(ctx, row); err != nil {
		t.Fatal(err)
	}
	row.Name = "Phở Lệ Quận 5"
	if err := repo.Save(ctx, row); err != nil {
		t.Fatal(err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("count = %d after upsert, want 1", n)
	}
	dataset, _, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if dataset[0].Name != "Phở Lệ Quận 5" {
		t.Errorf("name = %q, update lost", dataset[0].Name)
	}
}
