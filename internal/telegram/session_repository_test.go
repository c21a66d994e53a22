package telegram_test

import (
	"context"
	"path/filepath"
	"testing"

	"saigon-foodtour/internal/database"
	"saigon-foodtour/internal/telegram"
)

func newTestSessions(t *testing.T) *telegram.SessionRepository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return telegram.NewSessionRepository(db.SQL)
}

func TestSessionRepository(t *testing.T) {
	sessions := newTestSessions(t)
	ctx := context.Background()
	const chatID = int64(42)

	_, found, err := sessions.Get(ctx, chatID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("unknown chat should not be found")
	}

	settings := telegram.Settings{
		Latitude:  10.776,
		Longitude: 106.700,
		RadiusKM:  3,
		Themes:    []string{"street_food", "drinks"},
		Start:     "08:00",
	}
	if err := sessions.Save(ctx, chatID, settings); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := sessions.Get(ctx, chatID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("saved chat not found")
	}
	if got.RadiusKM != 3 || len(got.Themes) != 2 || got.Start != "08:00" {
		t.Errorf("settings = %+v", got)
	}

	// Saving again replaces, it does not duplicate.
	settings.RadiusKM = 7
	if err := sessions.Save(ctx, chatID, settings); err != nil {
		t.Fatal(err)
	}
	got, _, err = sessions.Get(ctx, chatID)
	if err != nil {
		t.Fatal(err)
	}
	if got.RadiusKM != 7 {
		t.Errorf("radius = %f after update, want 7", got.RadiusKM)
	}

	if err := sessions.Delete(ctx, chatID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found, _ := sessions.Get(ctx, chatID); found {
		t.Error("deleted chat still found")
	}
}
