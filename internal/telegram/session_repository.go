package telegram

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Settings is the per-chat planning preference set, the chat equivalent
// of the settings panel: where the user is, how far they will go, what
// they feel like eating, and the time window to fill.
type Settings struct {
	LocationText string   `json:"location,omitempty"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	RadiusKM     float64  `json:"radius_km"`
	Themes       []string `json:"themes,omitempty"`
	Start        string   `json:"start,omitempty"`
	End          string   `json:"end,omitempty"`
	LastPlanID   string   `json:"last_plan_id,omitempty"`
}

// SessionRepository persists chat settings in SQLite.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository instance.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Get returns the stored settings for a chat. Missing chats yield the
// zero Settings and found=false.
func (sr *SessionRepository) Get(ctx context.Context, chatID int64) (Settings, bool, error) {
	var raw string
	err := sr.db.QueryRowContext(ctx,
		`SELECT settings FROM sessions WHERE chat_id = ?`, chatID).Scan(&raw)
	if err == sql.ErrNoRows {
		return Settings{}, false, nil
	}
	if err != nil {
		return Settings{}, false, fmt.Errorf("failed to load session %d: %w", chatID, err)
	}
	var s Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Settings{}, false, fmt.Errorf("failed to decode session %d: %w", chatID, err)
	}
	return s, true, nil
}

// Save upserts the settings for a chat.
func (sr *SessionRepository) Save(ctx context.Context, chatID int64, s Settings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session %d: %w", chatID, err)
	}
	_, err = sr.db.ExecContext(ctx, `
		INSERT INTO sessions (chat_id, settings, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			settings = excluded.settings,
			updated_at = excluded.updated_at`,
		chatID, string(raw), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session %d: %w", chatID, err)
	}
	return nil
}

// Delete removes a chat's stored settings.
func (sr *SessionRepository) Delete(ctx context.Context, chatID int64) error {
	_, err := sr.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE chat_id = ?`, chatID)
	return err
}
