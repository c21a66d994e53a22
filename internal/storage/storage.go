// Package storage persists finished plans as JSON files. The planning
// engine itself never writes here; this is the external persistence
// collaborator that feeds plans back in for re-display and editing.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"saigon-foodtour/internal/schedule"
)

// PlanStore provides file-based storage for generated plans.
type PlanStore struct {
	basePath string
}

// NewPlanStore creates a new PlanStore and ensures the base directory exists.
func NewPlanStore(basePath string) (*PlanStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &PlanStore{basePath: basePath}, nil
}

func (s *PlanStore) planPath(planID string) string {
	return filepath.Join(s.basePath, planID+".json")
}

// Save stores a plan under its identifier, replacing any prior version.
func (s *PlanStore) Save(plan *schedule.Plan) error {
	if plan.ID == "" {
		return fmt.Errorf("plan has no identifier")
	}
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := os.WriteFile(s.planPath(plan.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file: %w", err)
	}
	return nil
}

// Load retrieves a stored plan. The loaded plan is shape-identical to
// what was saved, so it can go straight back into the planner's world.
func (s *PlanStore) Load(planID string) (*schedule.Plan, error) {
	data, err := os.ReadFile(s.planPath(planID))
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	var plan schedule.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	if plan.ID == "" {
		plan.ID = planID
	}
	return &plan, nil
}

// Exists checks whether a plan file is present.
func (s *PlanStore) Exists(planID string) bool {
	_, err := os.Stat(s.planPath(planID))
	return !os.IsNotExist(err)
}

// Delete removes a stored plan.
func (s *PlanStore) Delete(planID string) error {
	if err := os.Remove(s.planPath(planID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove plan file: %w", err)
	}
	return nil
}
