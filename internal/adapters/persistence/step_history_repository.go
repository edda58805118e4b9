package persistence

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/spaceempire-go/internal/application/game"
	"github.com/andrescamacho/spaceempire-go/internal/domain/shared"
)

// SessionSummary describes one recorded session
type SessionSummary struct {
	SessionID string
	Steps     uint64
	LastSeen  time.Time
}

// GormStepHistoryRepository records step reports using GORM.
// It is a game.StepObserver.
type GormStepHistoryRepository struct {
	db *gorm.DB
}

// NewGormStepHistoryRepository creates a new GORM step history repository
func NewGormStepHistoryRepository(db *gorm.DB) *GormStepHistoryRepository {
	return &GormStepHistoryRepository{db: db}
}

// ObserveStep records the report as soon as the session publishes it
func (r *GormStepHistoryRepository) ObserveStep(ctx context.Context, report *game.StepReport) error {
	return r.Record(ctx, report)
}

// Record persists one row per player of the report in a single insert
func (r *GormStepHistoryRepository) Record(ctx context.Context, report *game.StepReport) error {
	if len(report.Players) == 0 {
		return nil
	}

	models := make([]StepRecordModel, 0, len(report.Players))
	for _, p := range report.Players {
		models = append(models, StepRecordModel{
			SessionID:  report.SessionID,
			Step:       report.Sequence,
			PlayerID:   p.PlayerID.Value(),
			Food:       p.Resources.Food,
			Technology: p.Resources.Technology,
			Gold:       p.Resources.Gold,
			Topology:   report.Fingerprint,
			RecordedAt: report.Timestamp,
		})
	}

	result := r.db.WithContext(ctx).Create(&models)
	if result.Error != nil {
		return fmt.Errorf("failed to record step %d: %w", report.Sequence, result.Error)
	}

	return nil
}

// ListBySession rebuilds the reports of a session in step order.
// A positive limit keeps only the most recent steps.
func (r *GormStepHistoryRepository) ListBySession(
	ctx context.Context,
	sessionID string,
	limit int,
) ([]*game.StepReport, error) {
	query := r.db.WithContext(ctx).
		Model(&StepRecordModel{}).
		Where("session_id = ?", sessionID)

	if limit > 0 {
		var steps []uint64
		err := r.db.WithContext(ctx).
			Model(&StepRecordModel{}).
			Where("session_id = ?", sessionID).
			Distinct("step").
			Order("step DESC").
			Limit(limit).
			Pluck("step", &steps).Error
		if err != nil {
			return nil, fmt.Errorf("failed to find step window: %w", err)
		}
		if len(steps) > 0 {
			query = query.Where("step >= ?", steps[len(steps)-1])
		}
	}

	var models []StepRecordModel
	result := query.Order("step ASC").Order("player_id ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list step history: %w", result.Error)
	}

	return modelsToReports(models), nil
}

// ListSessions returns every recorded session, most recent first
func (r *GormStepHistoryRepository) ListSessions(ctx context.Context) ([]SessionSummary, error) {
	var models []StepRecordModel
	result := r.db.WithContext(ctx).
		Select("session_id", "step", "recorded_at").
		Order("id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", result.Error)
	}

	index := make(map[string]int)
	var summaries []SessionSummary
	for _, m := range models {
		i, ok := index[m.SessionID]
		if !ok {
			i = len(summaries)
			index[m.SessionID] = i
			summaries = append(summaries, SessionSummary{SessionID: m.SessionID})
		}
		if m.Step > summaries[i].Steps {
			summaries[i].Steps = m.Step
		}
		if m.RecordedAt.After(summaries[i].LastSeen) {
			summaries[i].LastSeen = m.RecordedAt
		}
	}

	sort.SliceStable(summaries, func(a, b int) bool {
		return summaries[a].LastSeen.After(summaries[b].LastSeen)
	})
	return summaries, nil
}

// LatestSessionID returns the session with the most recent row, or "" when empty
func (r *GormStepHistoryRepository) LatestSessionID(ctx context.Context) (string, error) {
	var model StepRecordModel
	result := r.db.WithContext(ctx).
		Order("recorded_at DESC").
		Order("id DESC").
		Limit(1).
		Find(&model)
	if result.Error != nil {
		return "", fmt.Errorf("failed to find latest session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", nil
	}
	return model.SessionID, nil
}

func modelsToReports(models []StepRecordModel) []*game.StepReport {
	var reports []*game.StepReport
	var current *game.StepReport
	for _, m := range models {
		if current == nil || current.Sequence != m.Step {
			current = &game.StepReport{
				SessionID:   m.SessionID,
				Sequence:    m.Step,
				Timestamp:   m.RecordedAt,
				Fingerprint: m.Topology,
			}
			reports = append(reports, current)
		}
		current.Players = append(current.Players, game.PlayerReport{
			PlayerID:  shared.PlayerID(m.PlayerID),
			Resources: shared.NewResources(m.Food, m.Technology, m.Gold),
		})
	}
	return reports
}
