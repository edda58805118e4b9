package persistence

import (
	"time"
)

// StepRecordModel represents the step_history table: one row per player per step.
// Rows are telemetry only and are never loaded back into a session.
type StepRecordModel struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID  string    `gorm:"column:session_id;not null;index:idx_step_history_session_step,priority:1"`
	Step       uint64    `gorm:"column:step;not null;index:idx_step_history_session_step,priority:2"`
	PlayerID   uint32    `gorm:"column:player_id;not null"`
	Food       int32     `gorm:"column:food;not null;default:0"`
	Technology int32     `gorm:"column:technology;not null;default:0"`
	Gold       int32     `gorm:"column:gold;not null;default:0"`
	Topology   string    `gorm:"column:topology;size:64"` // starmap fingerprint (hex)
	RecordedAt time.Time `gorm:"column:recorded_at;not null"`
}

func (StepRecordModel) TableName() string {
	return "step_history"
}
