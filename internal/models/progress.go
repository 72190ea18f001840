package models

import "time"

// ProgressEntry stores one logged value per habit per calendar day.
// The unique index makes logging idempotent: resubmitting a day
// replaces the stored value instead of creating a second row.
type ProgressEntry struct {
	ID          uint      `gorm:"primaryKey"`
	HabitID     uint      `gorm:"not null;uniqueIndex:uidx_progress_habit_date"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uidx_progress_habit_date"`
	Value       int       `gorm:"not null"`
	TargetValue int       `gorm:"not null"`
	GoalMet     bool      `gorm:"not null;default:false;index"`
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
