package models

import "time"

const (
	CategoryExercise     = "exercise"
	CategoryNutrition    = "nutrition"
	CategorySleep        = "sleep"
	CategoryMindfulness  = "mindfulness"
	CategoryProductivity = "productivity"
	CategoryHealth       = "health"
	CategoryLearning     = "learning"
	CategorySocial       = "social"
	CategoryCustom       = "custom"
)

const DefaultHabitColor = "#3B82F6"

type Habit struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          uint   `gorm:"not null;index:idx_habits_user_active"`
	Name            string `gorm:"not null"`
	Description     string
	Category        string `gorm:"not null;index"`
	TargetValue     int    `gorm:"not null"`
	TargetUnit      string `gorm:"not null"`
	Color           string `gorm:"not null;default:#3B82F6"`
	IsActive        bool   `gorm:"not null;default:true;index:idx_habits_user_active"`
	CurrentStreak   int    `gorm:"not null;default:0"`
	LongestStreak   int    `gorm:"not null;default:0"`
	LastCompletedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func HabitCategories() []string {
	return []string{
		CategoryExercise,
		CategoryNutrition,
		CategorySleep,
		CategoryMindfulness,
		CategoryProductivity,
		CategoryHealth,
		CategoryLearning,
		CategorySocial,
		CategoryCustom,
	}
}

func IsValidHabitCategory(category string) bool {
	for _, known := range HabitCategories() {
		if category == known {
			return true
		}
	}
	return false
}

func HabitUnits() []string {
	return []string{"times", "minutes", "hours", "glasses", "pages", "kilometers", "steps"}
}

func IsValidHabitUnit(unit string) bool {
	for _, known := range HabitUnits() {
		if unit == known {
			return true
		}
	}
	return false
}
