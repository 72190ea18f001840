package models

import "time"

const (
	AchievementTypeStreak      = "streak"
	AchievementTypeCompletion  = "completion"
	AchievementTypeMilestone   = "milestone"
	AchievementTypeConsistency = "consistency"
	AchievementTypeVariety     = "variety"
)

const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

type AchievementDefinition struct {
	ID                uint   `gorm:"primaryKey"`
	Code              string `gorm:"uniqueIndex;not null"`
	Title             string `gorm:"not null"`
	Description       string `gorm:"not null"`
	Icon              string `gorm:"not null"`
	Type              string `gorm:"not null;index"`
	Category          string `gorm:"not null;default:general"`
	Rarity            string `gorm:"not null;default:common"`
	Points            int    `gorm:"not null;default:10"`
	CriteriaTarget    int    `gorm:"not null"`
	CriteriaUnit      string `gorm:"not null"`
	CriteriaCondition string
	IsActive          bool `gorm:"not null;default:true"`
	CreatedAt         time.Time
}

// UserAchievement is the per-user progress row for one definition,
// created lazily on first evaluation. Unlocked is one-way: once set it
// is never cleared, even if the underlying metric later drops.
type UserAchievement struct {
	ID            uint `gorm:"primaryKey"`
	UserID        uint `gorm:"not null;uniqueIndex:uidx_user_achievement"`
	AchievementID uint `gorm:"not null;uniqueIndex:uidx_user_achievement"`
	Current       int  `gorm:"not null;default:0"`
	Target        int  `gorm:"not null;default:1"`
	Percentage    int  `gorm:"not null;default:0"`
	Unlocked      bool `gorm:"not null;default:false;index"`
	UnlockedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func AchievementTypes() []string {
	return []string{
		AchievementTypeStreak,
		AchievementTypeCompletion,
		AchievementTypeMilestone,
		AchievementTypeConsistency,
		AchievementTypeVariety,
	}
}

func AchievementRarities() []string {
	return []string{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

func AchievementCriteriaUnits() []string {
	return []string{"days", "weeks", "months", "completions", "habits", "categories"}
}

func AchievementCriteriaConditions() []string {
	return []string{"streak", "total", "consecutive", "variety"}
}

// DefaultAchievementCatalog is the built-in definition set seeded into
// the database on first start. Codes are stable so reseeding never
// duplicates rows.
func DefaultAchievementCatalog() []AchievementDefinition {
	return []AchievementDefinition{
		{Code: "first-steps", Title: "First Steps", Description: "Complete your first habit", Icon: "🎯", Type: AchievementTypeCompletion, Category: "general", Rarity: RarityCommon, Points: 10, CriteriaTarget: 1, CriteriaUnit: "completions", CriteriaCondition: "total"},
		{Code: "getting-started", Title: "Getting Started", Description: "Maintain a 3-day streak", Icon: "🔥", Type: AchievementTypeStreak, Category: "general", Rarity: RarityCommon, Points: 25, CriteriaTarget: 3, CriteriaUnit: "days", CriteriaCondition: "streak"},
		{Code: "week-warrior", Title: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "⚡", Type: AchievementTypeStreak, Category: "general", Rarity: RarityRare, Points: 50, CriteriaTarget: 7, CriteriaUnit: "days", CriteriaCondition: "streak"},
		{Code: "consistency-champion", Title: "Consistency Champion", Description: "Maintain a 30-day streak", Icon: "👑", Type: AchievementTypeStreak, Category: "general", Rarity: RarityEpic, Points: 150, CriteriaTarget: 30, CriteriaUnit: "days", CriteriaCondition: "streak"},
		{Code: "legendary-streaker", Title: "Legendary Streaker", Description: "Maintain a 100-day streak", Icon: "🏆", Type: AchievementTypeStreak, Category: "general", Rarity: RarityLegendary, Points: 500, CriteriaTarget: 100, CriteriaUnit: "days", CriteriaCondition: "streak"},
		{Code: "perfect-week", Title: "Perfect Week", Description: "Hit every target across a habit for 7 straight days", Icon: "📅", Type: AchievementTypeConsistency, Category: "general", Rarity: RarityRare, Points: 80, CriteriaTarget: 7, CriteriaUnit: "days", CriteriaCondition: "consecutive"},
		{Code: "well-rounded", Title: "Well Rounded", Description: "Create habits in 3 different categories", Icon: "🌈", Type: AchievementTypeVariety, Category: "general", Rarity: RarityCommon, Points: 40, CriteriaTarget: 3, CriteriaUnit: "categories", CriteriaCondition: "variety"},
		{Code: "renaissance-person", Title: "Renaissance Person", Description: "Create habits in 5 different categories", Icon: "🎨", Type: AchievementTypeVariety, Category: "general", Rarity: RarityRare, Points: 75, CriteriaTarget: 5, CriteriaUnit: "categories", CriteriaCondition: "variety"},
		{Code: "master-of-all", Title: "Master of All", Description: "Create habits in 8 different categories", Icon: "🎭", Type: AchievementTypeVariety, Category: "general", Rarity: RarityLegendary, Points: 300, CriteriaTarget: 8, CriteriaUnit: "categories", CriteriaCondition: "variety"},
		{Code: "habit-creator", Title: "Habit Creator", Description: "Create 5 habits", Icon: "📝", Type: AchievementTypeMilestone, Category: "general", Rarity: RarityCommon, Points: 20, CriteriaTarget: 5, CriteriaUnit: "habits", CriteriaCondition: "total"},
		{Code: "habit-architect", Title: "Habit Architect", Description: "Create 15 habits", Icon: "🏗️", Type: AchievementTypeMilestone, Category: "general", Rarity: RarityRare, Points: 60, CriteriaTarget: 15, CriteriaUnit: "habits", CriteriaCondition: "total"},
		{Code: "habit-master", Title: "Habit Master", Description: "Create 30 habits", Icon: "🎯", Type: AchievementTypeMilestone, Category: "general", Rarity: RarityEpic, Points: 120, CriteriaTarget: 30, CriteriaUnit: "habits", CriteriaCondition: "total"},
		{Code: "century-club", Title: "Century Club", Description: "Complete 100 total habits", Icon: "💯", Type: AchievementTypeCompletion, Category: "general", Rarity: RarityRare, Points: 100, CriteriaTarget: 100, CriteriaUnit: "completions", CriteriaCondition: "total"},
		{Code: "half-thousand", Title: "Half Thousand", Description: "Complete 500 total habits", Icon: "🚀", Type: AchievementTypeCompletion, Category: "general", Rarity: RarityEpic, Points: 250, CriteriaTarget: 500, CriteriaUnit: "completions", CriteriaCondition: "total"},
		{Code: "thousand-strong", Title: "Thousand Strong", Description: "Complete 1000 total habits", Icon: "⭐", Type: AchievementTypeCompletion, Category: "general", Rarity: RarityLegendary, Points: 500, CriteriaTarget: 1000, CriteriaUnit: "completions", CriteriaCondition: "total"},
	}
}
