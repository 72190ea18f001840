package db

import (
	"time"

	"github.com/fittrackhq/fittrack/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error) {
	habit := models.Habit{}
	result := repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		Limit(1).
		Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) ListByUser(userID uint, category string, activeOnly bool) ([]models.Habit, error) {
	query := repo.database.Model(&models.Habit{}).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	habits := make([]models.Habit, 0)
	if err := query.Order("created_at DESC, id DESC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) ListActiveByUser(userID uint) ([]models.Habit, error) {
	return repo.ListByUser(userID, "", true)
}

func (repo *HabitRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Habit{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) Save(habit *models.Habit) error {
	return repo.database.Save(habit).Error
}

func (repo *HabitRepository) UpdateStreak(habitID uint, current int, longest int, lastCompleted *time.Time) error {
	return repo.database.Model(&models.Habit{}).Where("id = ?", habitID).Updates(map[string]any{
		"current_streak":    current,
		"longest_streak":    longest,
		"last_completed_at": lastCompleted,
	}).Error
}

func (repo *HabitRepository) Deactivate(habitID uint) error {
	return repo.database.Model(&models.Habit{}).Where("id = ?", habitID).Update("is_active", false).Error
}
