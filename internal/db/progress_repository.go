package db

import (
	"time"

	"github.com/fittrackhq/fittrack/internal/models"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	database *gorm.DB
}

func NewProgressRepository(database *gorm.DB) *ProgressRepository {
	return &ProgressRepository{database: database}
}

func (repo *ProgressRepository) ListByHabit(habitID uint) ([]models.ProgressEntry, error) {
	entries := make([]models.ProgressEntry, 0)
	if err := repo.database.
		Where("habit_id = ?", habitID).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *ProgressRepository) ListByHabitRange(habitID uint, fromStart *time.Time, toEnd *time.Time) ([]models.ProgressEntry, error) {
	query := repo.database.Model(&models.ProgressEntry{}).Where("habit_id = ?", habitID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	entries := make([]models.ProgressEntry, 0)
	if err := query.Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *ProgressRepository) FindByHabitAndDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) (models.ProgressEntry, bool, error) {
	entry := models.ProgressEntry{}
	result := repo.database.
		Where("habit_id = ? AND date >= ? AND date < ?", habitID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.ProgressEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ProgressEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *ProgressRepository) Create(entry *models.ProgressEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *ProgressRepository) Save(entry *models.ProgressEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *ProgressRepository) DeleteByHabit(habitID uint) error {
	return repo.database.Where("habit_id = ?", habitID).Delete(&models.ProgressEntry{}).Error
}

// CountGoalMetByUser is the user's lifetime completion count across all
// of their habits, active or not.
func (repo *ProgressRepository) CountGoalMetByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.ProgressEntry{}).
		Joins("JOIN habits ON habits.id = progress_entries.habit_id").
		Where("habits.user_id = ? AND progress_entries.goal_met = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ProgressRepository) ListGoalMetByHabitSince(habitID uint, since time.Time) ([]models.ProgressEntry, error) {
	entries := make([]models.ProgressEntry, 0)
	if err := repo.database.
		Where("habit_id = ? AND goal_met = ? AND date >= ?", habitID, true, since).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
