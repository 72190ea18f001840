package db

import (
	"github.com/fittrackhq/fittrack/internal/models"
	"gorm.io/gorm"
)

type AchievementRepository struct {
	database *gorm.DB
}

func NewAchievementRepository(database *gorm.DB) *AchievementRepository {
	return &AchievementRepository{database: database}
}

func (repo *AchievementRepository) ListActiveDefinitions() ([]models.AchievementDefinition, error) {
	definitions := make([]models.AchievementDefinition, 0)
	if err := repo.database.
		Where("is_active = ?", true).
		Order("rarity ASC, points ASC, id ASC").
		Find(&definitions).Error; err != nil {
		return nil, err
	}
	return definitions, nil
}

func (repo *AchievementRepository) ExistsDefinitionByCode(code string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.AchievementDefinition{}).
		Where("code = ?", code).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *AchievementRepository) CreateDefinition(definition *models.AchievementDefinition) error {
	return repo.database.Create(definition).Error
}

func (repo *AchievementRepository) ListUserAchievements(userID uint) ([]models.UserAchievement, error) {
	rows := make([]models.UserAchievement, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("achievement_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *AchievementRepository) FindUserAchievement(userID uint, achievementID uint) (models.UserAchievement, bool, error) {
	row := models.UserAchievement{}
	result := repo.database.
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		Limit(1).
		Find(&row)
	if result.Error != nil {
		return models.UserAchievement{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserAchievement{}, false, nil
	}
	return row, true, nil
}

func (repo *AchievementRepository) CreateUserAchievement(row *models.UserAchievement) error {
	return repo.database.Create(row).Error
}

func (repo *AchievementRepository) SaveUserAchievement(row *models.UserAchievement) error {
	return repo.database.Save(row).Error
}
