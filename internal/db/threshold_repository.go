package db

import (
	"errors"

	"github.com/terraincognita07/wellnest/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ThresholdRepository struct {
	database *gorm.DB
}

func NewThresholdRepository(database *gorm.DB) *ThresholdRepository {
	return &ThresholdRepository{database: database}
}

func (repo *ThresholdRepository) FindByUser(userID uint) (models.AlertThreshold, bool, error) {
	var threshold models.AlertThreshold
	result := repo.database.Where("user_id = ?", userID).First(&threshold)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.AlertThreshold{}, false, nil
	}
	if result.Error != nil {
		return models.AlertThreshold{}, false, result.Error
	}
	return threshold, true, nil
}

func (repo *ThresholdRepository) Upsert(threshold *models.AlertThreshold) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"heart_rate_min",
			"heart_rate_max",
			"heart_rate_enabled",
			"bp_systolic_max",
			"bp_diastolic_max",
			"bp_enabled",
			"blood_sugar_min",
			"blood_sugar_max",
			"blood_sugar_enabled",
			"updated_at",
		}),
	}).Create(threshold).Error
}
