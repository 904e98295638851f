package db

import (
	"errors"

	"github.com/terraincognita07/wellnest/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

func (repo *ProfileRepository) FindByUser(userID uint) (models.Profile, bool, error) {
	var profile models.Profile
	result := repo.database.Where("user_id = ?", userID).First(&profile)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Profile{}, false, nil
	}
	if result.Error != nil {
		return models.Profile{}, false, result.Error
	}
	return profile, true, nil
}

// Upsert writes the whole profile row keyed by user.
func (repo *ProfileRepository) Upsert(profile *models.Profile) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name",
			"age",
			"gender",
			"height_cm",
			"weight_kg",
			"bmi",
			"activity_level",
			"recommended_exercises",
			"updated_at",
		}),
	}).Create(profile).Error
}
