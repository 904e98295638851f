package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/wellnest/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VitalsRepository struct {
	database *gorm.DB
}

func NewVitalsRepository(database *gorm.DB) *VitalsRepository {
	return &VitalsRepository{database: database}
}

// Record appends the history row and replaces the latest projection in one
// transaction. The projection write is a single upsert on user_id.
func (repo *VitalsRepository) Record(entry *models.VitalsLog) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		latest := models.LatestVitals{
			UserID:     entry.UserID,
			HeartRate:  entry.HeartRate,
			Systolic:   entry.Systolic,
			Diastolic:  entry.Diastolic,
			BloodSugar: entry.BloodSugar,
			RecordedAt: entry.RecordedAt,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"heart_rate",
				"bp_systolic",
				"bp_diastolic",
				"blood_sugar",
				"recorded_at",
				"updated_at",
			}),
		}).Create(&latest).Error
	})
}

func (repo *VitalsRepository) ListRecent(userID uint, limit int) ([]models.VitalsLog, error) {
	logs := make([]models.VitalsLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("recorded_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *VitalsRepository) ListSince(userID uint, since time.Time) ([]models.VitalsLog, error) {
	logs := make([]models.VitalsLog, 0)
	if err := repo.database.
		Where("user_id = ? AND recorded_at >= ?", userID, since).
		Order("recorded_at ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *VitalsRepository) FindNewest(userID uint) (models.VitalsLog, bool, error) {
	var entry models.VitalsLog
	result := repo.database.
		Where("user_id = ?", userID).
		Order("recorded_at DESC, id DESC").
		First(&entry)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.VitalsLog{}, false, nil
	}
	if result.Error != nil {
		return models.VitalsLog{}, false, result.Error
	}
	return entry, true, nil
}

func (repo *VitalsRepository) FindLatest(userID uint) (models.LatestVitals, bool, error) {
	var latest models.LatestVitals
	result := repo.database.Where("user_id = ?", userID).First(&latest)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.LatestVitals{}, false, nil
	}
	if result.Error != nil {
		return models.LatestVitals{}, false, result.Error
	}
	return latest, true, nil
}

// ListRange returns readings in [from, to), oldest first. Nil bounds are open.
func (repo *VitalsRepository) ListRange(userID uint, from *time.Time, to *time.Time) ([]models.VitalsLog, error) {
	query := repo.database.Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("recorded_at >= ?", from.UTC())
	}
	if to != nil {
		query = query.Where("recorded_at < ?", to.UTC())
	}

	logs := make([]models.VitalsLog, 0)
	if err := query.Order("recorded_at ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
