package db

import (
	"time"

	"github.com/terraincognita07/wellnest/internal/models"
	"gorm.io/gorm"
)

type AlertRepository struct {
	database *gorm.DB
}

func NewAlertRepository(database *gorm.DB) *AlertRepository {
	return &AlertRepository{database: database}
}

func (repo *AlertRepository) Create(alert *models.Alert) error {
	return repo.database.Create(alert).Error
}

func (repo *AlertRepository) ListByReadState(userID uint, read bool, limit int) ([]models.Alert, error) {
	alerts := make([]models.Alert, 0)
	if err := repo.database.
		Where("user_id = ? AND read = ?", userID, read).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// MarkRead reports false when no alert with that id belongs to the user.
func (repo *AlertRepository) MarkRead(userID uint, publicID string, readAt time.Time) (bool, error) {
	result := repo.database.Model(&models.Alert{}).
		Where("user_id = ? AND public_id = ?", userID, publicID).
		Updates(map[string]any{
			"read":    true,
			"read_at": readAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
