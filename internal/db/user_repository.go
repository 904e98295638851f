package db

import (
	"github.com/terraincognita07/wellnest/internal/models"
	"gorm.io/gorm"
)

const normalizedEmailExpr = "lower(trim(email))"

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) byNormalizedEmail(email string) *gorm.DB {
	return repo.database.Model(&models.User{}).Where(normalizedEmailExpr+" = ?", email)
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	user := models.User{}
	err := repo.database.Take(&user, "id = ?", userID).Error
	return user, err
}

// FindByNormalizedEmail expects an already normalized address.
func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	user := models.User{}
	err := repo.byNormalizedEmail(email).Take(&user).Error
	return user, err
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	ids := make([]uint, 0, 1)
	if err := repo.byNormalizedEmail(email).Limit(1).Pluck("id", &ids).Error; err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.updateColumn(userID, "password_hash", passwordHash)
}

func (repo *UserRepository) UpdateName(userID uint, name string) error {
	return repo.updateColumn(userID, "name", name)
}

// updateColumn reports gorm.ErrRecordNotFound when no user has userID.
func (repo *UserRepository) updateColumn(userID uint, column string, value any) error {
	result := repo.database.Model(&models.User{}).Where("id = ?", userID).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
