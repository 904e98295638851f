package models

import "time"

// User is an account. Email uniqueness is enforced on lower(trim(email)) by
// the schema, not by the column itself.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"column:email;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Name         string    `gorm:"column:name;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

func (User) TableName() string {
	return "users"
}
