package models

import "time"

type Profile struct {
	ID                   uint   `gorm:"primaryKey"`
	UserID               uint   `gorm:"not null;uniqueIndex"`
	FullName             string `gorm:"not null"`
	Age                  *int
	Gender               string `gorm:"not null"`
	HeightCm             *float64
	WeightKg             *float64
	BMI                  *float64 `gorm:"column:bmi"`
	ActivityLevel        string   `gorm:"not null"`
	RecommendedExercises []string `gorm:"serializer:json"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
