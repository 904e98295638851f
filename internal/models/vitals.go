package models

import "time"

// VitalsLog is an append-only history row.
type VitalsLog struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"not null;index"`
	HeartRate  *int
	Systolic   *int `gorm:"column:bp_systolic"`
	Diastolic  *int `gorm:"column:bp_diastolic"`
	BloodSugar *int
	RecordedAt time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
}

// LatestVitals is the per-user projection overwritten on every reading.
type LatestVitals struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"not null;uniqueIndex"`
	HeartRate  *int
	Systolic   *int `gorm:"column:bp_systolic"`
	Diastolic  *int `gorm:"column:bp_diastolic"`
	BloodSugar *int
	RecordedAt time.Time `gorm:"not null"`
	UpdatedAt  time.Time
}

func (LatestVitals) TableName() string {
	return "latest_vitals"
}
