package models

import "time"

type Medication struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Dosage    string `gorm:"not null"`
	Frequency string `gorm:"not null"`
	Time      string `gorm:"column:time_of_day;not null"`
	Active    bool   `gorm:"not null"`
	CreatedAt time.Time
}
