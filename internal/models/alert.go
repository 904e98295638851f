package models

import "time"

type AlertThreshold struct {
	ID                uint `gorm:"primaryKey"`
	UserID            uint `gorm:"not null;uniqueIndex"`
	HeartRateMin      int  `gorm:"not null"`
	HeartRateMax      int  `gorm:"not null"`
	HeartRateEnabled  bool `gorm:"not null"`
	SystolicMax       int  `gorm:"column:bp_systolic_max;not null"`
	DiastolicMax      int  `gorm:"column:bp_diastolic_max;not null"`
	BPEnabled         bool `gorm:"column:bp_enabled;not null"`
	BloodSugarMin     int  `gorm:"not null"`
	BloodSugarMax     int  `gorm:"not null"`
	BloodSugarEnabled bool `gorm:"not null"`
	UpdatedAt         time.Time
}

type Alert struct {
	ID        uint     `gorm:"primaryKey"`
	PublicID  string   `gorm:"not null;uniqueIndex"`
	UserID    uint     `gorm:"not null;index"`
	Messages  []string `gorm:"serializer:json;not null"`
	Severity  string   `gorm:"not null"`
	Type      string   `gorm:"not null"`
	Read      bool     `gorm:"not null"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"not null;index"`
}
