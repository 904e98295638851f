package services

import (
	"github.com/terraincognita07/wellnest/internal/health"
	"github.com/terraincognita07/wellnest/internal/models"
)

func profileToHealth(profile models.Profile) health.Profile {
	return health.Profile{
		Age:           profile.Age,
		HeightCm:      profile.HeightCm,
		WeightKg:      profile.WeightKg,
		BMI:           profile.BMI,
		ActivityLevel: health.ActivityLevel(profile.ActivityLevel),
	}
}

func vitalsLogToReading(entry models.VitalsLog) health.Reading {
	return health.Reading{
		HeartRate:  entry.HeartRate,
		Systolic:   entry.Systolic,
		Diastolic:  entry.Diastolic,
		BloodSugar: entry.BloodSugar,
		CapturedAt: entry.RecordedAt,
	}
}

func latestToReading(latest models.LatestVitals) health.Reading {
	return health.Reading{
		HeartRate:  latest.HeartRate,
		Systolic:   latest.Systolic,
		Diastolic:  latest.Diastolic,
		BloodSugar: latest.BloodSugar,
		CapturedAt: latest.RecordedAt,
	}
}

func thresholdToHealth(row models.AlertThreshold) health.Thresholds {
	return health.Thresholds{
		HeartRateMin:      row.HeartRateMin,
		HeartRateMax:      row.HeartRateMax,
		HeartRateEnabled:  row.HeartRateEnabled,
		SystolicMax:       row.SystolicMax,
		DiastolicMax:      row.DiastolicMax,
		BPEnabled:         row.BPEnabled,
		BloodSugarMin:     row.BloodSugarMin,
		BloodSugarMax:     row.BloodSugarMax,
		BloodSugarEnabled: row.BloodSugarEnabled,
	}
}

func thresholdFromHealth(userID uint, thresholds health.Thresholds) models.AlertThreshold {
	return models.AlertThreshold{
		UserID:            userID,
		HeartRateMin:      thresholds.HeartRateMin,
		HeartRateMax:      thresholds.HeartRateMax,
		HeartRateEnabled:  thresholds.HeartRateEnabled,
		SystolicMax:       thresholds.SystolicMax,
		DiastolicMax:      thresholds.DiastolicMax,
		BPEnabled:         thresholds.BPEnabled,
		BloodSugarMin:     thresholds.BloodSugarMin,
		BloodSugarMax:     thresholds.BloodSugarMax,
		BloodSugarEnabled: thresholds.BloodSugarEnabled,
	}
}
