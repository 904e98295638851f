package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Profiles    *ProfileRepository
	Vitals      *VitalsRepository
	Thresholds  *ThresholdRepository
	Alerts      *AlertRepository
	Medications *MedicationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Profiles:    NewProfileRepository(database),
		Vitals:      NewVitalsRepository(database),
		Thresholds:  NewThresholdRepository(database),
		Alerts:      NewAlertRepository(database),
		Medications: NewMedicationRepository(database),
	}
}
