package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/wellnest/internal/models"
)

var (
	ErrMedicationNameRequired = errors.New("medication name is required")
	ErrMedicationNotFound     = errors.New("medication not found")
)

const maxMedicationField = 120

type MedicationRepository interface {
	Create(medication *models.Medication) error
	ListByUser(userID uint) ([]models.Medication, error)
	DeleteForUser(userID uint, medicationID uint) (bool, error)
}

type MedicationInput struct {
	Name      string `json:"name" form:"name"`
	Dosage    string `json:"dosage" form:"dosage"`
	Frequency string `json:"frequency" form:"frequency"`
	Time      string `json:"time" form:"time"`
}

type MedicationService struct {
	medications MedicationRepository
	now         func() time.Time
}

func NewMedicationService(medications MedicationRepository) *MedicationService {
	return &MedicationService{medications: medications, now: time.Now}
}

func (service *MedicationService) Add(userID uint, input MedicationInput) (models.Medication, error) {
	name := clipField(input.Name)
	if name == "" {
		return models.Medication{}, ErrMedicationNameRequired
	}

	medication := models.Medication{
		UserID:    userID,
		Name:      name,
		Dosage:    clipField(input.Dosage),
		Frequency: clipField(input.Frequency),
		Time:      clipField(input.Time),
		Active:    true,
		CreatedAt: service.now().UTC(),
	}
	if err := service.medications.Create(&medication); err != nil {
		return models.Medication{}, fmt.Errorf("create medication: %w", err)
	}
	return medication, nil
}

func (service *MedicationService) List(userID uint) ([]models.Medication, error) {
	return service.medications.ListByUser(userID)
}

func (service *MedicationService) Delete(userID uint, medicationID uint) error {
	deleted, err := service.medications.DeleteForUser(userID, medicationID)
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	if !deleted {
		return ErrMedicationNotFound
	}
	return nil
}

func clipField(raw string) string {
	value := strings.TrimSpace(raw)
	if runes := []rune(value); len(runes) > maxMedicationField {
		value = string(runes[:maxMedicationField])
	}
	return value
}
