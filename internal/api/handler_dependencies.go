package api

import (
	"github.com/terraincognita07/wellnest/internal/db"
	"github.com/terraincognita07/wellnest/internal/services"
)

func (handler *Handler) withDependencies(repositories *db.Repositories, events services.EventRecorder) *Handler {
	handler.authService = services.NewAuthService(repositories.Users, events)
	handler.settingsService = services.NewSettingsService(repositories.Users)
	handler.profileService = services.NewProfileService(repositories.Profiles)
	handler.alertService = services.NewAlertService(repositories.Thresholds, repositories.Alerts, repositories.Vitals, events, handler.log)
	handler.vitalsService = services.NewVitalsService(repositories.Vitals, handler.alertService, events, handler.log)
	handler.riskService = services.NewRiskService(handler.profileService, handler.vitalsService, events)
	handler.medicationService = services.NewMedicationService(repositories.Medications)
	handler.exportService = services.NewExportService(repositories.Vitals, handler.location)
	return handler
}
