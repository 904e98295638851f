package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/terraincognita07/wellnest/internal/health"
	"github.com/terraincognita07/wellnest/internal/models"
)

const (
	recentVitalsLimit = 50
	defaultTrendDays  = 30
	maxTrendDays      = 365
)

type VitalsRepository interface {
	Record(entry *models.VitalsLog) error
	ListRecent(userID uint, limit int) ([]models.VitalsLog, error)
	ListSince(userID uint, since time.Time) ([]models.VitalsLog, error)
	FindNewest(userID uint) (models.VitalsLog, bool, error)
	FindLatest(userID uint) (models.LatestVitals, bool, error)
}

type LoggedVitals struct {
	Entry  models.VitalsLog
	Alerts []health.AlertEvent
}

type VitalsTrend struct {
	Days     int
	From     time.Time
	Readings []models.VitalsLog
	Summary  health.TrendSummary
}

type VitalsService struct {
	vitals VitalsRepository
	alerts *AlertService
	events EventRecorder
	log    *zap.Logger
	now    func() time.Time
}

func NewVitalsService(vitals VitalsRepository, alerts *AlertService, events EventRecorder, log *zap.Logger) *VitalsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &VitalsService{
		vitals: vitals,
		alerts: alerts,
		events: recorderOrNoop(events),
		log:    log,
		now:    time.Now,
	}
}

// Log validates and stores a reading, then runs the alert evaluator. A
// failure while storing alerts is logged and does not fail the request.
func (service *VitalsService) Log(userID uint, raw health.RawReading) (LoggedVitals, error) {
	reading, err := health.ParseReading(raw, service.now().UTC())
	if err != nil {
		return LoggedVitals{}, err
	}

	entry := models.VitalsLog{
		UserID:     userID,
		HeartRate:  reading.HeartRate,
		Systolic:   reading.Systolic,
		Diastolic:  reading.Diastolic,
		BloodSugar: reading.BloodSugar,
		RecordedAt: reading.CapturedAt,
	}
	if err := service.vitals.Record(&entry); err != nil {
		return LoggedVitals{}, fmt.Errorf("record vitals: %w", err)
	}
	service.events.VitalsLogged()

	result := LoggedVitals{Entry: entry, Alerts: []health.AlertEvent{}}
	if service.alerts == nil || reading.IsEmpty() {
		return result, nil
	}

	events, err := service.alerts.Evaluate(userID, reading)
	if err != nil {
		service.log.Warn("alert processing failed", zap.Uint("user_id", userID), zap.Error(err))
	}
	if events != nil {
		result.Alerts = events
	}
	return result, nil
}

func (service *VitalsService) Recent(userID uint) ([]models.VitalsLog, error) {
	return service.vitals.ListRecent(userID, recentVitalsLimit)
}

func (service *VitalsService) Latest(userID uint) (models.LatestVitals, bool, error) {
	return service.vitals.FindLatest(userID)
}

// CurrentReading prefers the newest history row and falls back to the latest
// projection. It returns nil when the user has logged nothing.
func (service *VitalsService) CurrentReading(userID uint) (*health.Reading, error) {
	newest, found, err := service.vitals.FindNewest(userID)
	if err != nil {
		return nil, fmt.Errorf("load newest vitals: %w", err)
	}
	if found {
		reading := vitalsLogToReading(newest)
		return &reading, nil
	}

	latest, found, err := service.vitals.FindLatest(userID)
	if err != nil {
		return nil, fmt.Errorf("load latest vitals: %w", err)
	}
	if !found {
		return nil, nil
	}
	reading := latestToReading(latest)
	return &reading, nil
}

// Trends returns readings from the last days days, oldest first. Out of range
// windows are clamped.
func (service *VitalsService) Trends(userID uint, days int) (VitalsTrend, error) {
	days = ClampTrendDays(days)
	from := service.now().UTC().AddDate(0, 0, -days)

	entries, err := service.vitals.ListSince(userID, from)
	if err != nil {
		return VitalsTrend{}, fmt.Errorf("list vitals since %s: %w", from.Format(time.RFC3339), err)
	}

	readings := make([]health.Reading, 0, len(entries))
	for _, entry := range entries {
		readings = append(readings, vitalsLogToReading(entry))
	}

	return VitalsTrend{
		Days:     days,
		From:     from,
		Readings: entries,
		Summary:  health.SummarizeTrend(readings),
	}, nil
}

func ClampTrendDays(days int) int {
	switch {
	case days <= 0:
		return defaultTrendDays
	case days > maxTrendDays:
		return maxTrendDays
	default:
		return days
	}
}
