package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/terraincognita07/wellnest/internal/health"
	"github.com/terraincognita07/wellnest/internal/models"
)

var (
	ErrThresholdRange    = errors.New("threshold range invalid")
	ErrAlertNotFound     = errors.New("alert not found")
	ErrAlertTextRequired = errors.New("alert text is required")
	ErrNoVitals          = errors.New("no vitals data available")
)

const (
	unreadAlertLimit = 20
	readAlertLimit   = 10
	maxAlertText     = 500
)

type ThresholdRepository interface {
	FindByUser(userID uint) (models.AlertThreshold, bool, error)
	Upsert(threshold *models.AlertThreshold) error
}

type AlertRepository interface {
	Create(alert *models.Alert) error
	ListByReadState(userID uint, read bool, limit int) ([]models.Alert, error)
	MarkRead(userID uint, publicID string, readAt time.Time) (bool, error)
}

type LatestVitalsReader interface {
	FindLatest(userID uint) (models.LatestVitals, bool, error)
}

type AlertFeed struct {
	Unread []models.Alert
	Read   []models.Alert
}

type AlertService struct {
	thresholds ThresholdRepository
	alerts     AlertRepository
	latest     LatestVitalsReader
	events     EventRecorder
	log        *zap.Logger
	now        func() time.Time
	newID      func() string
}

func NewAlertService(thresholds ThresholdRepository, alerts AlertRepository, latest LatestVitalsReader, events EventRecorder, log *zap.Logger) *AlertService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AlertService{
		thresholds: thresholds,
		alerts:     alerts,
		latest:     latest,
		events:     recorderOrNoop(events),
		log:        log,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Thresholds returns the stored bounds or the default bundle when none exist.
func (service *AlertService) Thresholds(userID uint) (health.Thresholds, error) {
	row, found, err := service.thresholds.FindByUser(userID)
	if err != nil {
		return health.Thresholds{}, fmt.Errorf("load thresholds: %w", err)
	}
	if !found {
		return health.DefaultThresholds(), nil
	}
	return thresholdToHealth(row), nil
}

// UpdateThresholds replaces the stored bounds. Omitted fields take defaults.
func (service *AlertService) UpdateThresholds(userID uint, patch health.ThresholdPatch) (health.Thresholds, error) {
	resolved := patch.Resolve()
	if err := resolved.Validate(); err != nil {
		return health.Thresholds{}, fmt.Errorf("%w: %w", ErrThresholdRange, err)
	}

	row := thresholdFromHealth(userID, resolved)
	row.UpdatedAt = service.now().UTC()
	if err := service.thresholds.Upsert(&row); err != nil {
		return health.Thresholds{}, fmt.Errorf("save thresholds: %w", err)
	}
	return resolved, nil
}

// Evaluate checks a reading against the user's bounds and stores one alert
// per event.
func (service *AlertService) Evaluate(userID uint, reading health.Reading) ([]health.AlertEvent, error) {
	thresholds, err := service.Thresholds(userID)
	if err != nil {
		return nil, err
	}

	events := health.EvaluateAlerts(reading, thresholds)
	for _, event := range events {
		if _, err := service.store(userID, event.Type, event.Severity, event.Message); err != nil {
			return events, err
		}
	}
	return events, nil
}

// Check evaluates the latest vitals projection.
func (service *AlertService) Check(userID uint) ([]health.AlertEvent, error) {
	latest, found, err := service.latest.FindLatest(userID)
	if err != nil {
		return nil, fmt.Errorf("load latest vitals: %w", err)
	}
	if !found {
		return nil, ErrNoVitals
	}
	return service.Evaluate(userID, latestToReading(latest))
}

func (service *AlertService) List(userID uint) (AlertFeed, error) {
	unread, err := service.alerts.ListByReadState(userID, false, unreadAlertLimit)
	if err != nil {
		return AlertFeed{}, fmt.Errorf("list unread alerts: %w", err)
	}
	read, err := service.alerts.ListByReadState(userID, true, readAlertLimit)
	if err != nil {
		return AlertFeed{}, fmt.Errorf("list read alerts: %w", err)
	}
	return AlertFeed{Unread: unread, Read: read}, nil
}

func (service *AlertService) MarkRead(userID uint, publicID string) error {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return ErrAlertNotFound
	}
	updated, err := service.alerts.MarkRead(userID, publicID, service.now().UTC())
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	if !updated {
		return ErrAlertNotFound
	}
	return nil
}

func (service *AlertService) CreateManual(userID uint, text string, severityRaw string) (models.Alert, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Alert{}, ErrAlertTextRequired
	}
	if runes := []rune(text); len(runes) > maxAlertText {
		text = string(runes[:maxAlertText])
	}
	severity, err := health.ParseSeverity(severityRaw)
	if err != nil {
		return models.Alert{}, err
	}
	return service.store(userID, health.AlertManual, severity, text)
}

func (service *AlertService) store(userID uint, alertType health.AlertType, severity health.Severity, message string) (models.Alert, error) {
	alert := models.Alert{
		PublicID:  service.newID(),
		UserID:    userID,
		Messages:  []string{message},
		Severity:  string(severity),
		Type:      string(alertType),
		CreatedAt: service.now().UTC(),
	}
	if err := service.alerts.Create(&alert); err != nil {
		return models.Alert{}, fmt.Errorf("store alert: %w", err)
	}

	service.events.AlertRaised(alert.Type, alert.Severity)
	service.log.Info("alert raised",
		zap.Uint("user_id", userID),
		zap.String("alert_id", alert.PublicID),
		zap.String("type", alert.Type),
		zap.String("severity", alert.Severity),
	)
	return alert, nil
}
