package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/wellnest/internal/health"
	"github.com/terraincognita07/wellnest/internal/models"
)

func newTestAlertService() (*AlertService, *thresholdRepositoryStub, *alertRepositoryStub, *vitalsRepositoryStub, *recordedEvents) {
	thresholds := newThresholdRepositoryStub()
	alerts := &alertRepositoryStub{}
	vitals := newVitalsRepositoryStub()
	events := &recordedEvents{}

	service := NewAlertService(thresholds, alerts, vitals, events, nil)
	service.now = fixedClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	sequence := 0
	service.newID = func() string {
		sequence++
		return "alert-" + string(rune('0'+sequence))
	}
	return service, thresholds, alerts, vitals, events
}

func TestAlertServiceThresholdsDefaultWhenAbsent(t *testing.T) {
	service, _, _, _, _ := newTestAlertService()

	thresholds, err := service.Thresholds(1)
	if err != nil {
		t.Fatalf("load thresholds: %v", err)
	}
	if thresholds != health.DefaultThresholds() {
		t.Fatalf("expected default bundle, got %+v", thresholds)
	}
}

func TestAlertServiceUpdateThresholdsValidatesAndFillsDefaults(t *testing.T) {
	service, repo, _, _, _ := newTestAlertService()

	_, err := service.UpdateThresholds(1, health.ThresholdPatch{HeartRateMin: intPtr(100), HeartRateMax: intPtr(100)})
	if !errors.Is(err, ErrThresholdRange) || !errors.Is(err, health.ErrHeartRateBounds) {
		t.Fatalf("expected wrapped heart rate bounds error, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatal("expected rejected update not to be stored")
	}

	disabled := false
	stored, err := service.UpdateThresholds(1, health.ThresholdPatch{HeartRateMax: intPtr(120), BPEnabled: &disabled})
	if err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}
	if stored.HeartRateMax != 120 || stored.HeartRateMin != 60 || stored.BPEnabled || !stored.BloodSugarEnabled {
		t.Fatalf("unexpected resolved thresholds: %+v", stored)
	}

	reloaded, err := service.Thresholds(1)
	if err != nil {
		t.Fatalf("reload thresholds: %v", err)
	}
	if reloaded != stored {
		t.Fatalf("expected stored thresholds to round-trip, got %+v", reloaded)
	}
}

func TestAlertServiceCheckPersistsOneAlertPerEvent(t *testing.T) {
	service, _, alerts, vitals, events := newTestAlertService()

	if _, err := service.Check(1); !errors.Is(err, ErrNoVitals) {
		t.Fatalf("expected ErrNoVitals without readings, got %v", err)
	}

	vitals.latest[1] = models.LatestVitals{UserID: 1, HeartRate: intPtr(130), Systolic: intPtr(165), BloodSugar: intPtr(60)}
	raised, err := service.Check(1)
	if err != nil {
		t.Fatalf("check alerts: %v", err)
	}
	if len(raised) != 3 || len(alerts.alerts) != 3 {
		t.Fatalf("expected three events and three stored alerts, got %d / %d", len(raised), len(alerts.alerts))
	}
	for index, event := range raised {
		stored := alerts.alerts[index]
		if stored.Type != string(event.Type) || stored.Severity != string(event.Severity) || stored.Messages[0] != event.Message {
			t.Fatalf("stored alert %d does not match event: %+v vs %+v", index, stored, event)
		}
		if stored.Read {
			t.Fatal("expected new alerts to be unread")
		}
	}
	if len(events.alerts) != 3 {
		t.Fatalf("expected three alert events, got %v", events.alerts)
	}
}

func TestAlertServiceDisabledDimensionNeverAlerts(t *testing.T) {
	service, _, alerts, _, _ := newTestAlertService()
	disabled := false
	if _, err := service.UpdateThresholds(1, health.ThresholdPatch{HeartRateEnabled: &disabled}); err != nil {
		t.Fatalf("update thresholds: %v", err)
	}

	raised, err := service.Evaluate(1, health.Reading{HeartRate: intPtr(200)})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(raised) != 0 || len(alerts.alerts) != 0 {
		t.Fatalf("expected no alerts for disabled heart rate, got %v", raised)
	}
}

func TestAlertServiceListAndMarkRead(t *testing.T) {
	service, _, _, _, _ := newTestAlertService()

	first, err := service.CreateManual(1, "Take evening dose", "")
	if err != nil {
		t.Fatalf("create manual alert: %v", err)
	}
	if first.Severity != "warning" || first.Type != "manual" {
		t.Fatalf("expected warning manual alert, got %+v", first)
	}
	if _, err := service.CreateManual(1, "Call the clinic", "critical"); err != nil {
		t.Fatalf("create critical manual alert: %v", err)
	}

	if err := service.MarkRead(2, first.PublicID); !errors.Is(err, ErrAlertNotFound) {
		t.Fatalf("expected ErrAlertNotFound for another user, got %v", err)
	}
	if err := service.MarkRead(1, first.PublicID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	feed, err := service.List(1)
	if err != nil {
		t.Fatalf("list alerts: %v", err)
	}
	if len(feed.Unread) != 1 || feed.Unread[0].Messages[0] != "Call the clinic" {
		t.Fatalf("unexpected unread alerts: %+v", feed.Unread)
	}
	if len(feed.Read) != 1 || feed.Read[0].PublicID != first.PublicID {
		t.Fatalf("unexpected read alerts: %+v", feed.Read)
	}
}

func TestAlertServiceCreateManualValidation(t *testing.T) {
	service, _, _, _, _ := newTestAlertService()

	if _, err := service.CreateManual(1, "   ", "warning"); !errors.Is(err, ErrAlertTextRequired) {
		t.Fatalf("expected ErrAlertTextRequired, got %v", err)
	}
	if _, err := service.CreateManual(1, "text", "urgent"); !errors.Is(err, health.ErrUnknownSeverity) {
		t.Fatalf("expected ErrUnknownSeverity, got %v", err)
	}
}

func TestAlertServiceListCapsFeeds(t *testing.T) {
	service, _, alerts, _, _ := newTestAlertService()
	for index := 0; index < 25; index++ {
		alerts.alerts = append(alerts.alerts, models.Alert{PublicID: "u", UserID: 1})
		alerts.alerts = append(alerts.alerts, models.Alert{PublicID: "r", UserID: 1, Read: true})
	}

	feed, err := service.List(1)
	if err != nil {
		t.Fatalf("list alerts: %v", err)
	}
	if len(feed.Unread) != unreadAlertLimit || len(feed.Read) != readAlertLimit {
		t.Fatalf("expected %d unread and %d read, got %d and %d", unreadAlertLimit, readAlertLimit, len(feed.Unread), len(feed.Read))
	}
}
