package services

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/terraincognita07/wellnest/internal/health"
)

func TestVitalsServiceLogStoresReadingAndRaisesAlerts(t *testing.T) {
	alertService, _, alerts, vitals, events := newTestAlertService()
	service := NewVitalsService(vitals, alertService, events, nil)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	service.now = fixedClock(now)

	logged, err := service.Log(4, health.RawReading{HeartRate: "72", Systolic: float64(159), Diastolic: nil, BloodSugar: ""})
	if err != nil {
		t.Fatalf("log vitals: %v", err)
	}
	if logged.Entry.ID == 0 || !logged.Entry.RecordedAt.Equal(now) {
		t.Fatalf("expected stored entry with capture time, got %+v", logged.Entry)
	}
	if len(logged.Alerts) != 1 || logged.Alerts[0].Type != health.AlertBloodPressure || logged.Alerts[0].Severity != health.SeverityWarning {
		t.Fatalf("expected one bp warning, got %+v", logged.Alerts)
	}
	if len(alerts.alerts) != 1 {
		t.Fatalf("expected the alert to be stored, got %d", len(alerts.alerts))
	}
	if events.vitalsCount != 1 {
		t.Fatalf("expected one vitals event, got %d", events.vitalsCount)
	}

	latest, found, err := service.Latest(4)
	if err != nil || !found {
		t.Fatalf("latest: found=%v err=%v", found, err)
	}
	if latest.BloodSugar != nil || latest.HeartRate == nil || *latest.HeartRate != 72 {
		t.Fatalf("unexpected latest projection: %+v", latest)
	}
}

func TestVitalsServiceLogRejectsOutOfRange(t *testing.T) {
	vitals := newVitalsRepositoryStub()
	service := NewVitalsService(vitals, nil, nil, nil)

	_, err := service.Log(1, health.RawReading{HeartRate: float64(250)})
	var validationErr *health.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vitals.logs) != 0 {
		t.Fatal("expected rejected reading not to be stored")
	}
}

func TestVitalsServiceLogAcceptsEmptyReadingWithoutAlerts(t *testing.T) {
	alertService, _, alerts, vitals, _ := newTestAlertService()
	service := NewVitalsService(vitals, alertService, nil, nil)

	logged, err := service.Log(2, health.RawReading{})
	if err != nil {
		t.Fatalf("log empty reading: %v", err)
	}
	if logged.Entry.ID == 0 || len(logged.Alerts) != 0 {
		t.Fatalf("expected stored entry without alerts, got %+v", logged)
	}
	if len(alerts.alerts) != 0 {
		t.Fatalf("expected no stored alerts, got %d", len(alerts.alerts))
	}
}

func TestVitalsServiceLogSwallowsAlertStoreFailure(t *testing.T) {
	alertService, _, alerts, vitals, _ := newTestAlertService()
	alerts.createErr = errStubFailure
	core, recorded := observer.New(zapcore.WarnLevel)
	service := NewVitalsService(vitals, alertService, nil, zap.New(core))

	logged, err := service.Log(1, health.RawReading{HeartRate: float64(130)})
	if err != nil {
		t.Fatalf("expected alert failure to be swallowed, got %v", err)
	}
	if len(logged.Alerts) != 1 {
		t.Fatalf("expected evaluated events to be returned, got %+v", logged.Alerts)
	}
	if recorded.FilterMessage("alert processing failed").Len() != 1 {
		t.Fatal("expected the alert failure to be logged")
	}
	if len(vitals.logs) != 1 {
		t.Fatal("expected the reading to be stored despite the alert failure")
	}
}

func TestVitalsServiceTrendsWindow(t *testing.T) {
	vitals := newVitalsRepositoryStub()
	service := NewVitalsService(vitals, nil, nil, nil)
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	for _, offset := range []int{40, 5, 1} {
		service.now = fixedClock(now.AddDate(0, 0, -offset))
		if _, err := service.Log(1, health.RawReading{HeartRate: float64(60 + offset)}); err != nil {
			t.Fatalf("log vitals: %v", err)
		}
	}
	service.now = fixedClock(now)

	trend, err := service.Trends(1, 7)
	if err != nil {
		t.Fatalf("trends: %v", err)
	}
	if len(trend.Readings) != 2 {
		t.Fatalf("expected two readings in a 7 day window, got %d", len(trend.Readings))
	}
	if !trend.Readings[0].RecordedAt.Before(trend.Readings[1].RecordedAt) {
		t.Fatal("expected oldest-first ordering")
	}
	if trend.Summary.HeartRate == nil || trend.Summary.HeartRate.Min != 61 || trend.Summary.HeartRate.Max != 65 {
		t.Fatalf("unexpected heart rate summary: %+v", trend.Summary.HeartRate)
	}
	if trend.Summary.BloodSugar != nil {
		t.Fatal("expected no blood sugar summary without readings")
	}
}

func TestClampTrendDays(t *testing.T) {
	cases := map[int]int{0: defaultTrendDays, -4: defaultTrendDays, 7: 7, 1000: maxTrendDays}
	for input, want := range cases {
		if got := ClampTrendDays(input); got != want {
			t.Fatalf("ClampTrendDays(%d) = %d, want %d", input, got, want)
		}
	}
}
