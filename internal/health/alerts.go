package health

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownSeverity = errors.New("unknown severity")

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

func (severity Severity) Valid() bool {
	return severity == SeverityWarning || severity == SeverityCritical
}

// ParseSeverity defaults an empty value to warning.
func ParseSeverity(raw string) (Severity, error) {
	normalized := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if normalized == "" {
		return SeverityWarning, nil
	}
	if !normalized.Valid() {
		return "", ErrUnknownSeverity
	}
	return normalized, nil
}

type AlertType string

const (
	AlertHeartRate     AlertType = "heart_rate"
	AlertBloodPressure AlertType = "blood_pressure"
	AlertBloodSugar    AlertType = "blood_sugar"
	AlertManual        AlertType = "manual"
)

func (alertType AlertType) Valid() bool {
	switch alertType {
	case AlertHeartRate, AlertBloodPressure, AlertBloodSugar, AlertManual:
		return true
	default:
		return false
	}
}

const (
	warningMargin           = 20
	bloodSugarWarningMargin = 30
)

type AlertEvent struct {
	Type     AlertType `json:"type"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
}

// EvaluateAlerts compares a reading with the user's bounds and returns at most
// one event per enabled vital. It does not persist anything.
func EvaluateAlerts(reading Reading, thresholds Thresholds) []AlertEvent {
	events := make([]AlertEvent, 0, 3)
	if event, ok := heartRateAlert(reading, thresholds); ok {
		events = append(events, event)
	}
	if event, ok := bloodPressureAlert(reading, thresholds); ok {
		events = append(events, event)
	}
	if event, ok := bloodSugarAlert(reading, thresholds); ok {
		events = append(events, event)
	}
	return events
}

// severityAbove grades a value over its upper bound.
func severityAbove(value int, limit int, margin int) Severity {
	if value < limit+margin {
		return SeverityWarning
	}
	return SeverityCritical
}

func severityBelow(value int, limit int, margin int) Severity {
	if value > limit-margin {
		return SeverityWarning
	}
	return SeverityCritical
}

func heartRateAlert(reading Reading, thresholds Thresholds) (AlertEvent, bool) {
	if !thresholds.HeartRateEnabled || reading.HeartRate == nil {
		return AlertEvent{}, false
	}
	rate := *reading.HeartRate
	switch {
	case rate > thresholds.HeartRateMax:
		return AlertEvent{
			Type:     AlertHeartRate,
			Message:  fmt.Sprintf("Heart Rate Alert: %d BPM exceeds maximum threshold (%d BPM)", rate, thresholds.HeartRateMax),
			Severity: severityAbove(rate, thresholds.HeartRateMax, warningMargin),
		}, true
	case rate < thresholds.HeartRateMin:
		return AlertEvent{
			Type:     AlertHeartRate,
			Message:  fmt.Sprintf("Heart Rate Alert: %d BPM below minimum threshold (%d BPM)", rate, thresholds.HeartRateMin),
			Severity: severityBelow(rate, thresholds.HeartRateMin, warningMargin),
		}, true
	default:
		return AlertEvent{}, false
	}
}

// bloodPressureAlert raises one event when either side exceeds its maximum.
// The worse of the two sides decides the severity.
func bloodPressureAlert(reading Reading, thresholds Thresholds) (AlertEvent, bool) {
	if !thresholds.BPEnabled {
		return AlertEvent{}, false
	}

	breached := false
	severity := SeverityWarning
	if reading.Systolic != nil && *reading.Systolic > thresholds.SystolicMax {
		breached = true
		severity = worse(severity, severityAbove(*reading.Systolic, thresholds.SystolicMax, warningMargin))
	}
	if reading.Diastolic != nil && *reading.Diastolic > thresholds.DiastolicMax {
		breached = true
		severity = worse(severity, severityAbove(*reading.Diastolic, thresholds.DiastolicMax, warningMargin))
	}
	if !breached {
		return AlertEvent{}, false
	}

	return AlertEvent{
		Type: AlertBloodPressure,
		Message: fmt.Sprintf(
			"Blood Pressure Alert: %s/%s mmHg exceeds threshold (%d/%d mmHg)",
			formatOptional(reading.Systolic),
			formatOptional(reading.Diastolic),
			thresholds.SystolicMax,
			thresholds.DiastolicMax,
		),
		Severity: severity,
	}, true
}

// Low blood sugar is always critical.
func bloodSugarAlert(reading Reading, thresholds Thresholds) (AlertEvent, bool) {
	if !thresholds.BloodSugarEnabled || reading.BloodSugar == nil {
		return AlertEvent{}, false
	}
	sugar := *reading.BloodSugar
	switch {
	case sugar > thresholds.BloodSugarMax:
		return AlertEvent{
			Type:     AlertBloodSugar,
			Message:  fmt.Sprintf("Blood Sugar Alert: %d mg/dL exceeds maximum threshold (%d mg/dL)", sugar, thresholds.BloodSugarMax),
			Severity: severityAbove(sugar, thresholds.BloodSugarMax, bloodSugarWarningMargin),
		}, true
	case sugar < thresholds.BloodSugarMin:
		return AlertEvent{
			Type:     AlertBloodSugar,
			Message:  fmt.Sprintf("Blood Sugar Alert: %d mg/dL below minimum threshold (%d mg/dL)", sugar, thresholds.BloodSugarMin),
			Severity: SeverityCritical,
		}, true
	default:
		return AlertEvent{}, false
	}
}

func worse(left Severity, right Severity) Severity {
	if left == SeverityCritical || right == SeverityCritical {
		return SeverityCritical
	}
	return SeverityWarning
}

func formatOptional(value *int) string {
	if value == nil {
		return "--"
	}
	return strconv.Itoa(*value)
}
