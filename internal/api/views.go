package api

import (
	"time"

	"github.com/terraincognita07/wellnest/internal/health"
	"github.com/terraincognita07/wellnest/internal/models"
	"github.com/terraincognita07/wellnest/internal/services"
)

type vitalsView struct {
	ID         uint      `json:"id,omitempty"`
	HeartRate  *int      `json:"heart_rate"`
	Systolic   *int      `json:"bp_systolic"`
	Diastolic  *int      `json:"bp_diastolic"`
	BloodSugar *int      `json:"blood_sugar"`
	Timestamp  time.Time `json:"timestamp"`
}

type latestVitalsView struct {
	vitalsView
	UpdatedAt time.Time `json:"updated_at"`
}

type riskView struct {
	Score           int                          `json:"score"`
	Level           health.Level                 `json:"level"`
	Factors         []string                     `json:"factors"`
	TrendIndicators []string                     `json:"trend_indicators"`
	Probabilities   map[health.Condition]float64 `json:"risk_probabilities"`
	Derived         health.DerivedMetrics        `json:"derived_metrics"`
}

type alertView struct {
	ID        string     `json:"id"`
	Alerts    []string   `json:"alerts"`
	Severity  string     `json:"severity"`
	Type      string     `json:"type"`
	Read      bool       `json:"read"`
	Timestamp time.Time  `json:"timestamp"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

type profileView struct {
	FullName             string   `json:"full_name"`
	Age                  *int     `json:"age"`
	Gender               string   `json:"gender,omitempty"`
	Height               *float64 `json:"height"`
	Weight               *float64 `json:"weight"`
	BMI                  *float64 `json:"bmi"`
	ActivityLevel        string   `json:"activity_level,omitempty"`
	RecommendedExercises []string `json:"recommended_exercises"`
}

type medicationView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency"`
	Time      string    `json:"time"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func newVitalsView(entry models.VitalsLog) vitalsView {
	return vitalsView{
		ID:         entry.ID,
		HeartRate:  entry.HeartRate,
		Systolic:   entry.Systolic,
		Diastolic:  entry.Diastolic,
		BloodSugar: entry.BloodSugar,
		Timestamp:  entry.RecordedAt,
	}
}

func newVitalsViews(entries []models.VitalsLog) []vitalsView {
	views := make([]vitalsView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, newVitalsView(entry))
	}
	return views
}

func newLatestVitalsView(latest models.LatestVitals) latestVitalsView {
	return latestVitalsView{
		vitalsView: vitalsView{
			HeartRate:  latest.HeartRate,
			Systolic:   latest.Systolic,
			Diastolic:  latest.Diastolic,
			BloodSugar: latest.BloodSugar,
			Timestamp:  latest.RecordedAt,
		},
		UpdatedAt: latest.UpdatedAt,
	}
}

func newRiskView(assessment services.RiskAssessment) riskView {
	result := assessment.Result
	probabilities := result.Probabilities
	if probabilities == nil {
		probabilities = map[health.Condition]float64{}
	}
	return riskView{
		Score:           result.Score,
		Level:           assessment.Level,
		Factors:         nonNilStrings(result.Factors),
		TrendIndicators: nonNilStrings(result.TrendIndicators),
		Probabilities:   probabilities,
		Derived:         result.Derived,
	}
}

func newAlertViews(alerts []models.Alert) []alertView {
	views := make([]alertView, 0, len(alerts))
	for _, alert := range alerts {
		views = append(views, newAlertView(alert))
	}
	return views
}

func newAlertView(alert models.Alert) alertView {
	return alertView{
		ID:        alert.PublicID,
		Alerts:    nonNilStrings(alert.Messages),
		Severity:  alert.Severity,
		Type:      alert.Type,
		Read:      alert.Read,
		Timestamp: alert.CreatedAt,
		ReadAt:    alert.ReadAt,
	}
}

// newProfileView falls back to the account name when the profile has none.
func newProfileView(profile models.Profile, accountName string) profileView {
	fullName := profile.FullName
	if fullName == "" {
		fullName = accountName
	}
	return profileView{
		FullName:             fullName,
		Age:                  profile.Age,
		Gender:               profile.Gender,
		Height:               profile.HeightCm,
		Weight:               profile.WeightKg,
		BMI:                  profile.BMI,
		ActivityLevel:        profile.ActivityLevel,
		RecommendedExercises: nonNilStrings(profile.RecommendedExercises),
	}
}

func newMedicationViews(medications []models.Medication) []medicationView {
	views := make([]medicationView, 0, len(medications))
	for _, medication := range medications {
		views = append(views, newMedicationView(medication))
	}
	return views
}

func newMedicationView(medication models.Medication) medicationView {
	return medicationView{
		ID:        medication.ID,
		Name:      medication.Name,
		Dosage:    medication.Dosage,
		Frequency: medication.Frequency,
		Time:      medication.Time,
		Active:    medication.Active,
		CreatedAt: medication.CreatedAt,
	}
}

func alertMessages(events []health.AlertEvent) []string {
	messages := make([]string, 0, len(events))
	for _, event := range events {
		messages = append(messages, event.Message)
	}
	return messages
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
