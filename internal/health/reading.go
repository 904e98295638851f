package health

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Reading is one vitals snapshot. Nil fields were not measured.
type Reading struct {
	HeartRate  *int
	Systolic   *int
	Diastolic  *int
	BloodSugar *int
	CapturedAt time.Time
}

func (reading Reading) IsEmpty() bool {
	return reading.HeartRate == nil && reading.Systolic == nil && reading.Diastolic == nil && reading.BloodSugar == nil
}

// ValidationError reports a vitals field that is malformed or outside its accepted range.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type vitalField struct {
	name     string
	label    string
	min      int
	max      int
	unit     string
	assignTo func(*Reading, *int)
}

var vitalFields = []vitalField{
	{name: "heart_rate", label: "Heart rate", min: 30, max: 220, unit: "BPM", assignTo: func(r *Reading, v *int) { r.HeartRate = v }},
	{name: "bp_systolic", label: "Systolic BP", min: 70, max: 250, unit: "mmHg", assignTo: func(r *Reading, v *int) { r.Systolic = v }},
	{name: "bp_diastolic", label: "Diastolic BP", min: 40, max: 150, unit: "mmHg", assignTo: func(r *Reading, v *int) { r.Diastolic = v }},
	{name: "blood_sugar", label: "Blood sugar", min: 50, max: 500, unit: "mg/dL", assignTo: func(r *Reading, v *int) { r.BloodSugar = v }},
}

// RawReading carries untyped client input: numbers, numeric strings, blanks or nulls.
type RawReading struct {
	HeartRate  any `json:"heart_rate" form:"heart_rate"`
	Systolic   any `json:"bp_systolic" form:"bp_systolic"`
	Diastolic  any `json:"bp_diastolic" form:"bp_diastolic"`
	BloodSugar any `json:"blood_sugar" form:"blood_sugar"`
}

func (raw RawReading) values() []any {
	return []any{raw.HeartRate, raw.Systolic, raw.Diastolic, raw.BloodSugar}
}

// ParseReading converts and range-checks raw input. The first failing field wins.
func ParseReading(raw RawReading, capturedAt time.Time) (Reading, error) {
	reading := Reading{CapturedAt: capturedAt}
	values := raw.values()

	for index, field := range vitalFields {
		value, ok := coerceInt(values[index])
		if !ok {
			return Reading{}, &ValidationError{Field: field.name, Message: field.label + " must be a number"}
		}
		if value != nil && (*value < field.min || *value > field.max) {
			return Reading{}, &ValidationError{
				Field:   field.name,
				Message: fmt.Sprintf("%s must be between %d-%d %s", field.label, field.min, field.max, field.unit),
			}
		}
		field.assignTo(&reading, value)
	}

	return reading, nil
}

func coerceInt(value any) (*int, bool) {
	switch typed := value.(type) {
	case nil:
		return nil, true
	case int:
		return &typed, true
	case int64:
		converted := int(typed)
		return &converted, true
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) || typed != math.Trunc(typed) {
			return nil, false
		}
		converted := int(typed)
		return &converted, true
	case json.Number:
		return coerceString(typed.String())
	case string:
		return coerceString(typed)
	default:
		return nil, false
	}
}

func coerceString(raw string) (*int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, true
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}
