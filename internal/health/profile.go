package health

import (
	"errors"
	"math"
	"strings"
)

var ErrUnknownActivityLevel = errors.New("unknown activity level")

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

func (level ActivityLevel) Valid() bool {
	switch level {
	case ActivitySedentary, ActivityModerate, ActivityActive:
		return true
	default:
		return false
	}
}

// ParseActivityLevel accepts an empty value as "not set".
func ParseActivityLevel(raw string) (ActivityLevel, error) {
	normalized := ActivityLevel(strings.ToLower(strings.TrimSpace(raw)))
	if normalized == "" {
		return "", nil
	}
	if !normalized.Valid() {
		return "", ErrUnknownActivityLevel
	}
	return normalized, nil
}

// Profile is the scoring view of a user profile. Nil fields are unknown.
type Profile struct {
	Age           *int
	HeightCm      *float64
	WeightKg      *float64
	BMI           *float64
	ActivityLevel ActivityLevel
}

// EffectiveBMI prefers a value derived from height and weight over a stored one.
func (profile Profile) EffectiveBMI() (float64, bool) {
	if profile.HeightCm != nil && profile.WeightKg != nil {
		if bmi, ok := ComputeBMI(*profile.HeightCm, *profile.WeightKg); ok {
			return bmi, true
		}
	}
	if profile.BMI != nil && *profile.BMI > 0 {
		return *profile.BMI, true
	}
	return 0, false
}

// ComputeBMI returns weight / height² rounded to two decimals.
func ComputeBMI(heightCm float64, weightKg float64) (float64, bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*100) / 100, true
}

func RecommendedExercises(level ActivityLevel) []string {
	switch level {
	case ActivitySedentary:
		return []string{"Walking 30 mins", "Stretching"}
	case ActivityModerate:
		return []string{"Jogging", "Cycling", "Basic Gym"}
	default:
		return []string{"HIIT", "Strength Training", "Running"}
	}
}
