package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/wellnest/internal/health"
	"github.com/terraincognita07/wellnest/internal/models"
)

var (
	ErrProfileAgeInvalid    = errors.New("age must be a whole number between 0 and 130")
	ErrProfileHeightInvalid = errors.New("height must be a positive number of centimetres")
	ErrProfileWeightInvalid = errors.New("weight must be a positive number of kilograms")
	ErrProfileBMIInvalid    = errors.New("bmi must be a positive number")
)

const maxProfileAge = 130

type ProfileRepository interface {
	FindByUser(userID uint) (models.Profile, bool, error)
	Upsert(profile *models.Profile) error
}

// ProfileInput is a partial update. Nil fields keep the stored value; blank
// strings clear optional numbers. Numbers may arrive as JSON numbers or as
// form strings.
type ProfileInput struct {
	FullName      *string `json:"full_name"`
	Age           any     `json:"age"`
	Height        any     `json:"height"`
	Weight        any     `json:"weight"`
	BMI           any     `json:"bmi"`
	ActivityLevel *string `json:"activity_level"`
	Gender        *string `json:"gender"`
}

type ProfileUpdateResult struct {
	Profile         models.Profile
	BMI             *float64
	Recommendations []string
}

type ProfileService struct {
	profiles ProfileRepository
	now      func() time.Time
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles, now: time.Now}
}

// Get returns the stored profile. When none exists the second value is false.
func (service *ProfileService) Get(userID uint) (models.Profile, bool, error) {
	return service.profiles.FindByUser(userID)
}

// HealthProfile returns the scoring view, or nil when the user has no profile.
func (service *ProfileService) HealthProfile(userID uint) (*health.Profile, error) {
	profile, found, err := service.profiles.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if !found {
		return nil, nil
	}
	scoring := profileToHealth(profile)
	return &scoring, nil
}

func (service *ProfileService) Update(userID uint, input ProfileInput) (ProfileUpdateResult, error) {
	profile, _, err := service.profiles.FindByUser(userID)
	if err != nil {
		return ProfileUpdateResult{}, fmt.Errorf("load profile: %w", err)
	}
	profile.UserID = userID

	if err := applyProfileInput(&profile, input); err != nil {
		return ProfileUpdateResult{}, err
	}

	if profile.HeightCm != nil && profile.WeightKg != nil {
		if bmi, ok := health.ComputeBMI(*profile.HeightCm, *profile.WeightKg); ok {
			profile.BMI = &bmi
		}
	}

	exercises := health.RecommendedExercises(health.ActivityLevel(profile.ActivityLevel))
	profile.RecommendedExercises = exercises
	profile.UpdatedAt = service.now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = profile.UpdatedAt
	}

	if err := service.profiles.Upsert(&profile); err != nil {
		return ProfileUpdateResult{}, fmt.Errorf("save profile: %w", err)
	}

	return ProfileUpdateResult{
		Profile:         profile,
		BMI:             profile.BMI,
		Recommendations: exercises,
	}, nil
}

func applyProfileInput(profile *models.Profile, input ProfileInput) error {
	if input.FullName != nil {
		profile.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Gender != nil {
		profile.Gender = strings.ToLower(strings.TrimSpace(*input.Gender))
	}
	if input.ActivityLevel != nil {
		level, err := health.ParseActivityLevel(*input.ActivityLevel)
		if err != nil {
			return err
		}
		profile.ActivityLevel = string(level)
	}

	if input.Age != nil {
		age, err := parseOptionalFloat(input.Age)
		if err != nil || (age != nil && (*age < 0 || *age > maxProfileAge || *age != float64(int(*age)))) {
			return ErrProfileAgeInvalid
		}
		profile.Age = nil
		if age != nil {
			value := int(*age)
			profile.Age = &value
		}
	}

	for _, field := range []struct {
		raw    any
		target **float64
		err    error
	}{
		{raw: input.Height, target: &profile.HeightCm, err: ErrProfileHeightInvalid},
		{raw: input.Weight, target: &profile.WeightKg, err: ErrProfileWeightInvalid},
		{raw: input.BMI, target: &profile.BMI, err: ErrProfileBMIInvalid},
	} {
		if field.raw == nil {
			continue
		}
		value, err := parseOptionalFloat(field.raw)
		if err != nil || (value != nil && *value <= 0) {
			return field.err
		}
		*field.target = value
	}
	return nil
}

var errProfileNumberNotFinite = errors.New("number must be finite")

// parseOptionalFloat accepts finite numbers and numeric strings. A blank
// string yields nil.
func parseOptionalFloat(raw any) (*float64, error) {
	var value float64
	switch typed := raw.(type) {
	case float64:
		value = typed
	case int:
		value = float64(typed)
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return nil, err
		}
		value = parsed
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, err
		}
		value = parsed
	default:
		return nil, fmt.Errorf("unsupported number type %T", raw)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, errProfileNumberNotFinite
	}
	return &value, nil
}
