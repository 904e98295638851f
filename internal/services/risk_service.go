package services

import (
	"time"

	"github.com/terraincognita07/wellnest/internal/health"
)

type RiskAssessment struct {
	Result health.RiskResult
	Level  health.Level
}

type InsightReport struct {
	Insights    health.Insights
	Risk        RiskAssessment
	GeneratedAt time.Time
}

// RiskService scores the current profile and reading on every call. Nothing
// is cached or stored.
type RiskService struct {
	profiles *ProfileService
	vitals   *VitalsService
	events   EventRecorder
	now      func() time.Time
}

func NewRiskService(profiles *ProfileService, vitals *VitalsService, events EventRecorder) *RiskService {
	return &RiskService{
		profiles: profiles,
		vitals:   vitals,
		events:   recorderOrNoop(events),
		now:      time.Now,
	}
}

func (service *RiskService) Assess(userID uint) (RiskAssessment, error) {
	profile, reading, err := service.inputs(userID)
	if err != nil {
		return RiskAssessment{}, err
	}
	return service.assess(profile, reading), nil
}

func (service *RiskService) Insights(userID uint) (InsightReport, error) {
	profile, reading, err := service.inputs(userID)
	if err != nil {
		return InsightReport{}, err
	}

	assessment := service.assess(profile, reading)
	return InsightReport{
		Insights:    health.Compose(profile, reading, assessment.Result),
		Risk:        assessment,
		GeneratedAt: service.now().UTC(),
	}, nil
}

func (service *RiskService) inputs(userID uint) (*health.Profile, *health.Reading, error) {
	profile, err := service.profiles.HealthProfile(userID)
	if err != nil {
		return nil, nil, err
	}
	reading, err := service.vitals.CurrentReading(userID)
	if err != nil {
		return nil, nil, err
	}
	return profile, reading, nil
}

func (service *RiskService) assess(profile *health.Profile, reading *health.Reading) RiskAssessment {
	result := health.Evaluate(profile, reading)
	level := result.Level()
	service.events.RiskEvaluated(string(level))
	return RiskAssessment{Result: result, Level: level}
}
