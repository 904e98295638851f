package health

const (
	baseRiskScore          = 10
	maxRiskScore           = 100
	InsufficientDataFactor = "Insufficient Data"
)

type Condition string

const (
	ConditionCardiovascular Condition = "cardiovascular"
	ConditionMetabolic      Condition = "metabolic"
	ConditionHypertension   Condition = "hypertension"
	ConditionDiabetes       Condition = "diabetes"
	ConditionCardiac        Condition = "cardiac"
)

type Trend string

const (
	TrendUnknown    Trend = "unknown"
	TrendStable     Trend = "stable"
	TrendModerate   Trend = "moderate"
	TrendIncreasing Trend = "increasing"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Level string

const (
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
)

func LevelForScore(score int) Level {
	switch {
	case score > 60:
		return LevelHigh
	case score > 30:
		return LevelModerate
	default:
		return LevelLow
	}
}

type DerivedMetrics struct {
	OverallRisk            int      `json:"overall_risk"`
	Trend                  Trend    `json:"trend"`
	RecommendationPriority Priority `json:"recommendation_priority"`
}

type RiskResult struct {
	Score           int                   `json:"score"`
	Factors         []string              `json:"factors"`
	TrendIndicators []string              `json:"trend_indicators"`
	Probabilities   map[Condition]float64 `json:"risk_probabilities"`
	Derived         DerivedMetrics        `json:"derived_metrics"`
}

func (result RiskResult) Level() Level {
	return LevelForScore(result.Score)
}

func (result RiskResult) Probability(condition Condition) float64 {
	return result.Probabilities[condition]
}

type riskTally struct {
	score         int
	factors       []string
	trends        []string
	probabilities map[Condition]float64
}

func (tally *riskTally) add(points int, factor string) {
	tally.score += points
	if factor != "" {
		tally.factors = append(tally.factors, factor)
	}
}

func (tally *riskTally) estimate(condition Condition, probability float64) {
	tally.probabilities[condition] = probability
}

func (tally *riskTally) flag(indicator string) {
	tally.trends = append(tally.trends, indicator)
}

type riskRule func(profile Profile, reading Reading, tally *riskTally)

// Activity mitigation runs last so it applies to the accumulated score.
var riskRules = []riskRule{
	ageRule,
	bmiRule,
	bloodPressureRule,
	bloodSugarRule,
	heartRateRule,
	activityRule,
}

// Evaluate scores a profile and its latest reading. Either input may be nil, in
// which case the neutral "Insufficient Data" result is returned.
func Evaluate(profile *Profile, reading *Reading) RiskResult {
	if profile == nil || reading == nil {
		return RiskResult{
			Score:           0,
			Factors:         []string{InsufficientDataFactor},
			TrendIndicators: []string{},
			Probabilities:   map[Condition]float64{},
			Derived: DerivedMetrics{
				OverallRisk:            0,
				Trend:                  TrendUnknown,
				RecommendationPriority: PriorityLow,
			},
		}
	}

	tally := &riskTally{
		score:         baseRiskScore,
		factors:       []string{},
		trends:        []string{},
		probabilities: make(map[Condition]float64, 5),
	}
	for _, rule := range riskRules {
		rule(*profile, *reading, tally)
	}

	score := clampScore(tally.score)
	return RiskResult{
		Score:           score,
		Factors:         tally.factors,
		TrendIndicators: tally.trends,
		Probabilities:   tally.probabilities,
		Derived: DerivedMetrics{
			OverallRisk:            score,
			Trend:                  trendForScore(score),
			RecommendationPriority: priorityForScore(score),
		},
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxRiskScore {
		return maxRiskScore
	}
	return score
}

func trendForScore(score int) Trend {
	switch {
	case score < 30:
		return TrendStable
	case score < 60:
		return TrendModerate
	default:
		return TrendIncreasing
	}
}

func priorityForScore(score int) Priority {
	switch {
	case score > 60:
		return PriorityHigh
	case score > 30:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func ageRule(profile Profile, _ Reading, tally *riskTally) {
	if profile.Age == nil || *profile.Age < 0 {
		return
	}
	switch age := *profile.Age; {
	case age > 65:
		tally.add(15, "Advanced Age (>65)")
		tally.estimate(ConditionCardiovascular, 0.35)
	case age > 50:
		tally.add(10, "Age > 50")
		tally.estimate(ConditionCardiovascular, 0.25)
	case age > 40:
		tally.add(5, "")
		tally.estimate(ConditionCardiovascular, 0.15)
	default:
		tally.estimate(ConditionCardiovascular, 0.05)
	}
}

func bmiRule(profile Profile, _ Reading, tally *riskTally) {
	bmi, ok := profile.EffectiveBMI()
	if !ok {
		return
	}
	switch {
	case bmi > 35:
		tally.add(25, "Severe Obesity (BMI > 35)")
		tally.estimate(ConditionMetabolic, 0.45)
		tally.flag("High metabolic risk")
	case bmi > 30:
		tally.add(20, "Obesity (BMI > 30)")
		tally.estimate(ConditionMetabolic, 0.35)
	case bmi > 25:
		tally.add(10, "Overweight")
		tally.estimate(ConditionMetabolic, 0.20)
	default:
		tally.estimate(ConditionMetabolic, 0.10)
	}
}

// A missing side of the pair never counts as a breach.
func bloodPressureRule(_ Profile, reading Reading, tally *riskTally) {
	if reading.Systolic == nil || reading.Diastolic == nil {
		return
	}
	systolicAbove := func(limit int) bool { return *reading.Systolic > limit }
	diastolicAbove := func(limit int) bool { return *reading.Diastolic > limit }

	switch {
	case systolicAbove(180) || diastolicAbove(120):
		tally.add(35, "Hypertensive Crisis")
		tally.estimate(ConditionHypertension, 0.60)
		tally.flag("Critical blood pressure")
	case systolicAbove(140) || diastolicAbove(90):
		tally.add(25, "Stage 2 Hypertension")
		tally.estimate(ConditionHypertension, 0.45)
	case systolicAbove(130) || diastolicAbove(80):
		tally.add(15, "Stage 1 Hypertension")
		tally.estimate(ConditionHypertension, 0.30)
	case systolicAbove(120):
		tally.add(8, "Elevated Blood Pressure")
		tally.estimate(ConditionHypertension, 0.20)
	default:
		tally.estimate(ConditionHypertension, 0.10)
	}
}

func bloodSugarRule(_ Profile, reading Reading, tally *riskTally) {
	if reading.BloodSugar == nil {
		return
	}
	switch sugar := *reading.BloodSugar; {
	case sugar > 250:
		tally.add(30, "Severe Hyperglycemia")
		tally.estimate(ConditionDiabetes, 0.55)
		tally.flag("Critical blood sugar level")
	case sugar > 180:
		tally.add(25, "High Blood Sugar")
		tally.estimate(ConditionDiabetes, 0.40)
	case sugar > 140:
		tally.add(15, "Elevated Blood Sugar")
		tally.estimate(ConditionDiabetes, 0.25)
	case sugar < 70:
		tally.add(20, "Hypoglycemia")
		tally.estimate(ConditionDiabetes, 0.15)
		tally.flag("Low blood sugar alert")
	default:
		tally.estimate(ConditionDiabetes, 0.10)
	}
}

func heartRateRule(_ Profile, reading Reading, tally *riskTally) {
	if reading.HeartRate == nil {
		return
	}
	switch rate := *reading.HeartRate; {
	case rate > 100:
		tally.add(12, "Tachycardia")
		tally.estimate(ConditionCardiac, 0.30)
		tally.flag("Elevated heart rate")
	case rate < 50:
		tally.add(10, "Bradycardia")
		tally.estimate(ConditionCardiac, 0.25)
	default:
		tally.estimate(ConditionCardiac, 0.10)
	}
}

func activityRule(profile Profile, _ Reading, tally *riskTally) {
	switch profile.ActivityLevel {
	case ActivitySedentary:
		tally.add(8, "Sedentary Lifestyle")
	case ActivityActive:
		tally.add(-5, "")
	}
}
