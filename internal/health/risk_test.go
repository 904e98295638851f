package health

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(value int) *int {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

func TestEvaluate_InsufficientData(t *testing.T) {
	profile := &Profile{Age: intPtr(40)}
	reading := &Reading{HeartRate: intPtr(70)}

	cases := []struct {
		name    string
		profile *Profile
		reading *Reading
	}{
		{name: "no profile", profile: nil, reading: reading},
		{name: "no reading", profile: profile, reading: nil},
		{name: "neither", profile: nil, reading: nil},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			result := Evaluate(testCase.profile, testCase.reading)
			assert.Equal(t, 0, result.Score)
			assert.Equal(t, []string{InsufficientDataFactor}, result.Factors)
			assert.Empty(t, result.TrendIndicators)
			assert.Empty(t, result.Probabilities)
			assert.Equal(t, TrendUnknown, result.Derived.Trend)
			assert.Equal(t, PriorityLow, result.Derived.RecommendationPriority)
		})
	}
}

func TestEvaluate_ReferenceScenario(t *testing.T) {
	profile := &Profile{Age: intPtr(55), BMI: floatPtr(32)}
	reading := &Reading{
		HeartRate:  intPtr(110),
		Systolic:   intPtr(150),
		Diastolic:  intPtr(95),
		BloodSugar: intPtr(160),
	}

	result := Evaluate(profile, reading)

	assert.Equal(t, 92, result.Score)
	assert.Equal(t, []string{
		"Age > 50",
		"Obesity (BMI > 30)",
		"Stage 2 Hypertension",
		"Elevated Blood Sugar",
		"Tachycardia",
	}, result.Factors)
	assert.Equal(t, []string{"Elevated heart rate"}, result.TrendIndicators)
	assert.Equal(t, map[Condition]float64{
		ConditionCardiovascular: 0.25,
		ConditionMetabolic:      0.35,
		ConditionHypertension:   0.45,
		ConditionDiabetes:       0.25,
		ConditionCardiac:        0.30,
	}, result.Probabilities)
	assert.Equal(t, DerivedMetrics{OverallRisk: 92, Trend: TrendIncreasing, RecommendationPriority: PriorityHigh}, result.Derived)
	assert.Equal(t, LevelHigh, result.Level())
}

func TestEvaluate_ClampsAtHundred(t *testing.T) {
	profile := &Profile{Age: intPtr(70), BMI: floatPtr(41), ActivityLevel: ActivitySedentary}
	reading := &Reading{
		HeartRate:  intPtr(130),
		Systolic:   intPtr(200),
		Diastolic:  intPtr(130),
		BloodSugar: intPtr(300),
	}

	result := Evaluate(profile, reading)

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, 100, result.Derived.OverallRisk)
	assert.Equal(t, []string{"High metabolic risk", "Critical blood pressure", "Critical blood sugar level", "Elevated heart rate"}, result.TrendIndicators)
	assert.Contains(t, result.Factors, "Sedentary Lifestyle")
}

func TestEvaluate_ActiveLifestyleMitigates(t *testing.T) {
	reading := &Reading{HeartRate: intPtr(72), Systolic: intPtr(115), Diastolic: intPtr(75), BloodSugar: intPtr(90)}

	moderate := Evaluate(&Profile{Age: intPtr(30), BMI: floatPtr(22), ActivityLevel: ActivityModerate}, reading)
	active := Evaluate(&Profile{Age: intPtr(30), BMI: floatPtr(22), ActivityLevel: ActivityActive}, reading)

	assert.Equal(t, 10, moderate.Score)
	assert.Equal(t, 5, active.Score)
	assert.Empty(t, active.Factors)
	assert.Equal(t, TrendStable, active.Derived.Trend)
}

func TestEvaluate_SkipsMissingFields(t *testing.T) {
	result := Evaluate(&Profile{}, &Reading{BloodSugar: intPtr(65)})

	assert.Equal(t, 30, result.Score)
	assert.Equal(t, []string{"Hypoglycemia"}, result.Factors)
	assert.Equal(t, []string{"Low blood sugar alert"}, result.TrendIndicators)
	assert.Equal(t, map[Condition]float64{ConditionDiabetes: 0.15}, result.Probabilities)
	assert.Equal(t, TrendModerate, result.Derived.Trend)
	assert.Equal(t, PriorityLow, result.Derived.RecommendationPriority)
}

func TestEvaluate_BloodPressureNeedsBothSides(t *testing.T) {
	profile := &Profile{Age: intPtr(30), BMI: floatPtr(22)}

	for _, reading := range []*Reading{
		{Systolic: intPtr(150)},
		{Diastolic: intPtr(125)},
	} {
		result := Evaluate(profile, reading)

		assert.Equal(t, 10, result.Score)
		assert.Empty(t, result.Factors)
		assert.NotContains(t, result.Probabilities, ConditionHypertension)
	}
}

func TestEvaluate_BMIDerivedFromHeightAndWeight(t *testing.T) {
	profile := &Profile{HeightCm: floatPtr(170), WeightKg: floatPtr(110), BMI: floatPtr(20)}

	result := Evaluate(profile, &Reading{})

	assert.Equal(t, []string{"Severe Obesity (BMI > 35)"}, result.Factors)
	assert.Equal(t, 35, result.Score)
}

func TestEvaluate_BloodPressureTiers(t *testing.T) {
	cases := []struct {
		systolic  *int
		diastolic *int
		factor    string
		points    int
	}{
		{systolic: intPtr(185), diastolic: intPtr(80), factor: "Hypertensive Crisis", points: 35},
		{systolic: intPtr(110), diastolic: intPtr(121), factor: "Hypertensive Crisis", points: 35},
		{systolic: intPtr(141), diastolic: intPtr(70), factor: "Stage 2 Hypertension", points: 25},
		{systolic: intPtr(131), diastolic: intPtr(70), factor: "Stage 1 Hypertension", points: 15},
		{systolic: intPtr(118), diastolic: intPtr(85), factor: "Stage 1 Hypertension", points: 15},
		{systolic: intPtr(125), diastolic: intPtr(70), factor: "Elevated Blood Pressure", points: 8},
		{systolic: intPtr(120), diastolic: intPtr(80), factor: "", points: 0},
	}

	for _, testCase := range cases {
		result := Evaluate(&Profile{}, &Reading{Systolic: testCase.systolic, Diastolic: testCase.diastolic})
		assert.Equal(t, baseRiskScore+testCase.points, result.Score)
		if testCase.factor == "" {
			assert.Empty(t, result.Factors)
			assert.Equal(t, 0.10, result.Probability(ConditionHypertension))
			continue
		}
		assert.Equal(t, []string{testCase.factor}, result.Factors)
	}
}

func TestEvaluate_ScoreAlwaysWithinBounds(t *testing.T) {
	ages := []int{0, 30, 45, 60, 90}
	bmis := []float64{18, 27, 33, 50}
	sugars := []int{50, 100, 150, 200, 400}
	levels := []ActivityLevel{"", ActivitySedentary, ActivityModerate, ActivityActive}

	for _, age := range ages {
		for _, bmi := range bmis {
			for _, sugar := range sugars {
				for _, level := range levels {
					profile := &Profile{Age: intPtr(age), BMI: floatPtr(bmi), ActivityLevel: level}
					reading := &Reading{HeartRate: intPtr(140), Systolic: intPtr(190), Diastolic: intPtr(125), BloodSugar: intPtr(sugar)}
					result := Evaluate(profile, reading)
					require.GreaterOrEqual(t, result.Score, 0)
					require.LessOrEqual(t, result.Score, 100)
				}
			}
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	profile := &Profile{Age: intPtr(48), BMI: floatPtr(28.4), ActivityLevel: ActivitySedentary}
	reading := &Reading{HeartRate: intPtr(45), Systolic: intPtr(135), Diastolic: intPtr(88), BloodSugar: intPtr(190)}

	first, err := json.Marshal(Evaluate(profile, reading))
	require.NoError(t, err)
	second, err := json.Marshal(Evaluate(profile, reading))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestLevelForScore(t *testing.T) {
	assert.Equal(t, LevelLow, LevelForScore(30))
	assert.Equal(t, LevelModerate, LevelForScore(31))
	assert.Equal(t, LevelModerate, LevelForScore(60))
	assert.Equal(t, LevelHigh, LevelForScore(61))
}
