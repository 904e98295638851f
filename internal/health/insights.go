package health

import (
	"fmt"
	"strings"
)

const (
	maxInsightItems       = 5
	suggestionProbability = 0.3
	noDataSummary         = "No health data available. Please log your vitals to receive personalized insights."
	genericSummary        = "Based on your health data, here's your personalized summary."
)

type Insights struct {
	Summary                string   `json:"summary"`
	RiskExplanation        string   `json:"risk_explanation"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
	PreventiveCare         []string `json:"preventive_care"`
}

type conditionAdvice struct {
	condition   Condition
	suggestions []string
}

var conditionSuggestions = []conditionAdvice{
	{condition: ConditionHypertension, suggestions: []string{
		"Reduce sodium intake to less than 2,300mg per day",
		"Engage in at least 150 minutes of moderate exercise weekly",
		"Practice stress-reduction techniques like meditation or yoga",
	}},
	{condition: ConditionDiabetes, suggestions: []string{
		"Follow a balanced diet with controlled carbohydrate intake",
		"Monitor blood sugar levels regularly",
		"Maintain a healthy weight through diet and exercise",
	}},
	{condition: ConditionMetabolic, suggestions: []string{
		"Aim for gradual weight loss of 5-10% of body weight",
		"Increase daily physical activity",
		"Focus on whole foods and reduce processed foods",
	}},
	{condition: ConditionCardiac, suggestions: []string{
		"Avoid smoking and limit alcohol consumption",
		"Maintain a heart-healthy diet (Mediterranean or DASH diet)",
		"Get regular cardiovascular exercise",
	}},
}

var genericSuggestions = []string{
	"Maintain regular health check-ups",
	"Stay hydrated and get adequate sleep (7-9 hours)",
	"Continue monitoring your vitals regularly",
}

var genericPreventiveCare = []string{
	"Annual wellness visit",
	"Age-appropriate cancer screenings",
	"Immunization updates",
}

// Compose turns a risk result into user-facing text. A nil reading yields the
// "no data" summary with empty lists.
func Compose(profile *Profile, reading *Reading, risk RiskResult) Insights {
	if reading == nil {
		return Insights{
			Summary:                noDataSummary,
			ImprovementSuggestions: []string{},
			PreventiveCare:         []string{},
		}
	}

	return Insights{
		Summary:                composeSummary(*reading),
		RiskExplanation:        explainRisk(risk),
		ImprovementSuggestions: truncate(suggestionsFor(risk), maxInsightItems),
		PreventiveCare:         truncate(preventiveCareFor(profile, risk.Factors), maxInsightItems),
	}
}

func composeSummary(reading Reading) string {
	parts := make([]string, 0, 3)

	if reading.HeartRate != nil {
		rate := *reading.HeartRate
		switch {
		case rate >= 60 && rate <= 100:
			parts = append(parts, fmt.Sprintf("Your heart rate of %d BPM is within the normal range.", rate))
		case rate > 100:
			parts = append(parts, fmt.Sprintf("Your heart rate of %d BPM is elevated. Consider stress management and regular exercise.", rate))
		default:
			parts = append(parts, fmt.Sprintf("Your heart rate of %d BPM is below normal. Consult with a healthcare provider.", rate))
		}
	}

	if reading.Systolic != nil && reading.Diastolic != nil {
		systolic, diastolic := *reading.Systolic, *reading.Diastolic
		switch {
		case systolic < 120 && diastolic < 80:
			parts = append(parts, fmt.Sprintf("Your blood pressure (%d/%d mmHg) is optimal.", systolic, diastolic))
		case systolic < 130 && diastolic < 80:
			parts = append(parts, fmt.Sprintf("Your blood pressure (%d/%d mmHg) is elevated. Monitor regularly.", systolic, diastolic))
		default:
			parts = append(parts, fmt.Sprintf("Your blood pressure (%d/%d mmHg) is high. Lifestyle changes and medical consultation recommended.", systolic, diastolic))
		}
	}

	if reading.BloodSugar != nil {
		sugar := *reading.BloodSugar
		switch {
		case sugar >= 70 && sugar <= 100:
			parts = append(parts, fmt.Sprintf("Your blood sugar of %d mg/dL is in the normal fasting range.", sugar))
		case sugar > 100 && sugar <= 140:
			parts = append(parts, fmt.Sprintf("Your blood sugar of %d mg/dL is slightly elevated. Monitor your diet.", sugar))
		case sugar > 140:
			parts = append(parts, fmt.Sprintf("Your blood sugar of %d mg/dL is high. Consider dietary changes and medical consultation.", sugar))
		default:
			parts = append(parts, fmt.Sprintf("Your blood sugar of %d mg/dL is low. Ensure regular meals.", sugar))
		}
	}

	if len(parts) == 0 {
		return genericSummary
	}
	return strings.Join(parts, " ")
}

func explainRisk(risk RiskResult) string {
	switch risk.Level() {
	case LevelHigh:
		return fmt.Sprintf("Your current health risk score is %d/100, indicating a HIGH risk level. ", risk.Score) +
			"Primary contributing factors include: " + strings.Join(truncate(risk.Factors, 3), ", ") + ". " +
			"Immediate attention and lifestyle modifications are recommended."
	case LevelModerate:
		return fmt.Sprintf("Your current health risk score is %d/100, indicating a MODERATE risk level. ", risk.Score) +
			"Key factors: " + strings.Join(truncate(risk.Factors, 2), ", ") + ". " +
			"Proactive measures can help reduce your risk."
	default:
		return fmt.Sprintf("Your current health risk score is %d/100, indicating a LOW risk level. ", risk.Score) +
			"Continue maintaining healthy habits and regular monitoring."
	}
}

func suggestionsFor(risk RiskResult) []string {
	suggestions := make([]string, 0, 6)
	for _, advice := range conditionSuggestions {
		if risk.Probability(advice.condition) > suggestionProbability {
			suggestions = append(suggestions, advice.suggestions...)
		}
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, genericSuggestions...)
	}
	return suggestions
}

func preventiveCareFor(profile *Profile, factors []string) []string {
	care := make([]string, 0, 8)

	if profile != nil {
		age := 0
		if profile.Age != nil {
			age = *profile.Age
		}
		switch {
		case age > 50:
			care = append(care,
				"Annual comprehensive health screening",
				"Colonoscopy (if not done in last 10 years)",
				"Bone density scan",
			)
		case age > 40:
			care = append(care,
				"Annual physical examination",
				"Cholesterol and lipid panel",
				"Diabetes screening",
			)
		default:
			care = append(care,
				"Regular health check-ups every 2-3 years",
				"Dental check-ups twice yearly",
				"Eye examination every 2 years",
			)
		}
	}

	if hasFactor(factors, "High Blood Pressure") || factorContains(factors, "Hypertension") {
		care = append(care,
			"Regular blood pressure monitoring at home",
			"ECG/EKG if recommended by physician",
		)
	}
	if hasFactor(factors, "High Blood Sugar") || factorContains(factors, "Diabetes") {
		care = append(care,
			"HbA1c test every 3-6 months",
			"Annual eye examination for diabetic retinopathy",
			"Foot examination for diabetic neuropathy",
		)
	}

	if len(care) == 0 {
		care = append(care, genericPreventiveCare...)
	}
	return care
}

func hasFactor(factors []string, label string) bool {
	for _, factor := range factors {
		if factor == label {
			return true
		}
	}
	return false
}

func factorContains(factors []string, fragment string) bool {
	for _, factor := range factors {
		if strings.Contains(factor, fragment) {
			return true
		}
	}
	return false
}

func truncate(values []string, limit int) []string {
	if len(values) <= limit {
		return values
	}
	return values[:limit]
}
