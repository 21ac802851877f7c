package domain

const (
	ConditionHighBloodSugar  = "High Blood Sugar"
	ConditionHighCholesterol = "High Cholesterol"
	ConditionHypertension    = "Hypertension"

	// DayWarningMultiplier approximates three meals' worth of per-meal limits.
	DayWarningMultiplier = 3
	DayWarningSuffix     = " for the day"
)

type (
	NutrientLimit struct {
		Nutrient string  `json:"nutrient"`
		Limit    float64 `json:"limit"`
	}

	// ConditionRule holds the per-meal limits for one health condition.
	ConditionRule struct {
		Condition       string          `json:"condition"`
		Limits          []NutrientLimit `json:"limits"`
		TriggerNutrient string          `json:"trigger_nutrient"`
		WarnLabel       string          `json:"warn_label"`
	}

	ConditionRules map[string]ConditionRule
)

var DefaultConditionRules = ConditionRules{
	ConditionHighBloodSugar: {
		Condition: ConditionHighBloodSugar,
		Limits: []NutrientLimit{
			{Nutrient: NutrientCarbs, Limit: 60},
			{Nutrient: NutrientSugar, Limit: 15},
		},
		TriggerNutrient: NutrientCarbs,
		WarnLabel:       "High Carbohydrate",
	},
	ConditionHighCholesterol: {
		Condition: ConditionHighCholesterol,
		Limits: []NutrientLimit{
			{Nutrient: NutrientCholesterol, Limit: 100},
			{Nutrient: NutrientFat, Limit: 25},
		},
		TriggerNutrient: NutrientCholesterol,
		WarnLabel:       "High Cholesterol",
	},
	ConditionHypertension: {
		Condition: ConditionHypertension,
		Limits: []NutrientLimit{
			{Nutrient: NutrientSodium, Limit: 700},
		},
		TriggerNutrient: NutrientSodium,
		WarnLabel:       "High Sodium",
	},
}
