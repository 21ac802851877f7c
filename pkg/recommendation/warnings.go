package recommendation

import (
	"github.com/davidvct/healthy-meal-planner/domain"
)

// Warnings returns the distinct warning labels triggered by n for the given
// conditions. A condition contributes its label once, on the first limit
// that is exceeded. Unknown conditions are ignored.
func (e *Engine) Warnings(n domain.NutrientVector, conditions []string) []string {
	return e.warnings(n, conditions, 1, "")
}

// DayWarnings checks a whole day against three meals' worth of limits.
func (e *Engine) DayWarnings(n domain.NutrientVector, conditions []string) []string {
	return e.warnings(n, conditions, domain.DayWarningMultiplier, domain.DayWarningSuffix)
}

// EntryWarnings evaluates a planned entry at its actual servings or custom
// ingredients.
func (e *Engine) EntryWarnings(entry domain.PlanEntry, conditions []string) []string {
	n, ok := e.calc.Entry(entry)
	if !ok {
		return []string{}
	}
	return e.Warnings(n, conditions)
}

func (e *Engine) warnings(n domain.NutrientVector, conditions []string, multiplier float64, suffix string) []string {
	labels := make([]string, 0)
	seen := make(map[string]struct{})
	for _, condition := range conditions {
		rule, ok := e.rules[condition]
		if !ok {
			continue
		}
		for _, limit := range rule.Limits {
			if n.Get(limit.Nutrient) > limit.Limit*multiplier {
				label := rule.WarnLabel + suffix
				if _, dup := seen[label]; !dup {
					seen[label] = struct{}{}
					labels = append(labels, label)
				}
				break
			}
		}
	}
	return labels
}
