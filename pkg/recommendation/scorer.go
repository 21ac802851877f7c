package recommendation

import (
	"math"

	"github.com/davidvct/healthy-meal-planner/domain"
)

const (
	maxHealthScore   = 60
	maxNutrientScore = 30
	maxTotalScore    = 100

	severeRatio   = 1.2
	severePenalty = 24
	nearRatio     = 0.8
	nearPenalty   = 10

	fillShare      = 0.4
	fillWeight     = 7
	headroomReward = 3
	overrunPenalty = 2
	overrunRatio   = 1.2

	varietyBase    = 5
	repeatPenalty  = 2
	mealTypeFit    = 5
	mealTypeMisfit = 1
)

var (
	importantNutrients = []string{domain.NutrientProtein, domain.NutrientFiber, domain.NutrientCalories}
	limitedNutrients   = []string{domain.NutrientSodium, domain.NutrientCholesterol, domain.NutrientSugar}
)

// Score rates a dish for a meal slot on a 0-100 scale: up to 60 for health
// safety, 30 for how well it fits the day's remaining allowance and 10 for
// variety and meal appropriateness.
func (e *Engine) Score(dish domain.Dish, conditions []string, dayEntries []domain.PlanEntry, mealType string, weekEntries []domain.PlanEntry) domain.DishScore {
	dn := e.calc.Base(dish)

	health := e.healthScore(dn, conditions)
	nutrientFit := nutrientScore(dn, e.calc.Day(dayEntries))
	pref := preferenceScore(dish, mealType, weekEntries)

	total := math.Round(clamp(health+nutrientFit+float64(pref), 0, maxTotalScore))
	return domain.DishScore{
		Total:      int(total),
		Health:     int(math.Round(health)),
		Nutrient:   int(math.Round(nutrientFit)),
		Preference: pref,
	}
}

// healthScore penalises every limit the dish approaches or exceeds. Unlike
// warnings, penalties stack across all limits of all conditions.
func (e *Engine) healthScore(dn domain.NutrientVector, conditions []string) float64 {
	score := float64(maxHealthScore)
	for _, condition := range conditions {
		rule, ok := e.rules[condition]
		if !ok {
			continue
		}
		for _, limit := range rule.Limits {
			if limit.Limit == 0 {
				continue
			}
			ratio := dn.Get(limit.Nutrient) / limit.Limit
			if ratio > severeRatio {
				score -= severePenalty
			} else if ratio > nearRatio {
				score -= nearPenalty
			}
		}
	}
	return math.Max(0, score)
}

// nutrientScore compares the dish with what is left of the RDA before it is
// added to the day.
func nutrientScore(dn, day domain.NutrientVector) float64 {
	remaining := func(key string) float64 {
		return math.Max(0, domain.RDA.Get(key)-day.Get(key))
	}

	score := 0.0
	for _, k := range importantNutrients {
		left := remaining(k)
		if left > 0 {
			score += math.Min(1, dn.Get(k)/(left*fillShare)) * fillWeight
		}
	}
	for _, k := range limitedNutrients {
		headroom := remaining(k)
		contribution := dn.Get(k)
		if headroom > 0 && contribution <= headroom {
			score += headroomReward
		} else if contribution > headroom*overrunRatio {
			score -= overrunPenalty
		}
	}
	return clamp(score, 0, maxNutrientScore)
}

func preferenceScore(dish domain.Dish, mealType string, weekEntries []domain.PlanEntry) int {
	count := 0
	for _, entry := range weekEntries {
		if entry.DishID == dish.ID {
			count++
		}
	}

	score := varietyBase - count*repeatPenalty
	if score < 0 {
		score = 0
	}
	if dish.HasMealType(mealType) {
		score += mealTypeFit
	} else {
		score += mealTypeMisfit
	}
	return score
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
