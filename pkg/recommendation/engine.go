package recommendation

import (
	"sort"
	"strings"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/pkg/nutrient"
)

// Engine filters, scores and annotates dishes for a diner. It holds only
// read-only reference data and is safe for concurrent use.
type Engine struct {
	calc  *nutrient.Calculator
	rules domain.ConditionRules
}

func NewEngine(calc *nutrient.Calculator, rules domain.ConditionRules) *Engine {
	if rules == nil {
		rules = domain.DefaultConditionRules
	}
	return &Engine{calc: calc, rules: rules}
}

// RecommendInput is everything needed to rank dishes for one meal slot.
type RecommendInput struct {
	Dishes      []domain.Dish
	Profile     domain.DinerProfile
	MealType    string
	DayEntries  []domain.PlanEntry
	WeekEntries []domain.PlanEntry
	Options     FilterOptions
	Search      string
}

// Recommend narrows the catalog, scores the survivors and returns them best
// first. Dishes with equal totals keep catalog order.
func (e *Engine) Recommend(in RecommendInput) []domain.ScoredDish {
	candidates := e.Filter(in.Dishes, in.Profile, in.MealType, in.Options)
	candidates = Search(candidates, in.Search)

	scored := make([]domain.ScoredDish, 0, len(candidates))
	for _, dish := range candidates {
		nutrients := e.calc.Base(dish)
		scored = append(scored, domain.ScoredDish{
			Dish:      dish,
			Score:     e.Score(dish, in.Profile.Conditions, in.DayEntries, in.MealType, in.WeekEntries),
			Warnings:  e.Warnings(nutrients, in.Profile.Conditions),
			Nutrients: nutrients,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.Total > scored[j].Score.Total
	})
	return scored
}

// Search keeps dishes whose name or one of whose tags contains query,
// ignoring case. A blank query keeps everything.
func Search(dishes []domain.Dish, query string) []domain.Dish {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return dishes
	}

	result := make([]domain.Dish, 0, len(dishes))
	for _, d := range dishes {
		if strings.Contains(strings.ToLower(d.Name), q) {
			result = append(result, d)
			continue
		}
		for _, tag := range d.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				result = append(result, d)
				break
			}
		}
	}
	return result
}
