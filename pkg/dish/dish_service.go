package dish

import (
	"context"
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/pkg/nutrient"
	"github.com/davidvct/healthy-meal-planner/pkg/recommendation"
	"github.com/davidvct/healthy-meal-planner/pkg/schedule"
)

type (
	// ProfileProvider supplies the diner attributes that drive filtering.
	ProfileProvider interface {
		GetProfile(ctx context.Context, dinerID string) (domain.DinerProfile, error)
	}

	// PlanProvider supplies a diner's planned entries for one week.
	PlanProvider interface {
		WeekEntries(ctx context.Context, dinerID string, weekStart time.Time) ([]domain.PlanEntry, error)
	}

	DishService interface {
		ListDishes(ctx context.Context) ([]domain.Dish, error)
		GetDishDetail(ctx context.Context, id string) (domain.DishDetail, error)
		Recommend(ctx context.Context, dinerID string, req domain.RecommendRequest) (domain.RecommendResponse, error)
	}

	dishService struct {
		catalog  *Catalog
		calc     *nutrient.Calculator
		engine   *recommendation.Engine
		profiles ProfileProvider
		plans    PlanProvider
		clock    schedule.Clock
	}
)

func NewDishService(
	catalog *Catalog,
	calc *nutrient.Calculator,
	engine *recommendation.Engine,
	profiles ProfileProvider,
	plans PlanProvider,
	clock schedule.Clock,
) DishService {
	return &dishService{
		catalog:  catalog,
		calc:     calc,
		engine:   engine,
		profiles: profiles,
		plans:    plans,
		clock:    clock,
	}
}

func (s *dishService) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	return s.catalog.Dishes(), nil
}

func (s *dishService) GetDishDetail(ctx context.Context, id string) (domain.DishDetail, error) {
	d, ok := s.catalog.Dish(id)
	if !ok {
		return domain.DishDetail{}, domain.ErrDishNotFound
	}

	detail := domain.DishDetail{
		Dish:               d,
		Nutrients:          s.calc.Base(d),
		UnknownIngredients: s.calc.UnknownIngredients(d.Ingredients),
	}
	if d.RecipeID != "" {
		if r, ok := s.catalog.Recipe(d.RecipeID); ok {
			detail.Recipe = &r
		}
	}
	return detail, nil
}

func (s *dishService) Recommend(ctx context.Context, dinerID string, req domain.RecommendRequest) (domain.RecommendResponse, error) {
	if !domain.IsValidDayIndex(req.DayIndex) {
		return domain.RecommendResponse{}, domain.ErrInvalidDayIndex
	}
	if !domain.IsValidMealType(req.MealType) {
		return domain.RecommendResponse{}, domain.ErrInvalidMealType
	}

	weekStart, err := schedule.ParseWeekStart(req.WeekStart, s.clock)
	if err != nil {
		return domain.RecommendResponse{}, err
	}

	profile, err := s.profiles.GetProfile(ctx, dinerID)
	if err != nil {
		return domain.RecommendResponse{}, err
	}

	weekEntries, err := s.plans.WeekEntries(ctx, dinerID, weekStart)
	if err != nil {
		return domain.RecommendResponse{}, err
	}
	dayEntries := make([]domain.PlanEntry, 0, len(weekEntries))
	for _, e := range weekEntries {
		if e.DayIndex == req.DayIndex {
			dayEntries = append(dayEntries, e)
		}
	}

	scored := s.engine.Recommend(recommendation.RecommendInput{
		Dishes:      s.catalog.Dishes(),
		Profile:     profile,
		MealType:    req.MealType,
		DayEntries:  dayEntries,
		WeekEntries: weekEntries,
		Options: recommendation.FilterOptions{
			MealType:   req.FilterMealType,
			Diet:       req.FilterDiet,
			Allergies:  req.FilterAllergies,
			Conditions: req.FilterConditions,
		},
		Search: req.Search,
	})

	return domain.RecommendResponse{
		Scored:       scored,
		DayNutrients: s.calc.Day(dayEntries),
	}, nil
}
