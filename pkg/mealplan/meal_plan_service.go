package mealplan

import (
	"context"
	"errors"
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/entities"
	"github.com/davidvct/healthy-meal-planner/pkg/dish"
	"github.com/davidvct/healthy-meal-planner/pkg/nutrient"
	"github.com/davidvct/healthy-meal-planner/pkg/recommendation"
	"github.com/davidvct/healthy-meal-planner/pkg/schedule"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		GetWeekPlan(ctx context.Context, dinerID string, weekStart string) (domain.WeekPlanResponse, error)
		AddEntry(ctx context.Context, dinerID string, req domain.AddMealPlanRequest) (domain.PlanEntryResponse, error)
		RemoveEntry(ctx context.Context, dinerID string, entryID uint) error
		DayNutrients(ctx context.Context, dinerID string, weekStart string, dayIndex int) (domain.DayNutrientsResponse, error)
		WeekNutrients(ctx context.Context, dinerID string, weekStart string) (domain.WeekNutrientsResponse, error)
		WeekEntries(ctx context.Context, dinerID string, weekStart time.Time) ([]domain.PlanEntry, error)
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		catalog            *dish.Catalog
		calc               *nutrient.Calculator
		engine             *recommendation.Engine
		profiles           dish.ProfileProvider
		policy             *schedule.Policy
	}
)

func NewMealPlanService(
	mealPlanRepository MealPlanRepository,
	catalog *dish.Catalog,
	calc *nutrient.Calculator,
	engine *recommendation.Engine,
	profiles dish.ProfileProvider,
	policy *schedule.Policy,
) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		catalog:            catalog,
		calc:               calc,
		engine:             engine,
		profiles:           profiles,
		policy:             policy,
	}
}

func (s *mealPlanService) parseWeek(weekStart string) (time.Time, error) {
	return schedule.ParseWeekStart(weekStart, schedule.ClockFunc(s.policy.Now))
}

func (s *mealPlanService) WeekEntries(ctx context.Context, dinerID string, weekStart time.Time) ([]domain.PlanEntry, error) {
	rows, err := s.mealPlanRepository.GetWeekEntries(ctx, dinerID, weekStart)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.PlanEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.ToDomain())
	}
	return entries, nil
}

func (s *mealPlanService) GetWeekPlan(ctx context.Context, dinerID string, weekStart string) (domain.WeekPlanResponse, error) {
	week, err := s.parseWeek(weekStart)
	if err != nil {
		return domain.WeekPlanResponse{}, err
	}
	profile, err := s.profiles.GetProfile(ctx, dinerID)
	if err != nil {
		return domain.WeekPlanResponse{}, err
	}
	entries, err := s.WeekEntries(ctx, dinerID, week)
	if err != nil {
		return domain.WeekPlanResponse{}, err
	}

	slots := make(map[domain.SlotKey][]domain.PlanEntryResponse)
	for _, entry := range entries {
		if entry.Dish == nil {
			log.Warnw("meal plan entry references a missing dish", "entry_id", entry.ID, "dish_id", entry.DishID)
			continue
		}
		slots[entry.Slot()] = append(slots[entry.Slot()], s.entryResponse(entry, profile.Conditions))
	}

	days := make([]domain.DayPlanResponse, 0, domain.DaysPerWeek)
	for d := 0; d < domain.DaysPerWeek; d++ {
		meals := make([]domain.MealSlotResponse, 0, len(domain.MealTypes))
		for _, mealType := range domain.MealTypes {
			slotEntries := slots[domain.SlotKey{DayIndex: d, MealType: mealType}]
			if slotEntries == nil {
				slotEntries = []domain.PlanEntryResponse{}
			}
			meals = append(meals, domain.MealSlotResponse{
				MealType: mealType,
				Locked:   s.policy.IsSlotExpired(week, d, mealType),
				Entries:  slotEntries,
			})
		}
		days = append(days, domain.DayPlanResponse{
			DayIndex: d,
			Date:     schedule.FormatDate(schedule.SlotDate(week, d)),
			Meals:    meals,
		})
	}

	return domain.WeekPlanResponse{
		WeekStart: schedule.FormatDate(week),
		Days:      days,
	}, nil
}

func (s *mealPlanService) entryResponse(entry domain.PlanEntry, conditions []string) domain.PlanEntryResponse {
	res := domain.PlanEntryResponse{
		ID:                entry.ID,
		DishID:            entry.DishID,
		Servings:          entry.Servings,
		CustomIngredients: entry.CustomIngredients,
		Warnings:          []string{},
	}
	if entry.Dish != nil {
		res.DishName = entry.Dish.Name
		res.DishIngredients = entry.Dish.Ingredients
		res.Tags = entry.Dish.Tags
		res.MealTypes = entry.Dish.MealTypes
		res.RecipeID = entry.Dish.RecipeID
		res.Nutrients, _ = s.calc.Entry(entry)
		res.Warnings = s.engine.EntryWarnings(entry, conditions)
	}
	return res
}

func (s *mealPlanService) AddEntry(ctx context.Context, dinerID string, req domain.AddMealPlanRequest) (domain.PlanEntryResponse, error) {
	if !domain.IsValidDayIndex(req.DayIndex) {
		return domain.PlanEntryResponse{}, domain.ErrInvalidDayIndex
	}
	if !domain.IsValidMealType(req.MealType) {
		return domain.PlanEntryResponse{}, domain.ErrInvalidMealType
	}
	servings := req.Servings
	if servings == 0 {
		servings = 1
	}
	if servings < 0 {
		return domain.PlanEntryResponse{}, domain.ErrInvalidServings
	}
	// A non-nil override replaces the dish, so an empty one is rejected.
	if req.CustomIngredients != nil && len(req.CustomIngredients) == 0 {
		return domain.PlanEntryResponse{}, domain.ErrInvalidIngredient
	}
	for _, grams := range req.CustomIngredients {
		if grams < 0 {
			return domain.PlanEntryResponse{}, domain.ErrInvalidIngredient
		}
	}

	d, ok := s.catalog.Dish(req.DishID)
	if !ok {
		return domain.PlanEntryResponse{}, domain.ErrDishNotFound
	}

	week, err := s.parseWeek(req.WeekStart)
	if err != nil {
		return domain.PlanEntryResponse{}, err
	}
	if s.policy.IsSlotExpired(week, req.DayIndex, req.MealType) {
		return domain.PlanEntryResponse{}, domain.ErrSlotLocked
	}

	dinerUUID, err := uuid.Parse(dinerID)
	if err != nil {
		return domain.PlanEntryResponse{}, domain.ErrParseUUID
	}
	custom, err := entities.EncodeCustomIngredients(req.CustomIngredients)
	if err != nil {
		return domain.PlanEntryResponse{}, domain.ErrInvalidIngredient
	}
	profile, err := s.profiles.GetProfile(ctx, dinerID)
	if err != nil {
		return domain.PlanEntryResponse{}, err
	}

	row := &entities.MealPlanEntry{
		DinerID:           dinerUUID,
		WeekStart:         schedule.StorageDate(week),
		DayIndex:          req.DayIndex,
		MealType:          req.MealType,
		DishID:            d.ID,
		Servings:          servings,
		CustomIngredients: custom,
	}
	if err := s.mealPlanRepository.AppendEntry(ctx, row); err != nil {
		return domain.PlanEntryResponse{}, err
	}

	entry := row.ToDomain()
	entry.Dish = &d
	return s.entryResponse(entry, profile.Conditions), nil
}

func (s *mealPlanService) RemoveEntry(ctx context.Context, dinerID string, entryID uint) error {
	row, err := s.mealPlanRepository.GetEntryByID(ctx, entryID, dinerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEntryNotFound
		}
		return err
	}
	if s.policy.IsSlotExpired(row.WeekStart, row.DayIndex, row.MealType) {
		return domain.ErrSlotLocked
	}

	if err := s.mealPlanRepository.DeleteEntry(ctx, entryID, dinerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEntryNotFound
		}
		return err
	}
	return nil
}

func (s *mealPlanService) DayNutrients(ctx context.Context, dinerID string, weekStart string, dayIndex int) (domain.DayNutrientsResponse, error) {
	if !domain.IsValidDayIndex(dayIndex) {
		return domain.DayNutrientsResponse{}, domain.ErrInvalidDayIndex
	}
	week, err := s.parseWeek(weekStart)
	if err != nil {
		return domain.DayNutrientsResponse{}, err
	}
	entries, err := s.WeekEntries(ctx, dinerID, week)
	if err != nil {
		return domain.DayNutrientsResponse{}, err
	}

	return domain.DayNutrientsResponse{
		DayIndex:  dayIndex,
		Nutrients: s.calc.Day(entriesOnDay(entries, dayIndex)),
		RDA:       domain.RDA,
	}, nil
}

func (s *mealPlanService) WeekNutrients(ctx context.Context, dinerID string, weekStart string) (domain.WeekNutrientsResponse, error) {
	week, err := s.parseWeek(weekStart)
	if err != nil {
		return domain.WeekNutrientsResponse{}, err
	}
	profile, err := s.profiles.GetProfile(ctx, dinerID)
	if err != nil {
		return domain.WeekNutrientsResponse{}, err
	}
	entries, err := s.WeekEntries(ctx, dinerID, week)
	if err != nil {
		return domain.WeekNutrientsResponse{}, err
	}

	daily := make([]domain.DailyBreakdown, 0, domain.DaysPerWeek)
	for d := 0; d < domain.DaysPerWeek; d++ {
		dayEntries := entriesOnDay(entries, d)
		dayNutrients := s.calc.Day(dayEntries)
		daily = append(daily, domain.DailyBreakdown{
			DayIndex:  d,
			Nutrients: dayNutrients,
			HasMeals:  hasResolvedDish(dayEntries),
			Warnings:  s.engine.DayWarnings(dayNutrients, profile.Conditions),
		})
	}

	return domain.WeekNutrientsResponse{
		WeekStart:     schedule.FormatDate(week),
		WeekNutrients: s.calc.Week(entries),
		WeekRDA:       domain.WeekRDA(),
		Daily:         daily,
	}, nil
}

func entriesOnDay(entries []domain.PlanEntry, dayIndex int) []domain.PlanEntry {
	out := make([]domain.PlanEntry, 0, len(entries))
	for _, e := range entries {
		if e.DayIndex == dayIndex {
			out = append(out, e)
		}
	}
	return out
}

func hasResolvedDish(entries []domain.PlanEntry) bool {
	for _, e := range entries {
		if e.Dish != nil {
			return true
		}
	}
	return false
}
