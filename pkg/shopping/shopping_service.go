package shopping

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/entities"
	"github.com/davidvct/healthy-meal-planner/internal/utils/mailing"
	"github.com/davidvct/healthy-meal-planner/internal/utils/storage"
	"github.com/davidvct/healthy-meal-planner/pkg/dish"
	"github.com/davidvct/healthy-meal-planner/pkg/schedule"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const exportFolder = "shopping-lists"

var emailTemplate = template.Must(template.New("shopping-list").Parse(`<h2>Shopping list for the week of {{.WeekStart}}</h2>
<p>{{.TotalDishes}} planned dishes</p>
<table>
<tr><th align="left">Ingredient</th><th align="right">Grams</th></tr>
{{range .Items}}<tr><td>{{.Name}}</td><td align="right">{{.Grams}}</td></tr>
{{end}}</table>`))

type (
	ShoppingService interface {
		GetShoppingList(ctx context.Context, dinerID string, weekStart string) (domain.ShoppingListResponse, error)
		ToggleSelection(ctx context.Context, dinerID string, req domain.ToggleSelectionRequest) (domain.SelectionsResponse, error)
		EmailShoppingList(ctx context.Context, dinerID string, req domain.EmailShoppingListRequest) error
		ExportShoppingList(ctx context.Context, dinerID string, weekStart string) (domain.ExportShoppingListResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		plans              dish.PlanProvider
		policy             *schedule.Policy
		mailer             mailing.Mailer
		s3                 storage.AwsS3
	}
)

func NewShoppingService(
	shoppingRepository ShoppingRepository,
	plans dish.PlanProvider,
	policy *schedule.Policy,
	mailer mailing.Mailer,
	s3 storage.AwsS3,
) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		plans:              plans,
		policy:             policy,
		mailer:             mailer,
		s3:                 s3,
	}
}

func (s *shoppingService) parseWeek(weekStart string) (time.Time, error) {
	return schedule.ParseWeekStart(weekStart, schedule.ClockFunc(s.policy.Now))
}

// activeSelections prunes the diner's expired selections for the week in one
// batch and returns the ones still open.
func (s *shoppingService) activeSelections(ctx context.Context, dinerID string, week time.Time) ([]domain.SlotKey, error) {
	rows, err := s.shoppingRepository.GetSelections(ctx, dinerID, week)
	if err != nil {
		return nil, err
	}

	active := make([]domain.SlotKey, 0, len(rows))
	var expired []domain.SlotKey
	for _, row := range rows {
		slot := row.Slot()
		if s.policy.IsSlotExpired(week, slot.DayIndex, slot.MealType) {
			expired = append(expired, slot)
			continue
		}
		active = append(active, slot)
	}

	if len(expired) > 0 {
		if err := s.shoppingRepository.DeleteSelections(ctx, dinerID, week, expired); err != nil {
			return nil, err
		}
		log.Infof("pruned %d expired shopping selections for diner %s", len(expired), dinerID)
	}

	sortSlots(active)
	return active, nil
}

func (s *shoppingService) GetShoppingList(ctx context.Context, dinerID string, weekStart string) (domain.ShoppingListResponse, error) {
	week, err := s.parseWeek(weekStart)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	active, err := s.activeSelections(ctx, dinerID, week)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	res := domain.ShoppingListResponse{
		WeekStart:  schedule.FormatDate(week),
		Items:      []domain.ShoppingItem{},
		Selections: active,
	}
	if len(active) == 0 {
		return res, nil
	}

	entries, err := s.plans.WeekEntries(ctx, dinerID, week)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	resolved := make([]domain.PlanEntry, 0, len(entries))
	for _, e := range entries {
		if e.Dish != nil {
			resolved = append(resolved, e)
		}
	}

	selected := domain.NewSlotSet(active...)
	res.Items = Aggregate(resolved, selected)
	res.TotalDishes = CountSelected(resolved, selected)
	return res, nil
}

func (s *shoppingService) ToggleSelection(ctx context.Context, dinerID string, req domain.ToggleSelectionRequest) (domain.SelectionsResponse, error) {
	if !domain.IsValidDayIndex(req.DayIndex) {
		return domain.SelectionsResponse{}, domain.ErrInvalidDayIndex
	}
	if !domain.IsValidMealType(req.MealType) {
		return domain.SelectionsResponse{}, domain.ErrInvalidMealType
	}
	week, err := s.parseWeek(req.WeekStart)
	if err != nil {
		return domain.SelectionsResponse{}, err
	}
	if s.policy.IsSlotExpired(week, req.DayIndex, req.MealType) {
		return domain.SelectionsResponse{}, domain.ErrSlotLocked
	}

	dinerUUID, err := uuid.Parse(dinerID)
	if err != nil {
		return domain.SelectionsResponse{}, domain.ErrParseUUID
	}
	if _, err := s.shoppingRepository.ToggleSelection(ctx, &entities.ShoppingSelection{
		DinerID:   dinerUUID,
		WeekStart: schedule.StorageDate(week),
		DayIndex:  req.DayIndex,
		MealType:  req.MealType,
	}); err != nil {
		return domain.SelectionsResponse{}, err
	}

	active, err := s.activeSelections(ctx, dinerID, week)
	if err != nil {
		return domain.SelectionsResponse{}, err
	}
	return domain.SelectionsResponse{Selections: active}, nil
}

func (s *shoppingService) EmailShoppingList(ctx context.Context, dinerID string, req domain.EmailShoppingListRequest) error {
	list, err := s.GetShoppingList(ctx, dinerID, req.WeekStart)
	if err != nil {
		return err
	}
	if len(list.Items) == 0 {
		return domain.ErrEmptyShoppingList
	}

	var body bytes.Buffer
	if err := emailTemplate.Execute(&body, list); err != nil {
		return err
	}
	subject := fmt.Sprintf("Shopping list for the week of %s", list.WeekStart)
	return s.mailer.SendMail(req.Email, subject, body.String())
}

func (s *shoppingService) ExportShoppingList(ctx context.Context, dinerID string, weekStart string) (domain.ExportShoppingListResponse, error) {
	list, err := s.GetShoppingList(ctx, dinerID, weekStart)
	if err != nil {
		return domain.ExportShoppingListResponse{}, err
	}
	if len(list.Items) == 0 {
		return domain.ExportShoppingListResponse{}, domain.ErrEmptyShoppingList
	}

	body, err := EncodeCSV(list.Items)
	if err != nil {
		return domain.ExportShoppingListResponse{}, err
	}
	key, err := s.s3.UploadFile(ctx, fmt.Sprintf("%s-%s", dinerID, list.WeekStart), body, exportFolder, storage.ContentTypeCSV)
	if err != nil {
		return domain.ExportShoppingListResponse{}, err
	}
	return domain.ExportShoppingListResponse{URL: s.s3.GetPublicLinkKey(key)}, nil
}

func EncodeCSV(items []domain.ShoppingItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"ingredient", "grams"}); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := w.Write([]string{item.Name, strconv.Itoa(item.Grams)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func sortSlots(slots []domain.SlotKey) {
	order := make(map[string]int, len(domain.MealTypes))
	for i, mt := range domain.MealTypes {
		order[mt] = i
	}
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].DayIndex != slots[j].DayIndex {
			return slots[i].DayIndex < slots[j].DayIndex
		}
		return order[slots[i].MealType] < order[slots[j].MealType]
	})
}
