package shopping

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/entities"
	"github.com/davidvct/healthy-meal-planner/pkg/schedule"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShoppingRepository struct {
	rows        []entities.ShoppingSelection
	deleteCalls int
	deleteErr   error
}

func (f *fakeShoppingRepository) GetSelections(_ context.Context, dinerID string, weekStart time.Time) ([]entities.ShoppingSelection, error) {
	var out []entities.ShoppingSelection
	for _, row := range f.rows {
		if row.DinerID.String() == dinerID && schedule.FormatDate(row.WeekStart) == schedule.FormatDate(weekStart) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeShoppingRepository) ToggleSelection(_ context.Context, s *entities.ShoppingSelection) (bool, error) {
	for i, row := range f.rows {
		if row.DinerID == s.DinerID && row.WeekStart.Equal(s.WeekStart) && row.Slot() == s.Slot() {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return false, nil
		}
	}
	f.rows = append(f.rows, *s)
	return true, nil
}

func (f *fakeShoppingRepository) DeleteSelections(_ context.Context, dinerID string, weekStart time.Time, slots []domain.SlotKey) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	drop := domain.NewSlotSet(slots...)
	kept := f.rows[:0]
	for _, row := range f.rows {
		if row.DinerID.String() == dinerID && schedule.FormatDate(row.WeekStart) == schedule.FormatDate(weekStart) && drop.Has(row.Slot()) {
			continue
		}
		kept = append(kept, row)
	}
	f.rows = kept
	return nil
}

type fakePlans struct {
	entries []domain.PlanEntry
}

func (f *fakePlans) WeekEntries(context.Context, string, time.Time) ([]domain.PlanEntry, error) {
	return f.entries, nil
}

type fakeMailer struct {
	to, subject, body string
}

func (f *fakeMailer) SendMail(to, subject, body string) error {
	f.to, f.subject, f.body = to, subject, body
	return nil
}

type fakeStorage struct {
	name, folder, contentType string
	body                      []byte
}

func (f *fakeStorage) UploadFile(_ context.Context, fileName string, body []byte, folder string, contentType string) (string, error) {
	f.name, f.body, f.folder, f.contentType = fileName, body, folder, contentType
	return folder + "/" + fileName + ".csv", nil
}

func (f *fakeStorage) DeleteFile(context.Context, string) error { return nil }

func (f *fakeStorage) GetPublicLinkKey(key string) string { return "https://cdn.example.com/" + key }

func (f *fakeStorage) GetObjectKeyFromLink(string) string { return "" }

var (
	shopper = uuid.MustParse("c0ffee00-1111-4222-8333-444455556666")
	sgt     = time.FixedZone("SGT", 8*60*60)
	week    = time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
)

type shoppingFixture struct {
	svc     ShoppingService
	repo    *fakeShoppingRepository
	mailer  *fakeMailer
	storage *fakeStorage
}

// Now is Wednesday 2026-02-25 15:00: earlier days and Wednesday lunch are
// expired.
func newShoppingFixture(t *testing.T, entries []domain.PlanEntry, selected ...domain.SlotKey) shoppingFixture {
	t.Helper()
	repo := &fakeShoppingRepository{}
	for _, slot := range selected {
		repo.rows = append(repo.rows, entities.ShoppingSelection{
			DinerID: shopper, WeekStart: week, DayIndex: slot.DayIndex, MealType: slot.MealType,
		})
	}
	policy := schedule.NewPolicy(schedule.FixedClock(time.Date(2026, 2, 25, 15, 0, 0, 0, sgt)))
	mailer := &fakeMailer{}
	storage := &fakeStorage{}
	return shoppingFixture{
		svc:     NewShoppingService(repo, &fakePlans{entries: entries}, policy, mailer, storage),
		repo:    repo,
		mailer:  mailer,
		storage: storage,
	}
}

func plannedWeek(t *testing.T) []domain.PlanEntry {
	kangkong := seededDish(t, "d4")
	return []domain.PlanEntry{
		{ID: 1, DayIndex: 0, MealType: domain.MealLunch, DishID: "d4", Dish: kangkong, Servings: 1},
		{ID: 2, DayIndex: 3, MealType: domain.MealLunch, DishID: "d4", Dish: kangkong, Servings: 1},
		{ID: 3, DayIndex: 4, MealType: domain.MealDinner, DishID: "d4", Dish: kangkong, Servings: 2},
		{ID: 4, DayIndex: 4, MealType: domain.MealDinner, DishID: "gone", Servings: 1},
	}
}

func TestShoppingService_GetShoppingList_PrunesExpired(t *testing.T) {
	f := newShoppingFixture(t, plannedWeek(t),
		domain.SlotKey{DayIndex: 4, MealType: domain.MealDinner},
		domain.SlotKey{DayIndex: 0, MealType: domain.MealLunch},
		domain.SlotKey{DayIndex: 2, MealType: domain.MealLunch},
		domain.SlotKey{DayIndex: 3, MealType: domain.MealLunch},
	)

	res, err := f.svc.GetShoppingList(context.Background(), shopper.String(), "2026-02-23")

	require.NoError(t, err)
	assert.Equal(t, "2026-02-23", res.WeekStart)
	assert.Equal(t, []domain.SlotKey{
		{DayIndex: 3, MealType: domain.MealLunch},
		{DayIndex: 4, MealType: domain.MealDinner},
	}, res.Selections)
	assert.Equal(t, 2, res.TotalDishes)
	assert.Equal(t, 45, grams(res.Items)["garlic"])
	assert.Len(t, f.repo.rows, 2)
	assert.Equal(t, 1, f.repo.deleteCalls)

	again, err := f.svc.GetShoppingList(context.Background(), shopper.String(), "2026-02-23")
	require.NoError(t, err)
	assert.Equal(t, res, again)
	assert.Equal(t, 1, f.repo.deleteCalls)
}

func TestShoppingService_GetShoppingList_NoSelections(t *testing.T) {
	f := newShoppingFixture(t, plannedWeek(t))

	res, err := f.svc.GetShoppingList(context.Background(), shopper.String(), "2026-02-23")

	require.NoError(t, err)
	assert.Equal(t, []domain.ShoppingItem{}, res.Items)
	assert.Equal(t, []domain.SlotKey{}, res.Selections)
	assert.Zero(t, res.TotalDishes)
}

func TestShoppingService_GetShoppingList_PruneFailureIsReported(t *testing.T) {
	f := newShoppingFixture(t, plannedWeek(t), domain.SlotKey{DayIndex: 0, MealType: domain.MealLunch})
	f.repo.deleteErr = errors.New("tx aborted")

	_, err := f.svc.GetShoppingList(context.Background(), shopper.String(), "2026-02-23")

	assert.ErrorIs(t, err, f.repo.deleteErr)
	assert.Len(t, f.repo.rows, 1)
}

func TestShoppingService_ToggleSelection(t *testing.T) {
	f := newShoppingFixture(t, plannedWeek(t), domain.SlotKey{DayIndex: 1, MealType: domain.MealDinner})
	ctx := context.Background()
	req := domain.ToggleSelectionRequest{WeekStart: "2026-02-23", DayIndex: 5, MealType: domain.MealBreakfast}

	on, err := f.svc.ToggleSelection(ctx, shopper.String(), req)
	require.NoError(t, err)
	assert.Equal(t, []domain.SlotKey{{DayIndex: 5, MealType: domain.MealBreakfast}}, on.Selections)

	off, err := f.svc.ToggleSelection(ctx, shopper.String(), req)
	require.NoError(t, err)
	assert.Empty(t, off.Selections)
	assert.Empty(t, f.repo.rows)
}

func TestShoppingService_ToggleSelection_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.ToggleSelectionRequest
		wantErr error
	}{
		{name: "expired slot", req: domain.ToggleSelectionRequest{WeekStart: "2026-02-23", DayIndex: 2, MealType: domain.MealLunch}, wantErr: domain.ErrSlotLocked},
		{name: "bad day", req: domain.ToggleSelectionRequest{WeekStart: "2026-02-23", DayIndex: 9, MealType: domain.MealLunch}, wantErr: domain.ErrInvalidDayIndex},
		{name: "bad meal", req: domain.ToggleSelectionRequest{WeekStart: "2026-02-23", DayIndex: 5, MealType: "tea"}, wantErr: domain.ErrInvalidMealType},
		{name: "bad week", req: domain.ToggleSelectionRequest{WeekStart: "soon", DayIndex: 5, MealType: domain.MealLunch}, wantErr: domain.ErrInvalidWeekStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newShoppingFixture(t, nil)
			_, err := f.svc.ToggleSelection(context.Background(), shopper.String(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.repo.rows)
		})
	}
}

func TestShoppingService_EmailShoppingList(t *testing.T) {
	f := newShoppingFixture(t, plannedWeek(t), domain.SlotKey{DayIndex: 3, MealType: domain.MealLunch})

	err := f.svc.EmailShoppingList(context.Background(), shopper.String(), domain.EmailShoppingListRequest{
		WeekStart: "2026-02-23",
		Email:     "carer@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "carer@example.com", f.mailer.to)
	assert.Equal(t, "Shopping list for the week of 2026-02-23", f.mailer.subject)
	assert.Contains(t, f.mailer.body, "<td>kangkong</td><td align=\"right\">200</td>")
}

func TestShoppingService_EmailShoppingList_Empty(t *testing.T) {
	f := newShoppingFixture(t, plannedWeek(t))

	err := f.svc.EmailShoppingList(context.Background(), shopper.String(), domain.EmailShoppingListRequest{
		WeekStart: "2026-02-23",
		Email:     "carer@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrEmptyShoppingList)
	assert.Empty(t, f.mailer.to)
}

func TestShoppingService_ExportShoppingList(t *testing.T) {
	f := newShoppingFixture(t, plannedWeek(t), domain.SlotKey{DayIndex: 4, MealType: domain.MealDinner})

	res, err := f.svc.ExportShoppingList(context.Background(), shopper.String(), "2026-02-23")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/shopping-lists/"+shopper.String()+"-2026-02-23.csv", res.URL)
	assert.Equal(t, "text/csv", f.storage.contentType)
	assert.Equal(t, "ingredient,grams\nchili,10\ncooking oil,20\ngarlic,30\nkangkong,400\nsoy sauce,10\n", string(f.storage.body))
}
