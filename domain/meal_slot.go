package domain

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"

	DaysPerWeek = 7
)

var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// MealCutoffHours is the local hour at which a meal slot locks on its own
// day. Snacks have no cutoff and only lock once the day has passed.
var MealCutoffHours = map[string]int{
	MealBreakfast: 10,
	MealLunch:     14,
	MealDinner:    20,
}

func IsValidMealType(mealType string) bool {
	for _, mt := range MealTypes {
		if mt == mealType {
			return true
		}
	}
	return false
}

func IsValidDayIndex(dayIndex int) bool {
	return dayIndex >= 0 && dayIndex < DaysPerWeek
}

// SlotKey addresses one meal slot within a week.
type SlotKey struct {
	DayIndex int    `json:"dayIndex"`
	MealType string `json:"mealType"`
}

type SlotSet map[SlotKey]struct{}

func NewSlotSet(keys ...SlotKey) SlotSet {
	s := make(SlotSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s SlotSet) Has(k SlotKey) bool {
	_, ok := s[k]
	return ok
}
