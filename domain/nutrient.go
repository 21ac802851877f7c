package domain

import "math"

const (
	NutrientCalories    = "calories"
	NutrientProtein     = "protein"
	NutrientCarbs       = "carbs"
	NutrientFat         = "fat"
	NutrientFiber       = "fiber"
	NutrientSodium      = "sodium"
	NutrientCholesterol = "cholesterol"
	NutrientSugar       = "sugar"
)

// NutrientKeys lists the nutrients in their canonical order.
var NutrientKeys = []string{
	NutrientCalories,
	NutrientProtein,
	NutrientCarbs,
	NutrientFat,
	NutrientFiber,
	NutrientSodium,
	NutrientCholesterol,
	NutrientSugar,
}

// NutrientVector holds calories (kcal), protein/carbs/fat/fiber/sugar (g)
// and sodium/cholesterol (mg).
type NutrientVector struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sodium      float64 `json:"sodium"`
	Cholesterol float64 `json:"cholesterol"`
	Sugar       float64 `json:"sugar"`
}

// RDA is the recommended daily allowance used for headroom and progress.
var RDA = NutrientVector{
	Calories:    2000,
	Protein:     50,
	Carbs:       275,
	Fat:         65,
	Fiber:       28,
	Sodium:      2300,
	Cholesterol: 300,
	Sugar:       50,
}

// WeekRDA returns the allowance for a whole week.
func WeekRDA() NutrientVector {
	return RDA.Scale(DaysPerWeek)
}

// Get returns the value of the named nutrient, or 0 for an unknown name.
func (n NutrientVector) Get(key string) float64 {
	switch key {
	case NutrientCalories:
		return n.Calories
	case NutrientProtein:
		return n.Protein
	case NutrientCarbs:
		return n.Carbs
	case NutrientFat:
		return n.Fat
	case NutrientFiber:
		return n.Fiber
	case NutrientSodium:
		return n.Sodium
	case NutrientCholesterol:
		return n.Cholesterol
	case NutrientSugar:
		return n.Sugar
	default:
		return 0
	}
}

// With returns a copy with the named nutrient set to v.
func (n NutrientVector) With(key string, v float64) NutrientVector {
	switch key {
	case NutrientCalories:
		n.Calories = v
	case NutrientProtein:
		n.Protein = v
	case NutrientCarbs:
		n.Carbs = v
	case NutrientFat:
		n.Fat = v
	case NutrientFiber:
		n.Fiber = v
	case NutrientSodium:
		n.Sodium = v
	case NutrientCholesterol:
		n.Cholesterol = v
	case NutrientSugar:
		n.Sugar = v
	}
	return n
}

func (n NutrientVector) Add(o NutrientVector) NutrientVector {
	return NutrientVector{
		Calories:    n.Calories + o.Calories,
		Protein:     n.Protein + o.Protein,
		Carbs:       n.Carbs + o.Carbs,
		Fat:         n.Fat + o.Fat,
		Fiber:       n.Fiber + o.Fiber,
		Sodium:      n.Sodium + o.Sodium,
		Cholesterol: n.Cholesterol + o.Cholesterol,
		Sugar:       n.Sugar + o.Sugar,
	}
}

func (n NutrientVector) Scale(f float64) NutrientVector {
	return NutrientVector{
		Calories:    n.Calories * f,
		Protein:     n.Protein * f,
		Carbs:       n.Carbs * f,
		Fat:         n.Fat * f,
		Fiber:       n.Fiber * f,
		Sodium:      n.Sodium * f,
		Cholesterol: n.Cholesterol * f,
		Sugar:       n.Sugar * f,
	}
}

// Round rounds every field to one decimal place.
func (n NutrientVector) Round() NutrientVector {
	return NutrientVector{
		Calories:    Round1(n.Calories),
		Protein:     Round1(n.Protein),
		Carbs:       Round1(n.Carbs),
		Fat:         Round1(n.Fat),
		Fiber:       Round1(n.Fiber),
		Sodium:      Round1(n.Sodium),
		Cholesterol: Round1(n.Cholesterol),
		Sugar:       Round1(n.Sugar),
	}
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// IngredientTable maps an ingredient name to its nutrients per 100 g.
type IngredientTable map[string]NutrientVector

func (t IngredientTable) Lookup(name string) (NutrientVector, bool) {
	n, ok := t[name]
	return n, ok
}
