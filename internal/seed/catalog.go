package seed

import (
	"github.com/davidvct/healthy-meal-planner/domain"
)

// Ingredients returns nutrients per 100 g for every ingredient the catalog uses.
func Ingredients() domain.IngredientTable {
	return domain.IngredientTable{
		"chicken breast": {Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sodium: 74, Cholesterol: 85, Sugar: 0},
		"rice":           {Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Sodium: 1, Cholesterol: 0, Sugar: 0},
		"cucumber":       {Calories: 15, Protein: 0.7, Carbs: 3.6, Fat: 0.1, Fiber: 0.5, Sodium: 2, Cholesterol: 0, Sugar: 1.7},
		"ginger":         {Calories: 80, Protein: 1.8, Carbs: 18, Fat: 0.8, Fiber: 2, Sodium: 13, Cholesterol: 0, Sugar: 1.7},
		"kangkong":       {Calories: 19, Protein: 2.6, Carbs: 3.1, Fat: 0.2, Fiber: 2.1, Sodium: 113, Cholesterol: 0, Sugar: 0},
		"garlic":         {Calories: 149, Protein: 6.4, Carbs: 33, Fat: 0.5, Fiber: 2.1, Sodium: 17, Cholesterol: 0, Sugar: 1},
		"tofu":           {Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8, Fiber: 0.3, Sodium: 7, Cholesterol: 0, Sugar: 0.6},
		"egg":            {Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Fiber: 0, Sodium: 124, Cholesterol: 373, Sugar: 1.1},
		"coconut milk":   {Calories: 230, Protein: 2.3, Carbs: 6, Fat: 24, Fiber: 0, Sodium: 15, Cholesterol: 0, Sugar: 3.3},
		"peanut":         {Calories: 567, Protein: 26, Carbs: 16, Fat: 49, Fiber: 8.5, Sodium: 18, Cholesterol: 0, Sugar: 4},
		"anchovies":      {Calories: 210, Protein: 29, Carbs: 0, Fat: 10, Fiber: 0, Sodium: 3668, Cholesterol: 60, Sugar: 0},
		"fish":           {Calories: 100, Protein: 20, Carbs: 0, Fat: 1.7, Fiber: 0, Sodium: 75, Cholesterol: 47, Sugar: 0},
		"soy sauce":      {Calories: 53, Protein: 8, Carbs: 5, Fat: 0, Fiber: 0.8, Sodium: 5637, Cholesterol: 0, Sugar: 0.4},
		"yellow noodles": {Calories: 138, Protein: 4.5, Carbs: 25, Fat: 2, Fiber: 1, Sodium: 234, Cholesterol: 0, Sugar: 0},
		"cabbage":        {Calories: 25, Protein: 1.3, Carbs: 5.8, Fat: 0.1, Fiber: 2.5, Sodium: 18, Cholesterol: 0, Sugar: 3.2},
		"onion":          {Calories: 40, Protein: 1.1, Carbs: 9.3, Fat: 0.1, Fiber: 1.7, Sodium: 4, Cholesterol: 0, Sugar: 4.2},
		"spring onion":   {Calories: 32, Protein: 1.8, Carbs: 7.3, Fat: 0.2, Fiber: 2.6, Sodium: 16, Cholesterol: 0, Sugar: 2.3},
		"sesame oil":     {Calories: 884, Protein: 0, Carbs: 0, Fat: 100, Fiber: 0, Sodium: 0, Cholesterol: 0, Sugar: 0},
		"cooking oil":    {Calories: 884, Protein: 0, Carbs: 0, Fat: 100, Fiber: 0, Sodium: 0, Cholesterol: 0, Sugar: 0},
		"kaya":           {Calories: 300, Protein: 3, Carbs: 50, Fat: 10, Fiber: 0, Sodium: 50, Cholesterol: 30, Sugar: 45},
		"bread":          {Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2, Fiber: 2.7, Sodium: 491, Cholesterol: 0, Sugar: 5},
		"butter":         {Calories: 717, Protein: 0.9, Carbs: 0, Fat: 81, Fiber: 0, Sodium: 11, Cholesterol: 215, Sugar: 0},
		"carrot":         {Calories: 41, Protein: 0.9, Carbs: 10, Fat: 0.2, Fiber: 2.8, Sodium: 69, Cholesterol: 0, Sugar: 4.7},
		"chili":          {Calories: 40, Protein: 2, Carbs: 8.8, Fat: 0.4, Fiber: 1.5, Sodium: 7, Cholesterol: 0, Sugar: 5.3},
		"shrimp":         {Calories: 99, Protein: 24, Carbs: 0.2, Fat: 0.3, Fiber: 0, Sodium: 111, Cholesterol: 189, Sugar: 0},
		"bean sprouts":   {Calories: 31, Protein: 3.1, Carbs: 5.9, Fat: 0.2, Fiber: 1.8, Sodium: 6, Cholesterol: 0, Sugar: 4.1},
		"barley":         {Calories: 354, Protein: 12, Carbs: 73, Fat: 2.3, Fiber: 17, Sodium: 12, Cholesterol: 0, Sugar: 0.8},
		"longan":         {Calories: 60, Protein: 1.3, Carbs: 15, Fat: 0.1, Fiber: 1.1, Sodium: 0, Cholesterol: 0, Sugar: 0},
		"white fungus":   {Calories: 26, Protein: 1.6, Carbs: 5, Fat: 0.2, Fiber: 2.6, Sodium: 6, Cholesterol: 0, Sugar: 0},
		"ginkgo nut":     {Calories: 182, Protein: 4.3, Carbs: 38, Fat: 1.7, Fiber: 0, Sodium: 7, Cholesterol: 0, Sugar: 0},
		"rock sugar":     {Calories: 400, Protein: 0, Carbs: 100, Fat: 0, Fiber: 0, Sodium: 0, Cholesterol: 0, Sugar: 100},
		"pandan leaf":    {Calories: 35, Protein: 1, Carbs: 8, Fat: 0.1, Fiber: 3, Sodium: 5, Cholesterol: 0, Sugar: 0},
	}
}

// Dishes returns the catalog in display order.
func Dishes() []domain.Dish {
	return []domain.Dish{
		{
			ID:           "d1",
			Name:         "Hainanese Chicken Rice",
			MealTypes:    []string{domain.MealLunch, domain.MealDinner},
			Tags:         []string{"singaporean", "classic"},
			Ingredients:  map[string]float64{"chicken breast": 200, "rice": 250, "cucumber": 50, "ginger": 15, "garlic": 10, "spring onion": 10, "sesame oil": 5, "soy sauce": 10},
			RecipeID:     "r1",
			BaseServings: 1,
		},
		{
			ID:           "d2",
			Name:         "Nasi Lemak",
			MealTypes:    []string{domain.MealBreakfast, domain.MealLunch},
			Tags:         []string{"singaporean", "malay"},
			Ingredients:  map[string]float64{"rice": 200, "coconut milk": 50, "egg": 50, "anchovies": 20, "peanut": 15, "cucumber": 30, "chili": 20},
			RecipeID:     "r2",
			BaseServings: 1,
		},
		{
			ID:           "d3",
			Name:         "Chicken Congee",
			MealTypes:    []string{domain.MealBreakfast},
			Tags:         []string{"chinese", "comfort"},
			Ingredients:  map[string]float64{"chicken breast": 80, "rice": 100, "ginger": 10, "spring onion": 10, "sesame oil": 3, "soy sauce": 5},
			RecipeID:     "r3",
			BaseServings: 1,
		},
		{
			ID:           "d4",
			Name:         "Stir Fry Kangkong",
			MealTypes:    []string{domain.MealLunch, domain.MealDinner},
			Tags:         []string{"singaporean", "vegetable", "vegetarian"},
			Ingredients:  map[string]float64{"kangkong": 200, "garlic": 15, "cooking oil": 10, "chili": 5, "soy sauce": 5},
			RecipeID:     "r4",
			BaseServings: 1,
		},
		{
			ID:           "d5",
			Name:         "Steamed Fish with Ginger & Soy",
			MealTypes:    []string{domain.MealLunch, domain.MealDinner},
			Tags:         []string{"chinese", "healthy", "steamed"},
			Ingredients:  map[string]float64{"fish": 200, "ginger": 20, "soy sauce": 15, "spring onion": 15, "sesame oil": 5},
			RecipeID:     "r5",
			BaseServings: 1,
		},
		{
			ID:           "d6",
			Name:         "Egg Fried Rice",
			MealTypes:    []string{domain.MealLunch, domain.MealDinner},
			Tags:         []string{"chinese", "quick"},
			Ingredients:  map[string]float64{"rice": 250, "egg": 100, "spring onion": 15, "cooking oil": 15, "soy sauce": 10, "carrot": 30},
			RecipeID:     "r6",
			BaseServings: 1,
		},
		{
			ID:           "d7",
			Name:         "Tofu Vegetable Soup",
			MealTypes:    []string{domain.MealLunch, domain.MealDinner},
			Tags:         []string{"chinese", "healthy", "vegetarian"},
			Ingredients:  map[string]float64{"tofu": 150, "cabbage": 100, "carrot": 50, "spring onion": 10, "ginger": 5},
			RecipeID:     "r7",
			BaseServings: 1,
		},
		{
			ID:           "d8",
			Name:         "Mee Goreng",
			MealTypes:    []string{domain.MealLunch, domain.MealDinner},
			Tags:         []string{"singaporean", "malay", "spicy"},
			Ingredients:  map[string]float64{"yellow noodles": 200, "egg": 50, "cabbage": 50, "bean sprouts": 50, "shrimp": 50, "soy sauce": 15, "chili": 10, "cooking oil": 15},
			RecipeID:     "r8",
			BaseServings: 1,
		},
		{
			ID:           "d9",
			Name:         "Kaya Toast & Soft-Boiled Eggs",
			MealTypes:    []string{domain.MealBreakfast, domain.MealSnack},
			Tags:         []string{"singaporean", "classic", "quick"},
			Ingredients:  map[string]float64{"bread": 60, "kaya": 20, "butter": 10, "egg": 100},
			RecipeID:     "r9",
			BaseServings: 1,
		},
		{
			ID:           "d10",
			Name:         "Cheng Tng",
			MealTypes:    []string{domain.MealSnack},
			Tags:         []string{"singaporean", "chinese", "dessert"},
			Ingredients:  map[string]float64{"barley": 30, "longan": 30, "white fungus": 10, "ginkgo nut": 20, "rock sugar": 15, "pandan leaf": 2},
			RecipeID:     "r10",
			BaseServings: 1,
		},
	}
}

func Recipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID:              "r1",
			Name:            "Hainanese Chicken Rice",
			PrepTimeMinutes: 15,
			CookTimeMinutes: 45,
			Steps: []string{
				"Rub chicken breast with salt and ginger. Bring a pot of water to boil.",
				"Poach chicken in gently simmering water for 20 minutes. Remove and plunge into ice water.",
				"Use the poaching liquid to cook rice with garlic and a pandan leaf if available.",
				"Slice cucumber. Chop spring onion finely.",
				"Slice chicken, arrange over rice with cucumber. Drizzle with sesame oil and soy sauce. Garnish with spring onion.",
			},
		},
		{
			ID:              "r2",
			Name:            "Nasi Lemak",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 30,
			Steps: []string{
				"Cook rice with coconut milk and a pinch of salt until fluffy.",
				"Hard-boil egg, peel and halve.",
				"Deep fry anchovies until crispy. Toast peanuts in a dry pan.",
				"Prepare sambal chili by blending and frying chili paste.",
				"Arrange coconut rice on plate with egg, anchovies, peanuts, cucumber slices, and sambal on the side.",
			},
		},
		{
			ID:              "r3",
			Name:            "Chicken Congee",
			PrepTimeMinutes: 5,
			CookTimeMinutes: 60,
			Steps: []string{
				"Rinse rice and add to a large pot with 8 cups of water.",
				"Bring to a boil, then reduce heat to low. Simmer for 40 minutes, stirring occasionally.",
				"Add chicken breast pieces and ginger slices. Cook another 15 minutes until chicken is done.",
				"Shred the chicken. Season congee with sesame oil and soy sauce.",
				"Serve topped with spring onion.",
			},
		},
		{
			ID:              "r4",
			Name:            "Stir Fry Kangkong",
			PrepTimeMinutes: 5,
			CookTimeMinutes: 5,
			Steps: []string{
				"Wash kangkong thoroughly. Cut into 3-inch lengths.",
				"Heat oil in a wok over high heat. Add minced garlic and chili, stir 15 seconds.",
				"Add kangkong and toss rapidly for 2-3 minutes until just wilted.",
				"Season with soy sauce. Serve immediately.",
			},
		},
		{
			ID:              "r5",
			Name:            "Steamed Fish with Ginger & Soy",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 12,
			Steps: []string{
				"Place fish fillet on a heatproof plate. Top with julienned ginger.",
				"Steam over high heat for 10-12 minutes until fish is just cooked through.",
				"Discard any liquid. Top with spring onion shreds.",
				"Heat sesame oil until smoking and pour over fish. Drizzle soy sauce and serve.",
			},
		},
		{
			ID:              "r6",
			Name:            "Egg Fried Rice",
			PrepTimeMinutes: 5,
			CookTimeMinutes: 10,
			Steps: []string{
				"Use day-old cold rice for best results. Dice carrot finely.",
				"Beat eggs in a bowl. Heat oil in a wok over high heat.",
				"Scramble eggs until just set, break into pieces.",
				"Add carrot, stir fry 1 minute. Add rice and toss vigorously.",
				"Season with soy sauce, add spring onion, toss and serve.",
			},
		},
		{
			ID:              "r7",
			Name:            "Tofu Vegetable Soup",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 15,
			Steps: []string{
				"Cut tofu into cubes. Shred cabbage. Slice carrot thinly.",
				"Bring 4 cups of water to a boil with ginger slices.",
				"Add carrot and cook 3 minutes. Add cabbage and tofu.",
				"Simmer for 8 minutes. Season with a pinch of salt.",
				"Garnish with spring onion and serve hot.",
			},
		},
		{
			ID:              "r8",
			Name:            "Mee Goreng",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 10,
			Steps: []string{
				"Blanch yellow noodles briefly in hot water. Drain well.",
				"Heat oil in a wok. Stir fry shrimp until pink, set aside.",
				"Scramble egg in the same wok. Add cabbage and bean sprouts, toss 1 minute.",
				"Add noodles, soy sauce, and chili paste. Toss everything over high heat.",
				"Return shrimp to wok, toss to combine. Serve hot.",
			},
		},
		{
			ID:              "r9",
			Name:            "Kaya Toast & Soft-Boiled Eggs",
			PrepTimeMinutes: 3,
			CookTimeMinutes: 5,
			Steps: []string{
				"Toast bread slices until golden and crispy.",
				"Spread kaya generously on one side, butter on the other. Sandwich together and cut diagonally.",
				"Bring water to a boil, turn off heat. Gently lower eggs in and cover for 6 minutes.",
				"Crack eggs into a small dish. Season with soy sauce and white pepper.",
				"Serve kaya toast alongside the soft-boiled eggs.",
			},
		},
		{
			ID:              "r10",
			Name:            "Cheng Tng",
			PrepTimeMinutes: 10,
			CookTimeMinutes: 40,
			Steps: []string{
				"Soak barley and white fungus in water for 30 minutes. Drain.",
				"Boil 6 cups of water with pandan leaf (tied in a knot).",
				"Add barley and ginkgo nuts, simmer 20 minutes.",
				"Add white fungus and longan, simmer another 10 minutes.",
				"Add rock sugar to taste. Remove pandan leaf. Serve warm or chilled.",
			},
		},
	}
}
