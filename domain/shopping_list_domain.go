package domain

import (
	"errors"
)

var (
	MessageSuccessGetShoppingList    = "success get shopping list"
	MessageSuccessToggleSelection    = "shopping selection updated"
	MessageSuccessEmailShoppingList  = "shopping list sent"
	MessageSuccessExportShoppingList = "shopping list exported"

	MessageFailedGetShoppingList    = "failed to get shopping list"
	MessageFailedToggleSelection    = "failed to update shopping selection"
	MessageFailedEmailShoppingList  = "failed to send shopping list"
	MessageFailedExportShoppingList = "failed to export shopping list"

	ErrEmptyShoppingList = errors.New("shopping list is empty")
)

type (
	ShoppingItem struct {
		Name  string `json:"name"`
		Grams int    `json:"grams"`
	}

	ShoppingListResponse struct {
		WeekStart   string         `json:"weekStart"`
		TotalDishes int            `json:"totalDishes"`
		Items       []ShoppingItem `json:"items"`
		Selections  []SlotKey      `json:"selections"`
	}

	ToggleSelectionRequest struct {
		WeekStart string `json:"weekStart" validate:"required,datetime=2006-01-02"`
		DayIndex  int    `json:"dayIndex" validate:"min=0,max=6"`
		MealType  string `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
	}

	SelectionsResponse struct {
		Selections []SlotKey `json:"selections"`
	}

	EmailShoppingListRequest struct {
		WeekStart string `json:"weekStart" validate:"required,datetime=2006-01-02"`
		Email     string `json:"email" validate:"required,email"`
	}

	ExportShoppingListResponse struct {
		URL string `json:"url"`
	}
)
