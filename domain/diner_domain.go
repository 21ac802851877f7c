package domain

import (
	"errors"
)

const (
	DietNone        = "none"
	DietVegetarian  = "vegetarian"
	DietVegan       = "vegan"
	DietPescatarian = "pescatarian"
	DietHalal       = "halal"
)

var Diets = []string{DietNone, DietVegetarian, DietVegan, DietPescatarian, DietHalal}

var (
	MessageSuccessGetDiner    = "success get diner profile"
	MessageSuccessUpsertDiner = "diner profile saved successfully"

	MessageFailedGetDiner    = "failed to get diner profile"
	MessageFailedUpsertDiner = "failed to save diner profile"

	ErrDinerNotFound           = errors.New("diner not found")
	ErrUnauthorizedDinerAccess = errors.New("unauthorized access to diner")
	ErrInvalidDiet             = errors.New("invalid diet")
)

type (
	// DinerProfile is what recommendation needs to know about a diner.
	DinerProfile struct {
		Conditions []string `json:"conditions"`
		Diet       string   `json:"diet"`
		Allergies  []string `json:"allergies"`
	}

	UpsertDinerRequest struct {
		DinerID    string   `json:"userId" validate:"omitempty,uuid"`
		Name       string   `json:"name" validate:"omitempty,max=100"`
		Age        *int     `json:"age" validate:"omitempty,min=0,max=150"`
		Sex        *string  `json:"sex" validate:"omitempty,oneof=male female other"`
		WeightKg   *float64 `json:"weightKg" validate:"omitempty,gt=0"`
		Conditions []string `json:"conditions" validate:"omitempty,dive,required"`
		Diet       string   `json:"diet" validate:"omitempty,oneof=none vegetarian vegan pescatarian halal"`
		Allergies  []string `json:"allergies" validate:"omitempty,dive,required"`
	}

	DinerResponse struct {
		DinerID     string   `json:"userId"`
		Name        string   `json:"name"`
		Age         *int     `json:"age"`
		Sex         *string  `json:"sex"`
		WeightKg    *float64 `json:"weightKg"`
		CaretakerID string   `json:"caretakerId,omitempty"`
		Conditions  []string `json:"conditions"`
		Diet        string   `json:"diet"`
		Allergies   []string `json:"allergies"`
	}
)

func IsValidDiet(diet string) bool {
	for _, d := range Diets {
		if d == diet {
			return true
		}
	}
	return false
}

func (r DinerResponse) Profile() DinerProfile {
	return DinerProfile{
		Conditions: r.Conditions,
		Diet:       r.Diet,
		Allergies:  r.Allergies,
	}
}
