package entities

import (
	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Diner struct {
	ID          uuid.UUID                    `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CaretakerID uuid.UUID                    `gorm:"type:uuid;index" json:"caretaker_id"`
	Name        string                       `json:"name"`
	Age         *int                         `json:"age"`
	Sex         *string                      `json:"sex"`
	WeightKg    *float64                     `json:"weight_kg"`
	Conditions  datatypes.JSONType[[]string] `gorm:"type:jsonb" json:"conditions"`
	Diet        string                       `gorm:"default:none" json:"diet"`
	Allergies   datatypes.JSONType[[]string] `gorm:"type:jsonb" json:"allergies"`

	Timestamp
}

func (d Diner) ToResponse() domain.DinerResponse {
	conditions := d.Conditions.Data()
	if conditions == nil {
		conditions = []string{}
	}
	allergies := d.Allergies.Data()
	if allergies == nil {
		allergies = []string{}
	}
	diet := d.Diet
	if diet == "" {
		diet = domain.DietNone
	}
	return domain.DinerResponse{
		DinerID:     d.ID.String(),
		Name:        d.Name,
		Age:         d.Age,
		Sex:         d.Sex,
		WeightKg:    d.WeightKg,
		CaretakerID: d.CaretakerID.String(),
		Conditions:  conditions,
		Diet:        diet,
		Allergies:   allergies,
	}
}
