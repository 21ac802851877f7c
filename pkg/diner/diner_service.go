package diner

import (
	"context"
	"errors"

	"github.com/davidvct/healthy-meal-planner/domain"
	"github.com/davidvct/healthy-meal-planner/entities"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultDinerName = "Diner"

type (
	DinerService interface {
		GetDiner(ctx context.Context, dinerID string) (domain.DinerResponse, error)
		GetProfile(ctx context.Context, dinerID string) (domain.DinerProfile, error)
		UpsertDiner(ctx context.Context, caretakerID string, req domain.UpsertDinerRequest) (domain.DinerResponse, error)
		Authorize(ctx context.Context, caretakerID string, dinerID string) error
	}

	dinerService struct {
		dinerRepository DinerRepository
	}
)

func NewDinerService(dinerRepository DinerRepository) DinerService {
	return &dinerService{dinerRepository: dinerRepository}
}

func (s *dinerService) find(ctx context.Context, dinerID string) (*entities.Diner, error) {
	if _, err := uuid.Parse(dinerID); err != nil {
		return nil, domain.ErrDinerNotFound
	}
	diner, err := s.dinerRepository.GetDinerByID(ctx, dinerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDinerNotFound
		}
		return nil, err
	}
	return diner, nil
}

func (s *dinerService) GetDiner(ctx context.Context, dinerID string) (domain.DinerResponse, error) {
	diner, err := s.find(ctx, dinerID)
	if err != nil {
		return domain.DinerResponse{}, err
	}
	return diner.ToResponse(), nil
}

func (s *dinerService) GetProfile(ctx context.Context, dinerID string) (domain.DinerProfile, error) {
	res, err := s.GetDiner(ctx, dinerID)
	if err != nil {
		return domain.DinerProfile{}, err
	}
	return res.Profile(), nil
}

// UpsertDiner creates the diner when no id is given or the id is new, and
// otherwise replaces the stored profile. A caretaker cannot take over a diner
// that belongs to someone else.
func (s *dinerService) UpsertDiner(ctx context.Context, caretakerID string, req domain.UpsertDinerRequest) (domain.DinerResponse, error) {
	caretakerUUID, err := uuid.Parse(caretakerID)
	if err != nil {
		return domain.DinerResponse{}, domain.ErrParseUUID
	}

	diet := req.Diet
	if diet == "" {
		diet = domain.DietNone
	}
	if !domain.IsValidDiet(diet) {
		return domain.DinerResponse{}, domain.ErrInvalidDiet
	}

	dinerUUID := uuid.New()
	if req.DinerID != "" {
		dinerUUID, err = uuid.Parse(req.DinerID)
		if err != nil {
			return domain.DinerResponse{}, domain.ErrParseUUID
		}
		existing, err := s.dinerRepository.GetDinerByID(ctx, dinerUUID.String())
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DinerResponse{}, err
		}
		if existing != nil && existing.CaretakerID != caretakerUUID {
			return domain.DinerResponse{}, domain.ErrUnauthorizedDinerAccess
		}
	}

	name := req.Name
	if name == "" {
		name = defaultDinerName
	}
	conditions := req.Conditions
	if conditions == nil {
		conditions = []string{}
	}
	allergies := req.Allergies
	if allergies == nil {
		allergies = []string{}
	}

	diner := &entities.Diner{
		ID:          dinerUUID,
		CaretakerID: caretakerUUID,
		Name:        name,
		Age:         req.Age,
		Sex:         req.Sex,
		WeightKg:    req.WeightKg,
		Conditions:  datatypes.NewJSONType(conditions),
		Diet:        diet,
		Allergies:   datatypes.NewJSONType(allergies),
	}
	if err := s.dinerRepository.UpsertDiner(ctx, diner); err != nil {
		return domain.DinerResponse{}, err
	}
	return diner.ToResponse(), nil
}

func (s *dinerService) Authorize(ctx context.Context, caretakerID string, dinerID string) error {
	diner, err := s.find(ctx, dinerID)
	if err != nil {
		return err
	}
	if diner.CaretakerID.String() != caretakerID {
		return domain.ErrUnauthorizedDinerAccess
	}
	return nil
}
