package service

import (
	"context"

	"github.com/deppfellow/cafe-tienda/internal/errs"
	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/shopspring/decimal"
)

// CafeService implements CRUD over cafes.
type CafeService struct {
	cafes CafeRepository
}

func NewCafeService(cafes CafeRepository) *CafeService {
	return &CafeService{cafes: cafes}
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewBusinessError(errs.KindNegativePrice, MsgNegativePrice)
	}
	return nil
}

// Create persists a new cafe. A negative price is rejected before anything is written.
func (s *CafeService) Create(ctx context.Context, req *model.CreateCafeRequest) (*model.Cafe, error) {
	cafe := &model.Cafe{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Price != nil {
		cafe.Price = *req.Price
	}

	if err := validatePrice(cafe.Price); err != nil {
		return nil, err
	}

	return s.cafes.Create(ctx, cafe)
}

// Update merges the supplied fields over the stored cafe.
func (s *CafeService) Update(ctx context.Context, req *model.UpdateCafeRequest) (*model.Cafe, error) {
	existing, err := s.cafes.GetByIDWithTiendas(ctx, req.CafeID)
	if err != nil {
		return nil, lookupErr(err, cafeNotFound)
	}

	merged := existing.WithoutRelations()
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		merged.Price = *req.Price
	}

	updated, err := s.cafes.Update(ctx, &merged)
	if err != nil {
		return nil, lookupErr(err, cafeNotFound)
	}

	updated.Tiendas = existing.Tiendas
	return updated, nil
}

func (s *CafeService) Delete(ctx context.Context, id string) error {
	if err := s.cafes.Delete(ctx, id); err != nil {
		return lookupErr(err, cafeNotFound)
	}
	return nil
}

// FindOne returns the cafe with its tiendas.
func (s *CafeService) FindOne(ctx context.Context, id string) (*model.Cafe, error) {
	cafe, err := s.cafes.GetByIDWithTiendas(ctx, id)
	if err != nil {
		return nil, lookupErr(err, cafeNotFound)
	}
	return cafe, nil
}

func (s *CafeService) FindAll(ctx context.Context) ([]model.Cafe, error) {
	cafes, err := s.cafes.List(ctx)
	if err != nil {
		return nil, err
	}
	if cafes == nil {
		cafes = []model.Cafe{}
	}
	return cafes, nil
}
