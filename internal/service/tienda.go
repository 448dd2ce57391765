package service

import (
	"context"
	"unicode/utf8"

	"github.com/deppfellow/cafe-tienda/internal/errs"
	"github.com/deppfellow/cafe-tienda/internal/model"
)

// TiendaService implements CRUD over tiendas.
type TiendaService struct {
	tiendas TiendaRepository
}

func NewTiendaService(tiendas TiendaRepository) *TiendaService {
	return &TiendaService{tiendas: tiendas}
}

// validatePhone counts characters, not bytes.
func validatePhone(phone string) error {
	if utf8.RuneCountInString(phone) != model.PhoneLength {
		return errs.NewBusinessError(errs.KindInvalidPhone, MsgInvalidPhone)
	}
	return nil
}

func (s *TiendaService) Create(ctx context.Context, req *model.CreateTiendaRequest) (*model.Tienda, error) {
	if err := validatePhone(req.Phone); err != nil {
		return nil, err
	}

	return s.tiendas.Create(ctx, &model.Tienda{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
}

// Update merges the supplied fields over the stored tienda.
func (s *TiendaService) Update(ctx context.Context, req *model.UpdateTiendaRequest) (*model.Tienda, error) {
	existing, err := s.tiendas.GetByIDWithCafes(ctx, req.TiendaID)
	if err != nil {
		return nil, lookupErr(err, tiendaNotFound)
	}

	merged := existing.WithoutRelations()
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Address != nil {
		merged.Address = *req.Address
	}
	if req.Phone != nil {
		if err := validatePhone(*req.Phone); err != nil {
			return nil, err
		}
		merged.Phone = *req.Phone
	}

	updated, err := s.tiendas.Update(ctx, &merged)
	if err != nil {
		return nil, lookupErr(err, tiendaNotFound)
	}

	updated.Cafes = existing.Cafes
	return updated, nil
}

func (s *TiendaService) Delete(ctx context.Context, id string) error {
	if err := s.tiendas.Delete(ctx, id); err != nil {
		return lookupErr(err, tiendaNotFound)
	}
	return nil
}

func (s *TiendaService) FindOne(ctx context.Context, id string) (*model.Tienda, error) {
	tienda, err := s.tiendas.GetByIDWithCafes(ctx, id)
	if err != nil {
		return nil, lookupErr(err, tiendaNotFound)
	}
	return tienda, nil
}

func (s *TiendaService) FindAll(ctx context.Context) ([]model.Tienda, error) {
	tiendas, err := s.tiendas.List(ctx)
	if err != nil {
		return nil, err
	}
	if tiendas == nil {
		tiendas = []model.Tienda{}
	}
	return tiendas, nil
}
