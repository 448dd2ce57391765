package service

import (
	"context"

	"github.com/deppfellow/cafe-tienda/internal/errs"
	"github.com/deppfellow/cafe-tienda/internal/model"
)

// CafeTiendaService manages the relation from the cafe side.
type CafeTiendaService struct {
	cafes    CafeRepository
	tiendas  TiendaRepository
	recorder changeRecorder
}

func NewCafeTiendaService(cafes CafeRepository, tiendas TiendaRepository, publisher AssociationPublisher) *CafeTiendaService {
	return &CafeTiendaService{
		cafes:    cafes,
		tiendas:  tiendas,
		recorder: newChangeRecorder(publisher),
	}
}

// AddTiendaToCafe associates the tienda with the cafe and returns the cafe
// with its full tienda list. Adding an existing pair changes nothing.
func (s *CafeTiendaService) AddTiendaToCafe(ctx context.Context, cafeID, tiendaID string) (*model.Cafe, error) {
	tienda, err := s.tiendas.GetByID(ctx, tiendaID)
	if err != nil {
		return nil, lookupErr(err, tiendaNotFound)
	}

	cafe, err := s.cafes.GetByIDWithTiendas(ctx, cafeID)
	if err != nil {
		return nil, lookupErr(err, cafeNotFound)
	}

	if cafe.HasTienda(tiendaID) {
		return cafe, nil
	}

	if err := s.cafes.AddTienda(ctx, cafeID, tiendaID); err != nil {
		return nil, err
	}
	cafe.Tiendas = append(cafe.Tiendas, tienda.WithoutRelations())

	s.recorder.record(ctx, model.AssociationAdded, model.EntityCafe, cafeID, model.EntityTienda, []string{tiendaID})
	return cafe, nil
}

// FindTiendaByCafeIDTiendaID returns the tienda when it is associated with the cafe.
func (s *CafeTiendaService) FindTiendaByCafeIDTiendaID(ctx context.Context, cafeID, tiendaID string) (*model.Tienda, error) {
	if _, err := s.tiendas.GetByID(ctx, tiendaID); err != nil {
		return nil, lookupErr(err, tiendaNotFound)
	}

	cafe, err := s.cafes.GetByIDWithTiendas(ctx, cafeID)
	if err != nil {
		return nil, lookupErr(err, cafeNotFound)
	}

	tienda := cafe.FindTienda(tiendaID)
	if tienda == nil {
		return nil, errs.NewBusinessError(errs.KindPreconditionFailed, MsgTiendaNotAssociated)
	}
	return tienda, nil
}

func (s *CafeTiendaService) FindTiendasByCafeID(ctx context.Context, cafeID string) ([]model.Tienda, error) {
	cafe, err := s.cafes.GetByIDWithTiendas(ctx, cafeID)
	if err != nil {
		return nil, lookupErr(err, cafeNotFound)
	}

	if cafe.Tiendas == nil {
		return []model.Tienda{}, nil
	}
	return cafe.Tiendas, nil
}

// AssociateTiendasToCafe replaces the cafe's whole tienda list. Every id is
// resolved before the relation is touched, so an unknown id leaves it as is.
func (s *CafeTiendaService) AssociateTiendasToCafe(ctx context.Context, cafeID string, tiendaIDs []string) (*model.Cafe, error) {
	cafe, err := s.cafes.GetByID(ctx, cafeID)
	if err != nil {
		return nil, lookupErr(err, cafeNotFound)
	}

	ids := uniqueIDs(tiendaIDs)
	tiendas := make([]model.Tienda, 0, len(ids))
	for _, id := range ids {
		tienda, err := s.tiendas.GetByID(ctx, id)
		if err != nil {
			return nil, lookupErr(err, tiendaNotFound)
		}
		tiendas = append(tiendas, tienda.WithoutRelations())
	}

	if err := s.cafes.ReplaceTiendas(ctx, cafeID, ids); err != nil {
		return nil, err
	}
	cafe.Tiendas = tiendas

	s.recorder.record(ctx, model.AssociationReplaced, model.EntityCafe, cafeID, model.EntityTienda, ids)
	return cafe, nil
}

// DeleteTiendaFromCafe removes the association; the tienda itself is kept.
func (s *CafeTiendaService) DeleteTiendaFromCafe(ctx context.Context, cafeID, tiendaID string) error {
	if _, err := s.tiendas.GetByID(ctx, tiendaID); err != nil {
		return lookupErr(err, tiendaNotFound)
	}

	cafe, err := s.cafes.GetByIDWithTiendas(ctx, cafeID)
	if err != nil {
		return lookupErr(err, cafeNotFound)
	}

	if !cafe.HasTienda(tiendaID) {
		return errs.NewBusinessError(errs.KindPreconditionFailed, MsgTiendaNotAssociated)
	}

	if err := s.cafes.RemoveTienda(ctx, cafeID, tiendaID); err != nil {
		return err
	}

	s.recorder.record(ctx, model.AssociationRemoved, model.EntityCafe, cafeID, model.EntityTienda, []string{tiendaID})
	return nil
}
