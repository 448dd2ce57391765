package service

import (
	"context"

	"github.com/deppfellow/cafe-tienda/internal/errs"
	"github.com/deppfellow/cafe-tienda/internal/model"
)

// TiendaCafeService manages the relation from the tienda side.
type TiendaCafeService struct {
	tiendas  TiendaRepository
	cafes    CafeRepository
	recorder changeRecorder
}

func NewTiendaCafeService(tiendas TiendaRepository, cafes CafeRepository, publisher AssociationPublisher) *TiendaCafeService {
	return &TiendaCafeService{
		tiendas:  tiendas,
		cafes:    cafes,
		recorder: newChangeRecorder(publisher),
	}
}

// AddCafeToTienda associates the cafe with the tienda and returns the tienda
// with its full cafe list. Adding an existing pair changes nothing.
func (s *TiendaCafeService) AddCafeToTienda(ctx context.Context, tiendaID, cafeID string) (*model.Tienda, error) {
	cafe, err := s.cafes.GetByID(ctx, cafeID)
	if err != nil {
		return nil, lookupErr(err, cafeNotFound)
	}

	tienda, err := s.tiendas.GetByIDWithCafes(ctx, tiendaID)
	if err != nil {
		return nil, lookupErr(err, tiendaNotFound)
	}

	if tienda.HasCafe(cafeID) {
		return tienda, nil
	}

	if err := s.tiendas.AddCafe(ctx, tiendaID, cafeID); err != nil {
		return nil, err
	}
	tienda.Cafes = append(tienda.Cafes, cafe.WithoutRelations())

	s.recorder.record(ctx, model.AssociationAdded, model.EntityTienda, tiendaID, model.EntityCafe, []string{cafeID})
	return tienda, nil
}

func (s *TiendaCafeService) FindCafeByTiendaIDCafeID(ctx context.Context, tiendaID, cafeID string) (*model.Cafe, error) {
	if _, err := s.cafes.GetByID(ctx, cafeID); err != nil {
		return nil, lookupErr(err, cafeNotFound)
	}

	tienda, err := s.tiendas.GetByIDWithCafes(ctx, tiendaID)
	if err != nil {
		return nil, lookupErr(err, tiendaNotFound)
	}

	cafe := tienda.FindCafe(cafeID)
	if cafe == nil {
		return nil, errs.NewBusinessError(errs.KindPreconditionFailed, MsgCafeNotAssociated)
	}
	return cafe, nil
}

func (s *TiendaCafeService) FindCafesByTiendaID(ctx context.Context, tiendaID string) ([]model.Cafe, error) {
	tienda, err := s.tiendas.GetByIDWithCafes(ctx, tiendaID)
	if err != nil {
		return nil, lookupErr(err, tiendaNotFound)
	}

	if tienda.Cafes == nil {
		return []model.Cafe{}, nil
	}
	return tienda.Cafes, nil
}

// AssociateCafesToTienda replaces the tienda's whole cafe list.
func (s *TiendaCafeService) AssociateCafesToTienda(ctx context.Context, tiendaID string, cafeIDs []string) (*model.Tienda, error) {
	tienda, err := s.tiendas.GetByID(ctx, tiendaID)
	if err != nil {
		return nil, lookupErr(err, tiendaNotFound)
	}

	ids := uniqueIDs(cafeIDs)
	cafes := make([]model.Cafe, 0, len(ids))
	for _, id := range ids {
		cafe, err := s.cafes.GetByID(ctx, id)
		if err != nil {
			return nil, lookupErr(err, cafeNotFound)
		}
		cafes = append(cafes, cafe.WithoutRelations())
	}

	if err := s.tiendas.ReplaceCafes(ctx, tiendaID, ids); err != nil {
		return nil, err
	}
	tienda.Cafes = cafes

	s.recorder.record(ctx, model.AssociationReplaced, model.EntityTienda, tiendaID, model.EntityCafe, ids)
	return tienda, nil
}

func (s *TiendaCafeService) DeleteCafeFromTienda(ctx context.Context, tiendaID, cafeID string) error {
	if _, err := s.cafes.GetByID(ctx, cafeID); err != nil {
		return lookupErr(err, cafeNotFound)
	}

	tienda, err := s.tiendas.GetByIDWithCafes(ctx, tiendaID)
	if err != nil {
		return lookupErr(err, tiendaNotFound)
	}

	if !tienda.HasCafe(cafeID) {
		return errs.NewBusinessError(errs.KindPreconditionFailed, MsgCafeNotAssociated)
	}

	if err := s.tiendas.RemoveCafe(ctx, tiendaID, cafeID); err != nil {
		return err
	}

	s.recorder.record(ctx, model.AssociationRemoved, model.EntityTienda, tiendaID, model.EntityCafe, []string{cafeID})
	return nil
}
