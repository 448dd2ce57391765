// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, enforces the cafe and
// tienda rules, and calls repository methods to read and persist the
// entities and their relation.
package service

import (
	"context"
	"errors"

	"github.com/deppfellow/cafe-tienda/internal/errs"
	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/deppfellow/cafe-tienda/internal/repository"
)

// CafeRepository is the persistence the cafe services depend on.
type CafeRepository interface {
	GetByID(ctx context.Context, id string) (*model.Cafe, error)
	GetByIDWithTiendas(ctx context.Context, id string) (*model.Cafe, error)
	List(ctx context.Context) ([]model.Cafe, error)
	Create(ctx context.Context, cafe *model.Cafe) (*model.Cafe, error)
	Update(ctx context.Context, cafe *model.Cafe) (*model.Cafe, error)
	Delete(ctx context.Context, id string) error
	AddTienda(ctx context.Context, cafeID, tiendaID string) error
	RemoveTienda(ctx context.Context, cafeID, tiendaID string) error
	ReplaceTiendas(ctx context.Context, cafeID string, tiendaIDs []string) error
}

// TiendaRepository is the persistence the tienda services depend on.
type TiendaRepository interface {
	GetByID(ctx context.Context, id string) (*model.Tienda, error)
	GetByIDWithCafes(ctx context.Context, id string) (*model.Tienda, error)
	List(ctx context.Context) ([]model.Tienda, error)
	Create(ctx context.Context, tienda *model.Tienda) (*model.Tienda, error)
	Update(ctx context.Context, tienda *model.Tienda) (*model.Tienda, error)
	Delete(ctx context.Context, id string) error
	AddCafe(ctx context.Context, tiendaID, cafeID string) error
	RemoveCafe(ctx context.Context, tiendaID, cafeID string) error
	ReplaceCafes(ctx context.Context, tiendaID string, cafeIDs []string) error
}

// Client-facing messages of the business errors.
const (
	MsgCafeNotFound        = "The cafe with the given id was not found"
	MsgTiendaNotFound      = "The tienda with the given id was not found"
	MsgTiendaNotAssociated = "The tienda with the given id is not associated to the cafe"
	MsgCafeNotAssociated   = "The cafe with the given id is not associated to the tienda"
	MsgNegativePrice       = "The coffee has a negative price"
	MsgInvalidPhone        = "The phone does not have 10 characters"
)

func cafeNotFound() error {
	return errs.NewBusinessError(errs.KindNotFound, MsgCafeNotFound)
}

func tiendaNotFound() error {
	return errs.NewBusinessError(errs.KindNotFound, MsgTiendaNotFound)
}

// lookupErr turns repository.ErrNotFound into notFound and passes
// every other error through untouched.
func lookupErr(err error, notFound func() error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound()
	}
	return err
}
