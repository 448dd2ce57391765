package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/deppfellow/cafe-tienda/internal/errs"
	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/deppfellow/cafe-tienda/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.AssociationEvent
	err    error
}

func (p *recordingPublisher) PublishAssociationChange(_ context.Context, event model.AssociationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

type fixture struct {
	store     *memory.Store
	publisher *recordingPublisher
	services  *Services
}

func newFixture() *fixture {
	store := memory.NewStore()
	publisher := &recordingPublisher{}
	return &fixture{
		store:     store,
		publisher: publisher,
		services:  New(store.Cafes(), store.Tiendas(), publisher),
	}
}

func (f *fixture) cafe(t require.TestingT, name string) *model.Cafe {
	price := decimal.RequireFromString("4.50")
	cafe, err := f.services.Cafe.Create(context.Background(), &model.CreateCafeRequest{
		Name:        name,
		Description: name + " description",
		Price:       &price,
	})
	require.NoError(t, err)
	return cafe
}

func (f *fixture) tienda(t require.TestingT, name string) *model.Tienda {
	tienda, err := f.services.Tienda.Create(context.Background(), &model.CreateTiendaRequest{
		Name:    name,
		Address: name + " street",
		Phone:   "3001234567",
	})
	require.NoError(t, err)
	return tienda
}

func requireBusiness(t *testing.T, err error, kind errs.Kind, message string) {
	t.Helper()

	var be *errs.BusinessError
	require.True(t, errors.As(err, &be), "expected BusinessError, got %v", err)
	assert.Equal(t, kind, be.Kind)
	assert.Equal(t, message, be.Message)
}

func ptr[T any](v T) *T { return &v }
