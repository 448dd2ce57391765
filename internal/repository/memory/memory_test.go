package memory

import (
	"context"
	"testing"

	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/deppfellow/cafe-tienda/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store) (*model.Cafe, *model.Tienda, *model.Tienda) {
	t.Helper()
	ctx := context.Background()

	cafe, err := s.Cafes().Create(ctx, &model.Cafe{Name: "Tinto", Description: "Black", Price: decimal.NewFromInt(2)})
	require.NoError(t, err)
	t1, err := s.Tiendas().Create(ctx, &model.Tienda{Name: "Norte", Address: "Calle 1", Phone: "3001234567"})
	require.NoError(t, err)
	t2, err := s.Tiendas().Create(ctx, &model.Tienda{Name: "Sur", Address: "Calle 2", Phone: "3007654321"})
	require.NoError(t, err)
	return cafe, t1, t2
}

func TestCreateAssignsID(t *testing.T) {
	s := NewStore()
	cafe, t1, t2 := seed(t, s)

	assert.NotEmpty(t, cafe.ID)
	assert.NotEqual(t, t1.ID, t2.ID)

	got, err := s.Cafes().GetByID(context.Background(), cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tinto", got.Name)
}

func TestGetMissing(t *testing.T) {
	s := NewStore()

	_, err := s.Cafes().GetByID(context.Background(), "0")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = s.Tiendas().GetByIDWithCafes(context.Background(), "0")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRelationIsSymmetric(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	cafe, t1, t2 := seed(t, s)

	require.NoError(t, s.Cafes().AddTienda(ctx, cafe.ID, t1.ID))
	require.NoError(t, s.Tiendas().AddCafe(ctx, t2.ID, cafe.ID))
	// Adding twice keeps a single row.
	require.NoError(t, s.Cafes().AddTienda(ctx, cafe.ID, t1.ID))

	withTiendas, err := s.Cafes().GetByIDWithTiendas(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{t1.ID, t2.ID}, withTiendas.TiendaIDs())

	withCafes, err := s.Tiendas().GetByIDWithCafes(ctx, t1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{cafe.ID}, withCafes.CafeIDs())

	require.NoError(t, s.Tiendas().RemoveCafe(ctx, t1.ID, cafe.ID))
	withTiendas, err = s.Cafes().GetByIDWithTiendas(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{t2.ID}, withTiendas.TiendaIDs())
}

func TestReplaceKeepsRequestOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	cafe, t1, t2 := seed(t, s)

	require.NoError(t, s.Cafes().ReplaceTiendas(ctx, cafe.ID, []string{t2.ID, t1.ID}))

	got, err := s.Cafes().GetByIDWithTiendas(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{t2.ID, t1.ID}, got.TiendaIDs())

	require.NoError(t, s.Cafes().ReplaceTiendas(ctx, cafe.ID, nil))
	got, err = s.Cafes().GetByIDWithTiendas(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tiendas)
}

func TestReplaceWithUnknownIDLeavesRelation(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	cafe, t1, _ := seed(t, s)

	require.NoError(t, s.Cafes().AddTienda(ctx, cafe.ID, t1.ID))
	err := s.Cafes().ReplaceTiendas(ctx, cafe.ID, []string{"missing"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := s.Cafes().GetByIDWithTiendas(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{t1.ID}, got.TiendaIDs())
}

func TestDeleteCascadesLinks(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	cafe, t1, t2 := seed(t, s)

	require.NoError(t, s.Cafes().ReplaceTiendas(ctx, cafe.ID, []string{t1.ID, t2.ID}))
	require.NoError(t, s.Tiendas().Delete(ctx, t1.ID))

	got, err := s.Cafes().GetByIDWithTiendas(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{t2.ID}, got.TiendaIDs())

	assert.ErrorIs(t, s.Tiendas().Delete(ctx, t1.ID), repository.ErrNotFound)

	require.NoError(t, s.Cafes().Delete(ctx, cafe.ID))
	tienda, err := s.Tiendas().GetByIDWithCafes(ctx, t2.ID)
	require.NoError(t, err)
	assert.NotNil(t, tienda.Cafes)
	assert.Empty(t, tienda.Cafes)
}

func TestListLoadsRelations(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	cafe, t1, t2 := seed(t, s)
	require.NoError(t, s.Cafes().AddTienda(ctx, cafe.ID, t2.ID))

	tiendas, err := s.Tiendas().List(ctx)
	require.NoError(t, err)
	require.Len(t, tiendas, 2)
	assert.Equal(t, t1.ID, tiendas[0].ID)
	assert.NotNil(t, tiendas[0].Cafes)
	assert.Empty(t, tiendas[0].Cafes)
	assert.Equal(t, []string{cafe.ID}, tiendas[1].CafeIDs())

	cafes, err := s.Cafes().List(ctx)
	require.NoError(t, err)
	require.Len(t, cafes, 1)
	assert.Equal(t, []string{t2.ID}, cafes[0].TiendaIDs())
}

func TestUpdateMissing(t *testing.T) {
	s := NewStore()
	_, err := s.Tiendas().Update(context.Background(), &model.Tienda{ID: "0", Phone: "3001234567"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
