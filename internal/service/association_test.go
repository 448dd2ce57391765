package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deppfellow/cafe-tienda/internal/errs"
	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTiendaToCafe(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cafe := f.cafe(t, "Tinto")
	t1 := f.tienda(t, "Norte")
	t2 := f.tienda(t, "Sur")

	got, err := f.services.CafeTienda.AddTiendaToCafe(ctx, cafe.ID, t1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{t1.ID}, got.TiendaIDs())

	got, err = f.services.CafeTienda.AddTiendaToCafe(ctx, cafe.ID, t2.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{t1.ID, t2.ID}, got.TiendaIDs())

	// Re-adding is a no-op and publishes nothing.
	got, err = f.services.CafeTienda.AddTiendaToCafe(ctx, cafe.ID, t1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{t1.ID, t2.ID}, got.TiendaIDs())
	assert.Len(t, f.publisher.events, 2)

	// The relation is visible from the tienda side.
	cafes, err := f.services.TiendaCafe.FindCafesByTiendaID(ctx, t2.ID)
	require.NoError(t, err)
	require.Len(t, cafes, 1)
	assert.Equal(t, cafe.ID, cafes[0].ID)
}

func TestAddErrorOrdering(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cafe := f.cafe(t, "Tinto")
	tienda := f.tienda(t, "Norte")

	// Both missing: the related entity is reported first.
	_, err := f.services.CafeTienda.AddTiendaToCafe(ctx, "0", "0")
	requireBusiness(t, err, errs.KindNotFound, MsgTiendaNotFound)

	_, err = f.services.CafeTienda.AddTiendaToCafe(ctx, "0", tienda.ID)
	requireBusiness(t, err, errs.KindNotFound, MsgCafeNotFound)

	_, err = f.services.TiendaCafe.AddCafeToTienda(ctx, "0", "0")
	requireBusiness(t, err, errs.KindNotFound, MsgCafeNotFound)

	_, err = f.services.TiendaCafe.AddCafeToTienda(ctx, "0", cafe.ID)
	requireBusiness(t, err, errs.KindNotFound, MsgTiendaNotFound)

	assert.Empty(t, f.publisher.events)
}

func TestFindAssociated(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cafe := f.cafe(t, "Tinto")
	t1 := f.tienda(t, "Norte")
	t2 := f.tienda(t, "Sur")
	_, err := f.services.CafeTienda.AddTiendaToCafe(ctx, cafe.ID, t1.ID)
	require.NoError(t, err)

	tienda, err := f.services.CafeTienda.FindTiendaByCafeIDTiendaID(ctx, cafe.ID, t1.ID)
	require.NoError(t, err)
	assert.Equal(t, t1.ID, tienda.ID)
	assert.Equal(t, "Norte", tienda.Name)

	_, err = f.services.CafeTienda.FindTiendaByCafeIDTiendaID(ctx, cafe.ID, t2.ID)
	requireBusiness(t, err, errs.KindPreconditionFailed, MsgTiendaNotAssociated)

	_, err = f.services.CafeTienda.FindTiendaByCafeIDTiendaID(ctx, "0", t1.ID)
	requireBusiness(t, err, errs.KindNotFound, MsgCafeNotFound)

	found, err := f.services.TiendaCafe.FindCafeByTiendaIDCafeID(ctx, t1.ID, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, cafe.ID, found.ID)

	_, err = f.services.TiendaCafe.FindCafeByTiendaIDCafeID(ctx, t2.ID, cafe.ID)
	requireBusiness(t, err, errs.KindPreconditionFailed, MsgCafeNotAssociated)
}

func TestFindListEmpty(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cafe := f.cafe(t, "Tinto")

	tiendas, err := f.services.CafeTienda.FindTiendasByCafeID(ctx, cafe.ID)
	require.NoError(t, err)
	assert.NotNil(t, tiendas)
	assert.Empty(t, tiendas)

	_, err = f.services.TiendaCafe.FindCafesByTiendaID(ctx, "0")
	requireBusiness(t, err, errs.KindNotFound, MsgTiendaNotFound)
}

func TestAssociateTiendasToCafe(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cafe := f.cafe(t, "Tinto")
	t1 := f.tienda(t, "Norte")
	t2 := f.tienda(t, "Sur")
	t3 := f.tienda(t, "Centro")

	_, err := f.services.CafeTienda.AddTiendaToCafe(ctx, cafe.ID, t1.ID)
	require.NoError(t, err)

	got, err := f.services.CafeTienda.AssociateTiendasToCafe(ctx, cafe.ID, []string{t3.ID, t2.ID, t3.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{t3.ID, t2.ID}, got.TiendaIDs())
	assert.Equal(t, "Centro", got.Tiendas[0].Name)

	stored, err := f.services.CafeTienda.FindTiendasByCafeID(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	// The replaced tienda no longer lists the cafe.
	_, err = f.services.TiendaCafe.FindCafeByTiendaIDCafeID(ctx, t1.ID, cafe.ID)
	requireBusiness(t, err, errs.KindPreconditionFailed, MsgCafeNotAssociated)

	last := f.publisher.events[len(f.publisher.events)-1]
	assert.Equal(t, model.AssociationReplaced, last.Action)
	assert.Equal(t, []string{t3.ID, t2.ID}, last.RelatedIDs)

	got, err = f.services.CafeTienda.AssociateTiendasToCafe(ctx, cafe.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, got.Tiendas)
}

func TestAssociateWithUnknownItemChangesNothing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cafe := f.cafe(t, "Tinto")
	t1 := f.tienda(t, "Norte")
	t2 := f.tienda(t, "Sur")
	_, err := f.services.CafeTienda.AddTiendaToCafe(ctx, cafe.ID, t1.ID)
	require.NoError(t, err)
	published := len(f.publisher.events)

	_, err = f.services.CafeTienda.AssociateTiendasToCafe(ctx, cafe.ID, []string{t2.ID, "0"})
	requireBusiness(t, err, errs.KindNotFound, MsgTiendaNotFound)

	tiendas, err := f.services.CafeTienda.FindTiendasByCafeID(ctx, cafe.ID)
	require.NoError(t, err)
	require.Len(t, tiendas, 1)
	assert.Equal(t, t1.ID, tiendas[0].ID)
	assert.Len(t, f.publisher.events, published)

	// Owner is checked before the items.
	_, err = f.services.TiendaCafe.AssociateCafesToTienda(ctx, "0", []string{"0"})
	requireBusiness(t, err, errs.KindNotFound, MsgTiendaNotFound)
}

func TestDeleteAssociation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	cafe := f.cafe(t, "Tinto")
	t1 := f.tienda(t, "Norte")
	t2 := f.tienda(t, "Sur")
	_, err := f.services.TiendaCafe.AssociateCafesToTienda(ctx, t1.ID, []string{cafe.ID})
	require.NoError(t, err)

	requireBusiness(t, f.services.CafeTienda.DeleteTiendaFromCafe(ctx, cafe.ID, t2.ID), errs.KindPreconditionFailed, MsgTiendaNotAssociated)
	requireBusiness(t, f.services.CafeTienda.DeleteTiendaFromCafe(ctx, "0", "0"), errs.KindNotFound, MsgTiendaNotFound)
	requireBusiness(t, f.services.TiendaCafe.DeleteCafeFromTienda(ctx, "0", cafe.ID), errs.KindNotFound, MsgTiendaNotFound)

	require.NoError(t, f.services.CafeTienda.DeleteTiendaFromCafe(ctx, cafe.ID, t1.ID))

	// Both entities survive the unlink.
	_, err = f.services.Cafe.FindOne(ctx, cafe.ID)
	require.NoError(t, err)
	tienda, err := f.services.Tienda.FindOne(ctx, t1.ID)
	require.NoError(t, err)
	assert.Empty(t, tienda.Cafes)

	requireBusiness(t, f.services.TiendaCafe.DeleteCafeFromTienda(ctx, t1.ID, cafe.ID), errs.KindPreconditionFailed, MsgCafeNotAssociated)
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture()
	f.publisher.err = errors.New("redis down")
	ctx := context.Background()
	cafe := f.cafe(t, "Tinto")
	tienda := f.tienda(t, "Norte")

	got, err := f.services.CafeTienda.AddTiendaToCafe(ctx, cafe.ID, tienda.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{tienda.ID}, got.TiendaIDs())
	assert.Len(t, f.publisher.events, 1)
}

func TestNilPublisher(t *testing.T) {
	f := newFixture()
	services := New(f.store.Cafes(), f.store.Tiendas(), nil)
	ctx := context.Background()
	cafe := f.cafe(t, "Tinto")
	tienda := f.tienda(t, "Norte")

	_, err := services.TiendaCafe.AddCafeToTienda(ctx, tienda.ID, cafe.ID)
	require.NoError(t, err)
	require.NoError(t, services.TiendaCafe.DeleteCafeFromTienda(ctx, tienda.ID, cafe.ID))
}
