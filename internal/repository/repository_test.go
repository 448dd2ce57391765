package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDatabaseURLEnv points at a migrated, disposable database.
const testDatabaseURLEnv = "CAFETIENDA_TEST_DATABASE_URL"

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv(testDatabaseURLEnv)
	if url == "" {
		t.Skipf("%s not set, skipping postgres repository tests", testDatabaseURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE tienda_cafes, tiendas, cafes`)
	require.NoError(t, err)

	return pool
}

func TestPostgresCafeTiendaRelation(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	cafes := NewCafeRepository(pool)
	tiendas := NewTiendaRepository(pool)

	cafe, err := cafes.Create(ctx, &model.Cafe{Name: "Tinto", Description: "Black", Price: decimal.RequireFromString("2.50")})
	require.NoError(t, err)
	assert.True(t, cafe.Price.Equal(decimal.RequireFromString("2.5")))

	t1, err := tiendas.Create(ctx, &model.Tienda{Name: "Norte", Address: "Calle 1", Phone: "3001234567"})
	require.NoError(t, err)
	t2, err := tiendas.Create(ctx, &model.Tienda{Name: "Sur", Address: "Calle 2", Phone: "3007654321"})
	require.NoError(t, err)

	require.NoError(t, cafes.AddTienda(ctx, cafe.ID, t2.ID))
	require.NoError(t, tiendas.AddCafe(ctx, t1.ID, cafe.ID))
	require.NoError(t, cafes.AddTienda(ctx, cafe.ID, t2.ID))

	got, err := cafes.GetByIDWithTiendas(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{t2.ID, t1.ID}, got.TiendaIDs())

	require.NoError(t, cafes.ReplaceTiendas(ctx, cafe.ID, []string{t1.ID}))
	withCafes, err := tiendas.GetByIDWithCafes(ctx, t2.ID)
	require.NoError(t, err)
	assert.Empty(t, withCafes.Cafes)

	all, err := tiendas.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []string{cafe.ID}, all[0].CafeIDs())

	require.NoError(t, tiendas.Delete(ctx, t1.ID))
	got, err = cafes.GetByIDWithTiendas(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tiendas)
}

func TestPostgresNotFound(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	_, err := NewCafeRepository(pool).GetByID(ctx, "0")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewTiendaRepository(pool).Update(ctx, &model.Tienda{ID: "0", Name: "x", Address: "y", Phone: "3001234567"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, NewCafeRepository(pool).Delete(ctx, "0"), ErrNotFound)
}

func TestPostgresPriceIsStoredExactly(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	cafes := NewCafeRepository(pool)

	for _, price := range []string{"1.239", "12345678901.5", "0"} {
		created, err := cafes.Create(ctx, &model.Cafe{Name: "Tinto", Description: "Black", Price: decimal.RequireFromString(price)})
		require.NoError(t, err, price)

		got, err := cafes.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, got.Price.Equal(decimal.RequireFromString(price)), "stored %s, want %s", got.Price, price)
	}
}

func TestPostgresEmptyRelationIsLoaded(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	cafe, err := NewCafeRepository(pool).Create(ctx, &model.Cafe{Name: "Tinto", Description: "Black", Price: decimal.NewFromInt(2)})
	require.NoError(t, err)

	got, err := NewCafeRepository(pool).GetByIDWithTiendas(ctx, cafe.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Tiendas)

	all, err := NewCafeRepository(pool).List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotNil(t, all[0].Tiendas)
}
