package repository

import (
	"context"

	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// CafeRepository persists cafes and the cafe side of the tienda relation.
type CafeRepository struct {
	pool *pgxpool.Pool
}

func NewCafeRepository(pool *pgxpool.Pool) *CafeRepository {
	return &CafeRepository{pool: pool}
}

const cafeColumns = `id, name, description, price`

func (r *CafeRepository) GetByID(ctx context.Context, id string) (*model.Cafe, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cafeColumns+` FROM cafes WHERE id = $1`, id)
	if err != nil {
		return nil, errors.Wrap(err, "select cafe")
	}

	cafe, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Cafe])
	if err != nil {
		return nil, notFoundOr(err, "collect cafe")
	}
	return &cafe, nil
}

// GetByIDWithTiendas loads the cafe and its tiendas in association order.
func (r *CafeRepository) GetByIDWithTiendas(ctx context.Context, id string) (*model.Cafe, error) {
	cafe, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT t.id, t.name, t.address, t.phone
		FROM tienda_cafes tc
		JOIN tiendas t ON t.id = tc.tienda_id
		WHERE tc.cafe_id = $1
		ORDER BY tc.position`, id)
	if err != nil {
		return nil, errors.Wrap(err, "select cafe tiendas")
	}

	tiendas, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Tienda])
	if err != nil {
		return nil, errors.Wrap(err, "collect cafe tiendas")
	}
	if tiendas == nil {
		tiendas = []model.Tienda{}
	}

	cafe.Tiendas = tiendas
	return cafe, nil
}

// List returns every cafe with its tiendas loaded.
func (r *CafeRepository) List(ctx context.Context) ([]model.Cafe, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cafeColumns+` FROM cafes ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Wrap(err, "select cafes")
	}

	cafes, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Cafe])
	if err != nil {
		return nil, errors.Wrap(err, "collect cafes")
	}
	if len(cafes) == 0 {
		return cafes, nil
	}

	ids := make([]string, len(cafes))
	index := make(map[string]int, len(cafes))
	for i := range cafes {
		ids[i] = cafes[i].ID
		index[cafes[i].ID] = i
		cafes[i].Tiendas = []model.Tienda{}
	}

	relRows, err := r.pool.Query(ctx, `
		SELECT tc.cafe_id, t.id, t.name, t.address, t.phone
		FROM tienda_cafes tc
		JOIN tiendas t ON t.id = tc.tienda_id
		WHERE tc.cafe_id = ANY($1)
		ORDER BY tc.position`, ids)
	if err != nil {
		return nil, errors.Wrap(err, "select tiendas for cafes")
	}
	defer relRows.Close()

	for relRows.Next() {
		var cafeID string
		var t model.Tienda
		if err := relRows.Scan(&cafeID, &t.ID, &t.Name, &t.Address, &t.Phone); err != nil {
			return nil, errors.Wrap(err, "scan cafe tienda")
		}
		i := index[cafeID]
		cafes[i].Tiendas = append(cafes[i].Tiendas, t)
	}
	if err := relRows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate cafe tiendas")
	}

	return cafes, nil
}

// Create inserts the cafe under a freshly generated id.
func (r *CafeRepository) Create(ctx context.Context, cafe *model.Cafe) (*model.Cafe, error) {
	rows, err := r.pool.Query(ctx, `
		INSERT INTO cafes (id, name, description, price)
		VALUES ($1, $2, $3, $4)
		RETURNING `+cafeColumns,
		uuid.NewString(), cafe.Name, cafe.Description, cafe.Price)
	if err != nil {
		return nil, errors.Wrap(err, "insert cafe")
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Cafe])
	if err != nil {
		return nil, errors.Wrap(err, "collect created cafe")
	}
	return &created, nil
}

// Update overwrites the scalar columns of an existing cafe.
func (r *CafeRepository) Update(ctx context.Context, cafe *model.Cafe) (*model.Cafe, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE cafes
		SET name = $2, description = $3, price = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+cafeColumns,
		cafe.ID, cafe.Name, cafe.Description, cafe.Price)
	if err != nil {
		return nil, errors.Wrap(err, "update cafe")
	}

	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Cafe])
	if err != nil {
		return nil, notFoundOr(err, "collect updated cafe")
	}
	return &updated, nil
}

// Delete removes the cafe; its join rows go with it (ON DELETE CASCADE).
func (r *CafeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cafes WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete cafe")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CafeRepository) AddTienda(ctx context.Context, cafeID, tiendaID string) error {
	return insertAssociation(ctx, r.pool, tiendaID, cafeID)
}

func (r *CafeRepository) RemoveTienda(ctx context.Context, cafeID, tiendaID string) error {
	return deleteAssociation(ctx, r.pool, tiendaID, cafeID)
}

// ReplaceTiendas overwrites the cafe's whole relation in one transaction.
func (r *CafeRepository) ReplaceTiendas(ctx context.Context, cafeID string, tiendaIDs []string) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM tienda_cafes WHERE cafe_id = $1`, cafeID); err != nil {
			return errors.Wrap(err, "clear cafe tiendas")
		}
		for _, tiendaID := range tiendaIDs {
			if err := insertAssociation(ctx, tx, tiendaID, cafeID); err != nil {
				return err
			}
		}
		return nil
	})
}
