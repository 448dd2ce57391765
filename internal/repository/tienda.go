package repository

import (
	"context"

	"github.com/deppfellow/cafe-tienda/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// TiendaRepository persists tiendas and the tienda side of the cafe relation.
type TiendaRepository struct {
	pool *pgxpool.Pool
}

func NewTiendaRepository(pool *pgxpool.Pool) *TiendaRepository {
	return &TiendaRepository{pool: pool}
}

const tiendaColumns = `id, name, address, phone`

func (r *TiendaRepository) GetByID(ctx context.Context, id string) (*model.Tienda, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+tiendaColumns+` FROM tiendas WHERE id = $1`, id)
	if err != nil {
		return nil, errors.Wrap(err, "select tienda")
	}

	tienda, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Tienda])
	if err != nil {
		return nil, notFoundOr(err, "collect tienda")
	}
	return &tienda, nil
}

// GetByIDWithCafes loads the tienda and its cafes in association order.
func (r *TiendaRepository) GetByIDWithCafes(ctx context.Context, id string) (*model.Tienda, error) {
	tienda, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.name, c.description, c.price
		FROM tienda_cafes tc
		JOIN cafes c ON c.id = tc.cafe_id
		WHERE tc.tienda_id = $1
		ORDER BY tc.position`, id)
	if err != nil {
		return nil, errors.Wrap(err, "select tienda cafes")
	}

	cafes, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Cafe])
	if err != nil {
		return nil, errors.Wrap(err, "collect tienda cafes")
	}
	if cafes == nil {
		cafes = []model.Cafe{}
	}

	tienda.Cafes = cafes
	return tienda, nil
}

// List returns every tienda with its cafes loaded.
func (r *TiendaRepository) List(ctx context.Context) ([]model.Tienda, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+tiendaColumns+` FROM tiendas ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Wrap(err, "select tiendas")
	}

	tiendas, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Tienda])
	if err != nil {
		return nil, errors.Wrap(err, "collect tiendas")
	}
	if len(tiendas) == 0 {
		return tiendas, nil
	}

	ids := make([]string, len(tiendas))
	index := make(map[string]int, len(tiendas))
	for i := range tiendas {
		ids[i] = tiendas[i].ID
		index[tiendas[i].ID] = i
		tiendas[i].Cafes = []model.Cafe{}
	}

	relRows, err := r.pool.Query(ctx, `
		SELECT tc.tienda_id, c.id, c.name, c.description, c.price
		FROM tienda_cafes tc
		JOIN cafes c ON c.id = tc.cafe_id
		WHERE tc.tienda_id = ANY($1)
		ORDER BY tc.position`, ids)
	if err != nil {
		return nil, errors.Wrap(err, "select cafes for tiendas")
	}
	defer relRows.Close()

	for relRows.Next() {
		var tiendaID string
		var c model.Cafe
		if err := relRows.Scan(&tiendaID, &c.ID, &c.Name, &c.Description, &c.Price); err != nil {
			return nil, errors.Wrap(err, "scan tienda cafe")
		}
		i := index[tiendaID]
		tiendas[i].Cafes = append(tiendas[i].Cafes, c)
	}
	if err := relRows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate tienda cafes")
	}

	return tiendas, nil
}

// Create inserts the tienda under a freshly generated id.
func (r *TiendaRepository) Create(ctx context.Context, tienda *model.Tienda) (*model.Tienda, error) {
	rows, err := r.pool.Query(ctx, `
		INSERT INTO tiendas (id, name, address, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING `+tiendaColumns,
		uuid.NewString(), tienda.Name, tienda.Address, tienda.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "insert tienda")
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Tienda])
	if err != nil {
		return nil, errors.Wrap(err, "collect created tienda")
	}
	return &created, nil
}

func (r *TiendaRepository) Update(ctx context.Context, tienda *model.Tienda) (*model.Tienda, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE tiendas
		SET name = $2, address = $3, phone = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+tiendaColumns,
		tienda.ID, tienda.Name, tienda.Address, tienda.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "update tienda")
	}

	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Tienda])
	if err != nil {
		return nil, notFoundOr(err, "collect updated tienda")
	}
	return &updated, nil
}

func (r *TiendaRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tiendas WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "delete tienda")
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TiendaRepository) AddCafe(ctx context.Context, tiendaID, cafeID string) error {
	return insertAssociation(ctx, r.pool, tiendaID, cafeID)
}

func (r *TiendaRepository) RemoveCafe(ctx context.Context, tiendaID, cafeID string) error {
	return deleteAssociation(ctx, r.pool, tiendaID, cafeID)
}

// ReplaceCafes overwrites the tienda's whole relation in one transaction.
func (r *TiendaRepository) ReplaceCafes(ctx context.Context, tiendaID string, cafeIDs []string) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM tienda_cafes WHERE tienda_id = $1`, tiendaID); err != nil {
			return errors.Wrap(err, "clear tienda cafes")
		}
		for _, cafeID := range cafeIDs {
			if err := insertAssociation(ctx, tx, tiendaID, cafeID); err != nil {
				return err
			}
		}
		return nil
	})
}
