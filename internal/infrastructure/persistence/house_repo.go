package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"house_classifier/internal/domain"
	"house_classifier/internal/domain/entity"
	"house_classifier/pkg/errcodes"
	"house_classifier/pkg/lox"
)

const (
	selectHouses = `SELECT in_sf, beds, bath, price, year_built, sqft, price_per_sqft, elevation
		FROM houses ORDER BY id`

	deleteHouses = `DELETE FROM houses`

	insertHouse = `INSERT INTO houses (in_sf, beds, bath, price, year_built, sqft, price_per_sqft, elevation)
		VALUES (:in_sf, :beds, :bath, :price, :year_built, :sqft, :price_per_sqft, :elevation)`
)

// HouseRepository reads and replaces the training table stored in Postgres.
type HouseRepository struct {
	db *sqlx.DB
}

func NewHouseRepository(db *sqlx.DB) *HouseRepository {
	return &HouseRepository{db: db}
}

// Dataset reads the whole training table in insertion order.
func (r *HouseRepository) Dataset(ctx context.Context) (entity.Dataset, error) {
	var rows []houseSchema

	if err := r.db.SelectContext(ctx, &rows, selectHouses); err != nil {
		return entity.Dataset{}, fmt.Errorf("db.SelectContext: %w", err)
	}

	houses, err := lox.MapErr(rows, houseSchema.toDomain)
	if err != nil {
		return entity.Dataset{}, domain.NewArtifactError(errcodes.InvalidDataset, "houses table: %v", err)
	}

	return entity.Dataset{Houses: houses}, nil
}

// Replace swaps the stored training table for dataset in one transaction.
func (r *HouseRepository) Replace(ctx context.Context, dataset entity.Dataset) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteHouses); err != nil {
			return fmt.Errorf("tx.ExecContext: %w", err)
		}

		for _, house := range dataset.Houses {
			if _, err := tx.NamedExecContext(ctx, insertHouse, fromHouse(house)); err != nil {
				return fmt.Errorf("tx.NamedExecContext: %w", err)
			}
		}

		return nil
	})
}

func (r *HouseRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit: %w", err)
	}

	return nil
}
