package readstore

import (
	"context"
	"errors"

	"riderhub/internal/infra"
	"riderhub/internal/infra/db"
	"riderhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(db db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: db}
}

const findMotorcycleByIDSQL = `
SELECT id, year, model, license_plate, created_at, updated_at
FROM motorcycles
WHERE id = $1`

func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MotorcycleView, error) {
	var v queries.MotorcycleView
	err := r.db.QueryRow(ctx, findMotorcycleByIDSQL, id).Scan(
		&v.ID, &v.Year, &v.Model, &v.LicensePlate, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("motorcycle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find motorcycle by ID", err)
	}
	return &v, nil
}

const findAllMotorcyclesSQL = `
SELECT id, year, model, license_plate, created_at, updated_at
FROM motorcycles
WHERE ($1 = '' OR license_plate = $1)
ORDER BY created_at DESC`

func (r *VehicleReadStore) FindAll(ctx context.Context, plate string) ([]*queries.MotorcycleView, error) {
	rows, err := r.db.Query(ctx, findAllMotorcyclesSQL, plate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list motorcycles", err)
	}
	defer rows.Close()

	var result []*queries.MotorcycleView
	for rows.Next() {
		var v queries.MotorcycleView
		if err := rows.Scan(&v.ID, &v.Year, &v.Model, &v.LicensePlate, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan motorcycle row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate motorcycle rows", err)
	}
	return result, nil
}
