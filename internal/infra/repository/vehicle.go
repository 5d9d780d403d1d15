package repository

import (
	"context"

	"riderhub/internal/domain/vehicle"
	"riderhub/internal/infra"
	"riderhub/internal/infra/db"

	"github.com/google/uuid"
)

type VehicleRepository struct {
	db db.DBTX
}

func NewVehicleRepository(db db.DBTX) *VehicleRepository {
	return &VehicleRepository{db: db}
}

const createMotorcycleSQL = `
INSERT INTO motorcycles (id, year, model, license_plate)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *VehicleRepository) Create(ctx context.Context, tx db.DBTX, m *vehicle.Motorcycle) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createMotorcycleSQL,
		m.ID(),
		m.Year(),
		m.Model(),
		m.LicensePlate().Value(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("license plate already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create motorcycle", err)
	}
	return id, nil
}

const updateLicensePlateSQL = `
UPDATE motorcycles SET license_plate = $2, updated_at = now() WHERE id = $1`

func (r *VehicleRepository) UpdateLicensePlate(ctx context.Context, tx db.DBTX, id uuid.UUID, plate string) error {
	tag, err := tx.Exec(ctx, updateLicensePlateSQL, id, plate)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("license plate already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update license plate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("motorcycle not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteMotorcycleSQL = `DELETE FROM motorcycles WHERE id = $1`

func (r *VehicleRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteMotorcycleSQL, id)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("motorcycle still referenced by rentals", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete motorcycle", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("motorcycle not found", nil, infra.KindNotFound)
	}
	return nil
}
