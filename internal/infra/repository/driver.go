package repository

import (
	"context"

	"riderhub/internal/domain/driver"
	"riderhub/internal/infra"
	"riderhub/internal/infra/db"

	"github.com/google/uuid"
)

type DriverRepository struct {
	db db.DBTX
}

func NewDriverRepository(db db.DBTX) *DriverRepository {
	return &DriverRepository{db: db}
}

const createDriverSQL = `
INSERT INTO drivers (
	id, name, email, password_hash, cnpj, date_of_birth,
	license_number, license_category, license_image
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

func (r *DriverRepository) Create(ctx context.Context, tx db.DBTX, d *driver.Driver) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createDriverSQL,
		d.ID(),
		d.Name(),
		d.Email().Value(),
		d.PasswordHash(),
		d.CNPJ().Value(),
		d.DateOfBirth(),
		d.LicenseNumber().Value(),
		d.Category().String(),
		d.LicenseImage().Value(),
	).Scan(&id)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("driver already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create driver", err)
	}
	return id, nil
}

const updateLicenseImageSQL = `
UPDATE drivers SET license_image = $2, updated_at = now() WHERE id = $1`

func (r *DriverRepository) UpdateLicenseImage(ctx context.Context, tx db.DBTX, id uuid.UUID, imageRef string) error {
	tag, err := tx.Exec(ctx, updateLicenseImageSQL, id, imageRef)
	if err != nil {
		return infra.WrapRepoErr("failed to update license image", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("driver not found", nil, infra.KindNotFound)
	}
	return nil
}
