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

type DriverReadStore struct {
	db db.DBTX
}

func NewDriverReadStore(db db.DBTX) *DriverReadStore {
	return &DriverReadStore{db: db}
}

const findDriverByIDSQL = `
SELECT id, name, email, cnpj, date_of_birth, license_number, license_category,
	license_image, created_at, updated_at
FROM drivers
WHERE id = $1`

func (r *DriverReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DriverView, error) {
	var v queries.DriverView
	err := r.db.QueryRow(ctx, findDriverByIDSQL, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.CNPJ, &v.DateOfBirth,
		&v.LicenseNumber, &v.LicenseCategory, &v.LicenseImage,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("driver not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find driver by ID", err)
	}
	return &v, nil
}

const findDriverByEmailSQL = `
SELECT id, name, email, cnpj, date_of_birth, license_number, license_category,
	license_image, password_hash, created_at, updated_at
FROM drivers
WHERE email = $1`

func (r *DriverReadStore) FindByEmail(ctx context.Context, email string) (*queries.DriverView, string, error) {
	var (
		v            queries.DriverView
		passwordHash string
	)
	err := r.db.QueryRow(ctx, findDriverByEmailSQL, email).Scan(
		&v.ID, &v.Name, &v.Email, &v.CNPJ, &v.DateOfBirth,
		&v.LicenseNumber, &v.LicenseCategory, &v.LicenseImage,
		&passwordHash, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("driver not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find driver by email", err)
	}
	return &v, passwordHash, nil
}
