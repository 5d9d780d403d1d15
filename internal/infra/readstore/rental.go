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

type RentalReadStore struct {
	db db.DBTX
}

func NewRentalReadStore(db db.DBTX) *RentalReadStore {
	return &RentalReadStore{db: db}
}

const findRentalByIDSQL = `
SELECT id, driver_id, motorcycle_id, start_date, expected_return_date, end_date,
	plan_days, daily_rate_cents, total_cost_cents, returned_at, created_at, updated_at
FROM rentals
WHERE id = $1`

func (r *RentalReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RentalView, error) {
	row := r.db.QueryRow(ctx, findRentalByIDSQL, id)
	view, err := scanRentalView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental by ID", err)
	}
	return view, nil
}

const findRentalsByDriverSQL = `
SELECT id, driver_id, motorcycle_id, start_date, expected_return_date, end_date,
	plan_days, daily_rate_cents, total_cost_cents, returned_at, created_at, updated_at
FROM rentals
WHERE driver_id = $1
ORDER BY created_at DESC`

func (r *RentalReadStore) FindByDriverID(ctx context.Context, driverID uuid.UUID) ([]*queries.RentalView, error) {
	rows, err := r.db.Query(ctx, findRentalsByDriverSQL, driverID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rentals by driver", err)
	}
	defer rows.Close()

	var result []*queries.RentalView
	for rows.Next() {
		view, err := scanRentalView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rental rows", err)
	}
	return result, nil
}

func scanRentalView(row pgx.Row) (*queries.RentalView, error) {
	var v queries.RentalView
	err := row.Scan(
		&v.ID, &v.DriverID, &v.MotorcycleID,
		&v.StartDate, &v.ExpectedReturnDate, &v.EndDate,
		&v.PlanDays, &v.DailyRateCents, &v.TotalCostCents, &v.ReturnedAt,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.StartDate = v.StartDate.UTC()
	v.ExpectedReturnDate = v.ExpectedReturnDate.UTC()
	v.EndDate = v.EndDate.UTC()
	return &v, nil
}
