package repository

import (
	"context"
	"time"

	"riderhub/internal/domain/rental"
	"riderhub/internal/infra"
	"riderhub/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RentalRepository struct {
	db db.DBTX
}

func NewRentalRepository(db db.DBTX) *RentalRepository {
	return &RentalRepository{db: db}
}

const createRentalSQL = `
INSERT INTO rentals (
	id, driver_id, motorcycle_id, start_date, expected_return_date, end_date,
	plan_days, daily_rate_cents
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *RentalRepository) Create(ctx context.Context, tx db.DBTX, ren *rental.Rental) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createRentalSQL,
		ren.ID(),
		ren.DriverID(),
		ren.MotorcycleID(),
		ren.StartDate(),
		ren.ExpectedReturnDate(),
		ren.EndDate(),
		ren.PlanDays(),
		ren.DailyRate().Cents(),
	).Scan(&id)
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("rental references a missing driver or motorcycle", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create rental", err)
	}
	return id, nil
}

const findRentalForUpdateSQL = `
SELECT id, driver_id, motorcycle_id, start_date, expected_return_date, end_date,
	plan_days, daily_rate_cents, returned_at, created_at, updated_at
FROM rentals
WHERE id = $1
FOR UPDATE`

func (r *RentalRepository) FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*rental.Rental, error) {
	var (
		rentalID, driverID, motorcycleID       uuid.UUID
		startDate, expectedReturnDate, endDate time.Time
		planDays                               int32
		dailyRateCents                         int64
		returnedAt                             *time.Time
		createdAt, updatedAt                   time.Time
	)
	err := tx.QueryRow(ctx, findRentalForUpdateSQL, id).Scan(
		&rentalID, &driverID, &motorcycleID,
		&startDate, &expectedReturnDate, &endDate,
		&planDays, &dailyRateCents, &returnedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("rental not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental for update", err)
	}

	dailyRate, err := rental.NewMoney(dailyRateCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to restore rental daily rate", err)
	}

	return rental.ReconstructRental(
		rentalID, driverID, motorcycleID,
		startDate.UTC(), expectedReturnDate.UTC(), endDate.UTC(),
		planDays, dailyRate, returnedAt, createdAt, updatedAt,
	), nil
}

const saveRentalCloseSQL = `
UPDATE rentals
SET end_date = $2, returned_at = $3, total_cost_cents = $4, updated_at = now()
WHERE id = $1`

func (r *RentalRepository) SaveClose(ctx context.Context, tx db.DBTX, ren *rental.Rental, totalCostCents int64) error {
	tag, err := tx.Exec(ctx, saveRentalCloseSQL, ren.ID(), ren.EndDate(), ren.ReturnedAt(), totalCostCents)
	if err != nil {
		return infra.WrapRepoErr("failed to close rental", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)
	}
	return nil
}

const periodsForMotorcycleSQL = `
SELECT start_date, end_date
FROM rentals
WHERE motorcycle_id = $1`

// PeriodsForMotorcycle loads the raw date ranges; whether a candidate range
// conflicts with them is rental.Period's call, not SQL's.
func (r *RentalRepository) PeriodsForMotorcycle(ctx context.Context, tx db.DBTX, motorcycleID uuid.UUID) ([]rental.Period, error) {
	rows, err := tx.Query(ctx, periodsForMotorcycleSQL, motorcycleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load rental periods", err)
	}
	defer rows.Close()

	var periods []rental.Period
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental period", err)
		}
		p, err := rental.NewPeriod(start, end)
		if err != nil {
			// A rental returned on its start date spans zero days and
			// occupies nothing.
			continue
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load rental periods", err)
	}
	return periods, nil
}

const existsForMotorcycleSQL = `
SELECT EXISTS (SELECT 1 FROM rentals WHERE motorcycle_id = $1)`

func (r *RentalRepository) ExistsForMotorcycle(ctx context.Context, tx db.DBTX, motorcycleID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, existsForMotorcycleSQL, motorcycleID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check rentals for motorcycle", err)
	}
	return exists, nil
}
