//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"riderhub/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestDriverPassword is the plaintext used for every fixture driver.
const TestDriverPassword = "password123"

func CreateTestDriver(t *testing.T, db DBLike, email, cnpj, licenseNumber, category string) uuid.UUID {
	t.Helper()

	driverID := uuid.New()
	hash, err := password.HashPassword(TestDriverPassword)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = db.Exec(ctx, `
		INSERT INTO drivers (id, name, email, password_hash, cnpj, date_of_birth, license_number, license_category, license_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		driverID, "Test Driver", email, hash, cnpj,
		time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC), licenseNumber, category, "licenses/test.png")
	require.NoError(t, err)

	return driverID
}

func CreateTestMotorcycle(t *testing.T, db DBLike, year int32, model, plate string) uuid.UUID {
	t.Helper()

	motorcycleID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO motorcycles (id, year, model, license_plate)
		VALUES ($1, $2, $3, $4)`,
		motorcycleID, year, model, plate)
	require.NoError(t, err)

	return motorcycleID
}

// CreateTestRental inserts a rental occupying [startDate, endDate) without
// going through the API, so tests can place it on arbitrary dates.
func CreateTestRental(t *testing.T, db DBLike, driverID, motorcycleID uuid.UUID, startDate, endDate time.Time) uuid.UUID {
	t.Helper()

	rentalID := uuid.New()
	planDays := int32(endDate.Sub(startDate).Hours() / 24)
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO rentals (id, driver_id, motorcycle_id, start_date, expected_return_date, end_date, plan_days, daily_rate_cents)
		VALUES ($1, $2, $3, $4, $5, $5, $6, $7)`,
		rentalID, driverID, motorcycleID, startDate, endDate, planDays, int64(3000))
	require.NoError(t, err)

	return rentalID
}

// ResetDB truncates mutable tables between subtests. The plan catalog is
// reference data and survives.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE rentals, notification_jobs, motorcycles, drivers CASCADE")
	return err
}
