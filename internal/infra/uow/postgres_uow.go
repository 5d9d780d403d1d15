package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"riderhub/internal/domain/driver"
	"riderhub/internal/infra/db"
	"riderhub/internal/infra/readstore"
	"riderhub/internal/infra/repository"
	"riderhub/internal/pkg/errs"
	"riderhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jinzhu/copier"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// Serializable closes the window between the availability check and the
// insert: when two rentals race for the same motorcycle, one of them aborts
// with a serialization failure and retries against the committed state.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	rentalRepo       shared.RentalRepository
	driverRepo       shared.DriverRepository
	vehicleRepo      shared.VehicleRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Rentals() shared.RentalRepository {
	if t.rentalRepo == nil {
		t.rentalRepo = repository.NewRentalRepository(t.dbtx)
	}
	return t.rentalRepo
}

func (t *pgTx) Drivers() shared.DriverRepository {
	if t.driverRepo == nil {
		t.driverRepo = repository.NewDriverRepository(t.dbtx)
	}
	return t.driverRepo
}

func (t *pgTx) Vehicles() shared.VehicleRepository {
	if t.vehicleRepo == nil {
		t.vehicleRepo = repository.NewVehicleRepository(t.dbtx)
	}
	return t.vehicleRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	driverStore  *readstore.DriverReadStore
	vehicleStore *readstore.VehicleReadStore
	planStore    *readstore.PlanReadStore
}

func (r *commandReads) DriverByID(ctx context.Context, id uuid.UUID) (*shared.DriverSnapshot, error) {
	if r.driverStore == nil {
		r.driverStore = readstore.NewDriverReadStore(r.dbtx)
	}

	d, err := r.driverStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := driver.NewLicenseCategory(d.LicenseCategory)
	if err != nil {
		return nil, err
	}

	return &shared.DriverSnapshot{
		ID:              d.ID,
		Name:            d.Name,
		Email:           d.Email,
		LicenseCategory: category,
	}, nil
}

func (r *commandReads) DriverByEmail(ctx context.Context, email string) (*shared.DriverSnapshot, error) {
	if r.driverStore == nil {
		r.driverStore = readstore.NewDriverReadStore(r.dbtx)
	}

	d, passwordHash, err := r.driverStore.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	category, err := driver.NewLicenseCategory(d.LicenseCategory)
	if err != nil {
		return nil, err
	}

	return &shared.DriverSnapshot{
		ID:              d.ID,
		Name:            d.Name,
		Email:           d.Email,
		PasswordHash:    passwordHash,
		LicenseCategory: category,
	}, nil
}

func (r *commandReads) MotorcycleByID(ctx context.Context, id uuid.UUID) (*shared.MotorcycleSnapshot, error) {
	if r.vehicleStore == nil {
		r.vehicleStore = readstore.NewVehicleReadStore(r.dbtx)
	}

	m, err := r.vehicleStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var snap shared.MotorcycleSnapshot
	if err := copier.Copy(&snap, m); err != nil {
		return nil, errs.Wrap(err, "failed to map motorcycle snapshot")
	}
	return &snap, nil
}

func (r *commandReads) PlanByDays(ctx context.Context, days int32) (*shared.PlanSnapshot, error) {
	if r.planStore == nil {
		r.planStore = readstore.NewPlanReadStore(r.dbtx)
	}

	p, err := r.planStore.FindByDays(ctx, days)
	if err != nil {
		return nil, err
	}

	var snap shared.PlanSnapshot
	if err := copier.Copy(&snap, p); err != nil {
		return nil, errs.Wrap(err, "failed to map plan snapshot")
	}
	return &snap, nil
}
