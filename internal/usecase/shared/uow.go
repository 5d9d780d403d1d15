package shared

import (
	"context"
	"time"

	"riderhub/internal/domain/driver"
	"riderhub/internal/domain/rental"
	"riderhub/internal/domain/vehicle"
	"riderhub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Serializable transaction for write operations with retry logic.
	// Availability checks and the insert they guard must share one of these,
	// otherwise two rentals for the same motorcycle can slip past each other.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rentals() RentalRepository
	Drivers() DriverRepository
	Vehicles() VehicleRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	DriverByID(ctx context.Context, id uuid.UUID) (*DriverSnapshot, error)
	DriverByEmail(ctx context.Context, email string) (*DriverSnapshot, error)
	MotorcycleByID(ctx context.Context, id uuid.UUID) (*MotorcycleSnapshot, error)
	PlanByDays(ctx context.Context, days int32) (*PlanSnapshot, error)
}

type RentalRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *rental.Rental) (uuid.UUID, error)
	// FindByIDForUpdate locks the row so close cannot race another close.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*rental.Rental, error)
	SaveClose(ctx context.Context, tx db.DBTX, r *rental.Rental, totalCostCents int64) error
	// PeriodsForMotorcycle returns the occupied periods of every rental on
	// the motorcycle; the overlap decision itself stays in rental.Period.
	PeriodsForMotorcycle(ctx context.Context, tx db.DBTX, motorcycleID uuid.UUID) ([]rental.Period, error)
	ExistsForMotorcycle(ctx context.Context, tx db.DBTX, motorcycleID uuid.UUID) (bool, error)
}

type DriverRepository interface {
	Create(ctx context.Context, tx db.DBTX, d *driver.Driver) (uuid.UUID, error)
	UpdateLicenseImage(ctx context.Context, tx db.DBTX, id uuid.UUID, imageRef string) error
}

type VehicleRepository interface {
	Create(ctx context.Context, tx db.DBTX, m *vehicle.Motorcycle) (uuid.UUID, error)
	UpdateLicensePlate(ctx context.Context, tx db.DBTX, id uuid.UUID, plate string) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
