package commands

import (
	"context"
	"encoding/json"

	reqdto "riderhub/internal/handler/dto/request"
	"riderhub/internal/infra"
	"riderhub/internal/pkg/clock"
	"riderhub/internal/pkg/errs"
	"riderhub/internal/usecase/queries"
	"riderhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateLicensePlate = errs.New("license plate already registered")
	ErrMotorcycleHasRentals  = errs.New("motorcycle has rentals and cannot be removed")
)

const motorcycleRegisteredTopic = "motorcycles.registered"

type VehicleCommands interface {
	CreateMotorcycle(ctx context.Context, req reqdto.CreateMotorcycleRequest) (*queries.MotorcycleView, error)
	UpdateLicensePlate(ctx context.Context, id uuid.UUID, req reqdto.UpdateMotorcyclePlateRequest) error
	DeleteMotorcycle(ctx context.Context, id uuid.UUID) error
}

type vehicleCommandsImpl struct {
	uow               shared.UnitOfWork
	motorcycleQueries queries.MotorcycleQueries
	clock             clock.Clock
}

func NewVehicleCommands(
	uow shared.UnitOfWork,
	motorcycleQueries queries.MotorcycleQueries,
	clock clock.Clock,
) VehicleCommands {
	return &vehicleCommandsImpl{
		uow:               uow,
		motorcycleQueries: motorcycleQueries,
		clock:             clock,
	}
}

type motorcycleRegisteredPayload struct {
	MotorcycleID uuid.UUID `json:"motorcycle_id"`
	Year         int32     `json:"year"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"license_plate"`
}

// CreateMotorcycle registers the vehicle and enqueues a registration event in
// the same transaction. Consumers filter the event stream by year.
func (v *vehicleCommandsImpl) CreateMotorcycle(ctx context.Context, req reqdto.CreateMotorcycleRequest) (*queries.MotorcycleView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var motorcycleID uuid.UUID
	err = v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		motorcycleID, err = tx.Vehicles().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateLicensePlate)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(motorcycleRegisteredPayload{
			MotorcycleID: motorcycleID,
			Year:         entity.Year(),
			Model:        entity.Model(),
			LicensePlate: entity.LicensePlate().Value(),
		})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Notifications().CreateJob(ctx, tx.DB(),
			"motorcycle_registered", motorcycleRegisteredTopic, payload, v.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := v.motorcycleQueries.GetByID(ctx, motorcycleID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (v *vehicleCommandsImpl) UpdateLicensePlate(ctx context.Context, id uuid.UUID, req reqdto.UpdateMotorcyclePlateRequest) error {
	plate, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Vehicles().UpdateLicensePlate(ctx, tx.DB(), id, plate.Value()); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrMotorcycleNotFound)
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.Mark(err, ErrDuplicateLicensePlate)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// DeleteMotorcycle refuses to remove a vehicle with rental history. The
// foreign key backstops the explicit check.
func (v *vehicleCommandsImpl) DeleteMotorcycle(ctx context.Context, id uuid.UUID) error {
	return v.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rented, err := tx.Rentals().ExistsForMotorcycle(ctx, tx.DB(), id)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if rented {
			return ErrMotorcycleHasRentals
		}

		if err := tx.Vehicles().Delete(ctx, tx.DB(), id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrMotorcycleNotFound)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, ErrMotorcycleHasRentals)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
