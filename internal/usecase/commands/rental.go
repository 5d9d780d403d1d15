package commands

import (
	"context"
	"errors"
	"time"

	"riderhub/internal/domain/rental"
	reqdto "riderhub/internal/handler/dto/request"
	"riderhub/internal/infra"
	"riderhub/internal/pkg/clock"
	"riderhub/internal/pkg/errs"
	"riderhub/internal/usecase/queries"
	"riderhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDriverNotFound          = errs.New("driver not found")
	ErrDriverNotEligible       = errs.New("driver not eligible to rent a motorcycle")
	ErrMotorcycleNotFound      = errs.New("motorcycle not found")
	ErrUnknownPlan             = errs.New("unknown rental plan")
	ErrVehicleUnavailable      = errs.New("motorcycle unavailable for the requested period")
	ErrRentalNotFound          = errs.New("rental not found")
	ErrRentalAlreadyClosed     = errs.New("rental already closed")
	ErrReturnBeforeStart       = errs.New("return date before rental start")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type RentalCommands interface {
	CreateRental(ctx context.Context, req reqdto.CreateRentalRequest) (*queries.RentalView, error)
	ReturnRental(ctx context.Context, rentalID uuid.UUID, returnDate time.Time) (*queries.RentalView, error)
}

type rentalCommandsImpl struct {
	uow           shared.UnitOfWork
	rentalQueries queries.RentalQueries
	pricing       rental.PricingPolicy
	clock         clock.Clock
}

func NewRentalCommands(
	uow shared.UnitOfWork,
	rentalQueries queries.RentalQueries,
	pricing rental.PricingPolicy,
	clock clock.Clock,
) RentalCommands {
	return &rentalCommandsImpl{
		uow:           uow,
		rentalQueries: rentalQueries,
		pricing:       pricing,
		clock:         clock,
	}
}

// CreateRental validates driver, motorcycle and plan, then inserts the rental
// inside the same serializable transaction as the availability check. A racer
// that commits first makes the retry observe the overlap and fail cleanly.
func (r *rentalCommandsImpl) CreateRental(ctx context.Context, req reqdto.CreateRentalRequest) (*queries.RentalView, error) {
	var rentalID uuid.UUID

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		driverSnap, err := tx.Reads().DriverByID(ctx, req.DriverID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrDriverNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !driverSnap.LicenseCategory.PermitsMotorcycle() {
			return ErrDriverNotEligible
		}

		motorcycleSnap, err := tx.Reads().MotorcycleByID(ctx, req.MotorcycleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrMotorcycleNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		planSnap, err := tx.Reads().PlanByDays(ctx, req.PlanDays)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUnknownPlan)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		dailyRate, err := rental.NewMoney(planSnap.DailyRateCents)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		plan, err := rental.NewPlan(planSnap.Days, dailyRate)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		entity := rental.NewRental(r.clock.Now(), driverSnap.ID, motorcycleSnap.ID, plan)

		occupied, err := tx.Rentals().PeriodsForMotorcycle(ctx, tx.DB(), motorcycleSnap.ID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		candidate := entity.Period()
		for _, p := range occupied {
			if candidate.Overlaps(p) {
				return ErrVehicleUnavailable
			}
		}

		rentalID, err = tx.Rentals().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := r.rentalQueries.GetByID(ctx, rentalID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ReturnRental closes the rental and stores the computed charge. Re-closing
// with the same date replays the stored result instead of failing.
func (r *rentalCommandsImpl) ReturnRental(ctx context.Context, rentalID uuid.UUID, returnDate time.Time) (*queries.RentalView, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Rentals().FindByIDForUpdate(ctx, tx.DB(), rentalID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRentalNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := entity.Close(returnDate, r.clock.Now()); err != nil {
			switch {
			case errors.Is(err, rental.ErrAlreadyClosed):
				return errs.Mark(err, ErrRentalAlreadyClosed)
			case errors.Is(err, rental.ErrReturnBeforeStart):
				return errs.Mark(err, ErrReturnBeforeStart)
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		cost, err := r.pricing.Cost(entity, returnDate)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Rentals().SaveClose(ctx, tx.DB(), entity, cost.Cents()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := r.rentalQueries.GetByID(ctx, rentalID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
