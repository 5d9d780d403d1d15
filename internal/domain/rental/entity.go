package rental

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyClosed = errors.New("rental is already closed")

// Rental is the aggregate for a single motorcycle rental. Immutable after
// creation except for the end date, which is overwritten exactly once when
// the motorcycle comes back.
type Rental struct {
	id                 uuid.UUID
	driverID           uuid.UUID
	motorcycleID       uuid.UUID
	startDate          time.Time
	expectedReturnDate time.Time
	endDate            time.Time
	planDays           int32
	dailyRate          Money
	returnedAt         *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewRental creates a rental starting the day after now. The end date is
// initialized to the expected return date and stays a placeholder until the
// rental is closed.
func NewRental(now time.Time, driverID, motorcycleID uuid.UUID, plan Plan) *Rental {
	startDate := DateOf(now).AddDate(0, 0, 1)
	expectedReturnDate := startDate.AddDate(0, 0, int(plan.Days()))

	return &Rental{
		id:                 uuid.New(),
		driverID:           driverID,
		motorcycleID:       motorcycleID,
		startDate:          startDate,
		expectedReturnDate: expectedReturnDate,
		endDate:            expectedReturnDate,
		planDays:           plan.Days(),
		dailyRate:          plan.DailyRate(),
	}
}

func ReconstructRental(
	id, driverID, motorcycleID uuid.UUID,
	startDate, expectedReturnDate, endDate time.Time,
	planDays int32,
	dailyRate Money,
	returnedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:                 id,
		driverID:           driverID,
		motorcycleID:       motorcycleID,
		startDate:          startDate,
		expectedReturnDate: expectedReturnDate,
		endDate:            endDate,
		planDays:           planDays,
		dailyRate:          dailyRate,
		returnedAt:         returnedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// Period the rental occupies on the motorcycle's calendar, [start, end).
func (r *Rental) Period() Period {
	return Period{start: r.startDate, end: r.endDate}
}

func (r *Rental) IsClosed() bool {
	return r.returnedAt != nil
}

// Close records the actual return date. Closing again with the same date is
// a no-op; closing with a different date is rejected rather than silently
// rewriting history.
func (r *Rental) Close(actualReturn, now time.Time) error {
	returned := DateOf(actualReturn)
	if r.returnedAt != nil {
		if returned.Equal(r.endDate) {
			return nil
		}
		return ErrAlreadyClosed
	}
	if returned.Before(r.startDate) {
		return ErrReturnBeforeStart
	}

	r.endDate = returned
	r.returnedAt = &now
	return nil
}

func (r *Rental) ID() uuid.UUID                 { return r.id }
func (r *Rental) DriverID() uuid.UUID           { return r.driverID }
func (r *Rental) MotorcycleID() uuid.UUID       { return r.motorcycleID }
func (r *Rental) StartDate() time.Time          { return r.startDate }
func (r *Rental) ExpectedReturnDate() time.Time { return r.expectedReturnDate }
func (r *Rental) EndDate() time.Time            { return r.endDate }
func (r *Rental) PlanDays() int32               { return r.planDays }
func (r *Rental) DailyRate() Money              { return r.dailyRate }
func (r *Rental) ReturnedAt() *time.Time        { return r.returnedAt }
func (r *Rental) CreatedAt() time.Time          { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time          { return r.updatedAt }
