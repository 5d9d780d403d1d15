package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	DriverID     uuid.UUID `json:"driver_id" binding:"required"`
	MotorcycleID uuid.UUID `json:"motorcycle_id" binding:"required"`
	PlanDays     int32     `json:"plan_days" binding:"required,gt=0"`
}

type ReturnRentalRequest struct {
	ReturnDate string `json:"return_date" binding:"required"`
}

// ReturnDate carries a calendar date, not an instant.
func (r ReturnRentalRequest) ParseReturnDate() (time.Time, error) {
	return time.Parse("2006-01-02", r.ReturnDate)
}
