package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RentalView struct {
	ID                 uuid.UUID  `json:"id"`
	DriverID           uuid.UUID  `json:"driver_id"`
	MotorcycleID       uuid.UUID  `json:"motorcycle_id"`
	StartDate          time.Time  `json:"start_date"`
	ExpectedReturnDate time.Time  `json:"expected_return_date"`
	EndDate            time.Time  `json:"end_date"`
	PlanDays           int32      `json:"plan_days"`
	DailyRateCents     int64      `json:"daily_rate_cents"`
	TotalCostCents     *int64     `json:"total_cost_cents,omitempty"`
	ReturnedAt         *time.Time `json:"returned_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type DriverView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	CNPJ            string    `json:"cnpj"`
	DateOfBirth     time.Time `json:"date_of_birth"`
	LicenseNumber   string    `json:"license_number"`
	LicenseCategory string    `json:"license_category"`
	LicenseImage    *string   `json:"license_image,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type MotorcycleView struct {
	ID           uuid.UUID `json:"id"`
	Year         int32     `json:"year"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"license_plate"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PlanView struct {
	Days           int32 `json:"days"`
	DailyRateCents int64 `json:"daily_rate_cents"`
}
