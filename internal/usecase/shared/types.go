package shared

import (
	"riderhub/internal/domain/driver"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads.

type DriverSnapshot struct {
	ID              uuid.UUID
	Name            string
	Email           string
	PasswordHash    string
	LicenseCategory driver.LicenseCategory
}

type MotorcycleSnapshot struct {
	ID           uuid.UUID
	Year         int32
	Model        string
	LicensePlate string
}

type PlanSnapshot struct {
	Days           int32
	DailyRateCents int64
}
