package response

import (
	"time"

	"riderhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type DriverResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	CNPJ            string    `json:"cnpj"`
	DateOfBirth     string    `json:"dateOfBirth"`
	LicenseNumber   string    `json:"licenseNumber"`
	LicenseCategory string    `json:"licenseCategory"`
	LicenseImage    *string   `json:"licenseImage,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromDriverView(rm *queries.DriverView) *DriverResponse {
	return &DriverResponse{
		ID:              rm.ID,
		Name:            rm.Name,
		Email:           rm.Email,
		CNPJ:            rm.CNPJ,
		DateOfBirth:     rm.DateOfBirth.Format(dateLayout),
		LicenseNumber:   rm.LicenseNumber,
		LicenseCategory: rm.LicenseCategory,
		LicenseImage:    rm.LicenseImage,
		CreatedAt:       rm.CreatedAt,
	}
}
