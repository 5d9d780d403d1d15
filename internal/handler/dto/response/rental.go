package response

import (
	"time"

	"riderhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalResponse struct {
	ID                 uuid.UUID  `json:"id"`
	DriverID           uuid.UUID  `json:"driverId"`
	MotorcycleID       uuid.UUID  `json:"motorcycleId"`
	StartDate          string     `json:"startDate"`
	ExpectedReturnDate string     `json:"expectedReturnDate"`
	EndDate            string     `json:"endDate"`
	PlanDays           int32      `json:"planDays"`
	DailyRateCents     int64      `json:"dailyRateCents"`
	TotalCostCents     *int64     `json:"totalCostCents,omitempty"`
	ReturnedAt         *time.Time `json:"returnedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

const dateLayout = "2006-01-02"

func FromRentalView(rm *queries.RentalView) *RentalResponse {
	return &RentalResponse{
		ID:                 rm.ID,
		DriverID:           rm.DriverID,
		MotorcycleID:       rm.MotorcycleID,
		StartDate:          rm.StartDate.Format(dateLayout),
		ExpectedReturnDate: rm.ExpectedReturnDate.Format(dateLayout),
		EndDate:            rm.EndDate.Format(dateLayout),
		PlanDays:           rm.PlanDays,
		DailyRateCents:     rm.DailyRateCents,
		TotalCostCents:     rm.TotalCostCents,
		ReturnedAt:         rm.ReturnedAt,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}

func FromRentalViews(rms []*queries.RentalView) []*RentalResponse {
	result := make([]*RentalResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromRentalView(rm)
	}
	return result
}
