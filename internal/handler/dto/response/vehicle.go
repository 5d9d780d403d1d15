package response

import (
	"time"

	"riderhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type MotorcycleResponse struct {
	ID           uuid.UUID `json:"id"`
	Year         int32     `json:"year"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"licensePlate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type PlanResponse struct {
	Days           int32 `json:"days"`
	DailyRateCents int64 `json:"dailyRateCents"`
}

func FromMotorcycleView(rm *queries.MotorcycleView) *MotorcycleResponse {
	return &MotorcycleResponse{
		ID:           rm.ID,
		Year:         rm.Year,
		Model:        rm.Model,
		LicensePlate: rm.LicensePlate,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromMotorcycleViews(rms []*queries.MotorcycleView) []*MotorcycleResponse {
	result := make([]*MotorcycleResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromMotorcycleView(rm)
	}
	return result
}

func FromPlanViews(rms []*queries.PlanView) []*PlanResponse {
	result := make([]*PlanResponse, len(rms))
	for i, rm := range rms {
		result[i] = &PlanResponse{Days: rm.Days, DailyRateCents: rm.DailyRateCents}
	}
	return result
}
