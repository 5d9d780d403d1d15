//go:build unit || e2e

package builder

import (
	"time"

	"riderhub/internal/domain/rental"
	"riderhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type RentalBuilder struct {
	Now            time.Time
	DriverID       uuid.UUID
	MotorcycleID   uuid.UUID
	PlanDays       int32
	DailyRateCents int64
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		Now:            time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
		DriverID:       uuid.New(),
		MotorcycleID:   uuid.New(),
		PlanDays:       7,
		DailyRateCents: 3000,
	}
}

func (b *RentalBuilder) WithPlan(days int32, dailyRateCents int64) *RentalBuilder {
	b.PlanDays = days
	b.DailyRateCents = dailyRateCents
	return b
}

func (b *RentalBuilder) WithNow(now time.Time) *RentalBuilder {
	b.Now = now
	return b
}

func (b *RentalBuilder) BuildPlan() rental.Plan {
	plan, err := rental.NewPlan(b.PlanDays, rental.MustMoney(b.DailyRateCents))
	if err != nil {
		panic(err)
	}
	return plan
}

func (b *RentalBuilder) BuildDomain() *rental.Rental {
	return rental.NewRental(b.Now, b.DriverID, b.MotorcycleID, b.BuildPlan())
}

func (b *RentalBuilder) BuildView() *queries.RentalView {
	ren := b.BuildDomain()
	return &queries.RentalView{
		ID:                 ren.ID(),
		DriverID:           ren.DriverID(),
		MotorcycleID:       ren.MotorcycleID(),
		StartDate:          ren.StartDate(),
		ExpectedReturnDate: ren.ExpectedReturnDate(),
		EndDate:            ren.EndDate(),
		PlanDays:           ren.PlanDays(),
		DailyRateCents:     ren.DailyRate().Cents(),
		CreatedAt:          b.Now,
		UpdatedAt:          b.Now,
	}
}
