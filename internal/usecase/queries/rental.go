package queries

import (
	"context"

	"github.com/google/uuid"
)

type RentalQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*RentalView, error)
}

type RentalViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RentalView, error)
	FindByDriverID(ctx context.Context, driverID uuid.UUID) ([]*RentalView, error)
}

type rentalQueriesImpl struct {
	repo RentalViewRepo
}

func NewRentalQueries(repo RentalViewRepo) RentalQueries {
	return &rentalQueriesImpl{repo: repo}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RentalView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *rentalQueriesImpl) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*RentalView, error) {
	return q.repo.FindByDriverID(ctx, driverID)
}
