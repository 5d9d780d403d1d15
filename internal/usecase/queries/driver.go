package queries

import (
	"context"

	"github.com/google/uuid"
)

type DriverQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DriverView, error)
}

type DriverViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DriverView, error)
}

type driverQueriesImpl struct {
	repo DriverViewRepo
}

func NewDriverQueries(repo DriverViewRepo) DriverQueries {
	return &driverQueriesImpl{repo: repo}
}

func (q *driverQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DriverView, error) {
	return q.repo.FindByID(ctx, id)
}
