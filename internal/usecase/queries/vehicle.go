package queries

import (
	"context"

	"github.com/google/uuid"
)

type MotorcycleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MotorcycleView, error)
	// List filters by license plate when plate is non-empty.
	List(ctx context.Context, plate string) ([]*MotorcycleView, error)
	ListPlans(ctx context.Context) ([]*PlanView, error)
}

type MotorcycleViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MotorcycleView, error)
	FindAll(ctx context.Context, plate string) ([]*MotorcycleView, error)
}

type PlanViewRepo interface {
	FindAll(ctx context.Context) ([]*PlanView, error)
}

type motorcycleQueriesImpl struct {
	repo  MotorcycleViewRepo
	plans PlanViewRepo
}

func NewMotorcycleQueries(repo MotorcycleViewRepo, plans PlanViewRepo) MotorcycleQueries {
	return &motorcycleQueriesImpl{repo: repo, plans: plans}
}

func (q *motorcycleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MotorcycleView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *motorcycleQueriesImpl) List(ctx context.Context, plate string) ([]*MotorcycleView, error) {
	return q.repo.FindAll(ctx, plate)
}

func (q *motorcycleQueriesImpl) ListPlans(ctx context.Context) ([]*PlanView, error) {
	return q.plans.FindAll(ctx)
}
