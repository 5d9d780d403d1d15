package readstore

import (
	"context"
	"errors"

	"riderhub/internal/infra"
	"riderhub/internal/infra/db"
	"riderhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

// Plans are matched by exact day length only; there is no closest-plan
// fallback.
type PlanReadStore struct {
	db db.DBTX
}

func NewPlanReadStore(db db.DBTX) *PlanReadStore {
	return &PlanReadStore{db: db}
}

const findPlanByDaysSQL = `
SELECT days, daily_rate_cents FROM rental_plans WHERE days = $1`

func (r *PlanReadStore) FindByDays(ctx context.Context, days int32) (*queries.PlanView, error) {
	var v queries.PlanView
	err := r.db.QueryRow(ctx, findPlanByDaysSQL, days).Scan(&v.Days, &v.DailyRateCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rental plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental plan", err)
	}
	return &v, nil
}

const findAllPlansSQL = `
SELECT days, daily_rate_cents FROM rental_plans ORDER BY days`

func (r *PlanReadStore) FindAll(ctx context.Context) ([]*queries.PlanView, error) {
	rows, err := r.db.Query(ctx, findAllPlansSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rental plans", err)
	}
	defer rows.Close()

	var result []*queries.PlanView
	for rows.Next() {
		var v queries.PlanView
		if err := rows.Scan(&v.Days, &v.DailyRateCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rental plan row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rental plan rows", err)
	}
	return result, nil
}
