package components

import (
	"riderhub/internal/infra/db"
	"riderhub/internal/infra/readstore"
	"riderhub/internal/infra/uow"
	"riderhub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalViewRepo)),
		),
		fx.Annotate(
			readstore.NewDriverReadStore,
			fx.As(new(queries.DriverViewRepo)),
		),
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.MotorcycleViewRepo)),
		),
		fx.Annotate(
			readstore.NewPlanReadStore,
			fx.As(new(queries.PlanViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
