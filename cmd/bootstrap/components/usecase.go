package components

import (
	"riderhub/internal/domain/rental"
	"riderhub/internal/pkg/clock"
	"riderhub/internal/pkg/config"
	"riderhub/internal/usecase/commands"
	"riderhub/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPricingPolicy,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRentalQueries,
		queries.NewDriverQueries,
		queries.NewMotorcycleQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRentalCommands,
		commands.NewDriverCommands,
		commands.NewVehicleCommands,
	),
)

func NewPricingPolicy(cfg config.Config) rental.PricingPolicy {
	return rental.NewPricingPolicy(rental.MustMoney(cfg.Pricing.LateFeeCentsPerDay))
}
