//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"riderhub/internal/domain/driver"
	"riderhub/internal/domain/rental"
	reqdto "riderhub/internal/handler/dto/request"
	"riderhub/internal/infra"
	"riderhub/internal/pkg/clock"
	"riderhub/internal/usecase/commands"
	"riderhub/internal/usecase/queries"
	"riderhub/internal/usecase/shared"
	queriesmock "riderhub/tests/mock/queries"
	sharedmock "riderhub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type RentalCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockUoW     *sharedmock.MockUnitOfWork
	mockTx      *sharedmock.MockTx
	mockReads   *sharedmock.MockCommandReads
	mockRentals *sharedmock.MockRentalRepository
	mockQueries *queriesmock.MockRentalQueries
	commands    commands.RentalCommands
}

func (s *RentalCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockRentals = sharedmock.NewMockRentalRepository(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)

	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		},
	).AnyTimes()
	s.mockTx.EXPECT().Reads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Rentals().Return(s.mockRentals).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()

	s.commands = commands.NewRentalCommands(
		s.mockUoW,
		s.mockQueries,
		rental.NewPricingPolicy(rental.MustMoney(5000)),
		clock.NewFixedClock(fixedNow),
	)
}

func (s *RentalCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalCommandsSuite(t *testing.T) {
	suite.Run(t, new(RentalCommandsTestSuite))
}

func driverSnapshot(id uuid.UUID, category driver.LicenseCategory) *shared.DriverSnapshot {
	return &shared.DriverSnapshot{
		ID:              id,
		Name:            "Test Rider",
		Email:           "rider@example.com",
		LicenseCategory: category,
	}
}

func motorcycleSnapshot(id uuid.UUID) *shared.MotorcycleSnapshot {
	return &shared.MotorcycleSnapshot{
		ID:           id,
		Year:         2024,
		Model:        "Honda CG 160",
		LicensePlate: "ABC1D23",
	}
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func (s *RentalCommandsTestSuite) TestCreateRental() {
	driverID := uuid.New()
	motorcycleID := uuid.New()
	req := reqdto.CreateRentalRequest{
		DriverID:     driverID,
		MotorcycleID: motorcycleID,
		PlanDays:     7,
	}

	s.Run("creates rental starting the day after now", func() {
		rentalID := uuid.New()
		wantStart := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)

		s.mockReads.EXPECT().DriverByID(gomock.Any(), driverID).
			Return(driverSnapshot(driverID, driver.CategoryA), nil).Times(1)
		s.mockReads.EXPECT().MotorcycleByID(gomock.Any(), motorcycleID).
			Return(motorcycleSnapshot(motorcycleID), nil).Times(1)
		s.mockReads.EXPECT().PlanByDays(gomock.Any(), int32(7)).
			Return(&shared.PlanSnapshot{Days: 7, DailyRateCents: 3000}, nil).Times(1)
		s.mockRentals.EXPECT().PeriodsForMotorcycle(gomock.Any(), gomock.Any(), motorcycleID).
			Return(nil, nil).Times(1)
		s.mockRentals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, entity *rental.Rental) (uuid.UUID, error) {
				s.Equal(driverID, entity.DriverID())
				s.Equal(motorcycleID, entity.MotorcycleID())
				s.True(entity.StartDate().Equal(wantStart))
				s.True(entity.ExpectedReturnDate().Equal(wantEnd))
				s.True(entity.EndDate().Equal(wantEnd))
				s.Equal(int64(3000), entity.DailyRate().Cents())
				return rentalID, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), rentalID).
			Return(&queries.RentalView{ID: rentalID, StartDate: wantStart}, nil).Times(1)

		view, err := s.commands.CreateRental(context.Background(), req)

		s.NoError(err)
		s.Equal(rentalID, view.ID)
	})

	s.Run("unknown driver", func() {
		s.mockReads.EXPECT().DriverByID(gomock.Any(), driverID).
			Return(nil, notFoundErr("driver not found")).Times(1)

		view, err := s.commands.CreateRental(context.Background(), req)

		s.ErrorIs(err, commands.ErrDriverNotFound)
		s.Nil(view)
	})

	s.Run("category B driver cannot rent", func() {
		s.mockReads.EXPECT().DriverByID(gomock.Any(), driverID).
			Return(driverSnapshot(driverID, driver.CategoryB), nil).Times(1)

		view, err := s.commands.CreateRental(context.Background(), req)

		s.ErrorIs(err, commands.ErrDriverNotEligible)
		s.Nil(view)
	})

	s.Run("unknown motorcycle", func() {
		s.mockReads.EXPECT().DriverByID(gomock.Any(), driverID).
			Return(driverSnapshot(driverID, driver.CategoryAB), nil).Times(1)
		s.mockReads.EXPECT().MotorcycleByID(gomock.Any(), motorcycleID).
			Return(nil, notFoundErr("motorcycle not found")).Times(1)

		view, err := s.commands.CreateRental(context.Background(), req)

		s.ErrorIs(err, commands.ErrMotorcycleNotFound)
		s.Nil(view)
	})

	s.Run("unknown plan length", func() {
		badReq := req
		badReq.PlanDays = 10

		s.mockReads.EXPECT().DriverByID(gomock.Any(), driverID).
			Return(driverSnapshot(driverID, driver.CategoryA), nil).Times(1)
		s.mockReads.EXPECT().MotorcycleByID(gomock.Any(), motorcycleID).
			Return(motorcycleSnapshot(motorcycleID), nil).Times(1)
		s.mockReads.EXPECT().PlanByDays(gomock.Any(), int32(10)).
			Return(nil, notFoundErr("plan not found")).Times(1)

		view, err := s.commands.CreateRental(context.Background(), badReq)

		s.ErrorIs(err, commands.ErrUnknownPlan)
		s.Nil(view)
	})

	s.Run("overlapping rental blocks creation", func() {
		s.mockReads.EXPECT().DriverByID(gomock.Any(), driverID).
			Return(driverSnapshot(driverID, driver.CategoryA), nil).Times(1)
		s.mockReads.EXPECT().MotorcycleByID(gomock.Any(), motorcycleID).
			Return(motorcycleSnapshot(motorcycleID), nil).Times(1)
		s.mockReads.EXPECT().PlanByDays(gomock.Any(), int32(7)).
			Return(&shared.PlanSnapshot{Days: 7, DailyRateCents: 3000}, nil).Times(1)
		s.mockRentals.EXPECT().PeriodsForMotorcycle(gomock.Any(), gomock.Any(), motorcycleID).
			Return([]rental.Period{
				// Wraps the candidate week entirely.
				s.period(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)),
			}, nil).Times(1)

		view, err := s.commands.CreateRental(context.Background(), req)

		s.ErrorIs(err, commands.ErrVehicleUnavailable)
		s.Nil(view)
	})

	s.Run("rentals touching only at the boundary do not block creation", func() {
		rentalID := uuid.New()

		s.mockReads.EXPECT().DriverByID(gomock.Any(), driverID).
			Return(driverSnapshot(driverID, driver.CategoryA), nil).Times(1)
		s.mockReads.EXPECT().MotorcycleByID(gomock.Any(), motorcycleID).
			Return(motorcycleSnapshot(motorcycleID), nil).Times(1)
		s.mockReads.EXPECT().PlanByDays(gomock.Any(), int32(7)).
			Return(&shared.PlanSnapshot{Days: 7, DailyRateCents: 3000}, nil).Times(1)
		s.mockRentals.EXPECT().PeriodsForMotorcycle(gomock.Any(), gomock.Any(), motorcycleID).
			Return([]rental.Period{
				// Ends exactly when the candidate week starts.
				s.period(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)),
				// Starts exactly when the candidate week ends.
				s.period(time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC)),
			}, nil).Times(1)
		s.mockRentals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rentalID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), rentalID).
			Return(&queries.RentalView{ID: rentalID}, nil).Times(1)

		view, err := s.commands.CreateRental(context.Background(), req)

		s.NoError(err)
		s.Equal(rentalID, view.ID)
	})
}

func (s *RentalCommandsTestSuite) period(start, end time.Time) rental.Period {
	p, err := rental.NewPeriod(start, end)
	s.Require().NoError(err)
	return p
}

func (s *RentalCommandsTestSuite) openRental(rentalID uuid.UUID, planDays int32, rateCents int64) *rental.Rental {
	start := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	expected := start.AddDate(0, 0, int(planDays))
	return rental.ReconstructRental(
		rentalID, uuid.New(), uuid.New(),
		start, expected, expected,
		planDays, rental.MustMoney(rateCents),
		nil,
		fixedNow, fixedNow,
	)
}

func (s *RentalCommandsTestSuite) closedRental(rentalID uuid.UUID, planDays int32, rateCents int64, endDate time.Time) *rental.Rental {
	start := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	expected := start.AddDate(0, 0, int(planDays))
	returnedAt := fixedNow
	return rental.ReconstructRental(
		rentalID, uuid.New(), uuid.New(),
		start, expected, endDate,
		planDays, rental.MustMoney(rateCents),
		&returnedAt,
		fixedNow, fixedNow,
	)
}

func (s *RentalCommandsTestSuite) expectClose(rentalID uuid.UUID, entity *rental.Rental, wantCost int64) {
	s.mockRentals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rentalID).
		Return(entity, nil).Times(1)
	s.mockRentals.EXPECT().SaveClose(gomock.Any(), gomock.Any(), entity, wantCost).
		DoAndReturn(func(_ context.Context, _ any, r *rental.Rental, _ int64) error {
			s.True(r.IsClosed())
			return nil
		}).Times(1)
	s.mockQueries.EXPECT().GetByID(gomock.Any(), rentalID).
		Return(&queries.RentalView{ID: rentalID, TotalCostCents: &wantCost}, nil).Times(1)
}

func (s *RentalCommandsTestSuite) TestReturnRental() {
	s.Run("on-time return charges the plan total", func() {
		rentalID := uuid.New()
		s.expectClose(rentalID, s.openRental(rentalID, 7, 3000), 21000)

		view, err := s.commands.ReturnRental(context.Background(), rentalID,
			time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC))

		s.NoError(err)
		s.Equal(int64(21000), *view.TotalCostCents)
	})

	s.Run("early return on 7-day plan adds 20 percent of the unused days", func() {
		rentalID := uuid.New()
		// 4 days used at 3000 plus 20% of the 3 remaining days.
		s.expectClose(rentalID, s.openRental(rentalID, 7, 3000), 13800)

		view, err := s.commands.ReturnRental(context.Background(), rentalID,
			time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))

		s.NoError(err)
		s.Equal(int64(13800), *view.TotalCostCents)
	})

	s.Run("early return on 15-day plan adds 40 percent of the unused days", func() {
		rentalID := uuid.New()
		// 9 days used at 2800 plus 40% of the 6 remaining days.
		s.expectClose(rentalID, s.openRental(rentalID, 15, 2800), 31920)

		view, err := s.commands.ReturnRental(context.Background(), rentalID,
			time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))

		s.NoError(err)
		s.Equal(int64(31920), *view.TotalCostCents)
	})

	s.Run("late return adds the flat daily fee", func() {
		rentalID := uuid.New()
		// Plan total plus 2 extra days at 5000.
		s.expectClose(rentalID, s.openRental(rentalID, 7, 3000), 31000)

		view, err := s.commands.ReturnRental(context.Background(), rentalID,
			time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))

		s.NoError(err)
		s.Equal(int64(31000), *view.TotalCostCents)
	})

	s.Run("re-closing with the stored date replays the stored result", func() {
		rentalID := uuid.New()
		endDate := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)
		s.expectClose(rentalID, s.closedRental(rentalID, 7, 3000, endDate), 21000)

		view, err := s.commands.ReturnRental(context.Background(), rentalID, endDate)

		s.NoError(err)
		s.Equal(int64(21000), *view.TotalCostCents)
	})

	s.Run("unknown rental", func() {
		rentalID := uuid.New()
		s.mockRentals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rentalID).
			Return(nil, notFoundErr("rental not found")).Times(1)

		view, err := s.commands.ReturnRental(context.Background(), rentalID,
			time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC))

		s.ErrorIs(err, commands.ErrRentalNotFound)
		s.Nil(view)
	})

	s.Run("closing again with a different date is rejected", func() {
		rentalID := uuid.New()
		endDate := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)
		s.mockRentals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rentalID).
			Return(s.closedRental(rentalID, 7, 3000, endDate), nil).Times(1)

		view, err := s.commands.ReturnRental(context.Background(), rentalID,
			time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC))

		s.ErrorIs(err, commands.ErrRentalAlreadyClosed)
		s.Nil(view)
	})

	s.Run("return before the start date is rejected", func() {
		rentalID := uuid.New()
		s.mockRentals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), rentalID).
			Return(s.openRental(rentalID, 7, 3000), nil).Times(1)

		view, err := s.commands.ReturnRental(context.Background(), rentalID,
			time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))

		s.ErrorIs(err, commands.ErrReturnBeforeStart)
		s.Nil(view)
	})
}
