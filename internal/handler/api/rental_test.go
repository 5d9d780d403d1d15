//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"riderhub/internal/handler/api"
	reqdto "riderhub/internal/handler/dto/request"
	resdto "riderhub/internal/handler/dto/response"
	"riderhub/internal/infra"
	"riderhub/internal/usecase/commands"
	"riderhub/tests/common/builder"
	"riderhub/tests/common/httptest"
	"riderhub/tests/common/testutil"
	commandsmock "riderhub/tests/mock/commands"
	queriesmock "riderhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalCommands
	mockQueries  *queriesmock.MockRentalQueries
	handler      *api.RentalHandler
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRentalQueries(s.mockCtrl)
	s.handler = api.NewRentalHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/rentals", s.handler.CreateRental)
	s.router.GET("/rentals/:id", s.handler.GetRental)
	s.router.PUT("/rentals/:id/return", s.handler.ReturnRental)
}

func (s *RentalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func (s *RentalHandlerTestSuite) TestCreateRental() {
	url := "/rentals"

	returnView := builder.NewRentalBuilder().BuildView()
	reqBody := reqdto.CreateRentalRequest{
		DriverID:     returnView.DriverID,
		MotorcycleID: returnView.MotorcycleID,
		PlanDays:     returnView.PlanDays,
	}

	s.Run("success: returns 201 Created with the new rental", func() {
		s.mockCommands.EXPECT().CreateRental(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.StartDate.Format("2006-01-02"), response.StartDate)
		s.Equal(returnView.ExpectedReturnDate.Format("2006-01-02"), response.EndDate)
		s.Nil(response.TotalCostCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: driver_id (required)", mutate: testutil.Field("driver_id", nil)},
			{name: "missing field: motorcycle_id (required)", mutate: testutil.Field("motorcycle_id", nil)},
			{name: "missing field: plan_days (required)", mutate: testutil.Field("plan_days", nil)},
			{name: "plan_days must be positive", mutate: testutil.Field("plan_days", -7)},
			{name: "driver_id must be a UUID", mutate: testutil.Field("driver_id", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "driver not found",
				commandsError:  commands.ErrDriverNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Driver not found",
			},
			{
				name:           "motorcycle not found",
				commandsError:  commands.ErrMotorcycleNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Motorcycle not found",
			},
			{
				name:           "driver not eligible",
				commandsError:  commands.ErrDriverNotEligible,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "license category",
			},
			{
				name:           "unknown plan",
				commandsError:  commands.ErrUnknownPlan,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "No rental plan",
			},
			{
				name:           "vehicle unavailable",
				commandsError:  commands.ErrVehicleUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not available",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRental(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RentalHandlerTestSuite) TestGetRental() {
	returnView := builder.NewRentalBuilder().BuildView()
	url := "/rentals/" + returnView.ID.String()

	s.Run("success: returns 200 OK with the rental", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rentals/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rental ID")
	})

	s.Run("error: 404 Not Found for unknown rental", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, infra.WrapRepoErr("rental not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Rental not found")
	})
}

func (s *RentalHandlerTestSuite) TestReturnRental() {
	closedView := builder.NewRentalBuilder().BuildView()
	totalCost := int64(21000)
	returnedAt := time.Date(2025, 3, 18, 9, 0, 0, 0, time.UTC)
	closedView.TotalCostCents = &totalCost
	closedView.ReturnedAt = &returnedAt

	url := "/rentals/" + closedView.ID.String() + "/return"
	reqBody := reqdto.ReturnRentalRequest{ReturnDate: "2025-03-18"}
	returnDate := time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns 200 OK with the final charge", func() {
		s.mockCommands.EXPECT().ReturnRental(gomock.Any(), closedView.ID, returnDate).
			Return(closedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.RentalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.TotalCostCents)
		s.Equal(totalCost, *response.TotalCostCents)
	})

	s.Run("error: 400 Bad Request for malformed return date", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("return_date", "18/03/2025"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/rentals/not-a-uuid/return", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid rental ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "rental not found",
				commandsError:  commands.ErrRentalNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Rental not found",
			},
			{
				name:           "already closed with different date",
				commandsError:  commands.ErrRentalAlreadyClosed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already closed",
			},
			{
				name:           "return before start",
				commandsError:  commands.ErrReturnBeforeStart,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "before the rental start date",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ReturnRental(gomock.Any(), closedView.ID, returnDate).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
