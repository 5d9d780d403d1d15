//go:build e2e

package rental_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"riderhub/internal/handler/dto/request"
	"riderhub/internal/handler/dto/response"
	"riderhub/tests/common/authtest"
	"riderhub/tests/common/dbtest"
	"riderhub/tests/common/httptest"
	"riderhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	rentalsURL = "/api/rentals"
	dateLayout = "2006-01-02"
)

type RentalSuite struct {
	e2e.SharedSuite
}

func (s *RentalSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRentalSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RentalSuite))
}

// registers an eligible driver, a motorcycle and returns a logged-in token
func (s *RentalSuite) seedRentalFixtures(t *testing.T, category string) (uuid.UUID, uuid.UUID, string) {
	t.Helper()

	driverID := dbtest.CreateTestDriver(t, s.DB, "rider@example.com", "11222333000181", "LIC-1001", category)
	motorcycleID := dbtest.CreateTestMotorcycle(t, s.DB, 2024, "Honda CG 160", "ABC1D23")
	token := authtest.LoginDriver(t, s.Router, "rider@example.com", dbtest.TestDriverPassword)
	return driverID, motorcycleID, token
}

func (s *RentalSuite) createRental(t *testing.T, token string, driverID, motorcycleID uuid.UUID, planDays int32) response.RentalResponse {
	t.Helper()

	reqBody := request.CreateRentalRequest{
		DriverID:     driverID,
		MotorcycleID: motorcycleID,
		PlanDays:     planDays,
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.RentalResponse
	_ = httptest.DecodeResponseBody(t, w.Body, &created)
	return created
}

func addDays(t *testing.T, date string, days int) string {
	t.Helper()
	d, err := time.Parse(dateLayout, date)
	require.NoError(t, err)
	return d.AddDate(0, 0, days).Format(dateLayout)
}

func (s *RentalSuite) TestCreateRental() {
	s.Run("Normal case: rental starts the day after creation", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")

		created := s.createRental(t, token, driverID, motorcycleID, 7)

		expectedStart := time.Now().UTC().AddDate(0, 0, 1).Format(dateLayout)
		require.Equal(t, expectedStart, created.StartDate)
		require.Equal(t, addDays(t, created.StartDate, 7), created.ExpectedReturnDate)
		require.Equal(t, created.ExpectedReturnDate, created.EndDate)
		require.Equal(t, int64(3000), created.DailyRateCents)
		require.Nil(t, created.TotalCostCents)
	})

	s.Run("Normal case: category A+B driver can rent", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A+B")

		created := s.createRental(t, token, driverID, motorcycleID, 15)
		require.Equal(t, int64(2800), created.DailyRateCents)
	})

	s.Run("Error case: category B driver is rejected", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "B")

		reqBody := request.CreateRentalRequest{DriverID: driverID, MotorcycleID: motorcycleID, PlanDays: 7}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown plan length is rejected", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")

		reqBody := request.CreateRentalRequest{DriverID: driverID, MotorcycleID: motorcycleID, PlanDays: 10}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: overlapping rental on the same motorcycle is rejected", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")
		s.createRental(t, token, driverID, motorcycleID, 7)

		otherID := dbtest.CreateTestDriver(t, s.DB, "other@example.com", "99888777000166", "LIC-2002", "A")
		reqBody := request.CreateRentalRequest{DriverID: otherID, MotorcycleID: motorcycleID, PlanDays: 15}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Normal case: a rental ending the day the new one starts does not conflict", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")

		// Previous rental occupies the ten days up to tomorrow, so its range
		// touches the new rental's computed start exactly at the boundary.
		newStart := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 1)
		dbtest.CreateTestRental(t, s.DB, driverID, motorcycleID, newStart.AddDate(0, 0, -10), newStart)

		created := s.createRental(t, token, driverID, motorcycleID, 7)
		require.Equal(t, newStart.Format(dateLayout), created.StartDate)
	})

	s.Run("Error case: unauthenticated request is rejected", func() {
		t := s.T()
		driverID, motorcycleID, _ := s.seedRentalFixtures(t, "A")

		reqBody := request.CreateRentalRequest{DriverID: driverID, MotorcycleID: motorcycleID, PlanDays: 7}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *RentalSuite) TestReturnRental() {
	assertClosed := func(t *testing.T, token string, rentalID uuid.UUID, returnDate string, expectedCost int64) response.RentalResponse {
		t.Helper()

		reqBody := request.ReturnRentalRequest{ReturnDate: returnDate}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, rentalsURL+"/"+rentalID.String()+"/return", reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var closed response.RentalResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &closed)
		require.NotNil(t, closed.TotalCostCents)
		require.Equal(t, expectedCost, *closed.TotalCostCents)
		require.Equal(t, returnDate, closed.EndDate)
		return closed
	}

	s.Run("Normal case: on-time return charges the plan in full", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")
		created := s.createRental(t, token, driverID, motorcycleID, 7)

		assertClosed(t, token, created.ID, created.ExpectedReturnDate, 21000)
	})

	s.Run("Normal case: early return on a 7-day plan adds a 20% penalty on unused days", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")
		created := s.createRental(t, token, driverID, motorcycleID, 7)

		// 4 used days plus 3 unused at 20%: 12000 + 1800
		assertClosed(t, token, created.ID, addDays(t, created.StartDate, 4), 13800)
	})

	s.Run("Normal case: early return on a 15-day plan adds a 40% penalty on unused days", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")
		created := s.createRental(t, token, driverID, motorcycleID, 15)

		// 9 used days plus 6 unused at 40%: 25200 + 6720
		assertClosed(t, token, created.ID, addDays(t, created.StartDate, 9), 31920)
	})

	s.Run("Normal case: late return charges a flat daily fee for extra days", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")
		created := s.createRental(t, token, driverID, motorcycleID, 7)

		// full plan plus 2 late days at 5000: 21000 + 10000
		assertClosed(t, token, created.ID, addDays(t, created.StartDate, 9), 31000)
	})

	s.Run("Normal case: repeating the same return date is idempotent", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")
		created := s.createRental(t, token, driverID, motorcycleID, 7)

		returnDate := created.ExpectedReturnDate
		assertClosed(t, token, created.ID, returnDate, 21000)
		assertClosed(t, token, created.ID, returnDate, 21000)
	})

	s.Run("Error case: closing again with a different date conflicts", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")
		created := s.createRental(t, token, driverID, motorcycleID, 7)

		assertClosed(t, token, created.ID, created.ExpectedReturnDate, 21000)

		reqBody := request.ReturnRentalRequest{ReturnDate: addDays(t, created.ExpectedReturnDate, 1)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, rentalsURL+"/"+created.ID.String()+"/return", reqBody, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: return date before start date is rejected", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")
		created := s.createRental(t, token, driverID, motorcycleID, 7)

		reqBody := request.ReturnRentalRequest{ReturnDate: addDays(t, created.StartDate, -1)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, rentalsURL+"/"+created.ID.String()+"/return", reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: unknown rental returns 404", func() {
		t := s.T()
		_, _, token := s.seedRentalFixtures(t, "A")

		reqBody := request.ReturnRentalRequest{ReturnDate: time.Now().UTC().Format(dateLayout)}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, rentalsURL+"/"+uuid.NewString()+"/return", reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *RentalSuite) TestConcurrentCreate() {
	s.Run("Race case: only one of two simultaneous rentals wins the motorcycle", func() {
		t := s.T()
		firstID, motorcycleID, token := s.seedRentalFixtures(t, "A")
		secondID := dbtest.CreateTestDriver(t, s.DB, "second@example.com", "99888777000166", "LIC-2002", "A")

		requests := []request.CreateRentalRequest{
			{DriverID: firstID, MotorcycleID: motorcycleID, PlanDays: 7},
			{DriverID: secondID, MotorcycleID: motorcycleID, PlanDays: 15},
		}

		statuses := make([]int, len(requests))
		var wg sync.WaitGroup
		for i, reqBody := range requests {
			wg.Add(1)
			go func(i int, reqBody request.CreateRentalRequest) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, rentalsURL, reqBody, token)
				statuses[i] = w.Code
			}(i, reqBody)
		}
		wg.Wait()

		created := 0
		conflicted := 0
		for _, code := range statuses {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "exactly one rental should win, got statuses %v", statuses)
		require.Equal(t, 1, conflicted, "the loser should see a conflict, got statuses %v", statuses)
	})
}

func (s *RentalSuite) TestGetRental() {
	s.Run("Normal case: fetch a rental by id", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")
		created := s.createRental(t, token, driverID, motorcycleID, 7)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, rentalsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var fetched response.RentalResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &fetched)
		require.Equal(t, created.ID, fetched.ID)
		require.Equal(t, driverID, fetched.DriverID)
	})

	s.Run("Normal case: list rentals by driver", func() {
		t := s.T()
		driverID, motorcycleID, token := s.seedRentalFixtures(t, "A")
		created := s.createRental(t, token, driverID, motorcycleID, 7)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/drivers/"+driverID.String()+"/rentals", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rentals []response.RentalResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &rentals)
		require.Len(t, rentals, 1)
		require.Equal(t, created.ID, rentals[0].ID)
	})
}
