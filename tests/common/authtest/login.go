//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"riderhub/internal/handler/dto/request"
	"riderhub/internal/handler/dto/response"
	"riderhub/tests/common/dbtest"
	"riderhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginDriver(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body response.LoginResponse
	_ = httptest.DecodeResponseBody(t, w.Body, &body)
	require.NotEmpty(t, body.AccessToken, "Access token is empty")

	return body.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, cnpj, licenseNumber, category string) string {
	t.Helper()
	dbtest.CreateTestDriver(t, db, email, cnpj, licenseNumber, category)
	return LoginDriver(t, router, email, dbtest.TestDriverPassword)
}
