package api

import (
	"net/http"

	"riderhub/internal/infra"

	"github.com/gin-gonic/gin"
)

// Read-side lookups surface repository errors directly; commands translate
// them to usecase sentinels instead.
func handleQueryError(c *gin.Context, err error, notFoundMsg string) {
	if infra.IsKind(err, infra.KindNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundMsg,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
