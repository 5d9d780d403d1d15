package api

import (
	"errors"
	"net/http"

	reqdto "riderhub/internal/handler/dto/request"
	resdto "riderhub/internal/handler/dto/response"
	"riderhub/internal/usecase/commands"
	"riderhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MotorcycleHandler struct {
	vehicleCommands   commands.VehicleCommands
	motorcycleQueries queries.MotorcycleQueries
}

func NewMotorcycleHandler(
	vehicleCommands commands.VehicleCommands,
	motorcycleQueries queries.MotorcycleQueries,
) *MotorcycleHandler {
	return &MotorcycleHandler{
		vehicleCommands:   vehicleCommands,
		motorcycleQueries: motorcycleQueries,
	}
}

// @Summary Register motorcycle
// @Description Add a motorcycle to the fleet and publish a registration event
// @Tags motorcycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMotorcycleRequest true "Motorcycle request"
// @Success 201 {object} resdto.MotorcycleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /motorcycles [post]
func (h *MotorcycleHandler) CreateMotorcycle(c *gin.Context) {
	var req reqdto.CreateMotorcycleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.vehicleCommands.CreateMotorcycle(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateLicensePlate):
			c.JSON(http.StatusConflict, gin.H{
				"error": "License plate already registered",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMotorcycleView(view))
}

// @Summary Get motorcycle
// @Description Get a motorcycle by its ID
// @Tags motorcycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Motorcycle ID"
// @Success 200 {object} resdto.MotorcycleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /motorcycles/{id} [get]
func (h *MotorcycleHandler) GetMotorcycle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid motorcycle ID",
		})
		return
	}

	view, err := h.motorcycleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		handleQueryError(c, err, "Motorcycle not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromMotorcycleView(view))
}

// @Summary List motorcycles
// @Description List fleet motorcycles, optionally filtered by license plate
// @Tags motorcycles
// @Produce json
// @Security BearerAuth
// @Param plate query string false "Exact license plate filter"
// @Success 200 {array} resdto.MotorcycleResponse
// @Failure 401 {object} map[string]string
// @Router /motorcycles [get]
func (h *MotorcycleHandler) ListMotorcycles(c *gin.Context) {
	views, err := h.motorcycleQueries.List(c.Request.Context(), c.Query("plate"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMotorcycleViews(views))
}

// @Summary List rental plans
// @Description List the rental plan catalog
// @Tags motorcycles
// @Produce json
// @Success 200 {array} resdto.PlanResponse
// @Router /plans [get]
func (h *MotorcycleHandler) ListPlans(c *gin.Context) {
	views, err := h.motorcycleQueries.ListPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPlanViews(views))
}

// @Summary Update license plate
// @Description Change the license plate of a motorcycle
// @Tags motorcycles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Motorcycle ID"
// @Param request body reqdto.UpdateMotorcyclePlateRequest true "License plate request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /motorcycles/{id}/license-plate [patch]
func (h *MotorcycleHandler) UpdateLicensePlate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid motorcycle ID",
		})
		return
	}

	var req reqdto.UpdateMotorcyclePlateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.vehicleCommands.UpdateLicensePlate(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrMotorcycleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Motorcycle not found",
			})
		case errors.Is(err, commands.ErrDuplicateLicensePlate):
			c.JSON(http.StatusConflict, gin.H{
				"error": "License plate already registered",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete motorcycle
// @Description Remove a motorcycle that has no rental history
// @Tags motorcycles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Motorcycle ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /motorcycles/{id} [delete]
func (h *MotorcycleHandler) DeleteMotorcycle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid motorcycle ID",
		})
		return
	}

	if err := h.vehicleCommands.DeleteMotorcycle(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrMotorcycleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Motorcycle not found",
			})
		case errors.Is(err, commands.ErrMotorcycleHasRentals):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Motorcycle has rentals and cannot be removed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
