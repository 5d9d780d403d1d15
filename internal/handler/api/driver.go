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

type DriverHandler struct {
	driverCommands commands.DriverCommands
	driverQueries  queries.DriverQueries
	rentalQueries  queries.RentalQueries
}

func NewDriverHandler(
	driverCommands commands.DriverCommands,
	driverQueries queries.DriverQueries,
	rentalQueries queries.RentalQueries,
) *DriverHandler {
	return &DriverHandler{
		driverCommands: driverCommands,
		driverQueries:  driverQueries,
		rentalQueries:  rentalQueries,
	}
}

// @Summary Register driver
// @Description Register a new delivery driver
// @Tags drivers
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterDriverRequest true "Driver registration request"
// @Success 201 {object} resdto.DriverResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /drivers [post]
func (h *DriverHandler) RegisterDriver(c *gin.Context) {
	var req reqdto.RegisterDriverRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.driverCommands.RegisterDriver(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateCNPJ):
			c.JSON(http.StatusConflict, gin.H{
				"error": "CNPJ already registered",
			})
		case errors.Is(err, commands.ErrDuplicateLicenseNumber):
			c.JSON(http.StatusConflict, gin.H{
				"error": "License number already registered",
			})
		case errors.Is(err, commands.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
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

	c.JSON(http.StatusCreated, resdto.FromDriverView(view))
}

// @Summary Get driver
// @Description Get a driver by its ID
// @Tags drivers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Driver ID"
// @Success 200 {object} resdto.DriverResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drivers/{id} [get]
func (h *DriverHandler) GetDriver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid driver ID",
		})
		return
	}

	view, err := h.driverQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		handleQueryError(c, err, "Driver not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromDriverView(view))
}

// @Summary Update license image
// @Description Replace the stored driver license image reference
// @Tags drivers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Driver ID"
// @Param request body reqdto.UpdateLicenseImageRequest true "License image request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /drivers/{id}/license-image [patch]
func (h *DriverHandler) UpdateLicenseImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid driver ID",
		})
		return
	}

	var req reqdto.UpdateLicenseImageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.driverCommands.UpdateLicenseImage(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrDriverNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Driver not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "License image must be a png or bmp reference",
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

// @Summary List driver rentals
// @Description List all rentals belonging to a driver
// @Tags drivers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Driver ID"
// @Success 200 {array} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /drivers/{id}/rentals [get]
func (h *DriverHandler) ListDriverRentals(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid driver ID",
		})
		return
	}

	views, err := h.rentalQueries.ListByDriver(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}
