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

type RentalHandler struct {
	rentalCommands commands.RentalCommands
	rentalQueries  queries.RentalQueries
}

func NewRentalHandler(rentalCommands commands.RentalCommands, rentalQueries queries.RentalQueries) *RentalHandler {
	return &RentalHandler{
		rentalCommands: rentalCommands,
		rentalQueries:  rentalQueries,
	}
}

// @Summary Create rental
// @Description Rent a motorcycle for a fixed-length plan starting tomorrow
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalRequest true "Rental request"
// @Success 201 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) CreateRental(c *gin.Context) {
	var req reqdto.CreateRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.rentalCommands.CreateRental(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDriverNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Driver not found",
			})
		case errors.Is(err, commands.ErrMotorcycleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Motorcycle not found",
			})
		case errors.Is(err, commands.ErrDriverNotEligible):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Driver license category does not permit renting a motorcycle",
			})
		case errors.Is(err, commands.ErrUnknownPlan):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No rental plan matches the requested number of days",
			})
		case errors.Is(err, commands.ErrVehicleUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Motorcycle is not available for the requested period",
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

	c.JSON(http.StatusCreated, resdto.FromRentalView(view))
}

// @Summary Get rental
// @Description Get a rental by its ID
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetRental(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental ID",
		})
		return
	}

	view, err := h.rentalQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		handleQueryError(c, err, "Rental not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary Return motorcycle
// @Description Close a rental by informing the actual return date and compute the final charge
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.ReturnRentalRequest true "Return request"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rentals/{id}/return [put]
func (h *RentalHandler) ReturnRental(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid rental ID",
		})
		return
	}

	var req reqdto.ReturnRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	returnDate, err := req.ParseReturnDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Return date must be formatted as YYYY-MM-DD",
		})
		return
	}

	view, err := h.rentalCommands.ReturnRental(c.Request.Context(), id, returnDate)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRentalNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental not found",
			})
		case errors.Is(err, commands.ErrRentalAlreadyClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Rental is already closed with a different return date",
			})
		case errors.Is(err, commands.ErrReturnBeforeStart):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Return date cannot be before the rental start date",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}
