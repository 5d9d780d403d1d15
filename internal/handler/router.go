package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"riderhub/internal/handler/api"
	"riderhub/internal/handler/middleware"
	"riderhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	driverHandler *api.DriverHandler,
	motorcycleHandler *api.MotorcycleHandler,
	rentalHandler *api.RentalHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, driverHandler, motorcycleHandler, rentalHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	driverHandler *api.DriverHandler,
	motorcycleHandler *api.MotorcycleHandler,
	rentalHandler *api.RentalHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		drivers := apiGroup.Group("/drivers")
		{
			// Registration is open; everything else needs a token.
			addRoutes(drivers, []route{
				{Method: http.MethodPost, Path: "", Handler: driverHandler.RegisterDriver},
			})

			authRequired := drivers.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: driverHandler.GetDriver},
				{Method: http.MethodPatch, Path: "/:id/license-image", Handler: driverHandler.UpdateLicenseImage},
				{Method: http.MethodGet, Path: "/:id/rentals", Handler: driverHandler.ListDriverRentals},
			})
		}

		motorcycles := apiGroup.Group("/motorcycles")
		motorcycles.Use(authMiddleware.RequireAuth())
		{
			addRoutes(motorcycles, []route{
				{Method: http.MethodPost, Path: "", Handler: motorcycleHandler.CreateMotorcycle},
				{Method: http.MethodGet, Path: "", Handler: motorcycleHandler.ListMotorcycles},
				{Method: http.MethodGet, Path: "/:id", Handler: motorcycleHandler.GetMotorcycle},
				{Method: http.MethodPatch, Path: "/:id/license-plate", Handler: motorcycleHandler.UpdateLicensePlate},
				{Method: http.MethodDelete, Path: "/:id", Handler: motorcycleHandler.DeleteMotorcycle},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/plans", Handler: motorcycleHandler.ListPlans},
		})

		rentals := apiGroup.Group("/rentals")
		rentals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rentals, []route{
				{Method: http.MethodPost, Path: "", Handler: rentalHandler.CreateRental},
				{Method: http.MethodGet, Path: "/:id", Handler: rentalHandler.GetRental},
				{Method: http.MethodPut, Path: "/:id/return", Handler: rentalHandler.ReturnRental},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
