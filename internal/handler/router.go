package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petcare-booking/internal/handler/api"
	"petcare-booking/internal/handler/middleware"
	"petcare-booking/internal/pkg/config"
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
	bookingHandler *api.BookingHandler,
	draftHandler *api.DraftHandler,
	ratePlanHandler *api.RatePlanHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, draftHandler, ratePlanHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	draftHandler *api.DraftHandler,
	ratePlanHandler *api.RatePlanHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPut, Path: "/:id/pets/:pet_id", Handler: bookingHandler.AddPet},
				{Method: http.MethodDelete, Path: "/:id/pets/:pet_id", Handler: bookingHandler.RemovePet},
				{Method: http.MethodPost, Path: "/:id/resync", Handler: bookingHandler.Resync},

				{Method: http.MethodGet, Path: "/:id/draft", Handler: draftHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/draft", Handler: draftHandler.Patch},
				{Method: http.MethodDelete, Path: "/:id/draft", Handler: draftHandler.Discard},
				{Method: http.MethodPost, Path: "/:id/draft/promote", Handler: draftHandler.Promote},
				{Method: http.MethodGet, Path: "/:id/available-pets", Handler: draftHandler.AvailablePets},
			})
		}

		ratePlans := apiGroup.Group("/rate-plans")
		ratePlans.Use(authMiddleware.RequireAuth())
		{
			addRoutes(ratePlans, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: ratePlanHandler.Update, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(middleware.RoleProfessional)}},
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
