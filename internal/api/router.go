package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/clientportal/project-portal/docs"
	"github.com/clientportal/project-portal/internal/api/handler"
	"github.com/clientportal/project-portal/internal/api/middleware"
	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/ports"
	"github.com/clientportal/project-portal/internal/core/token"
)

// Services bundles the use-case implementations the router exposes over
// HTTP. They are constructed in main so startup tasks (index bootstrap,
// admin seeding) share the same instances.
type Services struct {
	Auth       ports.AuthService
	Projects   ports.ProjectService
	Comments   ports.CommentService
	Milestones ports.MilestoneService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *token.Service, svcs Services, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("portal"))

	requireAuth := middleware.Auth(tokens)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svcs.Auth)
	userHandler := handler.NewUserHandler(svcs.Auth)
	projectHandler := handler.NewProjectHandler(svcs.Projects)
	commentHandler := handler.NewCommentHandler(svcs.Comments)
	milestoneHandler := handler.NewMilestoneHandler(svcs.Milestones)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/me", authHandler.Me, requireAuth)

	// --- User routes (admin only) ---
	e.POST("/users", userHandler.Create, requireAuth, requireAdmin)

	// --- Project routes ---
	projects := e.Group("/projects", requireAuth)
	projects.POST("", projectHandler.Create, requireAdmin)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.PATCH("/:id", projectHandler.Update, requireAdmin)

	projects.POST("/:id/comments", commentHandler.Create)
	projects.GET("/:id/comments", commentHandler.List)

	projects.POST("/:id/milestones", milestoneHandler.Create, requireAdmin)
	projects.GET("/:id/milestones", milestoneHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
