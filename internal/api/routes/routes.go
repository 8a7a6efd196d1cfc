package routes

import (
	"log"

	"organization-service-backend/internal/api/handlers"
	"organization-service-backend/internal/api/middleware"
	"organization-service-backend/internal/auth"
	"organization-service-backend/internal/config"
	"organization-service-backend/internal/database"
	"organization-service-backend/internal/repository"
	"organization-service-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	assignmentRepo := repository.NewRoleAssignmentRepository(db)

	// Initialize services
	roleService := service.NewRoleService(roleRepo, assignmentRepo, validator)
	replicator, err := service.NewRosterReplicator(cfg, membershipRepo, organizationRepo, roleService)
	if err != nil {
		return nil, err
	}
	organizationService := service.NewOrganizationService(
		database.NewTxRunner(db),
		organizationRepo,
		membershipRepo,
		roleRepo,
		assignmentRepo,
		roleService,
		replicator,
		validator,
	)

	// Initialize auth configuration and middleware
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}

	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewService(authConfig)
		if err != nil {
			return nil, err
		}
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, cfg.AuthzServiceURL)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	roleHandler := handlers.NewRoleHandler(roleService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require an authenticated access token
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
		v1.Use(authMiddleware.RequireScope(authConfig.RequiredScope))
	}

	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.POST("/:id/roles", roleHandler.CreateRole)
			organizations.DELETE("/:id/roles/:roleId", roleHandler.DeleteRole)
			organizations.POST("/:id/roles/:roleId/assignments", roleHandler.AssignRole)
			organizations.DELETE("/:id/roles/:roleId/assignments/:principalId", roleHandler.RevokeAssignment)
		}

		// Role routes
		roles := v1.Group("/roles")
		{
			roles.GET("", roleHandler.ListMyRoles)
			roles.GET("/:roleId/permissions", roleHandler.GetRolePermissions)
		}

		// Roster reconciliation route
		v1.POST("/roster/replay", organizationHandler.ReplayRoster)
	}

	return router, nil
}
