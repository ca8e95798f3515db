package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/matlynx/matlynx-api/internal/audit"
	"github.com/matlynx/matlynx-api/internal/config"
	"github.com/matlynx/matlynx-api/internal/handlers"
	infraRepo "github.com/matlynx/matlynx-api/internal/infra/repository"
	"github.com/matlynx/matlynx-api/internal/media"
	"github.com/matlynx/matlynx-api/internal/middleware"
	"github.com/matlynx/matlynx-api/internal/models"
	"github.com/matlynx/matlynx-api/internal/session"
	ucmaterial "github.com/matlynx/matlynx-api/internal/usecase/material"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	sessions *session.Store,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	materialRepo := infraRepo.NewMaterialGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES — MATERIALS
	// ======================================================
	createMaterialUC := ucmaterial.NewCreateMaterial(materialRepo, auditDispatcher)
	updateMaterialUC := ucmaterial.NewUpdateMaterial(materialRepo, auditDispatcher)
	deleteMaterialUC := ucmaterial.NewDeleteMaterial(materialRepo, auditDispatcher)
	toggleMaterialUC := ucmaterial.NewToggleMaterialActive(materialRepo, auditDispatcher)
	listDealerMaterialsUC := ucmaterial.NewListDealerMaterials(materialRepo)
	browseMaterialsUC := ucmaterial.NewBrowseMaterials(materialRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, sessions, auditDispatcher)
	profileHandler := handlers.NewProfileHandler(db, auditDispatcher)
	gateHandler := handlers.NewGateHandler(db)

	materialHandler := handlers.NewMaterialHandler(
		createMaterialUC,
		updateMaterialUC,
		deleteMaterialUC,
		toggleMaterialUC,
		listDealerMaterialsUC,
	)

	browseHandler := handlers.NewBrowseHandler(browseMaterialsUC)
	mediaHandler := handlers.NewMediaHandler(uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// NAVIGATION GATE (anonymous allowed)
		// ------------------------------
		api.GET("/gate",
			middleware.OptionalAuth(cfg, sessions),
			gateHandler.Decide,
		)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, sessions))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", authHandler.Me)

			secured.GET("/me/profile", profileHandler.Get)
			secured.PUT("/me/profile", profileHandler.Save)

			secured.POST("/me/media", mediaHandler.Upload)
			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// DEALER LISTINGS
			// ------------------------------
			dealer := secured.Group("/me/materials")
			dealer.Use(middleware.RequireRole(models.RoleDealer))
			{
				dealer.GET("", materialHandler.List)
				dealer.POST("", materialHandler.Create)
				dealer.PATCH("/:id", materialHandler.Update)
				dealer.DELETE("/:id", materialHandler.Delete)
				dealer.PATCH("/:id/toggle", materialHandler.ToggleActive)
			}

			// ------------------------------
			// CONTRACTOR MARKETPLACE
			// ------------------------------
			secured.GET("/materials",
				middleware.RequireRole(models.RoleContractor),
				browseHandler.List,
			)
		}
	}
}
