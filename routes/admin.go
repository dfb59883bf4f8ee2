package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/jineshsingatkar/ArtVista/controllers/admin"
	artworkController "github.com/jineshsingatkar/ArtVista/controllers/artwork"
	cartControllers "github.com/jineshsingatkar/ArtVista/controllers/cart"
	userControllers "github.com/jineshsingatkar/ArtVista/controllers/user"
	"github.com/jineshsingatkar/ArtVista/middleware"
	"github.com/jineshsingatkar/ArtVista/models"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires JWT + admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireRole(string(models.RoleAdmin)))
	{
		// ─────────── Dashboard & User Management ───────────
		adminGroup.GET("/stats", adminController.GetDashboardStats(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Artwork Management ───────────
		artworkAdmin := adminGroup.Group("/artworks")
		{
			artworkAdmin.POST("", artworkController.CreateArtwork(db))
			artworkAdmin.PUT("/:id", artworkController.UpdateArtwork(db))
			artworkAdmin.GET("", artworkController.GetArtworks(db))
			artworkAdmin.DELETE("/:id", artworkController.DeleteArtwork(db))
			artworkAdmin.POST("/import-excel", artworkController.ImportArtworksFromExcel(db))
			artworkAdmin.GET("/export-excel", artworkController.ExportArtworksToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", artworkController.CreateCategory(db))
			categoryAdmin.PUT("/:id", artworkController.UpdateCategory(db))
			categoryAdmin.GET("", artworkController.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", artworkController.DeleteCategory(db))
		}

		// ─────────── Artist Approval Workflow ───────────
		artistMgmt := adminGroup.Group("/artist-management")
		{
			artistMgmt.GET("/pending", adminController.ListPendingArtists(db))
			artistMgmt.POST("/approve", adminController.ApproveArtist(db))
			artistMgmt.POST("/reject", adminController.RejectArtist(db))
		}

		bannerMgmt := adminGroup.Group("/banner")
		{
			bannerMgmt.POST("/upload", adminController.UploadBanner(db))
			bannerMgmt.GET("/", adminController.GetBanners(db))
			bannerMgmt.DELETE("/:id", adminController.DeleteBanner(db))
		}
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(db))
		}
	}
}
