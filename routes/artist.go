package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	artistControllers "github.com/jineshsingatkar/ArtVista/controllers/artist"
	artworkController "github.com/jineshsingatkar/ArtVista/controllers/artwork"
	"github.com/jineshsingatkar/ArtVista/middleware"
	"github.com/jineshsingatkar/ArtVista/models"
)

// SetupArtistRoutes registers the artist dashboard endpoints. Artists
// manage only their own catalog; ownership checks live in the
// artwork controllers.
func SetupArtistRoutes(r *gin.Engine, db *gorm.DB) {
	artistGroup := r.Group("/artist")
	artistGroup.Use(middleware.ValidateToken, middleware.RequireRole(string(models.RoleArtist), string(models.RoleAdmin)))
	{
		artistGroup.GET("/artworks", artistControllers.GetOwnArtworks(db))
		artistGroup.POST("/artworks", artworkController.CreateArtwork(db))
		artistGroup.PUT("/artworks/:id", artworkController.UpdateArtwork(db))
		artistGroup.DELETE("/artworks/:id", artworkController.DeleteArtwork(db))
	}
}
