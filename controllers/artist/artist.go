package artistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jineshsingatkar/ArtVista/models"
)

// GetArtists lists approved artists for the public gallery pages.
func GetArtists(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var artists []models.User
		if err := db.
			Select("id", "name", "avatar", "artist_bio", "artist_specialization", "artist_portfolio").
			Where("role = ? AND approved = ?", models.RoleArtist, true).
			Order("name asc").
			Find(&artists).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artists"})
			return
		}
		c.JSON(http.StatusOK, artists)
	}
}

// GetArtistByID returns one approved artist with their artworks.
func GetArtistByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var artist models.User
		if err := db.
			Select("id", "name", "avatar", "artist_bio", "artist_specialization", "artist_portfolio").
			Where("id = ? AND role = ? AND approved = ?", id, models.RoleArtist, true).
			First(&artist).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}

		var artworks []models.Artwork
		if err := db.
			Preload("Categories").
			Where("artist_id = ?", id).
			Find(&artworks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artworks"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"artist": artist, "artworks": artworks})
	}
}

// GetOwnArtworks lists the authenticated artist's catalog, approved
// or not, for their dashboard.
func GetOwnArtworks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistID := c.GetString("user_id")
		if artistID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var artworks []models.Artwork
		if err := db.
			Preload("Categories").
			Where("artist_id = ?", artistID).
			Order("created_at desc").
			Find(&artworks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artworks"})
			return
		}
		c.JSON(http.StatusOK, artworks)
	}
}
