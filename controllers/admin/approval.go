package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jineshsingatkar/ArtVista/models"
)

// ListPendingArtists returns all artist accounts awaiting approval.
func ListPendingArtists(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.User
		if err := db.
			Where("role = ? AND approved = ?", models.RoleArtist, false).
			Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending artists"})
			return
		}
		c.JSON(http.StatusOK, pending)
	}
}

func ApproveArtist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		var artist models.User
		if err := db.
			Where("email = ? AND role = ?", req.Email, models.RoleArtist).
			First(&artist).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}

		if err := db.Model(&artist).Update("approved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve artist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Artist approved"})
	}
}

// RejectArtist removes an unapproved artist account. Approved artists
// cannot be rejected through this endpoint.
func RejectArtist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if err := db.
			Where("email = ? AND role = ? AND approved = ?", req.Email, models.RoleArtist, false).
			Delete(&models.User{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject artist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Artist rejected"})
	}
}
