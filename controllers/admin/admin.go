package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jineshsingatkar/ArtVista/models"
)

// GetDashboardStats aggregates the headline numbers for the admin
// dashboard. Revenue only counts paid orders.
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			userCount    int64
			artistCount  int64
			artworkCount int64
			orderCount   int64
			pendingCount int64
			revenue      int64
		)

		if err := db.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&userCount).Error; err != nil {
			log.Println("❌ Failed to count users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		db.Model(&models.User{}).Where("role = ?", models.RoleArtist).Count(&artistCount)
		db.Model(&models.User{}).Where("role = ? AND approved = ?", models.RoleArtist, false).Count(&pendingCount)
		db.Model(&models.Artwork{}).Count(&artworkCount)
		db.Model(&models.Order{}).Count(&orderCount)

		var paid struct{ Total int64 }
		db.Model(&models.Order{}).
			Select("COALESCE(SUM(total_amount), 0) AS total").
			Where("payment_status = ?", models.PaymentStatusPaid).
			Scan(&paid)
		revenue = paid.Total

		c.JSON(http.StatusOK, gin.H{
			"users":           userCount,
			"artists":         artistCount,
			"pending_artists": pendingCount,
			"artworks":        artworkCount,
			"orders":          orderCount,
			"revenue":         revenue,
		})
	}
}
