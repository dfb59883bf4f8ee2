package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/jineshsingatkar/ArtVista/controllers/payment"
)

// SetupRoutes is the single entry‐point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, gw paymentControllers.Gateway) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Public storefront routes (catalog, artists, guest cart)
	SetupPublicRoutes(r, db)

	// 3️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, db)

	// 4️⃣ Artist routes (JWT + artist role)
	SetupArtistRoutes(r, db)

	// 5️⃣ Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db)

	// order routes
	SetupOrderRoutes(r, db)

	// payment routes
	SetupPaymentRoutes(r, db, gw)
}
