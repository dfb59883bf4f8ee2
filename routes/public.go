package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/jineshsingatkar/ArtVista/controllers/admin"
	artistControllers "github.com/jineshsingatkar/ArtVista/controllers/artist"
	artworkController "github.com/jineshsingatkar/ArtVista/controllers/artwork"
	cartControllers "github.com/jineshsingatkar/ArtVista/controllers/cart"
)

// SetupPublicRoutes registers everything browsable without a login:
// the catalog, artist gallery, storefront banners and the guest cart.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Catalog ────────────────
	r.GET("/artworks", artworkController.GetArtworks(db))
	r.GET("/artworks/:id", artworkController.GetArtworkByID(db))
	r.GET("/categories", artworkController.GetAllCategories(db))
	r.GET("/categories/with-artworks", artworkController.GetAllCategoriesWithArtworks(db))

	// ──────────────── Artists ────────────────
	r.GET("/artists", artistControllers.GetArtists(db))
	r.GET("/artists/:id", artistControllers.GetArtistByID(db))

	// ──────────────── Banners ────────────────
	r.GET("/banners", adminController.GetBanners(db))

	// ──────────────── Guest Cart ────────────────
	guestCart := r.Group("/guest/cart")
	{
		guestCart.GET("/", cartControllers.GetGuestCart(db))
		guestCart.POST("/", cartControllers.AddGuestCartItem(db))
		guestCart.PUT("/:artwork_id", cartControllers.UpdateGuestCartItem(db))
		guestCart.DELETE("/:artwork_id", cartControllers.DeleteGuestCartItem(db))
		guestCart.DELETE("/", cartControllers.ClearGuestCart(db))
	}
}
