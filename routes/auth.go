package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jineshsingatkar/ArtVista/auth"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	verifier := auth.BcryptVerifier{}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(db, verifier))
		authGroup.POST("/signup", auth.SignupHandler(db, verifier))
		authGroup.POST("/logout", auth.LogoutHandler())

		authGroup.POST("/guest", auth.CreateGuestUser(db))
	}
}
