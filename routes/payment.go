package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/jineshsingatkar/ArtVista/controllers/payment"
	"github.com/jineshsingatkar/ArtVista/middleware"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB, gw paymentControllers.Gateway) {
	payment := r.Group("/payment")
	{
		// Checkout + verification require a logged-in user
		payment.POST("/checkout",
			middleware.ValidateToken,
			paymentControllers.CheckoutHandler(db, gw),
		)
		payment.POST("/verify",
			middleware.ValidateToken,
			paymentControllers.VerifyPaymentHandler(db, gw),
		)

		// Webhook endpoint: middleware handles sandbox/prod verification
		payment.POST("/webhook",
			middleware.RazorpayWebhookAuth(),
			paymentControllers.WebhookHandler(db),
		)
	}
}
