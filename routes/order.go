package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/jineshsingatkar/ArtVista/controllers/order"
	"github.com/jineshsingatkar/ArtVista/middleware"
	"github.com/jineshsingatkar/ArtVista/models"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Fetch the authenticated user's orders
		orders.GET("/mine", orderControllers.GetUserOrdersHandler(db))

		// Fetch one order (owner or admin)
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
	}

	// websocket endpoint for real-time order updates. Browsers cannot
	// set an Authorization header on the upgrade request, so this stays
	// outside the JWT group.
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

	adminOrders := r.Group("/orders")
	adminOrders.Use(middleware.ValidateToken, middleware.RequireRole(string(models.RoleAdmin)))
	{
		// Fetch all orders (admin)
		adminOrders.GET("/", orderControllers.GetAllOrdersHandler(db))

		// Update order status (e.g., shipped, cancelled)
		adminOrders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

		// Update payment status (e.g., paid, refunded)
		adminOrders.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))

		// Delete an order
		adminOrders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
	}
}
