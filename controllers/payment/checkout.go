package paymentControllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/jineshsingatkar/ArtVista/controllers/order"
	"github.com/jineshsingatkar/ArtVista/models"
)

func currencyCode() string {
	if cur := os.Getenv("CURRENCY"); cur != "" {
		return cur
	}
	return "INR"
}

type CheckoutRequest struct {
	Name       string `json:"name" binding:"required,min=2"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,min=10"`
	Street     string `json:"street" binding:"required,min=5"`
	City       string `json:"city" binding:"required,min=2"`
	State      string `json:"state" binding:"required,min=2"`
	PostalCode string `json:"postal_code" binding:"required,min=6"`
	Country    string `json:"country"`
}

type VerifyRequest struct {
	GatewayOrderID string `json:"razorpay_order_id" binding:"required"`
	PaymentID      string `json:"razorpay_payment_id" binding:"required"`
	Signature      string `json:"razorpay_signature" binding:"required"`
}

// POST /payment/checkout
//
// Opens a checkout session: validates the shipping form, asks the
// gateway for an order covering the cart total and hands the gateway
// order id back for the client widget. The cart is left untouched
// until the payment is verified.
func CheckoutHandler(db *gorm.DB, gw Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		amountMinor := cart.TotalAmount() * 100
		currency := currencyCode()

		gatewayOrderID, err := gw.CreateOrder(amountMinor, currency, "cart-"+userID)
		if err != nil {
			log.Printf("❌ Gateway order creation failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		session := models.CheckoutSession{
			GatewayOrderID: gatewayOrderID,
			UserID:         userID,
			Amount:         amountMinor,
			Currency:       currency,
			Status:         models.CheckoutStatusPending,
			Shipping: models.ShippingAddress{
				Name:       req.Name,
				Email:      req.Email,
				Phone:      req.Phone,
				Street:     req.Street,
				City:       req.City,
				State:      req.State,
				PostalCode: req.PostalCode,
				Country:    req.Country,
			},
		}
		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open checkout session"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"gateway_order_id": gatewayOrderID,
			"key_id":           KeyID(),
			"amount":           amountMinor,
			"currency":         currency,
			"prefill": gin.H{
				"name":    req.Name,
				"email":   req.Email,
				"contact": req.Phone,
			},
		})
	}
}

// POST /payment/verify
//
// The widget's success callback. A bad signature leaves the cart and
// the session untouched; the user's only retry policy is to pay again.
func VerifyPaymentHandler(db *gorm.DB, gw Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !gw.VerifySignature(req.GatewayOrderID, req.PaymentID, req.Signature) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Payment signature verification failed"})
			return
		}

		var session models.CheckoutSession
		if err := db.Where("gateway_order_id = ?", req.GatewayOrderID).First(&session).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
			return
		}
		if session.Status == models.CheckoutStatusCompleted {
			c.JSON(http.StatusConflict, gin.H{"error": "Checkout session already completed"})
			return
		}

		order, err := orderControllers.PlaceOrder(db, orderControllers.PlaceOrderInput{
			UserID:        session.UserID,
			PaymentID:     req.PaymentID,
			PaymentStatus: models.PaymentStatusPaid,
			Shipping:      session.Shipping,
		})
		if err != nil {
			if errors.Is(err, orderControllers.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order", "details": err.Error()})
			return
		}

		if err := db.Model(&session).Update("status", models.CheckoutStatusCompleted).Error; err != nil {
			log.Printf("❌ Failed to close checkout session %s: %v", session.GatewayOrderID, err)
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Order placed successfully",
			"order_ref":  order.OrderRef,
			"payment_id": req.PaymentID,
		})
	}
}

type webhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Status  string `json:"status"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// POST /payment/webhook
//
// Server-to-server confirmation from the gateway. Signature
// verification happens in middleware. Idempotent: if the success
// callback already placed the order, only the payment status is
// reconciled.
func WebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload webhookPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse webhook payload"})
			return
		}

		entity := payload.Payload.Payment.Entity
		if entity.OrderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing order_id"})
			return
		}

		switch payload.Event {
		case "payment.captured":
		case "payment.failed":
			// Nothing to roll back: orders are only placed on success.
			c.JSON(http.StatusOK, gin.H{"message": "Payment not successful"})
			return
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
			return
		}

		var session models.CheckoutSession
		if err := db.Where("gateway_order_id = ?", entity.OrderID).First(&session).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
			return
		}

		if session.Status == models.CheckoutStatusCompleted {
			// Success callback beat us to it; reconcile payment status.
			if err := db.Model(&models.Order{}).
				Where("payment_id = ?", entity.ID).
				Update("payment_status", models.PaymentStatusPaid).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Payment status confirmed"})
			return
		}

		order, err := orderControllers.PlaceOrder(db, orderControllers.PlaceOrderInput{
			UserID:        session.UserID,
			PaymentID:     entity.ID,
			PaymentStatus: models.PaymentStatusPaid,
			Shipping:      session.Shipping,
		})
		if err != nil {
			log.Println("Failed to place order for gateway order:", entity.OrderID, "error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order", "details": err.Error()})
			return
		}

		if err := db.Model(&session).Update("status", models.CheckoutStatusCompleted).Error; err != nil {
			log.Printf("❌ Failed to close checkout session %s: %v", session.GatewayOrderID, err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order_ref": order.OrderRef})
	}
}
