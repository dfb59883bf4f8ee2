package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jineshsingatkar/ArtVista/models"
)

// stubGateway stands in for Razorpay: order ids are sequential and a
// signature is valid iff it equals "sig:" + orderID + ":" + paymentID.
type stubGateway struct {
	orders  int
	lastAmt int64
}

func (g *stubGateway) CreateOrder(amountMinorUnits int64, currency, receipt string) (string, error) {
	g.orders++
	g.lastAmt = amountMinorUnits
	return fmt.Sprintf("order_stub_%d", g.orders), nil
}

func (g *stubGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	return signature == "sig:"+gatewayOrderID+":"+paymentID
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Artwork{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.CheckoutSession{},
	))
	return db
}

func seedBuyer(t *testing.T, db *gorm.DB, userID string, items []models.CartItem) {
	t.Helper()

	user := models.User{ID: userID, Email: userID + "@example.com", Password: "x", Name: "Buyer"}
	user.Cart = models.Cart{UserID: userID}
	require.NoError(t, db.Create(&user).Error)

	for i := range items {
		items[i].CartID = user.Cart.CartID
		require.NoError(t, db.Create(&items[i]).Error)

		artwork := models.Artwork{Title: items[i].ArtworkTitle, Price: items[i].Price, Image: "x.jpg", InStock: true, ArtistID: "artist-1"}
		artwork.ID = items[i].ArtworkID
		require.NoError(t, db.Create(&artwork).Error)
	}
}

func newPaymentRouter(db *gorm.DB, gw Gateway, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", "user")
	})
	r.POST("/payment/checkout", CheckoutHandler(db, gw))
	r.POST("/payment/verify", VerifyPaymentHandler(db, gw))
	r.POST("/payment/webhook", WebhookHandler(db))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func checkoutForm() CheckoutRequest {
	return CheckoutRequest{
		Name: "Buyer One", Email: "buyer@example.com", Phone: "9876543210",
		Street: "12 MG Road", City: "Pune", State: "Maharashtra",
		PostalCode: "411001", Country: "India",
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	seedBuyer(t, db, "user-1", nil)
	r := newPaymentRouter(db, &stubGateway{}, "user-1")

	w := postJSON(t, r, "/payment/checkout", checkoutForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutRejectsIncompleteShipping(t *testing.T) {
	db := setupTestDB(t)
	seedBuyer(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Urban Rhythms", Price: 35000, Quantity: 1},
	})
	r := newPaymentRouter(db, &stubGateway{}, "user-1")

	form := checkoutForm()
	form.PostalCode = ""
	w := postJSON(t, r, "/payment/checkout", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutOpensSessionWithMinorUnits(t *testing.T) {
	db := setupTestDB(t)
	seedBuyer(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Mystic Ganges at Dawn", Price: 45000, Quantity: 2},
	})
	gw := &stubGateway{}
	r := newPaymentRouter(db, gw, "user-1")

	w := postJSON(t, r, "/payment/checkout", checkoutForm())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "order_stub_1", resp["gateway_order_id"])
	assert.EqualValues(t, 90000*100, gw.lastAmt)

	var session models.CheckoutSession
	require.NoError(t, db.Where("gateway_order_id = ?", "order_stub_1").First(&session).Error)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, models.CheckoutStatusPending, session.Status)
	assert.Equal(t, "Pune", session.Shipping.City)

	// Opening a checkout must not consume the cart
	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}

func TestVerifyBadSignatureLeavesCartUntouched(t *testing.T) {
	db := setupTestDB(t)
	seedBuyer(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Heritage Echoes", Price: 65000, Quantity: 1},
	})
	gw := &stubGateway{}
	r := newPaymentRouter(db, gw, "user-1")

	w := postJSON(t, r, "/payment/checkout", checkoutForm())
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/payment/verify", VerifyRequest{
		GatewayOrderID: "order_stub_1",
		PaymentID:      "pay_1",
		Signature:      "forged",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 0, orders)
}

func TestVerifySuccessPlacesOrder(t *testing.T) {
	db := setupTestDB(t)
	seedBuyer(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Himalayan Serenity", Price: 52000, Quantity: 1},
	})
	gw := &stubGateway{}
	r := newPaymentRouter(db, gw, "user-1")

	w := postJSON(t, r, "/payment/checkout", checkoutForm())
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/payment/verify", VerifyRequest{
		GatewayOrderID: "order_stub_1",
		PaymentID:      "pay_1",
		Signature:      "sig:order_stub_1:pay_1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "pay_1", order.PaymentID)
	assert.EqualValues(t, 52000, order.TotalAmount)
	assert.Equal(t, "411001", order.Shipping.PostalCode)

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&remaining).Error)
	assert.EqualValues(t, 0, remaining)

	var session models.CheckoutSession
	require.NoError(t, db.Where("gateway_order_id = ?", "order_stub_1").First(&session).Error)
	assert.Equal(t, models.CheckoutStatusCompleted, session.Status)

	// Replaying the callback must not place a second order
	w = postJSON(t, r, "/payment/verify", VerifyRequest{
		GatewayOrderID: "order_stub_1",
		PaymentID:      "pay_1",
		Signature:      "sig:order_stub_1:pay_1",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 1, orders)
}

func TestVerifyUnknownSession(t *testing.T) {
	db := setupTestDB(t)
	seedBuyer(t, db, "user-1", nil)
	r := newPaymentRouter(db, &stubGateway{}, "user-1")

	w := postJSON(t, r, "/payment/verify", VerifyRequest{
		GatewayOrderID: "order_ghost",
		PaymentID:      "pay_1",
		Signature:      "sig:order_ghost:pay_1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func webhookBody(event, orderID, paymentID string) gin.H {
	return gin.H{
		"event": event,
		"payload": gin.H{
			"payment": gin.H{
				"entity": gin.H{
					"id":       paymentID,
					"order_id": orderID,
					"status":   "captured",
				},
			},
		},
	}
}

func TestWebhookPlacesOrderWhenCallbackNeverArrived(t *testing.T) {
	db := setupTestDB(t)
	seedBuyer(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Monsoon Melodies", Price: 28000, Quantity: 1},
	})
	gw := &stubGateway{}
	r := newPaymentRouter(db, gw, "user-1")

	w := postJSON(t, r, "/payment/checkout", checkoutForm())
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/payment/webhook", webhookBody("payment.captured", "order_stub_1", "pay_wh_1"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, "pay_wh_1", order.PaymentID)
}

func TestWebhookAfterVerifyIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	seedBuyer(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Village Chronicles", Price: 38000, Quantity: 1},
	})
	gw := &stubGateway{}
	r := newPaymentRouter(db, gw, "user-1")

	postJSON(t, r, "/payment/checkout", checkoutForm())
	w := postJSON(t, r, "/payment/verify", VerifyRequest{
		GatewayOrderID: "order_stub_1",
		PaymentID:      "pay_1",
		Signature:      "sig:order_stub_1:pay_1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, r, "/payment/webhook", webhookBody("payment.captured", "order_stub_1", "pay_1"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 1, orders)
}

func TestWebhookIgnoresFailedPayments(t *testing.T) {
	db := setupTestDB(t)
	seedBuyer(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Dancing Light", Price: 42000, Quantity: 1},
	})
	gw := &stubGateway{}
	r := newPaymentRouter(db, gw, "user-1")

	postJSON(t, r, "/payment/checkout", checkoutForm())
	w := postJSON(t, r, "/payment/webhook", webhookBody("payment.failed", "order_stub_1", "pay_1"))
	require.Equal(t, http.StatusOK, w.Code)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 0, orders)
}

func TestRazorpaySignatureVerification(t *testing.T) {
	gw := &razorpayGateway{keySecret: "test_secret"}

	mac := hmac.New(sha256.New, []byte("test_secret"))
	mac.Write([]byte("order_abc|pay_xyz"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, gw.VerifySignature("order_abc", "pay_xyz", valid))
	assert.False(t, gw.VerifySignature("order_abc", "pay_xyz", "deadbeef"))
	assert.False(t, gw.VerifySignature("order_other", "pay_xyz", valid))
}
