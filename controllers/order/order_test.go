package orderControllers

import (
	"bytes"
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
	))
	return db
}

func seedUserWithCart(t *testing.T, db *gorm.DB, userID string, items []models.CartItem) {
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

func testShipping() models.ShippingAddress {
	return models.ShippingAddress{
		Name: "Buyer One", Phone: "9876543210", Email: "buyer@example.com",
		Street: "12 MG Road", City: "Pune", State: "Maharashtra",
		PostalCode: "411001", Country: "India",
	}
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	db := setupTestDB(t)
	seedUserWithCart(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Mystic Ganges at Dawn", Price: 45000, Quantity: 2},
		{ArtworkID: 2, ArtworkTitle: "Heritage Echoes", Price: 65000, Quantity: 1},
	})

	order, err := PlaceOrder(db, PlaceOrderInput{
		UserID:        "user-1",
		PaymentID:     "pay_123",
		PaymentStatus: models.PaymentStatusPaid,
		Shipping:      testShipping(),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.OrderRef)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	assert.EqualValues(t, 45000*2+65000, order.TotalAmount)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "Pune", order.Shipping.City)

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&remaining).Error)
	assert.EqualValues(t, 0, remaining)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	seedUserWithCart(t, db, "user-1", nil)

	_, err := PlaceOrder(db, PlaceOrderInput{UserID: "user-1", Shipping: testShipping()})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderAbortsWhenArtworkUnavailable(t *testing.T) {
	db := setupTestDB(t)
	seedUserWithCart(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Urban Rhythms", Price: 35000, Quantity: 1},
	})
	require.NoError(t, db.Model(&models.Artwork{}).Where("id = ?", 1).Update("in_stock", false).Error)

	_, err := PlaceOrder(db, PlaceOrderInput{UserID: "user-1", Shipping: testShipping()})
	require.Error(t, err)

	// The failed order must not consume the cart
	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 0, orders)
}

func TestPlaceOrderMarksSoldWhenConfigured(t *testing.T) {
	t.Setenv("MARK_SOLD_ON_PURCHASE", "true")
	db := setupTestDB(t)
	seedUserWithCart(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Himalayan Serenity", Price: 52000, Quantity: 1},
	})

	_, err := PlaceOrder(db, PlaceOrderInput{UserID: "user-1", Shipping: testShipping()})
	require.NoError(t, err)

	var artwork models.Artwork
	require.NoError(t, db.First(&artwork, "id = ?", 1).Error)
	assert.False(t, artwork.InStock)
}

func TestValidTransition(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		ok       bool
	}{
		{models.OrderStatusPending, models.OrderStatusProcessing, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusPending, models.OrderStatusShipped, false},
		{models.OrderStatusPending, models.OrderStatusDelivered, false},
		{models.OrderStatusProcessing, models.OrderStatusShipped, true},
		{models.OrderStatusProcessing, models.OrderStatusCancelled, true},
		{models.OrderStatusProcessing, models.OrderStatusDelivered, false},
		{models.OrderStatusShipped, models.OrderStatusDelivered, true},
		{models.OrderStatusShipped, models.OrderStatusCancelled, false},
		{models.OrderStatusDelivered, models.OrderStatusProcessing, false},
		{models.OrderStatusCancelled, models.OrderStatusProcessing, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, validTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func newOrderRouter(db *gorm.DB, userID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
	})
	r.GET("/orders/mine", GetUserOrdersHandler(db))
	r.GET("/orders/:orderID", GetOrderByIDHandler(db))
	r.PUT("/orders/:orderID/status", UpdateOrderStatusHandler(db))
	return r
}

func putStatus(t *testing.T, r *gin.Engine, orderID uint, status string) *httptest.ResponseRecorder {
	t.Helper()
	data, _ := json.Marshal(UpdateOrderStatusRequest{Status: status})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/orders/%d/status", orderID), bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateOrderStatusFollowsChain(t *testing.T) {
	db := setupTestDB(t)
	seedUserWithCart(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Monsoon Melodies", Price: 28000, Quantity: 1},
	})
	order, err := PlaceOrder(db, PlaceOrderInput{UserID: "user-1", Shipping: testShipping()})
	require.NoError(t, err)

	r := newOrderRouter(db, "admin-1", "admin")

	// Skipping straight to shipped is rejected
	w := putStatus(t, r, order.ID, "shipped")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, status := range []string{"processing", "shipped", "delivered"} {
		w = putStatus(t, r, order.ID, status)
		require.Equal(t, http.StatusOK, w.Code, "advancing to %s: %s", status, w.Body.String())
	}

	// Delivered is terminal
	w = putStatus(t, r, order.ID, "cancelled")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var got models.Order
	require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	seedUserWithCart(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Village Chronicles", Price: 38000, Quantity: 1},
	})
	order, err := PlaceOrder(db, PlaceOrderInput{UserID: "user-1", Shipping: testShipping()})
	require.NoError(t, err)

	r := newOrderRouter(db, "admin-1", "admin")
	w := putStatus(t, r, order.ID, "teleported")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderByRefRestrictedToOwner(t *testing.T) {
	db := setupTestDB(t)
	seedUserWithCart(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Dancing Light", Price: 42000, Quantity: 1},
	})
	order, err := PlaceOrder(db, PlaceOrderInput{UserID: "user-1", Shipping: testShipping()})
	require.NoError(t, err)

	owner := newOrderRouter(db, "user-1", "user")
	req := httptest.NewRequest(http.MethodGet, "/orders/"+order.OrderRef, nil)
	w := httptest.NewRecorder()
	owner.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stranger := newOrderRouter(db, "user-2", "user")
	req = httptest.NewRequest(http.MethodGet, "/orders/"+order.OrderRef, nil)
	w = httptest.NewRecorder()
	stranger.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := newOrderRouter(db, "admin-1", "admin")
	req = httptest.NewRequest(http.MethodGet, "/orders/"+order.OrderRef, nil)
	w = httptest.NewRecorder()
	admin.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetUserOrdersOnlyOwn(t *testing.T) {
	db := setupTestDB(t)
	seedUserWithCart(t, db, "user-1", []models.CartItem{
		{ArtworkID: 1, ArtworkTitle: "Cosmic Reflections", Price: 55000, Quantity: 1},
	})
	_, err := PlaceOrder(db, PlaceOrderInput{UserID: "user-1", Shipping: testShipping()})
	require.NoError(t, err)

	r := newOrderRouter(db, "user-2", "user")
	req := httptest.NewRequest(http.MethodGet, "/orders/mine", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Empty(t, orders)
}
