package models

import "time"

type CheckoutStatus string

const (
	CheckoutStatusPending   CheckoutStatus = "pending"
	CheckoutStatusCompleted CheckoutStatus = "completed"
)

// CheckoutSession bridges the gap between creating a gateway order
// and the widget's success callback: the shipping address collected
// at checkout has to survive until the payment is verified.
type CheckoutSession struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	GatewayOrderID string          `gorm:"uniqueIndex;not null" json:"gateway_order_id"`
	UserID         string          `gorm:"index;not null" json:"user_id"`
	Amount         int64           `json:"amount"` // minor units
	Currency       string          `json:"currency"`
	Shipping       ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	Status         CheckoutStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}
