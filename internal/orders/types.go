package orders

import (
	"time"

	"github.com/ashurstore/commerce-api/internal/cart"
)

// Order statuses. PendingVerification is always the initial status; any
// status may be overwritten by an explicit admin update, so no adjacency is
// enforced beyond the vocabulary itself.
const (
	StatusPendingVerification = "PendingVerification"
	StatusConfirmed           = "Confirmed"
	StatusShipped             = "Shipped"
	StatusDelivered           = "Delivered"
	StatusCancelled           = "Cancelled"
)

// ValidStatus reports whether s is in the fixed status vocabulary.
func ValidStatus(s string) bool {
	switch s {
	case StatusPendingVerification, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CustomerDetails is the checkout contact block captured on the order.
type CustomerDetails struct {
	Name    string `dynamodbav:"name" json:"name"`
	Phone   string `dynamodbav:"phone" json:"phone"`
	Email   string `dynamodbav:"email" json:"email"`
	Address string `dynamodbav:"address,omitempty" json:"address,omitempty"`
	Notes   string `dynamodbav:"notes,omitempty" json:"notes,omitempty"`
	City    string `dynamodbav:"city" json:"city"`
	Country string `dynamodbav:"country" json:"country"`
}

// Line is one order line: an immutable snapshot of a cart item at placement
// time. Later catalog price edits do not touch it.
type Line struct {
	ReferenceID string        `dynamodbav:"reference_id" json:"referenceId"`
	Type        cart.ItemType `dynamodbav:"item_type" json:"type"`
	Quantity    int           `dynamodbav:"quantity" json:"quantity"`
	Price       float64       `dynamodbav:"price" json:"price"`
}

// Order is the item stored in the orders table. TotalAmount is computed once
// at placement and never recomputed; the OTP fields become inert after
// verification succeeds.
type Order struct {
	OrderID      string          `dynamodbav:"order_id" json:"orderId"` // PK
	SessionID    string          `dynamodbav:"session_id" json:"sessionId"`
	Customer     CustomerDetails `dynamodbav:"customer" json:"customer"`
	Lines        []Line          `dynamodbav:"lines" json:"lines"`
	TotalAmount  float64         `dynamodbav:"total_amount" json:"totalAmount"`
	Status       string          `dynamodbav:"status" json:"status"`
	OTPCode      string          `dynamodbav:"otp_code" json:"-"`
	OTPExpiresAt time.Time       `dynamodbav:"otp_expires_at" json:"otpExpiresAt"`
	Verified     bool            `dynamodbav:"verified" json:"verified"`
	AdminComment string          `dynamodbav:"admin_comment,omitempty" json:"adminComment,omitempty"`
	CreatedAt    time.Time       `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt    time.Time       `dynamodbav:"updated_at" json:"updatedAt"`
}
