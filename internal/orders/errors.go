package orders

import "errors"

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOrderNotFound   = errors.New("order not found")
	ErrAlreadyVerified = errors.New("order already verified")
	ErrInvalidOTP      = errors.New("invalid OTP")
	ErrOTPExpired      = errors.New("OTP expired, place a new order")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrNoOrdersForDate = errors.New("no orders found for the date")
)
