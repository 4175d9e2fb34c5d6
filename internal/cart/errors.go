package cart

import "errors"

var (
	ErrInvalidItemType = errors.New("invalid item type")
	ErrItemNotFound    = errors.New("item not found in catalog")
	ErrDuplicateItem   = errors.New("item already in cart")
	ErrItemNotInCart   = errors.New("item not in the cart")
	ErrCartNotFound    = errors.New("cart not found")
)
