package validation

// AddToCartRequest is the payload for POST /cart/add-to-cart.
type AddToCartRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Type     string `json:"type" validate:"required,itemtype"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// RemoveFromCartRequest is the payload for POST /cart/delete-from-cart.
type RemoveFromCartRequest struct {
	ItemID string `json:"itemId" validate:"required"`
	Type   string `json:"type" validate:"required,itemtype"`
}

// UpdateQuantityRequest is the payload for PUT /cart/quantity. Quantity may
// be zero or negative; that removes the line.
type UpdateQuantityRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Type     string `json:"type" validate:"required,itemtype"`
	Quantity *int   `json:"quantity" validate:"required"`
}

// PlaceOrderRequest is the payload for POST /orders/place-order.
type PlaceOrderRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"number" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// VerifyOTPRequest is the payload for POST /orders/verify-OTP.
type VerifyOTPRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	OTP     string `json:"otp" validate:"required,len=6,numeric"`
}

// UpdateOrderStatusRequest is the payload for PUT /orders/update-order-status/:orderId.
type UpdateOrderStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	Comment string `json:"comment,omitempty"`
}

// CustomDetailInput mirrors catalog.CustomDetail on the wire.
type CustomDetailInput struct {
	Title   string      `json:"title" validate:"required"`
	Value   interface{} `json:"value"`
	Display bool        `json:"display"`
}

// CreateProductRequest is the payload for POST /products/add-product.
type CreateProductRequest struct {
	Name          string              `json:"name" validate:"required"`
	ItemNumber    string              `json:"itemNumber" validate:"required"`
	Description   string              `json:"description" validate:"required"`
	Price         float64             `json:"price" validate:"required,gt=0"`
	CategoryID    string              `json:"categoryId" validate:"required"`
	Images        []string            `json:"images,omitempty"`
	CustomDetails []CustomDetailInput `json:"customDetails,omitempty" validate:"omitempty,dive"`
}

// UpdateProductRequest is the payload for PUT /products/edit-product/:productId.
type UpdateProductRequest struct {
	Name          *string             `json:"name,omitempty"`
	Description   *string             `json:"description,omitempty"`
	Price         *float64            `json:"price,omitempty" validate:"omitempty,gt=0"`
	CategoryID    *string             `json:"categoryId,omitempty"`
	AddImages     []string            `json:"imageUrls,omitempty"`
	RemoveImages  []string            `json:"imagesToRemove,omitempty"`
	CustomDetails []CustomDetailInput `json:"customDetails,omitempty" validate:"omitempty,dive"`
}

// CreateCategoryRequest is the payload for POST /categories/add-category.
type CreateCategoryRequest struct {
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	SubCategoryIDs []string `json:"subCategories,omitempty"`
}

// UpdateCategoryRequest is the payload for PUT /categories/edit-category/:categoryId.
type UpdateCategoryRequest struct {
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	SubCategoryIDs []string `json:"subCategories,omitempty"`
}

// CreateOfferRequest is the payload for POST /offers/create-offer.
type CreateOfferRequest struct {
	Title        string   `json:"title" validate:"required"`
	ProductIDs   []string `json:"products" validate:"required,min=1"`
	SpecialPrice float64  `json:"specialPrice" validate:"required,gt=0"`
	Image        string   `json:"imageUrl,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// UpdateOfferRequest is the payload for PUT /offers/update-offer/:offerId.
type UpdateOfferRequest struct {
	Title            *string  `json:"title,omitempty"`
	SpecialPrice     *float64 `json:"specialPrice,omitempty" validate:"omitempty,gt=0"`
	Image            *string  `json:"imageUrl,omitempty"`
	Description      *string  `json:"description,omitempty"`
	ProductIDs       []string `json:"products,omitempty"`
	AddProductIDs    []string `json:"addProducts,omitempty"`
	RemoveProductIDs []string `json:"removeProducts,omitempty"`
}
