package validation

import "testing"

func TestAddToCartRequest_Valid(t *testing.T) {
	v := New()

	req := AddToCartRequest{
		ItemID:   "prod-1",
		Type:     "Product",
		Quantity: 2,
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}

	req.Type = "Offer"
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected Offer to be valid, got error: %v", err)
	}
}

func TestAddToCartRequest_UnknownType(t *testing.T) {
	v := New()

	req := AddToCartRequest{
		ItemID:   "prod-1",
		Type:     "Bundle",
		Quantity: 1,
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for unknown item type, got nil")
	}
}

func TestAddToCartRequest_ZeroQuantity(t *testing.T) {
	v := New()

	req := AddToCartRequest{
		ItemID:   "prod-1",
		Type:     "Product",
		Quantity: 0,
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for zero quantity, got nil")
	}
}

func TestUpdateQuantityRequest_ZeroAllowed(t *testing.T) {
	v := New()

	// zero quantity removes the line, so it must pass validation
	zero := 0
	req := UpdateQuantityRequest{
		ItemID:   "prod-1",
		Type:     "Product",
		Quantity: &zero,
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected zero quantity to be valid, got error: %v", err)
	}

	req.Quantity = nil
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for missing quantity, got nil")
	}
}

func TestPlaceOrderRequest_MissingFields(t *testing.T) {
	v := New()

	req := PlaceOrderRequest{
		// Name missing
		Phone: "07701234567",
		Email: "not-an-email",
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation errors for missing fields and bad email, got nil")
	}
}

func TestVerifyOTPRequest(t *testing.T) {
	v := New()

	req := VerifyOTPRequest{OrderID: "order-1", OTP: "042137"}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}

	req.OTP = "12345"
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for short otp, got nil")
	}

	req.OTP = "12345a"
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for non-numeric otp, got nil")
	}
}

func TestCreateProductRequest(t *testing.T) {
	v := New()

	req := CreateProductRequest{
		Name:        "Walnut Desk",
		ItemNumber:  "WD-100",
		Description: "Solid walnut desk",
		Price:       120,
		CategoryID:  "cat-1",
	}
	if err := v.Struct(req); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}

	req.Price = 0
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for zero price, got nil")
	}
}

func TestCreateOfferRequest_EmptyBundle(t *testing.T) {
	v := New()

	req := CreateOfferRequest{
		Title:        "Starter Set",
		ProductIDs:   []string{},
		SpecialPrice: 99,
	}
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for empty product list, got nil")
	}
}
