package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ashurstore/commerce-api/internal/cart"
	"go.uber.org/zap"
)

type memOrderStorage struct {
	orders map[string]Order
}

func newMemOrderStorage() *memOrderStorage {
	return &memOrderStorage{orders: map[string]Order{}}
}

func (m *memOrderStorage) Create(ctx context.Context, o Order) error {
	if _, exists := m.orders[o.OrderID]; exists {
		return errors.New("order id already exists")
	}
	m.orders[o.OrderID] = o
	return nil
}

func (m *memOrderStorage) Get(ctx context.Context, orderID string) (*Order, error) {
	o, ok := m.orders[orderID]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (m *memOrderStorage) Save(ctx context.Context, o Order) error {
	m.orders[o.OrderID] = o
	return nil
}

func (m *memOrderStorage) Delete(ctx context.Context, orderID string) (*Order, error) {
	o, ok := m.orders[orderID]
	if !ok {
		return nil, nil
	}
	delete(m.orders, orderID)
	return &o, nil
}

func (m *memOrderStorage) List(ctx context.Context) ([]Order, error) {
	out := make([]Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrderStorage) ListByDay(ctx context.Context, day time.Time) ([]Order, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	var out []Order
	for _, o := range m.orders {
		if !o.CreatedAt.Before(start) && o.CreatedAt.Before(end) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeCartSource struct {
	carts   map[string]*cart.Cart
	cleared []string
}

func (f *fakeCartSource) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	c, ok := f.carts[sessionID]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	return c, nil
}

func (f *fakeCartSource) Clear(ctx context.Context, sessionID string) error {
	delete(f.carts, sessionID)
	f.cleared = append(f.cleared, sessionID)
	return nil
}

type recordingNotifier struct {
	placed   []string
	verified []string
	fail     bool
}

func (n *recordingNotifier) OrderPlaced(ctx context.Context, o Order) error {
	if n.fail {
		return errors.New("smtp down")
	}
	n.placed = append(n.placed, o.OrderID)
	return nil
}

func (n *recordingNotifier) OrderVerified(ctx context.Context, o Order) error {
	if n.fail {
		return errors.New("smtp down")
	}
	n.verified = append(n.verified, o.OrderID)
	return nil
}

type nopMetrics struct{}

func (nopMetrics) Count(ctx context.Context, name string, value float64) {}

var testNow = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

func testFixture() (*Service, *memOrderStorage, *fakeCartSource, *recordingNotifier) {
	store := newMemOrderStorage()
	carts := &fakeCartSource{carts: map[string]*cart.Cart{
		"sess-1": {
			SessionID: "sess-1",
			Items: []cart.Item{
				{ReferenceID: "prod-1", Type: cart.ItemTypeProduct, Quantity: 3, Price: 10.00},
				{ReferenceID: "offer-1", Type: cart.ItemTypeOffer, Quantity: 1, Price: 15.00},
			},
		},
	}}
	notifier := &recordingNotifier{}

	svc := NewService(store, carts, notifier, nopMetrics{}, zap.NewNop())
	svc.nowFunc = func() time.Time { return testNow }
	svc.otpFunc = func() (string, error) { return "042137", nil }
	return svc, store, carts, notifier
}

var customer = CustomerDetails{
	Name:    "Sara Oda",
	Phone:   "07701234567",
	Email:   "sara@example.com",
	City:    "Erbil",
	Country: "Iraq",
}

func TestPlace_EmptyCart(t *testing.T) {
	svc, _, _, _ := testFixture()

	_, err := svc.Place(context.Background(), "sess-none", customer)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestPlace_Success(t *testing.T) {
	svc, store, carts, notifier := testFixture()

	id, err := svc.Place(context.Background(), "sess-1", customer)
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	o, ok := store.orders[id]
	if !ok {
		t.Fatalf("order not persisted")
	}
	if o.Status != StatusPendingVerification {
		t.Fatalf("expected status %s, got %s", StatusPendingVerification, o.Status)
	}
	if o.TotalAmount != 45.00 {
		t.Fatalf("expected total 45.00, got %v", o.TotalAmount)
	}
	if len(o.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(o.Lines))
	}
	if o.OTPCode != "042137" {
		t.Fatalf("unexpected otp %q", o.OTPCode)
	}
	if !o.OTPExpiresAt.Equal(testNow.Add(15 * time.Minute)) {
		t.Fatalf("expected expiry %v, got %v", testNow.Add(15*time.Minute), o.OTPExpiresAt)
	}
	if o.Verified {
		t.Fatalf("new order must not be verified")
	}

	if len(carts.cleared) != 1 || carts.cleared[0] != "sess-1" {
		t.Fatalf("cart was not cleared: %v", carts.cleared)
	}
	if len(notifier.placed) != 1 || notifier.placed[0] != id {
		t.Fatalf("verification email not dispatched: %v", notifier.placed)
	}
}

func TestPlace_NotifierFailureDoesNotFailPlacement(t *testing.T) {
	svc, store, _, notifier := testFixture()
	notifier.fail = true

	id, err := svc.Place(context.Background(), "sess-1", customer)
	if err != nil {
		t.Fatalf("place should succeed despite notifier failure: %v", err)
	}
	if _, ok := store.orders[id]; !ok {
		t.Fatalf("order not persisted")
	}
}

func TestVerify_Success(t *testing.T) {
	svc, store, _, notifier := testFixture()
	id, _ := svc.Place(context.Background(), "sess-1", customer)

	if err := svc.Verify(context.Background(), id, "042137"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	o := store.orders[id]
	if !o.Verified {
		t.Fatalf("order should be verified")
	}
	if o.Status != StatusConfirmed {
		t.Fatalf("expected status %s, got %s", StatusConfirmed, o.Status)
	}
	if len(notifier.verified) != 1 {
		t.Fatalf("admin notification not dispatched")
	}
}

func TestVerify_NotFound(t *testing.T) {
	svc, _, _, _ := testFixture()

	err := svc.Verify(context.Background(), "no-such-order", "042137")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestVerify_AlreadyVerified(t *testing.T) {
	svc, _, _, _ := testFixture()
	id, _ := svc.Place(context.Background(), "sess-1", customer)
	svc.Verify(context.Background(), id, "042137")

	err := svc.Verify(context.Background(), id, "042137")
	if !errors.Is(err, ErrAlreadyVerified) {
		t.Fatalf("expected ErrAlreadyVerified, got %v", err)
	}
}

func TestVerify_InvalidOTP(t *testing.T) {
	svc, _, _, _ := testFixture()
	id, _ := svc.Place(context.Background(), "sess-1", customer)

	err := svc.Verify(context.Background(), id, "999999")
	if !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	svc, _, _, _ := testFixture()
	id, _ := svc.Place(context.Background(), "sess-1", customer)

	svc.nowFunc = func() time.Time { return testNow.Add(16 * time.Minute) }
	err := svc.Verify(context.Background(), id, "042137")
	if !errors.Is(err, ErrOTPExpired) {
		t.Fatalf("expected ErrOTPExpired, got %v", err)
	}
}

func TestVerify_WrongCodeBeatsExpiry(t *testing.T) {
	svc, _, _, _ := testFixture()
	id, _ := svc.Place(context.Background(), "sess-1", customer)

	// Both wrong and expired: the code mismatch is reported.
	svc.nowFunc = func() time.Time { return testNow.Add(time.Hour) }
	err := svc.Verify(context.Background(), id, "999999")
	if !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, store, _, _ := testFixture()
	id, _ := svc.Place(context.Background(), "sess-1", customer)

	o, err := svc.UpdateStatus(context.Background(), id, StatusShipped, "left warehouse")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if o.Status != StatusShipped || o.AdminComment != "left warehouse" {
		t.Fatalf("unexpected order after update: %+v", o)
	}

	// Any status is reachable from any status; empty comment keeps the old one.
	o, err = svc.UpdateStatus(context.Background(), id, StatusPendingVerification, "")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if o.Status != StatusPendingVerification {
		t.Fatalf("expected status reset, got %s", o.Status)
	}
	if o.AdminComment != "left warehouse" {
		t.Fatalf("empty comment must keep previous, got %q", o.AdminComment)
	}

	// Total is never recomputed by status changes.
	if store.orders[id].TotalAmount != 45.00 {
		t.Fatalf("total amount changed: %v", store.orders[id].TotalAmount)
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _ := testFixture()
	id, _ := svc.Place(context.Background(), "sess-1", customer)

	_, err := svc.UpdateStatus(context.Background(), id, "Teleported", "")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc, _, _, _ := testFixture()

	_, err := svc.UpdateStatus(context.Background(), "no-such-order", StatusShipped, "")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc, _, _, _ := testFixture()

	err := svc.Delete(context.Background(), "no-such-order")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestFilterByDay(t *testing.T) {
	svc, _, _, _ := testFixture()
	svc.Place(context.Background(), "sess-1", customer)

	matched, err := svc.FilterByDay(context.Background(), testNow)
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("expected 1 order, got %d", len(matched))
	}

	_, err = svc.FilterByDay(context.Background(), testNow.AddDate(0, 0, 1))
	if !errors.Is(err, ErrNoOrdersForDate) {
		t.Fatalf("expected ErrNoOrdersForDate, got %v", err)
	}
}
