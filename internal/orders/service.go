package orders

import (
	"context"
	"errors"
	"time"

	"github.com/ashurstore/commerce-api/internal/cart"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Storage is the order persistence seam; *Store implements it.
type Storage interface {
	Create(ctx context.Context, o Order) error
	Get(ctx context.Context, orderID string) (*Order, error)
	Save(ctx context.Context, o Order) error
	Delete(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByDay(ctx context.Context, day time.Time) ([]Order, error)
}

// CartSource is the slice of the cart service the lifecycle consumes: a
// snapshot read at placement and the delete-on-success afterwards.
type CartSource interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// Notifier dispatches the verification and admin emails. Delivery is
// best-effort: failures are logged by the service and never surfaced once
// the order write succeeded.
type Notifier interface {
	OrderPlaced(ctx context.Context, o Order) error
	OrderVerified(ctx context.Context, o Order) error
}

// MetricSink records business counters, best-effort.
type MetricSink interface {
	Count(ctx context.Context, name string, value float64)
}

// Service implements the order lifecycle: placement with cart consumption,
// OTP verification, admin status overrides, and deletion.
type Service struct {
	store   Storage
	carts   CartSource
	notify  Notifier
	metrics MetricSink
	logger  *zap.Logger

	nowFunc func() time.Time
	otpFunc func() (string, error)
}

func NewService(store Storage, carts CartSource, notify Notifier, metrics MetricSink, logger *zap.Logger) *Service {
	return &Service{
		store:   store,
		carts:   carts,
		notify:  notify,
		metrics: metrics,
		logger:  logger,
		nowFunc: time.Now,
		otpFunc: GenerateOTP,
	}
}

// Place converts the session's cart into an order. The order is persisted
// first; only on success is the cart deleted, so a crash in between can
// leave both documents present (the accepted inconsistency window). The
// verification email is dispatched after persistence and its failure does
// not fail the placement.
func (s *Service) Place(ctx context.Context, sessionID string, customer CustomerDetails) (string, error) {
	c, err := s.carts.Get(ctx, sessionID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return "", ErrEmptyCart
	}
	if err != nil {
		return "", err
	}
	if c == nil || len(c.Items) == 0 {
		return "", ErrEmptyCart
	}

	otp, err := s.otpFunc()
	if err != nil {
		return "", err
	}

	now := s.nowFunc().UTC()
	lines := make([]Line, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, Line{
			ReferenceID: it.ReferenceID,
			Type:        it.Type,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}

	o := Order{
		OrderID:      uuid.NewString(),
		SessionID:    sessionID,
		Customer:     customer,
		Lines:        lines,
		TotalAmount:  c.Total(),
		Status:       StatusPendingVerification,
		OTPCode:      otp,
		OTPExpiresAt: now.Add(OTPValidity),
		Verified:     false,
		CreatedAt:    now,
	}

	if err := s.store.Create(ctx, o); err != nil {
		// Cart stays intact when the order write fails.
		return "", err
	}
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		// The order exists; log the stranded cart and move on.
		s.logger.Error("cart delete after order create failed",
			zap.String("order_id", o.OrderID),
			zap.String("session_id", sessionID),
			zap.Error(err))
	}

	if err := s.notify.OrderPlaced(ctx, o); err != nil {
		s.logger.Warn("verification email dispatch failed",
			zap.String("order_id", o.OrderID), zap.Error(err))
	}
	s.metrics.Count(ctx, "OrdersPlaced", 1)

	s.logger.Info("order placed",
		zap.String("order_id", o.OrderID),
		zap.Float64("total_amount", o.TotalAmount))
	return o.OrderID, nil
}

// Verify checks the supplied OTP and confirms the order. Repeated calls
// after success fail with ErrAlreadyVerified rather than being accepted.
func (s *Service) Verify(ctx context.Context, orderID, suppliedOTP string) error {
	o, err := s.store.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrOrderNotFound
	}
	if o.Verified {
		return ErrAlreadyVerified
	}
	if o.OTPCode != suppliedOTP {
		return ErrInvalidOTP
	}
	if s.nowFunc().After(o.OTPExpiresAt) {
		return ErrOTPExpired
	}

	o.Verified = true
	o.Status = StatusConfirmed
	if err := s.store.Save(ctx, *o); err != nil {
		return err
	}

	if err := s.notify.OrderVerified(ctx, *o); err != nil {
		s.logger.Warn("admin notification dispatch failed",
			zap.String("order_id", orderID), zap.Error(err))
	}
	s.metrics.Count(ctx, "OrdersVerified", 1)

	s.logger.Info("order verified", zap.String("order_id", orderID))
	return nil
}

// UpdateStatus sets the status unconditionally; any status is reachable
// from any status by admin action. comment, when non-empty, overwrites the
// admin comment.
func (s *Service) UpdateStatus(ctx context.Context, orderID, newStatus, comment string) (*Order, error) {
	if !ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}
	o, err := s.store.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	o.Status = newStatus
	if comment != "" {
		o.AdminComment = comment
	}
	if err := s.store.Save(ctx, *o); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete hard-deletes the order.
func (s *Service) Delete(ctx context.Context, orderID string) error {
	o, err := s.store.Delete(ctx, orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrOrderNotFound
	}
	return nil
}

// Get returns a single order.
func (s *Service) Get(ctx context.Context, orderID string) (*Order, error) {
	o, err := s.store.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// List returns every order.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.store.List(ctx)
}

// FilterByDay returns the orders created on the given day, or
// ErrNoOrdersForDate when the day is empty.
func (s *Service) FilterByDay(ctx context.Context, day time.Time) ([]Order, error) {
	matched, err := s.store.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, ErrNoOrdersForDate
	}
	return matched, nil
}
