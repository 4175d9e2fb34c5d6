package cart

import (
	"context"
	"errors"

	"github.com/ashurstore/commerce-api/internal/catalog"
	"go.uber.org/zap"
)

// Storage is the cart persistence seam; *Store implements it.
type Storage interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Put(ctx context.Context, c Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// PriceSource resolves the current catalog price for a cart line.
// catalog.Service implements it.
type PriceSource interface {
	ProductPrice(ctx context.Context, productID string) (float64, error)
	OfferPrice(ctx context.Context, offerID string) (float64, error)
}

// Service implements the cart operations: add with price capture, remove,
// quantity updates, and clear.
type Service struct {
	store  Storage
	prices PriceSource
	logger *zap.Logger
}

func NewService(store Storage, prices PriceSource, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		prices: prices,
		logger: logger,
	}
}

// Add appends a line to the session's cart, creating the cart lazily. The
// catalog's current price is captured into the line; adding the same
// (referenceID, type) twice is rejected rather than merged.
func (s *Service) Add(ctx context.Context, sessionID, referenceID string, itemType ItemType, quantity int) (*Cart, error) {
	if !itemType.Valid() {
		return nil, ErrInvalidItemType
	}

	price, err := s.resolvePrice(ctx, referenceID, itemType)
	if err != nil {
		return nil, err
	}

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = &Cart{SessionID: sessionID}
	}

	if c.find(referenceID, itemType) >= 0 {
		return nil, ErrDuplicateItem
	}

	c.Items = append(c.Items, Item{
		ReferenceID: referenceID,
		Type:        itemType,
		Quantity:    quantity,
		Price:       price,
	})
	if err := s.store.Put(ctx, *c); err != nil {
		return nil, err
	}
	s.logger.Debug("cart item added",
		zap.String("session_id", sessionID),
		zap.String("reference_id", referenceID),
		zap.String("item_type", string(itemType)))
	return c, nil
}

// Get returns the session's cart, or ErrCartNotFound when none exists.
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

// Remove drops the matching line from the cart.
func (s *Service) Remove(ctx context.Context, sessionID, referenceID string, itemType ItemType) (*Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}

	i := c.find(referenceID, itemType)
	if i < 0 {
		return nil, ErrItemNotInCart
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)

	if err := s.store.Put(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity sets the line quantity; quantity <= 0 removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, referenceID string, itemType ItemType, quantity int) (*Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}

	i := c.find(referenceID, itemType)
	if i < 0 {
		return nil, ErrItemNotInCart
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	} else {
		c.Items[i].Quantity = quantity
	}

	if err := s.store.Put(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear destroys the session's cart; clearing an absent cart succeeds.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *Service) resolvePrice(ctx context.Context, referenceID string, itemType ItemType) (float64, error) {
	var price float64
	var err error
	switch itemType {
	case ItemTypeProduct:
		price, err = s.prices.ProductPrice(ctx, referenceID)
	case ItemTypeOffer:
		price, err = s.prices.OfferPrice(ctx, referenceID)
	}
	if errors.Is(err, catalog.ErrProductNotFound) || errors.Is(err, catalog.ErrOfferNotFound) {
		return 0, ErrItemNotFound
	}
	if err != nil {
		return 0, err
	}
	return price, nil
}
