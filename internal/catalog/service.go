package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service applies the catalog rules on top of the document stores:
// duplicate-name rejection, category-in-use protection, and the
// soft-delete/restore/purge flow for products.
type Service struct {
	products *ProductStore
	deleted  *DeletedProductStore
	cats     *CategoryStore
	offers   *OfferStore
	logger   *zap.Logger
}

func NewService(products *ProductStore, deleted *DeletedProductStore, cats *CategoryStore, offers *OfferStore, logger *zap.Logger) *Service {
	return &Service{
		products: products,
		deleted:  deleted,
		cats:     cats,
		offers:   offers,
		logger:   logger,
	}
}

// ProductInput carries the mutable product fields supplied by the API.
type ProductInput struct {
	Name          string
	ItemNumber    string
	Description   string
	Price         float64
	CategoryID    string
	Images        []string
	CustomDetails []CustomDetail
}

// CreateProduct rejects duplicate names and assigns a fresh id.
func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	existing, err := s.products.FindByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateProductName
	}

	p := Product{
		ProductID:     uuid.NewString(),
		Name:          in.Name,
		ItemNumber:    in.ItemNumber,
		Description:   in.Description,
		Price:         in.Price,
		CategoryID:    in.CategoryID,
		Images:        in.Images,
		CustomDetails: in.CustomDetails,
	}
	if err := s.products.Put(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("product created", zap.String("product_id", p.ProductID), zap.String("name", p.Name))
	return &p, nil
}

func (s *Service) GetProduct(ctx context.Context, productID string) (*Product, error) {
	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.products.List(ctx)
}

// SearchParams narrows ListProducts; zero values mean "no constraint".
type SearchParams struct {
	Query      string
	CategoryID string
	MinPrice   float64
	MaxPrice   float64
}

// SearchProducts filters by free-text query (name, description, exact item
// number), category and price range. The catalog is small enough that the
// filtering happens over a full table read.
func (s *Service) SearchProducts(ctx context.Context, params SearchParams) ([]Product, error) {
	all, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(params.Query)
	matched := make([]Product, 0, len(all))
	for _, p := range all {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.EqualFold(p.ItemNumber, params.Query) {
			continue
		}
		if params.CategoryID != "" && p.CategoryID != params.CategoryID {
			continue
		}
		if params.MinPrice > 0 && p.Price < params.MinPrice {
			continue
		}
		if params.MaxPrice > 0 && p.Price > params.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

// ProductUpdate holds optional field updates; nil means leave unchanged.
type ProductUpdate struct {
	Name          *string
	Description   *string
	Price         *float64
	CategoryID    *string
	AddImages     []string
	RemoveImages  []string
	CustomDetails []CustomDetail
}

func (s *Service) UpdateProduct(ctx context.Context, productID string, upd ProductUpdate) (*Product, error) {
	p, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.CategoryID != nil {
		p.CategoryID = *upd.CategoryID
	}
	if len(upd.RemoveImages) > 0 {
		remove := make(map[string]bool, len(upd.RemoveImages))
		for _, img := range upd.RemoveImages {
			remove[img] = true
		}
		kept := p.Images[:0]
		for _, img := range p.Images {
			if !remove[img] {
				kept = append(kept, img)
			}
		}
		p.Images = kept
	}
	p.Images = append(p.Images, upd.AddImages...)
	if upd.CustomDetails != nil {
		p.CustomDetails = upd.CustomDetails
	}
	if err := s.products.Put(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct moves the product into the deleted-products store, keeping
// its original id so a later restore preserves identity.
func (s *Service) DeleteProduct(ctx context.Context, productID string) (*DeletedProduct, error) {
	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	d := DeletedProduct{
		ProductID:     p.ProductID,
		Name:          p.Name,
		ItemNumber:    p.ItemNumber,
		Description:   p.Description,
		Price:         p.Price,
		CategoryID:    p.CategoryID,
		Images:        p.Images,
		Ratings:       p.Ratings,
		CustomDetails: p.CustomDetails,
	}
	if err := s.deleted.Put(ctx, d); err != nil {
		return nil, err
	}
	if _, err := s.products.Delete(ctx, productID); err != nil {
		return nil, err
	}
	s.logger.Info("product soft-deleted", zap.String("product_id", productID))
	return &d, nil
}

// RestoreProduct moves a soft-deleted product back into the live catalog
// under its original id.
func (s *Service) RestoreProduct(ctx context.Context, productID string) (*Product, error) {
	d, err := s.deleted.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDeletedProductNotFound
	}

	p := Product{
		ProductID:     d.ProductID,
		Name:          d.Name,
		ItemNumber:    d.ItemNumber,
		Description:   d.Description,
		Price:         d.Price,
		CategoryID:    d.CategoryID,
		Images:        d.Images,
		Ratings:       d.Ratings,
		CustomDetails: d.CustomDetails,
	}
	if err := s.products.Put(ctx, p); err != nil {
		return nil, err
	}
	if _, err := s.deleted.Delete(ctx, productID); err != nil {
		return nil, err
	}
	s.logger.Info("product restored", zap.String("product_id", productID))
	return &p, nil
}

func (s *Service) ListDeletedProducts(ctx context.Context) ([]DeletedProduct, error) {
	return s.deleted.List(ctx)
}

// PurgeDeletedProduct permanently erases one soft-deleted product.
func (s *Service) PurgeDeletedProduct(ctx context.Context, productID string) error {
	d, err := s.deleted.Delete(ctx, productID)
	if err != nil {
		return err
	}
	if d == nil {
		return ErrDeletedProductNotFound
	}
	return nil
}

// PurgeAllDeletedProducts erases the whole deleted-products store.
func (s *Service) PurgeAllDeletedProducts(ctx context.Context) (int, error) {
	return s.deleted.DeleteAll(ctx)
}

// CategoryInput carries the mutable category fields.
type CategoryInput struct {
	Name           string
	Description    string
	SubCategoryIDs []string
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	c := Category{
		CategoryID:     uuid.NewString(),
		Name:           in.Name,
		Description:    in.Description,
		SubCategoryIDs: in.SubCategoryIDs,
	}
	if err := s.cats.Put(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) GetCategory(ctx context.Context, categoryID string) (*Category, []Product, error) {
	c, err := s.cats.Get(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, ErrCategoryNotFound
	}
	products, err := s.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	return c, products, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.cats.List(ctx)
}

// CategoryUpdate holds optional field updates; nil means leave unchanged.
type CategoryUpdate struct {
	Name           *string
	Description    *string
	SubCategoryIDs []string
}

func (s *Service) UpdateCategory(ctx context.Context, categoryID string, upd CategoryUpdate) (*Category, error) {
	c, err := s.cats.Get(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.SubCategoryIDs != nil {
		c.SubCategoryIDs = upd.SubCategoryIDs
	}
	if err := s.cats.Put(ctx, *c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory refuses to delete a category any product still references.
func (s *Service) DeleteCategory(ctx context.Context, categoryID string) error {
	inUse, err := s.products.AnyInCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrCategoryInUse
	}
	c, err := s.cats.Delete(ctx, categoryID)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCategoryNotFound
	}
	return nil
}

// OfferInput carries the mutable offer fields.
type OfferInput struct {
	Title        string
	ProductIDs   []string
	SpecialPrice float64
	Image        string
	Description  string
}

func (s *Service) CreateOffer(ctx context.Context, in OfferInput) (*Offer, error) {
	o := Offer{
		OfferID:      uuid.NewString(),
		Title:        in.Title,
		ProductIDs:   in.ProductIDs,
		SpecialPrice: in.SpecialPrice,
		Image:        in.Image,
		Description:  in.Description,
	}
	if err := s.offers.Put(ctx, o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Service) GetOffer(ctx context.Context, offerID string) (*Offer, error) {
	o, err := s.offers.Get(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOfferNotFound
	}
	return o, nil
}

func (s *Service) ListOffers(ctx context.Context) ([]Offer, error) {
	return s.offers.List(ctx)
}

// OfferUpdate holds optional field updates. ProductIDs replaces the whole
// bundle; AddProductIDs/RemoveProductIDs adjust it incrementally.
type OfferUpdate struct {
	Title            *string
	SpecialPrice     *float64
	Image            *string
	Description      *string
	ProductIDs       []string
	AddProductIDs    []string
	RemoveProductIDs []string
}

func (s *Service) UpdateOffer(ctx context.Context, offerID string, upd OfferUpdate) (*Offer, error) {
	o, err := s.offers.Get(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOfferNotFound
	}
	if upd.ProductIDs != nil {
		o.ProductIDs = upd.ProductIDs
	}
	for _, id := range upd.AddProductIDs {
		present := false
		for _, existing := range o.ProductIDs {
			if existing == id {
				present = true
				break
			}
		}
		if !present {
			o.ProductIDs = append(o.ProductIDs, id)
		}
	}
	if len(upd.RemoveProductIDs) > 0 {
		remove := make(map[string]bool, len(upd.RemoveProductIDs))
		for _, id := range upd.RemoveProductIDs {
			remove[id] = true
		}
		kept := o.ProductIDs[:0]
		for _, id := range o.ProductIDs {
			if !remove[id] {
				kept = append(kept, id)
			}
		}
		o.ProductIDs = kept
	}
	if upd.Title != nil {
		o.Title = *upd.Title
	}
	if upd.SpecialPrice != nil {
		o.SpecialPrice = *upd.SpecialPrice
	}
	if upd.Image != nil {
		o.Image = *upd.Image
	}
	if upd.Description != nil {
		o.Description = *upd.Description
	}
	if err := s.offers.Put(ctx, *o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) DeleteOffer(ctx context.Context, offerID string) error {
	o, err := s.offers.Delete(ctx, offerID)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrOfferNotFound
	}
	return nil
}

// ProductPrice resolves the current list price of a product.
func (s *Service) ProductPrice(ctx context.Context, productID string) (float64, error) {
	p, err := s.GetProduct(ctx, productID)
	if err != nil {
		return 0, err
	}
	return p.Price, nil
}

// OfferPrice resolves the current special price of an offer bundle.
func (s *Service) OfferPrice(ctx context.Context, offerID string) (float64, error) {
	o, err := s.GetOffer(ctx, offerID)
	if err != nil {
		return 0, err
	}
	return o.SpecialPrice, nil
}
