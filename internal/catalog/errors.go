package catalog

import "errors"

var (
	ErrProductNotFound        = errors.New("product not found")
	ErrDuplicateProductName   = errors.New("a product with this name already exists")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrCategoryInUse          = errors.New("category is linked to one or more products")
	ErrOfferNotFound          = errors.New("offer not found")
	ErrDeletedProductNotFound = errors.New("deleted product not found")
)
