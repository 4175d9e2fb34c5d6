package catalog

import "time"

// Rating is a customer review attached to a product.
type Rating struct {
	Name    string  `dynamodbav:"name" json:"name"`
	Comment string  `dynamodbav:"comment,omitempty" json:"comment,omitempty"`
	Rating  float64 `dynamodbav:"rating" json:"rating"`
}

// CustomDetail is a free-form labelled attribute on a product. Details with
// Display=false are kept for admins but hidden from the storefront response.
type CustomDetail struct {
	Title   string      `dynamodbav:"title" json:"title"`
	Value   interface{} `dynamodbav:"value" json:"value"`
	Display bool        `dynamodbav:"display" json:"display"`
}

// Product is the item stored in the products table.
type Product struct {
	ProductID     string         `dynamodbav:"product_id" json:"productId"` // PK
	Name          string         `dynamodbav:"name" json:"name"`
	ItemNumber    string         `dynamodbav:"item_number" json:"itemNumber"`
	Description   string         `dynamodbav:"description" json:"description"`
	Price         float64        `dynamodbav:"price" json:"price"`
	CategoryID    string         `dynamodbav:"category_id,omitempty" json:"categoryId,omitempty"`
	Images        []string       `dynamodbav:"images,omitempty" json:"images,omitempty"`
	Ratings       []Rating       `dynamodbav:"ratings,omitempty" json:"ratings,omitempty"`
	CustomDetails []CustomDetail `dynamodbav:"custom_details,omitempty" json:"customDetails,omitempty"`
	CreatedAt     time.Time      `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `dynamodbav:"updated_at" json:"updatedAt"`
}

// DeletedProduct is a soft-deleted product, keyed by the original product id
// so restoration preserves identity.
type DeletedProduct struct {
	ProductID     string         `dynamodbav:"product_id" json:"productId"` // PK, original id
	Name          string         `dynamodbav:"name" json:"name"`
	ItemNumber    string         `dynamodbav:"item_number" json:"itemNumber"`
	Description   string         `dynamodbav:"description" json:"description"`
	Price         float64        `dynamodbav:"price" json:"price"`
	CategoryID    string         `dynamodbav:"category_id,omitempty" json:"categoryId,omitempty"`
	Images        []string       `dynamodbav:"images,omitempty" json:"images,omitempty"`
	Ratings       []Rating       `dynamodbav:"ratings,omitempty" json:"ratings,omitempty"`
	CustomDetails []CustomDetail `dynamodbav:"custom_details,omitempty" json:"customDetails,omitempty"`
	DeletedAt     time.Time      `dynamodbav:"deleted_at" json:"deletedAt"`
}

// Category groups products; subcategories reference other categories.
type Category struct {
	CategoryID     string    `dynamodbav:"category_id" json:"categoryId"` // PK
	Name           string    `dynamodbav:"name" json:"name"`
	Description    string    `dynamodbav:"description" json:"description"`
	SubCategoryIDs []string  `dynamodbav:"sub_category_ids,omitempty" json:"subCategoryIds,omitempty"`
	CreatedAt      time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}

// Offer is a promotional bundle of products sold at a special price.
type Offer struct {
	OfferID      string    `dynamodbav:"offer_id" json:"offerId"` // PK
	Title        string    `dynamodbav:"title" json:"title"`
	ProductIDs   []string  `dynamodbav:"product_ids" json:"productIds"`
	SpecialPrice float64   `dynamodbav:"special_price" json:"specialPrice"`
	Image        string    `dynamodbav:"image,omitempty" json:"image,omitempty"`
	Description  string    `dynamodbav:"description,omitempty" json:"description,omitempty"`
	CreatedAt    time.Time `dynamodbav:"created_at" json:"createdAt"`
}

// PublicView strips custom details flagged as hidden.
func (p Product) PublicView() Product {
	visible := make([]CustomDetail, 0, len(p.CustomDetails))
	for _, d := range p.CustomDetails {
		if d.Display {
			visible = append(visible, d)
		}
	}
	p.CustomDetails = visible
	return p
}
