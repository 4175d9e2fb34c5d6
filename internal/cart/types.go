package cart

import "time"

// ItemType distinguishes standalone products from promotional offer bundles.
type ItemType string

const (
	ItemTypeProduct ItemType = "Product"
	ItemTypeOffer   ItemType = "Offer"
)

// Valid reports whether t is a known item type.
func (t ItemType) Valid() bool {
	return t == ItemTypeProduct || t == ItemTypeOffer
}

// Item is one cart line. Price is captured from the catalog when the item is
// added and is not re-derived afterwards.
type Item struct {
	ReferenceID string   `dynamodbav:"reference_id" json:"referenceId"`
	Type        ItemType `dynamodbav:"item_type" json:"type"`
	Quantity    int      `dynamodbav:"quantity" json:"quantity"`
	Price       float64  `dynamodbav:"price" json:"price"`
}

// Cart is the per-session document stored in the carts table. At most one
// line exists per (ReferenceID, Type) pair.
type Cart struct {
	SessionID string    `dynamodbav:"session_id" json:"sessionId"` // PK
	Items     []Item    `dynamodbav:"items" json:"items"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}

// Total sums quantity × captured price over the cart lines.
func (c Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}

// find returns the index of the line matching (referenceID, t), or -1.
func (c Cart) find(referenceID string, t ItemType) int {
	for i, it := range c.Items {
		if it.ReferenceID == referenceID && it.Type == t {
			return i
		}
	}
	return -1
}
