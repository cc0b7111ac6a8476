package models

// Variant describes the concrete product variant a cart line refers to.
type Variant struct {
	ID    string `json:"id" validate:"required"`
	Size  string `json:"size"`
	Color string `json:"color"`
	Title string `json:"title"`
}

// CartItem is one line in the cart. The ID is the composite key
// "<productId>-<variantId>"; at most one line exists per pair.
// Price is in integer minor currency units (cents).
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Image     string  `json:"image"`
	Price     int64   `json:"price" validate:"gte=0"`
	Variant   Variant `json:"variant" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
}

// Cart holds the ordered line items and the derived totals. Both totals
// are recomputed from the lines on every mutation, never set directly.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice int64      `json:"totalPrice"`
}

// AddItemRequest is a cart line without its id; the composite id is
// assigned by the cart store.
type AddItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Title     string  `json:"title" validate:"required"`
	Image     string  `json:"image"`
	Price     int64   `json:"price" validate:"gte=0"`
	Variant   Variant `json:"variant" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
}

// UpdateQuantityRequest sets the quantity of an existing line. A value
// of zero or less removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
