package models

type ProductVariant struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Size              string `json:"size"`
	Color             string `json:"color"`
	Price             int64  `json:"price"`
	SKU               string `json:"sku,omitempty"`
	InventoryQuantity int    `json:"inventory_quantity"`
}

type Product struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Handle      string           `json:"handle,omitempty"`
	Thumbnail   string           `json:"thumbnail,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Variants    []ProductVariant `json:"variants"`
}

type ProductsResponse struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}
