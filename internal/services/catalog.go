package service

import (
	"github.com/canso2044/developer-store/internal/errors"
	"github.com/canso2044/developer-store/internal/models"
)

type CatalogService interface {
	ListProducts() *models.ProductsResponse
	GetProduct(id string) (*models.Product, error)
}

type catalogService struct {
	products []models.Product
}

// NewCatalogService serves the built-in demo catalog.
func NewCatalogService() CatalogService {
	return &catalogService{products: demoProducts}
}

// NewCatalogServiceWith serves a caller-provided product set.
func NewCatalogServiceWith(products []models.Product) CatalogService {
	return &catalogService{products: products}
}

func (s *catalogService) ListProducts() *models.ProductsResponse {
	return &models.ProductsResponse{
		Products: s.products,
		Count:    len(s.products),
	}
}

func (s *catalogService) GetProduct(id string) (*models.Product, error) {

	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}

	return nil, errors.NotFoundError("Product not found")
}

// demoProducts is the static demo catalog. Prices are minor units.
var demoProducts = []models.Product{
	{
		ID:          "prod_tshirt",
		Title:       "Developer T-Shirt",
		Description: "Classic fit cotton t-shirt with a subtle code print.",
		Handle:      "developer-t-shirt",
		Thumbnail:   "/images/tshirt.png",
		Tags:        []string{"apparel", "cotton"},
		Variants: []models.ProductVariant{
			{ID: "variant_tshirt_s_black", Title: "S / Black", Size: "S", Color: "Black", Price: 2500, SKU: "TS-S-BLK", InventoryQuantity: 20},
			{ID: "variant_tshirt_m_black", Title: "M / Black", Size: "M", Color: "Black", Price: 2500, SKU: "TS-M-BLK", InventoryQuantity: 35},
			{ID: "variant_tshirt_l_black", Title: "L / Black", Size: "L", Color: "Black", Price: 2500, SKU: "TS-L-BLK", InventoryQuantity: 15},
			{ID: "variant_tshirt_m_white", Title: "M / White", Size: "M", Color: "White", Price: 2500, SKU: "TS-M-WHT", InventoryQuantity: 25},
		},
	},
	{
		ID:          "prod_hoodie",
		Title:       "Developer Hoodie",
		Description: "Heavyweight zip hoodie for cold server rooms.",
		Handle:      "developer-hoodie",
		Thumbnail:   "/images/hoodie.png",
		Tags:        []string{"apparel", "winter"},
		Variants: []models.ProductVariant{
			{ID: "variant_hoodie_m_navy", Title: "M / Navy", Size: "M", Color: "Navy", Price: 5900, SKU: "HD-M-NVY", InventoryQuantity: 12},
			{ID: "variant_hoodie_l_navy", Title: "L / Navy", Size: "L", Color: "Navy", Price: 5900, SKU: "HD-L-NVY", InventoryQuantity: 8},
			{ID: "variant_hoodie_l_gray", Title: "L / Gray", Size: "L", Color: "Gray", Price: 5900, SKU: "HD-L-GRY", InventoryQuantity: 10},
		},
	},
	{
		ID:          "prod_mug",
		Title:       "Coffee Mug",
		Description: "Ceramic mug, 350ml. Compiles caffeine into code.",
		Handle:      "coffee-mug",
		Thumbnail:   "/images/mug.png",
		Tags:        []string{"accessories"},
		Variants: []models.ProductVariant{
			{ID: "variant_mug_white", Title: "White", Color: "White", Price: 1200, SKU: "MUG-WHT", InventoryQuantity: 50},
			{ID: "variant_mug_black", Title: "Black", Color: "Black", Price: 1200, SKU: "MUG-BLK", InventoryQuantity: 42},
		},
	},
	{
		ID:          "prod_stickers",
		Title:       "Sticker Pack",
		Description: "Ten assorted laptop stickers.",
		Handle:      "sticker-pack",
		Thumbnail:   "/images/stickers.png",
		Tags:        []string{"accessories"},
		Variants: []models.ProductVariant{
			{ID: "variant_stickers_default", Title: "Default", Price: 700, SKU: "STK-10", InventoryQuantity: 100},
		},
	},
}
