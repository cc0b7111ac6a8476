// Package cart implements the cart state machine: a pure reducer over
// an ordered list of line items with derived totals.
package cart

import (
	"github.com/canso2044/developer-store/internal/models"
)

type ActionType int

const (
	ActionAdd ActionType = iota
	ActionRemove
	ActionUpdateQuantity
	ActionClear
	ActionLoad
)

// Action is the tagged union dispatched through Apply. Which fields are
// read depends on Type: Add uses Item (without id), Remove uses LineID,
// UpdateQuantity uses LineID and Quantity, Load uses Items.
type Action struct {
	Type     ActionType
	Item     models.CartItem
	LineID   string
	Quantity int
	Items    []models.CartItem
}

// LineID builds the composite key identifying a unique cart line.
func LineID(productID, variantID string) string {
	return productID + "-" + variantID
}

// Apply returns the state produced by the action. The input state is
// never mutated; totals are always recomputed from the resulting lines.
func Apply(state models.Cart, action Action) models.Cart {
	switch action.Type {

	case ActionAdd:
		id := LineID(action.Item.ProductID, action.Item.Variant.ID)

		items := make([]models.CartItem, 0, len(state.Items)+1)
		merged := false

		for _, item := range state.Items {
			if item.ID == id {
				item.Quantity += action.Item.Quantity
				merged = true
			}
			items = append(items, item)
		}

		if !merged {
			item := action.Item
			item.ID = id
			items = append(items, item)
		}

		return recalculate(items)

	case ActionRemove:
		items := make([]models.CartItem, 0, len(state.Items))

		for _, item := range state.Items {
			if item.ID != action.LineID {
				items = append(items, item)
			}
		}

		return recalculate(items)

	case ActionUpdateQuantity:
		items := make([]models.CartItem, 0, len(state.Items))

		for _, item := range state.Items {
			if item.ID == action.LineID {
				item.Quantity = max(0, action.Quantity)
			}
			if item.Quantity > 0 {
				items = append(items, item)
			}
		}

		return recalculate(items)

	case ActionClear:
		return models.Cart{Items: []models.CartItem{}}

	case ActionLoad:
		items := make([]models.CartItem, len(action.Items))
		copy(items, action.Items)

		return recalculate(items)

	default:
		return state
	}
}

// Quantity returns the quantity of the line matching the pair, or 0.
func Quantity(state models.Cart, productID, variantID string) int {
	id := LineID(productID, variantID)

	for _, item := range state.Items {
		if item.ID == id {
			return item.Quantity
		}
	}

	return 0
}

func recalculate(items []models.CartItem) models.Cart {
	state := models.Cart{Items: items}

	for _, item := range items {
		state.TotalItems += item.Quantity
		state.TotalPrice += item.Price * int64(item.Quantity)
	}

	return state
}
