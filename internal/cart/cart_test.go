package cart_test

import (
	"testing"

	"github.com/canso2044/developer-store/internal/cart"
	"github.com/canso2044/developer-store/internal/models"
	"github.com/stretchr/testify/assert"
)

func lineItem(productID, variantID string, price int64, quantity int) models.CartItem {
	return models.CartItem{
		ProductID: productID,
		Title:     "Test Product",
		Price:     price,
		Variant:   models.Variant{ID: variantID, Size: "M", Color: "Black", Title: "M / Black"},
		Quantity:  quantity,
	}
}

func TestApplyAdd(t *testing.T) {
	t.Run("New Line Gets Composite ID", func(t *testing.T) {
		// Act
		state := cart.Apply(models.Cart{}, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v1", 2500, 2)})

		// Assert
		assert.Len(t, state.Items, 1)
		assert.Equal(t, "p1-v1", state.Items[0].ID)
		assert.Equal(t, 2, state.TotalItems)
		assert.Equal(t, int64(5000), state.TotalPrice)
	})

	t.Run("Same Pair Merges Into One Line", func(t *testing.T) {
		// Arrange
		state := cart.Apply(models.Cart{}, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v1", 2500, 2)})

		// Act
		state = cart.Apply(state, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v1", 2500, 1)})

		// Assert
		assert.Len(t, state.Items, 1)
		assert.Equal(t, 3, state.Items[0].Quantity)
		assert.Equal(t, 3, state.TotalItems)
		assert.Equal(t, int64(7500), state.TotalPrice)
	})

	t.Run("Different Variant Appends Line", func(t *testing.T) {
		// Arrange
		state := cart.Apply(models.Cart{}, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v1", 2500, 1)})

		// Act
		state = cart.Apply(state, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v2", 3000, 1)})

		// Assert
		assert.Len(t, state.Items, 2)
		assert.Equal(t, "p1-v1", state.Items[0].ID)
		assert.Equal(t, "p1-v2", state.Items[1].ID)
		assert.Equal(t, 2, state.TotalItems)
		assert.Equal(t, int64(5500), state.TotalPrice)
	})

	t.Run("Repeated Adds Sum Quantities", func(t *testing.T) {
		// Arrange
		state := models.Cart{}

		// Act
		for _, q := range []int{1, 4, 2, 3} {
			state = cart.Apply(state, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v1", 100, q)})
		}

		// Assert
		assert.Len(t, state.Items, 1)
		assert.Equal(t, 10, state.Items[0].Quantity)
		assert.Equal(t, 10, state.TotalItems)
		assert.Equal(t, int64(1000), state.TotalPrice)
	})

	t.Run("Input State Is Not Mutated", func(t *testing.T) {
		// Arrange
		before := cart.Apply(models.Cart{}, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v1", 2500, 2)})

		// Act
		_ = cart.Apply(before, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v1", 2500, 5)})

		// Assert
		assert.Equal(t, 2, before.Items[0].Quantity)
		assert.Equal(t, 2, before.TotalItems)
	})
}

func TestApplyRemove(t *testing.T) {
	// Arrange
	state := cart.Apply(models.Cart{}, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v1", 2500, 2)})
	state = cart.Apply(state, cart.Action{Type: cart.ActionAdd, Item: lineItem("p2", "v1", 1000, 1)})

	t.Run("Removes Matching Line", func(t *testing.T) {
		// Act
		result := cart.Apply(state, cart.Action{Type: cart.ActionRemove, LineID: "p1-v1"})

		// Assert
		assert.Len(t, result.Items, 1)
		assert.Equal(t, "p2-v1", result.Items[0].ID)
		assert.Equal(t, 1, result.TotalItems)
		assert.Equal(t, int64(1000), result.TotalPrice)
	})

	t.Run("Unknown Line Is A No-Op", func(t *testing.T) {
		// Act
		result := cart.Apply(state, cart.Action{Type: cart.ActionRemove, LineID: "p9-v9"})

		// Assert
		assert.Equal(t, state, result)
	})
}

func TestApplyUpdateQuantity(t *testing.T) {
	// Arrange
	state := cart.Apply(models.Cart{}, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v1", 2500, 2)})

	t.Run("Sets Quantity And Recomputes Totals", func(t *testing.T) {
		// Act
		result := cart.Apply(state, cart.Action{Type: cart.ActionUpdateQuantity, LineID: "p1-v1", Quantity: 5})

		// Assert
		assert.Equal(t, 5, result.Items[0].Quantity)
		assert.Equal(t, 5, result.TotalItems)
		assert.Equal(t, int64(12500), result.TotalPrice)
	})

	t.Run("Zero Quantity Equals Remove", func(t *testing.T) {
		// Act
		updated := cart.Apply(state, cart.Action{Type: cart.ActionUpdateQuantity, LineID: "p1-v1", Quantity: 0})
		removed := cart.Apply(state, cart.Action{Type: cart.ActionRemove, LineID: "p1-v1"})

		// Assert
		assert.Equal(t, removed, updated)
		assert.Empty(t, updated.Items)
	})

	t.Run("Negative Quantity Drops The Line", func(t *testing.T) {
		// Act
		result := cart.Apply(state, cart.Action{Type: cart.ActionUpdateQuantity, LineID: "p1-v1", Quantity: -3})

		// Assert
		assert.Empty(t, result.Items)
		assert.Equal(t, 0, result.TotalItems)
		assert.Equal(t, int64(0), result.TotalPrice)
	})
}

func TestApplyClearAndLoad(t *testing.T) {
	t.Run("Clear Resets To Empty State", func(t *testing.T) {
		// Arrange
		state := cart.Apply(models.Cart{}, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v1", 2500, 2)})

		// Act
		result := cart.Apply(state, cart.Action{Type: cart.ActionClear})

		// Assert
		assert.Empty(t, result.Items)
		assert.Equal(t, 0, result.TotalItems)
		assert.Equal(t, int64(0), result.TotalPrice)
	})

	t.Run("Load Recomputes Totals From Lines", func(t *testing.T) {
		// Arrange
		items := []models.CartItem{
			{ID: "p1-v1", ProductID: "p1", Price: 2500, Variant: models.Variant{ID: "v1"}, Quantity: 2},
			{ID: "p2-v1", ProductID: "p2", Price: 1000, Variant: models.Variant{ID: "v1"}, Quantity: 3},
		}

		// Act
		result := cart.Apply(models.Cart{}, cart.Action{Type: cart.ActionLoad, Items: items})

		// Assert
		assert.Equal(t, items, result.Items)
		assert.Equal(t, 5, result.TotalItems)
		assert.Equal(t, int64(8000), result.TotalPrice)
	})
}

func TestQuantity(t *testing.T) {
	// Arrange
	state := cart.Apply(models.Cart{}, cart.Action{Type: cart.ActionAdd, Item: lineItem("p1", "v1", 2500, 4)})

	assert.Equal(t, 4, cart.Quantity(state, "p1", "v1"))
	assert.Equal(t, 0, cart.Quantity(state, "p1", "v2"))
	assert.Equal(t, 0, cart.Quantity(state, "p2", "v1"))
}
