package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canso2044/developer-store/internal/api/handlers"
	"github.com/canso2044/developer-store/internal/models"
	"github.com/canso2044/developer-store/internal/services/mocks"
	"github.com/canso2044/developer-store/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleCart() *models.Cart {
	return &models.Cart{
		Items: []models.CartItem{
			{
				ID:        "prod_tshirt-variant_tshirt_m_black",
				ProductID: "prod_tshirt",
				Title:     "Developer T-Shirt",
				Price:     2500,
				Variant:   models.Variant{ID: "variant_tshirt_m_black", Size: "M", Color: "Black"},
				Quantity:  2,
			},
		},
		TotalItems: 2,
		TotalPrice: 5000,
	}
}

func TestCartHandler_GetCart(t *testing.T) {

	t.Run("Success - returns the session cart", func(t *testing.T) {

		// Arrange
		cartService := new(mocks.CartService)
		cartService.On("GetCart", mock.Anything, "session-1").Return(sampleCart(), nil)

		handler := handlers.NewCartHandler(cartService)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		req.Header.Set(handlers.SessionHeader, "session-1")
		rec := httptest.NewRecorder()

		// Act
		handler.GetCart()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "session-1", rec.Header().Get(handlers.SessionHeader))

		var resp response.APIResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Success)

		cartService.AssertExpectations(t)
	})

	t.Run("Success - mints a session id when absent", func(t *testing.T) {

		// Arrange
		cartService := new(mocks.CartService)
		cartService.On("GetCart", mock.Anything, mock.AnythingOfType("string")).
			Return(&models.Cart{Items: []models.CartItem{}}, nil)

		handler := handlers.NewCartHandler(cartService)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		rec := httptest.NewRecorder()

		// Act
		handler.GetCart()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(handlers.SessionHeader))
	})
}

func TestCartHandler_AddItem(t *testing.T) {

	t.Run("Success - adds an item", func(t *testing.T) {

		// Arrange
		cartService := new(mocks.CartService)
		cartService.On("AddItem", mock.Anything, "session-1", mock.MatchedBy(func(req *models.AddItemRequest) bool {
			return req.ProductID == "prod_tshirt" && req.Variant.ID == "variant_tshirt_m_black"
		})).Return(sampleCart(), nil)

		handler := handlers.NewCartHandler(cartService)

		body, _ := json.Marshal(models.AddItemRequest{
			ProductID: "prod_tshirt",
			Title:     "Developer T-Shirt",
			Price:     2500,
			Variant:   models.Variant{ID: "variant_tshirt_m_black", Size: "M", Color: "Black"},
			Quantity:  2,
		})

		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(body))
		req.Header.Set(handlers.SessionHeader, "session-1")
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp response.APIResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Success)

		cartService.AssertExpectations(t)
	})

	t.Run("Failure - missing required fields", func(t *testing.T) {

		// Arrange
		cartService := new(mocks.CartService)
		handler := handlers.NewCartHandler(cartService)

		body := []byte(`{"productId": "prod_tshirt"}`)

		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem()(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		cartService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {

	t.Run("Success - updates the line quantity", func(t *testing.T) {

		// Arrange
		cartService := new(mocks.CartService)
		cartService.On("UpdateQuantity", mock.Anything, "session-1", "prod_tshirt-variant_tshirt_m_black", 3).
			Return(sampleCart(), nil)

		handler := handlers.NewCartHandler(cartService)

		body := []byte(`{"quantity": 3}`)

		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/prod_tshirt-variant_tshirt_m_black", bytes.NewReader(body))
		req.SetPathValue("id", "prod_tshirt-variant_tshirt_m_black")
		req.Header.Set(handlers.SessionHeader, "session-1")
		rec := httptest.NewRecorder()

		// Act
		handler.UpdateQuantity()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		cartService.AssertExpectations(t)
	})

	t.Run("Failure - missing line id", func(t *testing.T) {

		// Arrange
		cartService := new(mocks.CartService)
		handler := handlers.NewCartHandler(cartService)

		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/", bytes.NewReader([]byte(`{"quantity": 3}`)))
		rec := httptest.NewRecorder()

		// Act
		handler.UpdateQuantity()(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		cartService.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {

	t.Run("Success - removes the line", func(t *testing.T) {

		// Arrange
		cartService := new(mocks.CartService)
		cartService.On("RemoveItem", mock.Anything, "session-1", "prod_tshirt-variant_tshirt_m_black").
			Return(&models.Cart{Items: []models.CartItem{}}, nil)

		handler := handlers.NewCartHandler(cartService)

		req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/prod_tshirt-variant_tshirt_m_black", nil)
		req.SetPathValue("id", "prod_tshirt-variant_tshirt_m_black")
		req.Header.Set(handlers.SessionHeader, "session-1")
		rec := httptest.NewRecorder()

		// Act
		handler.RemoveItem()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		cartService.AssertExpectations(t)
	})
}

func TestCartHandler_ClearCart(t *testing.T) {

	t.Run("Success - clears the cart", func(t *testing.T) {

		// Arrange
		cartService := new(mocks.CartService)
		cartService.On("ClearCart", mock.Anything, "session-1").
			Return(&models.Cart{Items: []models.CartItem{}}, nil)

		handler := handlers.NewCartHandler(cartService)

		req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
		req.Header.Set(handlers.SessionHeader, "session-1")
		rec := httptest.NewRecorder()

		// Act
		handler.ClearCart()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		cartService.AssertExpectations(t)
	})
}

func TestCartHandler_GetItemQuantity(t *testing.T) {

	t.Run("Success - returns the quantity for a pair", func(t *testing.T) {

		// Arrange
		cartService := new(mocks.CartService)
		cartService.On("GetItemQuantity", mock.Anything, "session-1", "prod_tshirt", "variant_tshirt_m_black").
			Return(2, nil)

		handler := handlers.NewCartHandler(cartService)

		req := httptest.NewRequest(http.MethodGet, "/api/cart/item-quantity?productId=prod_tshirt&variantId=variant_tshirt_m_black", nil)
		req.Header.Set(handlers.SessionHeader, "session-1")
		rec := httptest.NewRecorder()

		// Act
		handler.GetItemQuantity()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp response.APIResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		data := resp.Data.(map[string]any)
		assert.Equal(t, float64(2), data["quantity"])

		cartService.AssertExpectations(t)
	})

	t.Run("Failure - missing query parameters", func(t *testing.T) {

		// Arrange
		cartService := new(mocks.CartService)
		handler := handlers.NewCartHandler(cartService)

		req := httptest.NewRequest(http.MethodGet, "/api/cart/item-quantity?productId=prod_tshirt", nil)
		rec := httptest.NewRecorder()

		// Act
		handler.GetItemQuantity()(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		cartService.AssertNotCalled(t, "GetItemQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
