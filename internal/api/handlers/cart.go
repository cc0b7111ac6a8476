package handlers

import (
	"log/slog"
	"net/http"

	"github.com/canso2044/developer-store/internal/api/middleware"
	"github.com/canso2044/developer-store/internal/errors"
	"github.com/canso2044/developer-store/internal/models"
	service "github.com/canso2044/developer-store/internal/services"
	"github.com/canso2044/developer-store/internal/utils"
	"github.com/canso2044/developer-store/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart returns the session's cart, rehydrated from the durable
// mirror.
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sid := sessionID(w, r)

		cart, err := h.cartService.GetCart(r.Context(), sid)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem merges the line into the cart: an existing
// (productId, variantId) pair increments its quantity.
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sid := sessionID(w, r)

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), sid, &req)
		if err != nil {
			logger.Error("Failed to add item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart",
			slog.String("productId", req.ProductID),
			slog.String("variantId", req.Variant.ID),
			slog.Int("totalItems", cart.TotalItems))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sid := sessionID(w, r)

		lineID := r.PathValue("id")
		if lineID == "" {
			response.Error(w, errors.BadRequestError("Line item ID is required"))
			return
		}

		var req models.UpdateQuantityRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid update quantity input", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError(err.Error()))
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), sid, lineID, req.Quantity)
		if err != nil {
			logger.Error("Failed to update quantity", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sid := sessionID(w, r)

		lineID := r.PathValue("id")
		if lineID == "" {
			response.Error(w, errors.BadRequestError("Line item ID is required"))
			return
		}

		cart, err := h.cartService.RemoveItem(r.Context(), sid, lineID)
		if err != nil {
			logger.Error("Failed to remove item", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sid := sessionID(w, r)

		cart, err := h.cartService.ClearCart(r.Context(), sid)
		if err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart cleared")
		response.Success(w, http.StatusOK, cart)
	}
}

// GetItemQuantity is a pure lookup of the quantity for a
// (productId, variantId) pair; absent pairs yield zero.
func (h *CartHandler) GetItemQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sid := sessionID(w, r)

		productID := r.URL.Query().Get("productId")
		variantID := r.URL.Query().Get("variantId")

		if productID == "" || variantID == "" {
			response.Error(w, errors.BadRequestError("productId and variantId are required"))
			return
		}

		quantity, err := h.cartService.GetItemQuantity(r.Context(), sid, productID, variantID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"productId": productID,
			"variantId": variantID,
			"quantity":  quantity,
		})
	}
}
