package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/canso2044/developer-store/internal/api/middleware"
	appErrors "github.com/canso2044/developer-store/internal/errors"
	"github.com/canso2044/developer-store/internal/models"
	service "github.com/canso2044/developer-store/internal/services"
	"github.com/canso2044/developer-store/internal/utils"
	"github.com/canso2044/developer-store/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

type CheckoutHandler struct {
	cartService     service.CartService
	checkoutService service.CheckoutService
	validator       *validator.Validate
	sanitizer       *bluemonday.Policy
	taxRate         float64
}

func NewCheckoutHandler(cartService service.CartService, checkoutService service.CheckoutService, taxRate float64) *CheckoutHandler {
	return &CheckoutHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		validator:       validator.New(),
		sanitizer:       bluemonday.StrictPolicy(),
		taxRate:         taxRate,
	}
}

// sanitize strips any markup from the customer-supplied free-text
// fields before they are validated or forwarded.
func (h *CheckoutHandler) sanitize(req *models.CheckoutRequest) {
	req.FirstName = h.sanitizer.Sanitize(req.FirstName)
	req.LastName = h.sanitizer.Sanitize(req.LastName)
	req.Street = h.sanitizer.Sanitize(req.Street)
	req.City = h.sanitizer.Sanitize(req.City)
	req.Country = h.sanitizer.Sanitize(req.Country)
}

// Submit runs the checkout pipeline: field validation, order assembly
// from the session cart, submission, and cart clearing on success.
// A failed submission leaves the cart untouched so the form can retry.
func (h *CheckoutHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		sid := sessionID(w, r)

		var req models.CheckoutRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Invalid checkout request", slog.String("error", err.Error()))
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		h.sanitize(&req)
		req.Normalize()

		if err := utils.ValidateStruct(h.validator, &req); err != nil {

			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				logger.Warn("Checkout validation failed", slog.String("error", validationErrs.Error()))
				response.ValidationError(w, validationErrs)
				return
			}

			response.Error(w, appErrors.ValidationError("Invalid checkout input"))
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), sid)
		if err != nil {
			logger.Error("Failed to load cart for checkout", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		tax, total := service.Totals(cart.TotalPrice, h.taxRate)

		order := &models.OrderSubmission{
			CustomerInfo: models.CustomerInfo{
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Email:     req.Email,
			},
			Address: models.Address{
				Street:     req.Street,
				City:       req.City,
				PostalCode: req.PostalCode,
				Country:    req.Country,
			},
			PaymentMethod: req.PaymentMethod,
			Items:         cart.Items,
			Subtotal:      cart.TotalPrice,
			Tax:           tax,
			Total:         total,
		}

		result := h.checkoutService.SubmitOrder(r.Context(), order)

		if !result.Success {
			logger.Warn("Order submission failed",
				slog.String("error", result.Error),
				slog.String("message", result.Message))
			response.WriteJson(w, submissionStatus(result), result)
			return
		}

		// Only a confirmed order empties the cart.
		if _, err := h.cartService.ClearCart(r.Context(), sid); err != nil {
			logger.Error("Failed to clear cart after order", slog.Any("error", err))
		}

		logger.Info("Order placed",
			slog.String("orderId", result.OrderID),
			slog.Int64("total", order.Total))
		response.WriteJson(w, http.StatusCreated, result)
	}
}

// submissionStatus maps a failed submission result onto the HTTP
// status the storefront endpoint reports.
func submissionStatus(result *models.OrderResult) int {
	switch {
	case strings.HasPrefix(result.Error, "validation:"):
		return http.StatusBadRequest
	case result.Error == appErrors.ErrCodePaymentFailed:
		return http.StatusPaymentRequired
	case result.Error == appErrors.ErrCodeInvalidCustomerInfo,
		result.Error == appErrors.ErrCodeEmptyCart,
		result.Error == appErrors.ErrCodeNoPaymentMethod:
		return http.StatusBadRequest
	case result.Message == "Unable to connect to payment service":
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

// OrderStatus proxies the order status lookup for the storefront.
func (h *CheckoutHandler) OrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID := r.PathValue("id")
		if orderID == "" {
			response.Error(w, appErrors.BadRequestError("Order ID is required"))
			return
		}

		status, err := h.checkoutService.GetOrderStatus(r.Context(), orderID)
		if err != nil {
			logger.Error("Failed to fetch order status", slog.Any("error", err))
			response.Error(w, appErrors.InternalError("Failed to fetch order status").WithError(err))
			return
		}

		if status == nil {
			response.Error(w, appErrors.NotFoundError("Order not found"))
			return
		}

		response.Success(w, http.StatusOK, status)
	}
}

// Pay dispatches a standalone payment on its method.
func (h *CheckoutHandler) Pay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.PaymentData
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid payment input")
			return
		}

		result := h.checkoutService.ProcessPayment(r.Context(), &req)

		status := http.StatusOK
		if !result.Success {
			status = http.StatusPaymentRequired
		}

		response.WriteJson(w, status, result)
	}
}
