package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/canso2044/developer-store/internal/api/middleware"
	"github.com/canso2044/developer-store/internal/models"
	"github.com/canso2044/developer-store/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// declineCardNumber always fails, so a declined flow can be exercised
// on demand.
const declineCardNumber = "4000000000000002"

// PaymentHandler is the mocked card processor backing the creditcard
// payment method.
type PaymentHandler struct {
	validator *validator.Validate
}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{validator: validator.New()}
}

// CreditCardPayment simulates an acquirer: structurally invalid card
// details are rejected, the well-known test card declines, everything
// else is approved. Responses use the raw order endpoint contract.
func (h *PaymentHandler) CreditCardPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreditCardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.WriteJson(w, http.StatusBadRequest, models.OrderResult{
				Success: false,
				Message: "Invalid card details",
				Error:   "INVALID_CARD_DETAILS",
			})
			return
		}

		if err := h.validator.Struct(&req); err != nil {
			logger.Warn("Card validation failed", slog.String("error", err.Error()))
			response.WriteJson(w, http.StatusBadRequest, models.OrderResult{
				Success: false,
				Message: "Invalid card details",
				Error:   "INVALID_CARD_DETAILS",
			})
			return
		}

		if req.CardNumber == declineCardNumber {
			logger.Info("Card declined", slog.Int64("amount", req.Amount))
			response.WriteJson(w, http.StatusPaymentRequired, models.OrderResult{
				Success: false,
				Message: "Card was declined",
				Error:   "CARD_DECLINED",
			})
			return
		}

		now := time.Now().UnixMilli()

		logger.Info("Card payment approved", slog.Int64("amount", req.Amount))
		response.WriteJson(w, http.StatusOK, models.OrderResult{
			Success:       true,
			PaymentID:     fmt.Sprintf("pay-%d", now),
			TransactionID: fmt.Sprintf("cc-%d", now),
			Message:       "Credit card payment processed successfully",
		})
	}
}
