package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/canso2044/developer-store/internal/api/middleware"
	"github.com/canso2044/developer-store/internal/config"
	appErrors "github.com/canso2044/developer-store/internal/errors"
	"github.com/canso2044/developer-store/internal/models"
	"github.com/canso2044/developer-store/internal/utils/response"
)

// OrderCounter is the process-lifetime counter feeding order ids. It is
// owned by main and injected here, not a package global. Ids are not
// unique across multiple instances; acceptable for a demo.
type OrderCounter struct {
	value atomic.Int64
}

func NewOrderCounter(seed int64) *OrderCounter {
	c := &OrderCounter{}
	c.value.Store(seed)

	return c
}

// Next returns the current value and advances. The first call yields
// the seed itself.
func (c *OrderCounter) Next() int64 {
	return c.value.Add(1) - 1
}

// orderStatusStore remembers accepted orders for the process lifetime
// so the status endpoint has something to serve. Nothing is persisted.
type orderStatusStore struct {
	mu       sync.RWMutex
	statuses map[string]models.OrderStatusInfo
}

func newOrderStatusStore() *orderStatusStore {
	return &orderStatusStore{statuses: make(map[string]models.OrderStatusInfo)}
}

func (s *orderStatusStore) put(status models.OrderStatusInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statuses[status.ID] = status
}

func (s *orderStatusStore) get(id string) (models.OrderStatusInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status, ok := s.statuses[id]

	return status, ok
}

// OrderHandler is the mocked order endpoint: stateless except for the
// injected counter and the in-memory status store.
type OrderHandler struct {
	sim      config.OrderSim
	counter  *OrderCounter
	statuses *orderStatusStore
}

func NewOrderHandler(sim config.OrderSim, counter *OrderCounter) *OrderHandler {
	return &OrderHandler{
		sim:      sim,
		counter:  counter,
		statuses: newOrderStatusStore(),
	}
}

// writeOrderError renders an AppError in the raw order endpoint
// contract: {success:false, message, error:<code>}.
func writeOrderError(w http.ResponseWriter, appErr *appErrors.AppError) {
	response.WriteJson(w, appErr.StatusCode, models.OrderResult{
		Success: false,
		Message: appErr.Message,
		Error:   appErr.Code,
	})
}

// SubmitOrder validates the payload shape, simulates processing delay
// and a probabilistic decline, and mints a synthetic order id.
// Responses use the raw order endpoint contract, not the API envelope.
func (h *OrderHandler) SubmitOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var body models.OrderSubmission
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.Error("Order API failed to decode payload", slog.String("error", err.Error()))
			writeOrderError(w, appErrors.InternalServerError("Server error during order processing"))
			return
		}

		info := body.CustomerInfo
		if info.Email == "" || info.FirstName == "" || info.LastName == "" {
			writeOrderError(w, appErrors.InvalidCustomerInfoError("Customer information is incomplete"))
			return
		}

		if len(body.Items) == 0 {
			writeOrderError(w, appErrors.EmptyCartError("Cart is empty"))
			return
		}

		if body.PaymentMethod == "" {
			writeOrderError(w, appErrors.NoPaymentMethodError("No payment method selected"))
			return
		}

		// Simulated payment processing delay.
		select {
		case <-r.Context().Done():
			return
		case <-time.After(h.sim.ProcessingDelay):
		}

		if rand.Float64() < h.sim.FailureRate {
			writeOrderError(w, appErrors.PaymentFailedError("Payment failed. Please try again."))
			return
		}

		orderID := fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), h.counter.Next())

		h.statuses.put(models.OrderStatusInfo{
			ID:                orderID,
			Status:            models.OrderStatusProcessing,
			TrackingNumber:    fmt.Sprintf("TRK-%d", h.counter.Next()),
			EstimatedDelivery: time.Now().AddDate(0, 0, 5).UTC().Format(time.RFC3339),
		})

		logger.Info("Order created",
			slog.String("orderId", orderID),
			slog.String("customer", info.Email),
			slog.Int64("total", body.Total),
			slog.Int("items", len(body.Items)),
			slog.String("paymentMethod", string(body.PaymentMethod)))

		response.WriteJson(w, http.StatusCreated, models.OrderResult{
			Success: true,
			OrderID: orderID,
			Message: "Order placed successfully",
		})
	}
}

// GetOrderStatus serves the remembered status of an accepted order.
func (h *OrderHandler) GetOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		orderID := r.PathValue("id")

		status, ok := h.statuses.get(orderID)
		if !ok {
			response.Error(w, appErrors.NotFoundError("Order not found"))
			return
		}

		response.WriteJson(w, http.StatusOK, status)
	}
}

// Health is the order endpoint's own liveness probe.
func (h *OrderHandler) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.WriteJson(w, http.StatusOK, map[string]string{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
