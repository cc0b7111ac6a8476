package orderapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/canso2044/developer-store/internal/models"
	"github.com/canso2044/developer-store/pkg/orderapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes 201 Body", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/orders", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.OrderResult{Success: true, OrderID: "ORD-1", Message: "Order placed successfully"})
		}))
		defer server.Close()

		client := orderapi.NewClient(server.URL, time.Second)

		// Act
		result, err := client.SubmitOrder(ctx, &models.OrderSubmission{})

		// Assert
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "ORD-1", result.OrderID)
	})

	t.Run("Decodes 402 Body Without Error", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusPaymentRequired)
			json.NewEncoder(w).Encode(models.OrderResult{Success: false, Message: "Payment failed. Please try again.", Error: "PAYMENT_FAILED"})
		}))
		defer server.Close()

		client := orderapi.NewClient(server.URL, time.Second)

		// Act
		result, err := client.SubmitOrder(ctx, &models.OrderSubmission{})

		// Assert
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "PAYMENT_FAILED", result.Error)
	})

	t.Run("Transport Failure Returns Error", func(t *testing.T) {
		// Arrange: no listener on this address
		client := orderapi.NewClient("http://127.0.0.1:1", 200*time.Millisecond)

		// Act
		result, err := client.SubmitOrder(ctx, &models.OrderSubmission{})

		// Assert
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestGetOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("OK Decodes Status", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/orders/ORD-1", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(models.OrderStatusInfo{ID: "ORD-1", Status: models.OrderStatusProcessing, TrackingNumber: "TRK-1"})
		}))
		defer server.Close()

		client := orderapi.NewClient(server.URL, time.Second)

		// Act
		status, err := client.GetOrderStatus(ctx, "ORD-1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusProcessing, status.Status)
		assert.Equal(t, "TRK-1", status.TrackingNumber)
	})

	t.Run("404 Yields Nil Without Error", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := orderapi.NewClient(server.URL, time.Second)

		// Act
		status, err := client.GetOrderStatus(ctx, "ORD-unknown")

		// Assert
		assert.NoError(t, err)
		assert.Nil(t, status)
	})

	t.Run("Other Non-OK Status Fails", func(t *testing.T) {
		// Arrange
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := orderapi.NewClient(server.URL, time.Second)

		// Act
		status, err := client.GetOrderStatus(ctx, "ORD-1")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, status)
	})
}

func TestProcessCreditCard(t *testing.T) {
	ctx := context.Background()

	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/creditcard", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.OrderResult{Success: true, PaymentID: "pay-1", Message: "Credit card payment processed successfully"})
	}))
	defer server.Close()

	client := orderapi.NewClient(server.URL, time.Second)

	// Act
	result, err := client.ProcessCreditCard(ctx, &models.PaymentData{Method: models.PaymentMethodCreditCard, Amount: 100})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "pay-1", result.PaymentID)
}
