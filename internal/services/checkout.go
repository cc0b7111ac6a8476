package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/canso2044/developer-store/internal/models"
)

// OrderGateway is the transport to the order endpoint. An error means
// the request never completed; otherwise the parsed response body is
// returned whatever the HTTP status was.
type OrderGateway interface {
	SubmitOrder(ctx context.Context, order *models.OrderSubmission) (*models.OrderResult, error)
	GetOrderStatus(ctx context.Context, orderID string) (*models.OrderStatusInfo, error)
	ProcessCreditCard(ctx context.Context, payment *models.PaymentData) (*models.OrderResult, error)
}

type CheckoutService interface {
	SubmitOrder(ctx context.Context, order *models.OrderSubmission) *models.OrderResult
	GetOrderStatus(ctx context.Context, orderID string) (*models.OrderStatusInfo, error)
	ProcessPayment(ctx context.Context, payment *models.PaymentData) *models.OrderResult
}

type checkoutService struct {
	gateway OrderGateway
}

func NewCheckoutService(gateway OrderGateway) CheckoutService {
	return &checkoutService{gateway: gateway}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateOrderData is the defense-in-depth check run independent of
// the form's own validation. Returns the reason on failure.
func validateOrderData(order *models.OrderSubmission) (string, bool) {

	info := order.CustomerInfo

	if info.FirstName == "" {
		return "validation: First name is required", false
	}

	if info.LastName == "" {
		return "validation: Last name is required", false
	}

	if info.Email == "" || !emailPattern.MatchString(info.Email) {
		return "validation: Valid email is required", false
	}

	if order.Address.Street == "" {
		return "validation: Street address is required", false
	}

	if order.Address.PostalCode == "" {
		return "validation: Postal code is required", false
	}

	if order.Address.City == "" {
		return "validation: City is required", false
	}

	if len(order.Items) == 0 {
		return "validation: No items in order", false
	}

	return "", true
}

// SubmitOrder validates, forwards to the order endpoint and returns the
// endpoint's response verbatim. The body's own success flag is
// authoritative, not the HTTP status.
func (s *checkoutService) SubmitOrder(ctx context.Context, order *models.OrderSubmission) *models.OrderResult {

	if reason, ok := validateOrderData(order); !ok {
		return &models.OrderResult{
			Success: false,
			Error:   reason,
			Message: "Order validation failed",
		}
	}

	result, err := s.gateway.SubmitOrder(ctx, order)
	if err != nil {
		return &models.OrderResult{
			Success: false,
			Error:   err.Error(),
			Message: "Unable to connect to payment service",
		}
	}

	return result
}

func (s *checkoutService) GetOrderStatus(ctx context.Context, orderID string) (*models.OrderStatusInfo, error) {
	return s.gateway.GetOrderStatus(ctx, orderID)
}

// ProcessPayment dispatches on payment method. PayPal and Klarna are
// simulated locally; only the card path reaches an endpoint.
func (s *checkoutService) ProcessPayment(ctx context.Context, payment *models.PaymentData) *models.OrderResult {

	switch payment.Method {

	case models.PaymentMethodCreditCard:
		result, err := s.gateway.ProcessCreditCard(ctx, payment)
		if err != nil {
			return &models.OrderResult{
				Success: false,
				Error:   err.Error(),
				Message: "Payment could not be processed",
			}
		}

		return result

	case models.PaymentMethodPayPal:
		return &models.OrderResult{
			Success:       true,
			TransactionID: fmt.Sprintf("paypal-%d", time.Now().UnixMilli()),
			Message:       "PayPal payment processed successfully",
		}

	case models.PaymentMethodKlarna:
		return &models.OrderResult{
			Success:       true,
			TransactionID: fmt.Sprintf("klarna-%d", time.Now().UnixMilli()),
			Message:       "Klarna payment processed successfully",
		}

	default:
		return &models.OrderResult{
			Success: false,
			Error:   "Unsupported payment method",
			Message: "The selected payment method is not supported",
		}
	}
}

// Totals derives the tax and grand total from a minor-unit subtotal.
func Totals(subtotal int64, taxRate float64) (tax, total int64) {
	tax = int64(math.Round(float64(subtotal) * taxRate))

	return tax, subtotal + tax
}
