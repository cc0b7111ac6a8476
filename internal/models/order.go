package models

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "creditcard"
	PaymentMethodPayPal     PaymentMethod = "paypal"
	PaymentMethodKlarna     PaymentMethod = "klarna"
)

type OrderStatusValue string

const (
	OrderStatusProcessing OrderStatusValue = "processing"
	OrderStatusShipped    OrderStatusValue = "shipped"
	OrderStatusDelivered  OrderStatusValue = "delivered"
	OrderStatusCancelled  OrderStatusValue = "cancelled"
)

type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderSubmission is the immutable payload sent whole to the order
// endpoint. Amounts are integer minor units; Total = Subtotal + Tax.
type OrderSubmission struct {
	CustomerInfo   CustomerInfo   `json:"customerInfo"`
	Address        Address        `json:"address"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod"`
	PaymentDetails *PaymentData   `json:"paymentDetails,omitempty"`
	Items          []CartItem     `json:"items"`
	Subtotal       int64          `json:"subtotal"`
	Tax            int64          `json:"tax"`
	Total          int64          `json:"total"`
}

// OrderResult mirrors the order endpoint's response body. Its own
// Success flag is authoritative regardless of HTTP status.
type OrderResult struct {
	Success       bool   `json:"success"`
	OrderID       string `json:"orderId,omitempty"`
	PaymentID     string `json:"paymentId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message"`
	Error         string `json:"error,omitempty"`
}

type OrderStatusInfo struct {
	ID                string           `json:"id"`
	Status            OrderStatusValue `json:"status"`
	TrackingNumber    string           `json:"trackingNumber,omitempty"`
	EstimatedDelivery string           `json:"estimatedDelivery,omitempty"`
}
