package models

// PaymentData selects a payment method and carries its method-specific
// fields. Amount is in minor units.
type PaymentData struct {
	Method        PaymentMethod `json:"method" validate:"required,oneof=creditcard paypal klarna"`
	Amount        int64         `json:"amount" validate:"required,gt=0"`
	CardNumber    string        `json:"cardNumber,omitempty"`
	ExpiryMonth   string        `json:"expiryMonth,omitempty"`
	ExpiryYear    string        `json:"expiryYear,omitempty"`
	CVV           string        `json:"cvv,omitempty"`
	PayPalOrderID string        `json:"paypalOrderId,omitempty"`
	KlarnaToken   string        `json:"klarnaToken,omitempty"`
}

// CreditCardRequest is the payload of the mocked card endpoint.
type CreditCardRequest struct {
	CardNumber  string `json:"cardNumber" validate:"required,credit_card"`
	ExpiryMonth string `json:"expiryMonth" validate:"required,len=2,number"`
	ExpiryYear  string `json:"expiryYear" validate:"required,len=4,number"`
	CVV         string `json:"cvv" validate:"required,min=3,max=4,number"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
}
