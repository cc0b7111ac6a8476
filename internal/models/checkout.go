package models

import "strings"

// CheckoutRequest carries the checkout form fields. Postal code follows
// the 5-digit demo rule; payment method defaults to credit card.
type CheckoutRequest struct {
	FirstName     string        `json:"firstName" validate:"required"`
	LastName      string        `json:"lastName" validate:"required"`
	Email         string        `json:"email" validate:"required,email"`
	Street        string        `json:"street" validate:"required"`
	PostalCode    string        `json:"postalCode" validate:"required,len=5,number"`
	City          string        `json:"city" validate:"required"`
	Country       string        `json:"country" validate:"required"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"omitempty,oneof=creditcard paypal klarna"`
}

// Normalize trims surrounding whitespace so "required" means non-empty
// after trim, and applies the credit card default.
func (r *CheckoutRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	r.Street = strings.TrimSpace(r.Street)
	r.PostalCode = strings.TrimSpace(r.PostalCode)
	r.City = strings.TrimSpace(r.City)
	r.Country = strings.TrimSpace(r.Country)

	if r.PaymentMethod == "" {
		r.PaymentMethod = PaymentMethodCreditCard
	}
}

type CheckoutResponse struct {
	Result *OrderResult `json:"result"`
	Cart   *Cart        `json:"cart"`
}
