package models

import "time"

// OrderType selects how the customer receives the order.
type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"
)

// PaymentMethod selects how the customer pays.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

// OrderStatus values. Orders are created directly in StatusConfirmed; the
// remaining statuses exist for the kitchen side, which nothing in this
// service transitions yet.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
)

// CustomerInfo is the contact block collected during checkout.
type CustomerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// DeliveryAddress is required when the order type is delivery.
// Apartment and Instructions are optional.
type DeliveryAddress struct {
	Street       string `json:"street"`
	Apartment    string `json:"apartment"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
	Instructions string `json:"instructions"`
}

// CardDetails lives only inside an active checkout flow. It is validated
// for shape, never charged, and never written onto the order.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
	Name   string `json:"name"`
}

// Order is a completed checkout. Immutable once created.
type Order struct {
	ID              string           `json:"id"`
	Items           []CartLine       `json:"items"`
	Customer        CustomerInfo     `json:"customer"`
	OrderType       OrderType        `json:"order_type"`
	DeliveryAddress *DeliveryAddress `json:"delivery_address,omitempty"`
	PaymentMethod   PaymentMethod    `json:"payment_method"`
	Subtotal        float64          `json:"subtotal"`
	DeliveryFee     float64          `json:"delivery_fee"`
	Total           float64          `json:"total"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	EstimatedTime   string           `json:"estimated_time"`
}
