package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"paradise/internal/models"
)

// CheckoutStep names a state of the checkout flow.
type CheckoutStep string

const (
	StepAuth      CheckoutStep = "auth"
	StepDetails   CheckoutStep = "details"
	StepPayment   CheckoutStep = "payment"
	StepConfirmed CheckoutStep = "confirmed"
)

// AuthMode records how the customer entered checkout.
type AuthMode string

const (
	AuthModeGuest  AuthMode = "guest"
	AuthModeSignIn AuthMode = "login"
)

var (
	// ErrNoActiveCheckout is returned when a flow operation is called for a
	// session that never started (or already finished) a checkout.
	ErrNoActiveCheckout = errors.New("no active checkout for session")
	// ErrEmptyCart is returned when checkout starts over an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOrderInFlight is returned when PlaceOrder is called while a
	// previous call is still processing.
	ErrOrderInFlight = errors.New("order is already being processed")
)

// CheckoutState is the read-side view of a session's checkout flow.
type CheckoutState struct {
	Step            CheckoutStep           `json:"step"`
	AuthMode        AuthMode               `json:"auth_mode"`
	OrderType       models.OrderType       `json:"order_type"`
	PaymentMethod   models.PaymentMethod   `json:"payment_method"`
	Customer        models.CustomerInfo    `json:"customer"`
	DeliveryAddress models.DeliveryAddress `json:"delivery_address"`
	Errors          map[string]string      `json:"errors,omitempty"`
	Subtotal        float64                `json:"subtotal"`
	DeliveryFee     float64                `json:"delivery_fee"`
	Total           float64                `json:"total"`
	Processing      bool                   `json:"processing"`
}

// checkoutFlow is the mutable per-session flow state.
type checkoutFlow struct {
	step       CheckoutStep
	authMode   AuthMode
	orderType  models.OrderType
	payment    models.PaymentMethod
	customer   models.CustomerInfo
	address    models.DeliveryAddress
	errors     map[string]string
	processing bool
}

// CheckoutService drives the multi-step checkout state machine: auth,
// details, payment, then a confirmed terminal state. Backward navigation is
// allowed to the immediately preceding step only. Order type and payment
// method are selections, not steps; they condition which fields are
// required and whether the delivery fee applies.
type CheckoutService struct {
	cartService     *CartService
	orderService    *OrderService
	authService     *AuthService
	processingDelay time.Duration
	flows           map[string]*checkoutFlow
	mu              sync.Mutex
}

// NewCheckoutService creates a new CheckoutService. processingDelay is the
// simulated payment-authorization wait; tests pass zero.
func NewCheckoutService(cartService *CartService, orderService *OrderService, authService *AuthService, processingDelay time.Duration) *CheckoutService {
	return &CheckoutService{
		cartService:     cartService,
		orderService:    orderService,
		authService:     authService,
		processingDelay: processingDelay,
		flows:           make(map[string]*checkoutFlow),
	}
}

func (s *CheckoutService) stateLocked(f *checkoutFlow, sessionID string) *CheckoutState {
	subtotal := s.cartService.TotalPrice(sessionID)
	fee := 0.0
	if f.orderType == models.OrderTypeDelivery {
		fee = DeliveryFee
	}

	state := &CheckoutState{
		Step:            f.step,
		AuthMode:        f.authMode,
		OrderType:       f.orderType,
		PaymentMethod:   f.payment,
		Customer:        f.customer,
		DeliveryAddress: f.address,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Total:           subtotal + fee,
		Processing:      f.processing,
	}
	if len(f.errors) > 0 {
		state.Errors = make(map[string]string, len(f.errors))
		for k, v := range f.errors {
			state.Errors[k] = v
		}
	}
	return state
}

// Start begins a fresh checkout flow for the session. Any previous flow is
// discarded. Starting with an empty cart is rejected.
func (s *CheckoutService) Start(sessionID string) (*CheckoutState, error) {
	if s.cartService.TotalItems(sessionID) == 0 {
		return nil, ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := &checkoutFlow{
		step:      StepAuth,
		authMode:  AuthModeGuest,
		orderType: models.OrderTypeDelivery,
		payment:   models.PaymentMethodCard,
	}
	s.flows[sessionID] = f
	return s.stateLocked(f, sessionID), nil
}

// State returns the session's current checkout state.
func (s *CheckoutService) State(sessionID string) (*CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok {
		return nil, ErrNoActiveCheckout
	}
	return s.stateLocked(f, sessionID), nil
}

// ContinueAsGuest advances from the auth step without signing in.
func (s *CheckoutService) ContinueAsGuest(sessionID string) (*CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok {
		return nil, ErrNoActiveCheckout
	}
	if f.step != StepAuth {
		return nil, fmt.Errorf("checkout is at step %s, expected %s", f.step, StepAuth)
	}

	f.authMode = AuthModeGuest
	f.step = StepDetails
	f.errors = nil
	return s.stateLocked(f, sessionID), nil
}

// SignIn runs the simulated sign-on, pre-fills the contact block with the
// returned identity and advances to the details step. The session token is
// returned so the client can hold on to it.
func (s *CheckoutService) SignIn(sessionID string) (*CheckoutState, string, error) {
	s.mu.Lock()
	f, ok := s.flows[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, "", ErrNoActiveCheckout
	}
	if f.step != StepAuth {
		step := f.step
		s.mu.Unlock()
		return nil, "", fmt.Errorf("checkout is at step %s, expected %s", step, StepAuth)
	}
	s.mu.Unlock()

	// The simulated wait happens outside the lock so other sessions are not
	// blocked behind it.
	customer, token, err := s.authService.SignIn()
	if err != nil {
		return nil, "", fmt.Errorf("sign-in failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok = s.flows[sessionID]
	if !ok {
		return nil, "", ErrNoActiveCheckout
	}
	f.authMode = AuthModeSignIn
	f.customer = customer
	f.step = StepDetails
	f.errors = nil
	return s.stateLocked(f, sessionID), token, nil
}

// SetOrderType switches the delivery/pickup selection. Allowed at any step
// before the flow is confirmed.
func (s *CheckoutService) SetOrderType(sessionID string, orderType models.OrderType) (*CheckoutState, error) {
	if orderType != models.OrderTypeDelivery && orderType != models.OrderTypePickup {
		return nil, fmt.Errorf("invalid order type: %s", orderType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok {
		return nil, ErrNoActiveCheckout
	}
	if f.step == StepConfirmed {
		return nil, fmt.Errorf("checkout is already confirmed")
	}

	f.orderType = orderType
	return s.stateLocked(f, sessionID), nil
}

// SetPaymentMethod switches the card/cash selection. Allowed at any step
// before the flow is confirmed.
func (s *CheckoutService) SetPaymentMethod(sessionID string, method models.PaymentMethod) (*CheckoutState, error) {
	if method != models.PaymentMethodCard && method != models.PaymentMethodCash {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok {
		return nil, ErrNoActiveCheckout
	}
	if f.step == StepConfirmed {
		return nil, fmt.Errorf("checkout is already confirmed")
	}

	f.payment = method
	return s.stateLocked(f, sessionID), nil
}

// SubmitDetails validates the contact block (and the address for delivery
// orders) and advances to the payment step. On validation failure the
// returned state carries an error map keyed by exactly the offending
// fields, and the step does not advance.
func (s *CheckoutService) SubmitDetails(sessionID string, customer models.CustomerInfo, address models.DeliveryAddress) (*CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok {
		return nil, ErrNoActiveCheckout
	}
	if f.step != StepDetails {
		return nil, fmt.Errorf("checkout is at step %s, expected %s", f.step, StepDetails)
	}

	f.customer = customer
	f.address = address
	f.errors = ValidateDetails(customer, f.orderType, address)
	if len(f.errors) == 0 {
		f.step = StepPayment
	}
	return s.stateLocked(f, sessionID), nil
}

// Back moves the flow to the immediately preceding step.
func (s *CheckoutService) Back(sessionID string) (*CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok {
		return nil, ErrNoActiveCheckout
	}

	switch f.step {
	case StepDetails:
		f.step = StepAuth
	case StepPayment:
		f.step = StepDetails
	default:
		return nil, fmt.Errorf("cannot go back from step %s", f.step)
	}
	f.errors = nil
	return s.stateLocked(f, sessionID), nil
}

// PlaceOrder validates the payment fields, waits the simulated processing
// delay and then creates the order, clears the cart and moves the flow to
// its confirmed terminal state. A second call while one is in flight is
// rejected with ErrOrderInFlight. The simulated processing step has no
// failure branch.
func (s *CheckoutService) PlaceOrder(sessionID string, card models.CardDetails) (*models.Order, *CheckoutState, error) {
	s.mu.Lock()
	f, ok := s.flows[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, ErrNoActiveCheckout
	}
	if f.step != StepPayment {
		step := f.step
		s.mu.Unlock()
		return nil, nil, fmt.Errorf("checkout is at step %s, expected %s", step, StepPayment)
	}
	if f.processing {
		s.mu.Unlock()
		return nil, nil, ErrOrderInFlight
	}

	f.errors = ValidatePayment(f.payment, card)
	if len(f.errors) > 0 {
		state := s.stateLocked(f, sessionID)
		s.mu.Unlock()
		return nil, state, nil
	}

	lines := s.cartService.Lines(sessionID)
	if len(lines) == 0 {
		s.mu.Unlock()
		return nil, nil, ErrEmptyCart
	}

	subtotal := s.cartService.TotalPrice(sessionID)
	fee := 0.0
	if f.orderType == models.OrderTypeDelivery {
		fee = DeliveryFee
	}

	draft := OrderDraft{
		Items:         lines,
		Customer:      f.customer,
		OrderType:     f.orderType,
		PaymentMethod: f.payment,
		Subtotal:      subtotal,
		DeliveryFee:   fee,
		Total:         subtotal + fee,
	}
	if f.orderType == models.OrderTypeDelivery {
		address := f.address
		draft.DeliveryAddress = &address
	}

	f.processing = true
	s.mu.Unlock()

	// Simulated payment authorization. A fixed wait with no failure branch;
	// the flow cannot advance or re-enter until it finishes.
	time.Sleep(s.processingDelay)

	order, err := s.orderService.CreateOrder(sessionID, draft)

	s.mu.Lock()
	defer s.mu.Unlock()

	f.processing = false
	if err != nil {
		return nil, s.stateLocked(f, sessionID), fmt.Errorf("failed to create order: %w", err)
	}

	s.cartService.Clear(sessionID)
	f.step = StepConfirmed
	f.errors = nil
	return order, s.stateLocked(f, sessionID), nil
}
