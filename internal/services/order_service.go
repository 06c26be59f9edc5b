package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"paradise/internal/models"
	"paradise/internal/repositories"
	"paradise/pkg/rabbitmq"
)

// DeliveryFee is the flat fee added to delivery orders. Pickup orders carry
// no fee.
const DeliveryFee = 4.99

const (
	estimatedTimePickup   = "15-20 minutes"
	estimatedTimeDelivery = "30-45 minutes"
)

const orderIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// OrderDraft carries everything the checkout flow has collected by the time
// the customer places the order.
type OrderDraft struct {
	Items           []models.CartLine
	Customer        models.CustomerInfo
	OrderType       models.OrderType
	DeliveryAddress *models.DeliveryAddress
	PaymentMethod   models.PaymentMethod
	Subtotal        float64
	DeliveryFee     float64
	Total           float64
}

// OrderService handles order creation and the per-session current order.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client // optional; nil disables event publishing
	current   map[string]*models.Order
	mu        sync.Mutex
	now       func() time.Time
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case order events are not published.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
		current:   make(map[string]*models.Order),
		now:       time.Now,
	}
}

// generateOrderID builds an id of the form AP-<base36 millis><4 random
// base36 chars>, uppercased. Unique enough within one process; there is no
// cross-process collision guarantee.
func (s *OrderService) generateOrderID() string {
	var b strings.Builder
	b.WriteString("AP-")
	b.WriteString(strconv.FormatInt(s.now().UnixMilli(), 36))
	for i := 0; i < 4; i++ {
		b.WriteByte(orderIDAlphabet[rand.Intn(len(orderIDAlphabet))])
	}
	return strings.ToUpper(b.String())
}

// EstimatedTime returns the fixed preparation estimate for an order type.
func EstimatedTime(orderType models.OrderType) string {
	if orderType == models.OrderTypePickup {
		return estimatedTimePickup
	}
	return estimatedTimeDelivery
}

// CreateOrder turns a draft into a confirmed order: it assigns an id, the
// creation time and the estimated-time string, stores the order as the
// session's current order and appends it to the history. The simulated
// flow has no failure path, so the order is created directly in the
// confirmed status.
func (s *OrderService) CreateOrder(sessionID string, draft OrderDraft) (*models.Order, error) {
	items := make([]models.CartLine, len(draft.Items))
	copy(items, draft.Items)

	order := &models.Order{
		ID:              s.generateOrderID(),
		Items:           items,
		Customer:        draft.Customer,
		OrderType:       draft.OrderType,
		DeliveryAddress: draft.DeliveryAddress,
		PaymentMethod:   draft.PaymentMethod,
		Subtotal:        draft.Subtotal,
		DeliveryFee:     draft.DeliveryFee,
		Total:           draft.Total,
		Status:          models.StatusConfirmed,
		CreatedAt:       s.now(),
		EstimatedTime:   EstimatedTime(draft.OrderType),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	s.mu.Lock()
	s.current[sessionID] = order
	s.mu.Unlock()

	s.publishOrderCreated(order)

	return order, nil
}

// publishOrderCreated emits an order.created event when a broker is
// configured. Publishing is best-effort; a failure never fails the order.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		return
	}

	event := map[string]interface{}{
		"order_id":   order.ID,
		"order_type": order.OrderType,
		"status":     order.Status,
		"total":      order.Total,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event: %v", err)
		return
	}
	if err := s.mqClient.Publish("order.created", body); err != nil {
		log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		return
	}
	log.Printf("Published order created event for order %s", order.ID)
}

// CurrentOrder returns the session's current order, or nil when the
// confirmation has been dismissed or nothing was ordered yet.
func (s *OrderService) CurrentOrder(sessionID string) *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current[sessionID]
}

// ClearCurrentOrder drops the session's current order pointer. The order
// history is untouched.
func (s *OrderService) ClearCurrentOrder(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.current, sessionID)
}

// History returns all orders placed in this process, newest first.
func (s *OrderService) History() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}
