package orders

import (
	"errors"
	"sync"

	"cafeteria/internal/models"
	"cafeteria/internal/storage"
)

var (
	// ErrNotFound is returned when no order has the requested ID
	ErrNotFound = errors.New("order not found")
	// ErrInvalidTransition is returned when a status change is not allowed
	// by the order state machine. The order is left unchanged.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Store owns the canonical order collection. The storefront appends, the
// admin surface transitions statuses; orders are never deleted. Mutations
// write through to persistence best-effort: the in-memory state stays valid
// even if a write fails.
type Store struct {
	mu     sync.RWMutex
	orders []models.Order
	store  *storage.Store
}

// NewStore loads the order collection from persistence
func NewStore(store *storage.Store) *Store {
	return &Store{
		orders: store.Orders(),
		store:  store,
	}
}

// Append adds a new order. The total is recomputed from the lines so the
// invariant total == sum(price*quantity) always holds in the store.
func (s *Store) Append(order models.Order) {
	order.Total = order.RecomputeTotal()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	s.store.SaveOrders(s.orders)
}

// List returns all orders in append order. Sorting and filtering are the
// caller's concern.
func (s *Store) List() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// Get returns the order with the given ID
func (s *Store) Get(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, order := range s.orders {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

// Transition moves an order to a new status. Disallowed transitions return
// ErrInvalidTransition without mutating the order.
func (s *Store) Transition(id string, to models.OrderStatus) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, order := range s.orders {
		if order.ID != id {
			continue
		}
		if !models.CanTransition(order.Status, to) {
			return models.Order{}, ErrInvalidTransition
		}
		s.orders[i].Status = to
		s.store.SaveOrders(s.orders)
		return s.orders[i], nil
	}
	return models.Order{}, ErrNotFound
}
