package orders

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cafeteria/internal/catalog"
	"cafeteria/internal/models"
	"cafeteria/internal/monitoring"
	"cafeteria/internal/notify"

	"github.com/google/uuid"
)

// Verdict classifies an assistant reply
type Verdict int

const (
	// VerdictProse means the reply is ordinary conversation text
	VerdictProse Verdict = iota
	// VerdictOrder means the reply is a well-formed order payload
	VerdictOrder
	// VerdictRejected means the reply parsed as an order payload but carried
	// an invalid quantity; the whole order is rejected rather than coerced
	VerdictRejected
)

// RequestedItem is one item of an order payload as the customer asked for it
type RequestedItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Payload is the order-completion wire shape produced by the model at the end
// of an ordering exchange. No other fields are recognized.
type Payload struct {
	Customer string          `json:"customer"`
	Items    []RequestedItem `json:"items"`
}

// Classify decides whether an assistant reply is an order-completion payload.
// Anything that is not valid JSON with a customer field and a non-empty items
// list is prose. A payload with a non-positive quantity is rejected outright.
func Classify(reply string) (Payload, Verdict) {
	var payload Payload
	if err := json.Unmarshal([]byte(reply), &payload); err != nil {
		return Payload{}, VerdictProse
	}
	if payload.Customer == "" || len(payload.Items) == 0 {
		return Payload{}, VerdictProse
	}
	for _, item := range payload.Items {
		if item.Quantity <= 0 {
			return Payload{}, VerdictRejected
		}
	}
	return payload, VerdictOrder
}

// Pipeline turns terminal chat replies into persisted orders. It resolves
// requested items against the catalog, appends the order and fires the
// new-order notification.
type Pipeline struct {
	catalog *catalog.Catalog
	orders  *Store
	hub     *notify.Hub
	metrics *monitoring.Metrics
}

// NewPipeline wires the intake pipeline
func NewPipeline(cat *catalog.Catalog, store *Store, hub *notify.Hub, metrics *monitoring.Metrics) *Pipeline {
	return &Pipeline{
		catalog: cat,
		orders:  store,
		hub:     hub,
		metrics: metrics,
	}
}

// Process inspects an assistant reply. For prose it returns (nil, reply)
// unchanged. For an order payload it materializes the order, appends it,
// fires the notification and returns the order plus a confirmation string.
func (p *Pipeline) Process(reply string) (*models.Order, string) {
	payload, verdict := Classify(reply)
	switch verdict {
	case VerdictRejected:
		log.Printf("Rejected order payload with invalid quantity: %s", reply)
		p.metrics.RejectedPayloads.Inc()
		return nil, reply
	case VerdictProse:
		return nil, reply
	}

	order := p.materialize(payload)
	p.orders.Append(order)
	p.metrics.OrdersCreated.Inc()
	p.hub.Fire(notify.TopicNewOrder)

	confirmation := fmt.Sprintf("Thank you, %s! Your order has been placed successfully. We'll notify you when it's approved.", order.Customer)
	return &order, confirmation
}

// materialize resolves the payload against the catalog and builds the order.
// Unmatched names become degraded lines at zero price: a partially-wrong
// order is more useful to the restaurant than a silently dropped one.
func (p *Pipeline) materialize(payload Payload) models.Order {
	lines := make([]models.OrderLine, len(payload.Items))
	for i, item := range payload.Items {
		line := models.OrderLine{
			MenuItemID: models.UnresolvedMenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
		}
		if menuItem, ok := p.catalog.Resolve(item.Name); ok {
			line.MenuItemID = menuItem.ID
			line.Price = menuItem.Price
		} else {
			log.Printf("No menu match for requested item %q", item.Name)
			p.metrics.UnresolvedLines.Inc()
		}
		lines[i] = line
	}

	order := models.Order{
		ID:        "ORD-" + uuid.NewString(),
		Customer:  payload.Customer,
		Items:     lines,
		Status:    models.OrderStatusPending,
		Timestamp: time.Now().UTC(),
	}
	order.Total = order.RecomputeTotal()
	return order
}
