package orders

import (
	"strings"
	"testing"

	"cafeteria/internal/catalog"
	"cafeteria/internal/models"
	"cafeteria/internal/monitoring"
	"cafeteria/internal/notify"
	"cafeteria/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
)

func newTestPipeline(t *testing.T, menu []models.MenuItem) (*Pipeline, *Store, *notify.Hub) {
	t.Helper()
	store := storage.NewStore(storage.NewMemoryKV())
	store.SaveMenu(menu)

	cat := catalog.New(store)
	orderStore := NewStore(store)
	hub := notify.NewHub()
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	return NewPipeline(cat, orderStore, hub, metrics), orderStore, hub
}

func burgerMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: "MENU-1", Name: "Burger", Description: "Classic beef burger", Price: 9.50},
	}
}

func TestProcessOrderPayload(t *testing.T) {
	pipeline, store, hub := newTestPipeline(t, burgerMenu())

	fired := 0
	hub.Subscribe(notify.TopicNewOrder, func() { fired++ })

	order, reply := pipeline.Process(`{"customer":"Alice","items":[{"name":"burger","quantity":2}]}`)
	if order == nil {
		t.Fatal("Process() did not create an order for a valid payload")
	}

	if order.Customer != "Alice" {
		t.Errorf("order.Customer = %q, want %q", order.Customer, "Alice")
	}
	if len(order.Items) != 1 {
		t.Fatalf("len(order.Items) = %d, want 1", len(order.Items))
	}

	line := order.Items[0]
	if line.Name != "burger" {
		t.Errorf("line.Name = %q, want the customer's verbatim %q", line.Name, "burger")
	}
	if line.MenuItemID != "MENU-1" {
		t.Errorf("line.MenuItemID = %q, want %q", line.MenuItemID, "MENU-1")
	}
	if line.Quantity != 2 {
		t.Errorf("line.Quantity = %d, want 2", line.Quantity)
	}
	if line.Price != 9.50 {
		t.Errorf("line.Price = %v, want 9.50", line.Price)
	}
	if order.Total != 19.00 {
		t.Errorf("order.Total = %v, want 19.00", order.Total)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("order.Status = %q, want Pending", order.Status)
	}

	if !strings.Contains(reply, "Alice") {
		t.Errorf("confirmation %q does not reference the customer name", reply)
	}
	if fired != 1 {
		t.Errorf("new-order notification fired %d times, want 1", fired)
	}
	if got := len(store.List()); got != 1 {
		t.Errorf("store holds %d orders, want 1", got)
	}
}

func TestProcessUnresolvedItem(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t, burgerMenu())

	order, _ := pipeline.Process(`{"customer":"Bob","items":[{"name":"Pizza","quantity":1}]}`)
	if order == nil {
		t.Fatal("Process() rejected an order with an unmatched item; degraded lines must be accepted")
	}

	line := order.Items[0]
	if line.MenuItemID != models.UnresolvedMenuItemID {
		t.Errorf("line.MenuItemID = %q, want unresolved sentinel %q", line.MenuItemID, models.UnresolvedMenuItemID)
	}
	if line.Price != 0 {
		t.Errorf("line.Price = %v, want 0 for a degraded line", line.Price)
	}
	if order.Total != 0 {
		t.Errorf("order.Total = %v, want 0.00", order.Total)
	}
}

func TestProcessProse(t *testing.T) {
	pipeline, store, hub := newTestPipeline(t, burgerMenu())

	fired := 0
	hub.Subscribe(notify.TopicNewOrder, func() { fired++ })

	text := `Sure, here's our menu: Burger $9.50`
	order, reply := pipeline.Process(text)
	if order != nil {
		t.Fatal("Process() created an order from conversational prose")
	}
	if reply != text {
		t.Errorf("prose reply was altered: got %q, want %q", reply, text)
	}
	if fired != 0 {
		t.Errorf("notification fired for prose")
	}
	if got := len(store.List()); got != 0 {
		t.Errorf("store holds %d orders, want 0", got)
	}
}

func TestProcessInvalidQuantityRejectsWholeOrder(t *testing.T) {
	pipeline, store, _ := newTestPipeline(t, burgerMenu())

	for _, reply := range []string{
		`{"customer":"Eve","items":[{"name":"Burger","quantity":0}]}`,
		`{"customer":"Eve","items":[{"name":"Burger","quantity":-2}]}`,
		`{"customer":"Eve","items":[{"name":"Burger","quantity":"two"}]}`,
	} {
		order, got := pipeline.Process(reply)
		if order != nil {
			t.Errorf("Process(%q) created an order, want rejection", reply)
		}
		if got != reply {
			t.Errorf("Process(%q) altered the reply text", reply)
		}
	}
	if got := len(store.List()); got != 0 {
		t.Errorf("store holds %d orders, want 0", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  Verdict
	}{
		{"valid payload", `{"customer":"Alice","items":[{"name":"Burger","quantity":1}]}`, VerdictOrder},
		{"not json", "Hello! What can I get you?", VerdictProse},
		{"missing customer", `{"items":[{"name":"Burger","quantity":1}]}`, VerdictProse},
		{"empty items", `{"customer":"Alice","items":[]}`, VerdictProse},
		{"missing items", `{"customer":"Alice"}`, VerdictProse},
		{"zero quantity", `{"customer":"Alice","items":[{"name":"Burger","quantity":0}]}`, VerdictRejected},
		{"fractional quantity", `{"customer":"Alice","items":[{"name":"Burger","quantity":1.5}]}`, VerdictProse},
		{"json array", `[1,2,3]`, VerdictProse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := Classify(tt.reply); got != tt.want {
				t.Errorf("Classify(%q) verdict = %v, want %v", tt.reply, got, tt.want)
			}
		})
	}
}
