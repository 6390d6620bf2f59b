package export

import (
	"strings"
	"testing"
	"time"

	"cafeteria/internal/models"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:       "ORD-1",
		Customer: "Alice, \"the regular\"",
		Items: []models.OrderLine{
			{MenuItemID: "MENU-1", Name: "Burger", Quantity: 2, Price: 9.50},
			{MenuItemID: "MENU-2", Name: "Fries", Quantity: 1, Price: 3.25},
		},
		Total:     22.25,
		Status:    models.OrderStatusPending,
		Timestamp: time.Date(2025, time.March, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestOrdersCSV(t *testing.T) {
	data, err := OrdersCSV([]models.Order{sampleOrder()})
	if err != nil {
		t.Fatalf("OrdersCSV() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d CSV lines, want 2", len(lines))
	}
	if lines[0] != "id,customer,items,total,status,timestamp" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Burger (x2); Fries (x1)") {
		t.Errorf("items column not flattened: %q", lines[1])
	}
	if !strings.Contains(lines[1], "22.25") {
		t.Errorf("total missing from row: %q", lines[1])
	}
	// Commas and quotes in the customer field must be escaped
	if !strings.Contains(lines[1], `"Alice, ""the regular"""`) {
		t.Errorf("customer field not quoted: %q", lines[1])
	}
}

func TestMenuCSV(t *testing.T) {
	data, err := MenuCSV([]models.MenuItem{
		{ID: "MENU-1", Name: "Burger", Description: "Classic", Price: 9.5, ImageURL: "http://x/burger.png"},
	})
	if err != nil {
		t.Fatalf("MenuCSV() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "id,name,description,price,imageUrl" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "MENU-1,Burger,Classic,9.50,http://x/burger.png" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestReceipt(t *testing.T) {
	receipt := Receipt(sampleOrder())

	for _, want := range []string{
		"Receipt for Order #ORD-1",
		"Status: Pending",
		"- Burger (x2): $19.00",
		"- Fries (x1): $3.25",
		"Total: $22.25",
	} {
		if !strings.Contains(receipt, want) {
			t.Errorf("receipt missing %q:\n%s", want, receipt)
		}
	}
}
