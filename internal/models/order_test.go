package models

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusApproved, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusApproved, OrderStatusDelivered, true},
		{OrderStatusApproved, OrderStatusCancelled, true},
		{OrderStatusApproved, OrderStatusPending, false},
		{OrderStatusDelivered, OrderStatusApproved, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusApproved, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if OrderStatusPending.IsTerminal() || OrderStatusApproved.IsTerminal() {
		t.Error("Pending/Approved must not be terminal")
	}
	if !OrderStatusDelivered.IsTerminal() || !OrderStatusCancelled.IsTerminal() {
		t.Error("Delivered/Cancelled must be terminal")
	}
}

func TestRecomputeTotal(t *testing.T) {
	order := Order{
		Items: []OrderLine{
			{Name: "Burger", Quantity: 2, Price: 9.50},
			{Name: "Pizza", Quantity: 3, Price: 0}, // degraded line
			{Name: "Fries", Quantity: 1, Price: 3.25},
		},
	}
	if got, want := order.RecomputeTotal(), 2*9.50+3.25; got != want {
		t.Errorf("RecomputeTotal() = %v, want %v", got, want)
	}
}
