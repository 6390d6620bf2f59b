package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"cafeteria/internal/models"
)

// OrdersCSV renders the order collection as CSV. Lines are flattened into a
// single column in "Name (x2); Other (x1)" form.
func OrdersCSV(orders []models.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "customer", "items", "total", "status", "timestamp"}); err != nil {
		return nil, err
	}
	for _, order := range orders {
		record := []string{
			order.ID,
			order.Customer,
			flattenItems(order.Items),
			fmt.Sprintf("%.2f", order.Total),
			string(order.Status),
			order.Timestamp.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// MenuCSV renders the menu as CSV
func MenuCSV(menu []models.MenuItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "name", "description", "price", "imageUrl"}); err != nil {
		return nil, err
	}
	for _, item := range menu {
		record := []string{
			item.ID,
			item.Name,
			item.Description,
			fmt.Sprintf("%.2f", item.Price),
			item.ImageURL,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// Receipt renders a plain-text receipt for a single order
func Receipt(order models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Receipt for Order #%s\n", order.ID)
	fmt.Fprintf(&b, "Customer: %s\n", order.Customer)
	fmt.Fprintf(&b, "Date: %s\n", order.Timestamp.Format("Jan 2, 2006 3:04 PM"))
	fmt.Fprintf(&b, "Status: %s\n\n", order.Status)
	b.WriteString("Items:\n")
	for _, line := range order.Items {
		fmt.Fprintf(&b, "- %s (x%d): $%.2f\n", line.Name, line.Quantity, line.Price*float64(line.Quantity))
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f", order.Total)
	return b.String()
}

func flattenItems(lines []models.OrderLine) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = fmt.Sprintf("%s (x%d)", line.Name, line.Quantity)
	}
	return strings.Join(parts, "; ")
}
