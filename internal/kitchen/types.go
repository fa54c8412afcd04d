package kitchen

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderCompleted OrderStatus = "Completed"
	OrderRejected  OrderStatus = "Rejected"
)

// Order is a customer order shown on the Orders view.
type Order struct {
	ID       int         `yaml:"id"`
	Item     string      `yaml:"item"`
	Customer string      `yaml:"customer"`
	Status   OrderStatus `yaml:"status"`
}

// InventoryItem is a stock line. Quantity is always non-negative.
type InventoryItem struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
	Unit     string `yaml:"unit"`
}

// MenuItem is a dish on the menu.
type MenuItem struct {
	ID    int             `yaml:"id"`
	Name  string          `yaml:"name"`
	Price decimal.Decimal `yaml:"price"`
}

// FormattedPrice renders the price with two decimals, e.g. "$22.50".
func (m MenuItem) FormattedPrice() string {
	return "$" + m.Price.StringFixed(2)
}

// AnalyticsPoint is one month of sales.
type AnalyticsPoint struct {
	Month string `yaml:"month"`
	Sales int    `yaml:"sales"`
}

// Employee is a staff member.
type Employee struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// ChatMessage is a single line in the operator chat.
type ChatMessage struct {
	ID     uuid.UUID
	Sender string
	Text   string
	SentAt time.Time
}

// TotalSales sums the sales of all points.
func TotalSales(points []AnalyticsPoint) int {
	total := 0
	for _, p := range points {
		total += p.Sales
	}
	return total
}

// MaxSales returns the largest single-month sales value, or 0 for no points.
func MaxSales(points []AnalyticsPoint) int {
	highest := 0
	for _, p := range points {
		if p.Sales > highest {
			highest = p.Sales
		}
	}
	return highest
}
