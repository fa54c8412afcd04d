package kitchen

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Fixtures is the complete set of sample data the dashboard starts with.
type Fixtures struct {
	Orders    []Order          `yaml:"orders,omitempty"`
	Inventory []InventoryItem  `yaml:"inventory,omitempty"`
	Menu      []MenuItem       `yaml:"menu,omitempty"`
	Analytics []AnalyticsPoint `yaml:"analytics,omitempty"`
	Employees []Employee       `yaml:"employees,omitempty"`
}

// DefaultFixtures returns a fresh copy of the built-in sample data.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Orders: []Order{
			{ID: 1, Item: "Spicy Ramen", Customer: "John Doe", Status: OrderPending},
			{ID: 2, Item: "Sushi Platter", Customer: "Jane Smith", Status: OrderPending},
			{ID: 3, Item: "Tofu Stir-fry", Customer: "Mike Lee", Status: OrderCompleted},
		},
		Inventory: []InventoryItem{
			{ID: 1, Name: "Ramen Noodles", Quantity: 100, Unit: "packs"},
			{ID: 2, Name: "Tofu", Quantity: 15, Unit: "blocks"},
			{ID: 3, Name: "Soy Sauce", Quantity: 200, Unit: "ml"},
		},
		Menu: []MenuItem{
			{ID: 1, Name: "Spicy Ramen", Price: decimal.RequireFromString("12.99")},
			{ID: 2, Name: "Sushi Platter", Price: decimal.RequireFromString("22.50")},
			{ID: 3, Name: "Tofu Stir-fry", Price: decimal.RequireFromString("10.00")},
		},
		Analytics: []AnalyticsPoint{
			{Month: "Jan", Sales: 30},
			{Month: "Feb", Sales: 45},
			{Month: "Mar", Sales: 60},
			{Month: "Apr", Sales: 70},
			{Month: "May", Sales: 90},
		},
		Employees: []Employee{
			{ID: 1, Name: "Alice Johnson", Role: "Manager"},
			{ID: 2, Name: "Bob Brown", Role: "Chef"},
			{ID: 3, Name: "Charlie Davis", Role: "Waiter"},
		},
	}
}

// Merge returns base with every non-empty collection of overlay replacing
// the corresponding collection of base.
func Merge(base, overlay Fixtures) Fixtures {
	merged := base
	if len(overlay.Orders) > 0 {
		merged.Orders = overlay.Orders
	}
	if len(overlay.Inventory) > 0 {
		merged.Inventory = overlay.Inventory
	}
	if len(overlay.Menu) > 0 {
		merged.Menu = overlay.Menu
	}
	if len(overlay.Analytics) > 0 {
		merged.Analytics = overlay.Analytics
	}
	if len(overlay.Employees) > 0 {
		merged.Employees = overlay.Employees
	}
	return merged
}

// FixtureError describes an invalid fixture record.
type FixtureError struct {
	Collection string
	ID         int
	Reason     string
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("invalid %s fixture (id %d): %s", e.Collection, e.ID, e.Reason)
}

// Validate checks that identifiers are unique per collection and that
// quantities, prices and order statuses are in range.
func (f Fixtures) Validate() error {
	seen := map[int]bool{}
	for _, o := range f.Orders {
		if seen[o.ID] {
			return &FixtureError{Collection: "orders", ID: o.ID, Reason: "duplicate id"}
		}
		seen[o.ID] = true
		switch o.Status {
		case OrderPending, OrderCompleted, OrderRejected:
		default:
			return &FixtureError{Collection: "orders", ID: o.ID, Reason: fmt.Sprintf("unknown status %q", o.Status)}
		}
	}

	seen = map[int]bool{}
	for _, item := range f.Inventory {
		if seen[item.ID] {
			return &FixtureError{Collection: "inventory", ID: item.ID, Reason: "duplicate id"}
		}
		seen[item.ID] = true
		if item.Quantity < 0 {
			return &FixtureError{Collection: "inventory", ID: item.ID, Reason: "negative quantity"}
		}
	}

	seen = map[int]bool{}
	for _, item := range f.Menu {
		if seen[item.ID] {
			return &FixtureError{Collection: "menu", ID: item.ID, Reason: "duplicate id"}
		}
		seen[item.ID] = true
		if item.Price.IsNegative() {
			return &FixtureError{Collection: "menu", ID: item.ID, Reason: "negative price"}
		}
	}

	seen = map[int]bool{}
	for _, e := range f.Employees {
		if seen[e.ID] {
			return &FixtureError{Collection: "employees", ID: e.ID, Reason: "duplicate id"}
		}
		seen[e.ID] = true
	}

	return nil
}
