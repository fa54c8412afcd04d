package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"kitchenctl/internal/kitchen"
)

// QuantityError reports quantity input that cannot be stored.
type QuantityError struct {
	Input  string
	Reason string
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %q: %s", e.Input, e.Reason)
}

// ParseQuantity converts editor input into a stock quantity. Only whole,
// non-negative numbers are accepted.
func ParseQuantity(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, &QuantityError{Input: input, Reason: "empty"}
	}
	q, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &QuantityError{Input: input, Reason: "not a whole number"}
	}
	if q < 0 {
		return 0, &QuantityError{Input: input, Reason: "must not be negative"}
	}
	return q, nil
}

// IsLowStock reports whether an item sits below threshold.
func IsLowStock(item kitchen.InventoryItem, threshold int) bool {
	return item.Quantity < threshold
}

// FindInventoryItem returns the item with the given id.
func (s State) FindInventoryItem(id int) (kitchen.InventoryItem, bool) {
	for _, item := range s.Inventory {
		if item.ID == id {
			return item, true
		}
	}
	return kitchen.InventoryItem{}, false
}

// FindOrder returns the order with the given id.
func (s State) FindOrder(id int) (kitchen.Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return kitchen.Order{}, false
}
