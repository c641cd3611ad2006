package model

import (
	"strconv"
	"strings"
)

// Item is the domain model for a packing list entry.
// Only Packed ever changes after construction, and only through Toggled.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Packed   bool   `json:"isPacked"`
}

// NewItem builds an unpacked item with a fresh id.
// It refuses blank names (ok is false) and coerces quantity to at least 1.
func NewItem(ids IDGenerator, name string, quantity int) (Item, bool) {
	if !ValidName(name) {
		return Item{}, false
	}
	return Item{
		ID:       ids.NextID(),
		Name:     name,
		Quantity: CoerceQuantity(quantity),
	}, true
}

// ValidName reports whether name has anything besides whitespace.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// Toggled returns a copy of it with the packed flag flipped.
func (it Item) Toggled() Item {
	it.Packed = !it.Packed
	return it
}

// CoerceQuantity clamps q to the minimum quantity of 1.
func CoerceQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// ParseQuantity turns raw form input into a quantity.
// Empty, non-numeric, zero and negative input all become 1.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return CoerceQuantity(n)
}
