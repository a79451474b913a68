package domain

import (
	"fmt"
	"strings"
)

// CartItem is one line of the shopping cart. The identity key is
// (brand, model, size, color); LineTotal is always UnitPrice * Quantity.
type CartItem struct {
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Size      float64 `json:"size"`
	Color     string  `json:"color"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Matches reports whether the item has the given identity key.
func (i CartItem) Matches(brand, model string, size float64, color string) bool {
	return strings.EqualFold(i.Brand, brand) && strings.EqualFold(i.Model, model) &&
		i.Size == size && strings.EqualFold(i.Color, color)
}

// Describe renders the item for user-facing messages.
func (i CartItem) Describe() string {
	return fmt.Sprintf("%s %s (size %s, %s)", i.Brand, i.Model, FormatSize(i.Size), i.Color)
}

// ShoppingCart is the ordered list of items scoped to one session. It is
// mutated only through the cart service's operations.
type ShoppingCart struct {
	Items []CartItem `json:"items"`
}

// Total sums all line totals.
func (c ShoppingCart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.LineTotal
	}
	return total
}

// Empty reports whether the cart holds no items.
func (c ShoppingCart) Empty() bool {
	return len(c.Items) == 0
}
