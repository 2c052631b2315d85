package entity

import "math"

// TaxRate is the flat tax applied to the cart subtotal.
const TaxRate = 0.10

// CartItem is a poster reference plus a quantity pending purchase. Title,
// price and image are snapshotted from the poster at add time; the referenced
// poster may have been deleted from the catalog since.
type CartItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price multiplied by quantity.
func (item CartItem) LineTotal() float64 {
	return item.Price * float64(item.Quantity)
}

// CartItems is the full contents of the cart, persisted as one JSON array.
type CartItems []CartItem

// Subtotal returns the sum of all line totals.
func (items CartItems) Subtotal() float64 {
	var sum float64
	for _, item := range items {
		sum += item.LineTotal()
	}

	return sum
}

// Count returns the total unit count across all lines (the cart badge value).
func (items CartItems) Count() int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}

	return count
}

// Tax returns the tax charged on the current subtotal.
func (items CartItems) Tax() float64 {
	return items.Subtotal() * TaxRate
}

// Round2 rounds a monetary value to two decimals. Totals are carried as raw
// floats; rounding is applied at display and receipt time only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
