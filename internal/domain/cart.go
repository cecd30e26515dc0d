package domain

// CartLine is one offering plus the quantity the buyer selected.
// A cart holds at most one line per offering id.
type CartLine struct {
	Offering
	Quantity int `json:"quantity"`
}

// Subtotal is the line price times its quantity.
func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// CartTotal sums price times quantity over all lines. An empty cart totals 0.
func CartTotal(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
