package domain

// DiscountRule contributes a rate applied against the original base price.
// Rules are additive: two 10% rules discount 20% of base, not 19%.
type DiscountRule struct {
	Rate float64 `json:"rate"`
}

// PriceBreakdown is the derived cost of a set of seats. It is computed on
// demand and never persisted on its own; bookings embed only the total.
type PriceBreakdown struct {
	BasePrice float64 `json:"base_price"`
	Discount  float64 `json:"discount"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// CalculateTotal prices a list of seat codes. Each seat uses its explicit
// entry in pricing, else the "standard" category price, else zero. Discounts
// are summed against base before tax; tax applies to the discounted
// subtotal. Negative subtotals are not clamped; keeping discounts sane is
// the caller's job.
func CalculateTotal(seats []string, pricing map[string]float64, taxRate float64, discounts []DiscountRule) PriceBreakdown {
	base := 0.0
	for _, seat := range seats {
		price, ok := pricing[seat]
		if !ok {
			price = pricing["standard"]
		}
		base += price
	}

	discount := 0.0
	for _, d := range discounts {
		discount += base * d.Rate
	}

	subtotal := base - discount
	tax := subtotal * taxRate

	return PriceBreakdown{
		BasePrice: base,
		Discount:  discount,
		Tax:       tax,
		Total:     subtotal + tax,
	}
}
