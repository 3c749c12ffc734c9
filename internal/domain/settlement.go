package domain

import "github.com/shopspring/decimal"

// Settlement итоги смены: количество бронирований и выручка
type Settlement struct {
	Count   int
	Revenue decimal.Decimal
}

// Aggregate считает итоги по бронированиям и снимку цен.
// Count - число бронирований (не позиций), Revenue - сумма price*quantity по всем позициям.
// Арифметика точная, поэтому результат не зависит от порядка бронирований.
func Aggregate(reservations []*Reservation, prices PriceSnapshot) Settlement {
	revenue := decimal.Zero
	count := 0

	for _, r := range reservations {
		if r == nil {
			continue
		}
		count++
		for _, item := range r.LineItems {
			qty := decimal.NewFromInt(int64(item.EffectiveQuantity()))
			revenue = revenue.Add(prices.Price(item.ServiceName).Mul(qty))
		}
	}

	return Settlement{Count: count, Revenue: revenue}
}
