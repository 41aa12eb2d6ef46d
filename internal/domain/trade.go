package domain

import "fmt"

// Trade is a match between an incoming (aggressing) order and a resting
// order. Aggressing carries the quantity still unfilled when the match
// happened, not the original order quantity.
type Trade struct {
	Aggressing Order
	Resting    Order
}

// Price is the resting order's limit price. Any price improvement goes to
// the aggressor.
func (t Trade) Price() int64 {
	return t.Resting.LimitPrice()
}

// Quantity is the executed quantity.
func (t Trade) Quantity() int64 {
	return min(t.Aggressing.Quantity(), t.Resting.Quantity())
}

// String renders the trade as "trade aggressingID,restingID,price,quantity".
func (t Trade) String() string {
	return fmt.Sprintf("trade %s,%s,%d,%d", t.Aggressing.ID(), t.Resting.ID(), t.Price(), t.Quantity())
}
