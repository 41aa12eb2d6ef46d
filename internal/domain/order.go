package domain

import "fmt"

// Bounds for order fields. Both are inclusive.
const (
	MaxPrice    int64 = 999_999
	MaxQuantity int64 = 999_999_999
)

// Side indicates whether an order is a buy or a sell.
type Side string

const (
	SideBuy  Side = "B"
	SideSell Side = "S"
)

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// Valid reports whether s is a known side.
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	}
	return fmt.Sprintf("Side(%q)", string(s))
}

// Order is an immutable limit order instruction. The zero value is not a
// valid order; use NewBuyOrder, NewSellOrder or NewOrder.
type Order struct {
	id         string
	side       Side
	limitPrice int64
	quantity   int64
}

// NewOrder validates the fields and returns the order.
func NewOrder(id string, side Side, limitPrice, quantity int64) (Order, error) {
	o := Order{id: id, side: side, limitPrice: limitPrice, quantity: quantity}
	if err := o.Validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

// NewBuyOrder returns a validated buy order.
func NewBuyOrder(id string, limitPrice, quantity int64) (Order, error) {
	return NewOrder(id, SideBuy, limitPrice, quantity)
}

// NewSellOrder returns a validated sell order.
func NewSellOrder(id string, limitPrice, quantity int64) (Order, error) {
	return NewOrder(id, SideSell, limitPrice, quantity)
}

func (o Order) ID() string        { return o.id }
func (o Order) Side() Side        { return o.side }
func (o Order) LimitPrice() int64 { return o.limitPrice }
func (o Order) Quantity() int64   { return o.quantity }

// WithQuantity returns a copy of o carrying quantity q. The copy is not
// validated; callers only ever shrink a valid quantity.
func (o Order) WithQuantity(q int64) Order {
	o.quantity = q
	return o
}

// Validate checks the side, price and quantity bounds.
func (o Order) Validate() error {
	if !o.side.Valid() {
		return newValidationError("side", fmt.Sprintf("side must be %q or %q, got %q", SideBuy, SideSell, string(o.side)))
	}
	if o.limitPrice <= 0 || o.limitPrice > MaxPrice {
		return newValidationError("price", fmt.Sprintf("limit price must be in (0, %d], got %d", MaxPrice, o.limitPrice))
	}
	if o.quantity <= 0 || o.quantity > MaxQuantity {
		return newValidationError("quantity", fmt.Sprintf("quantity must be in (0, %d], got %d", MaxQuantity, o.quantity))
	}
	return nil
}

func (o Order) String() string {
	return fmt.Sprintf("%s %s %d@%d", o.side, o.id, o.quantity, o.limitPrice)
}
