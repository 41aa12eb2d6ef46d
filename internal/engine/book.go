package engine

import (
	"github.com/efreitasn/clob/internal/domain"
	"github.com/google/btree"
)

// DefaultDegree is the B-tree degree used when none is configured.
const DefaultDegree = 32

// RestingOrder is an order sitting on the book together with the arrival
// priority it was given when inserted.
type RestingOrder struct {
	Order    domain.Order
	Priority uint64
}

// buyLess orders the buy side: price descending, then priority ascending.
// Min() returns the best bid (highest price, earliest arrival).
func buyLess(a, b RestingOrder) bool {
	if a.Order.LimitPrice() != b.Order.LimitPrice() {
		return a.Order.LimitPrice() > b.Order.LimitPrice()
	}
	return a.Priority < b.Priority
}

// sellLess orders the sell side: price ascending, then priority ascending.
// Min() returns the best ask (lowest price, earliest arrival).
func sellLess(a, b RestingOrder) bool {
	if a.Order.LimitPrice() != b.Order.LimitPrice() {
		return a.Order.LimitPrice() < b.Order.LimitPrice()
	}
	return a.Priority < b.Priority
}

// Book holds the resting orders of one side, kept in a B-tree ordered by
// the side's (price, priority) key.
type Book struct {
	side domain.Side
	tree *btree.BTreeG[RestingOrder]
}

// NewBook creates an empty book for the given side.
func NewBook(side domain.Side, degree int) *Book {
	if degree < 2 {
		degree = DefaultDegree
	}
	less := sellLess
	if side == domain.SideBuy {
		less = buyLess
	}
	return &Book{
		side: side,
		tree: btree.NewG[RestingOrder](degree, less),
	}
}

// Side returns the side this book holds.
func (b *Book) Side() domain.Side {
	return b.side
}

// PeekBest returns the best resting order without removing it.
func (b *Book) PeekBest() (RestingOrder, bool) {
	return b.tree.Min()
}

// PopBest removes and returns the best resting order.
func (b *Book) PopBest() (RestingOrder, bool) {
	return b.tree.DeleteMin()
}

// ReplaceBest swaps the best order for a copy carrying quantity. Price and
// priority are kept, so the entry overwrites itself in place. It reports
// false on an empty book.
func (b *Book) ReplaceBest(quantity int64) bool {
	best, ok := b.tree.Min()
	if !ok {
		return false
	}
	best.Order = best.Order.WithQuantity(quantity)
	b.tree.ReplaceOrInsert(best)
	return true
}

// Insert adds an order to the book at the given priority.
func (b *Book) Insert(order domain.Order, priority uint64) {
	b.tree.ReplaceOrInsert(RestingOrder{Order: order, Priority: priority})
}

// IsEmpty reports whether the book has no resting orders.
func (b *Book) IsEmpty() bool {
	return b.tree.Len() == 0
}

// Len returns the number of resting orders.
func (b *Book) Len() int {
	return b.tree.Len()
}

// Walk iterates the book best-first without modifying it. The callback
// returns true to continue, false to stop.
func (b *Book) Walk(fn func(RestingOrder) bool) {
	b.tree.Ascend(fn)
}

// Snapshot returns the resting orders best-first.
func (b *Book) Snapshot() []RestingOrder {
	out := make([]RestingOrder, 0, b.tree.Len())
	b.tree.Ascend(func(o RestingOrder) bool {
		out = append(out, o)
		return true
	})
	return out
}

// TotalQuantity sums the quantity of every resting order.
func (b *Book) TotalQuantity() int64 {
	var total int64
	b.tree.Ascend(func(o RestingOrder) bool {
		total += o.Order.Quantity()
		return true
	})
	return total
}
