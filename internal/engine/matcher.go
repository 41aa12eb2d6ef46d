package engine

import (
	"fmt"

	"github.com/efreitasn/clob/internal/domain"
)

// TradeHandler receives every trade, synchronously, in the order the trades
// are generated.
type TradeHandler func(domain.Trade)

// Matcher is a price-time priority matching engine for a single instrument.
// It owns both books and the priority sequencer. A Matcher is not safe for
// concurrent use; callers must serialize access.
type Matcher struct {
	bids    *Book
	asks    *Book
	seq     Sequencer
	onTrade TradeHandler
}

// Option configures a Matcher.
type Option func(*matcherOptions)

type matcherOptions struct {
	degree int
}

// WithDegree sets the B-tree degree of both books.
func WithDegree(degree int) Option {
	return func(o *matcherOptions) {
		o.degree = degree
	}
}

// NewMatcher creates a Matcher with empty books.
func NewMatcher(opts ...Option) *Matcher {
	o := matcherOptions{degree: DefaultDegree}
	for _, opt := range opts {
		opt(&o)
	}
	return &Matcher{
		bids: NewBook(domain.SideBuy, o.degree),
		asks: NewBook(domain.SideSell, o.degree),
	}
}

// OnTrade installs the trade handler, replacing any previous one. A nil
// handler uninstalls it; trades are then only returned to the caller.
func (m *Matcher) OnTrade(h TradeHandler) {
	m.onTrade = h
}

// PlaceBuyOrder matches a buy order against the sell book and rests any
// unfilled remainder on the buy book.
func (m *Matcher) PlaceBuyOrder(order domain.Order) ([]domain.Trade, error) {
	if err := checkSide(order, domain.SideBuy); err != nil {
		return nil, err
	}
	return m.place(order, m.bids, m.asks, buyCrosses), nil
}

// PlaceSellOrder matches a sell order against the buy book and rests any
// unfilled remainder on the sell book.
func (m *Matcher) PlaceSellOrder(order domain.Order) ([]domain.Trade, error) {
	if err := checkSide(order, domain.SideSell); err != nil {
		return nil, err
	}
	return m.place(order, m.asks, m.bids, sellCrosses), nil
}

// Place dispatches to PlaceBuyOrder or PlaceSellOrder based on the order's
// side.
func (m *Matcher) Place(order domain.Order) ([]domain.Trade, error) {
	if order.Side() == domain.SideSell {
		return m.PlaceSellOrder(order)
	}
	return m.PlaceBuyOrder(order)
}

func checkSide(order domain.Order, want domain.Side) error {
	if err := order.Validate(); err != nil {
		return err
	}
	if order.Side() != want {
		return fmt.Errorf("%s order %q placed on the %s book: %w", order.Side(), order.ID(), want, domain.ErrInvalidOrder)
	}
	return nil
}

// buyCrosses reports whether a buy limit can trade against the best ask.
func buyCrosses(limit, best int64) bool { return limit >= best }

// sellCrosses reports whether a sell limit can trade against the best bid.
func sellCrosses(limit, best int64) bool { return limit <= best }

// place runs the match loop for order against opposite and rests any
// remainder on own. The handler sees each trade before the book is
// changed for that step.
func (m *Matcher) place(order domain.Order, own, opposite *Book, crosses func(limit, best int64) bool) []domain.Trade {
	var trades []domain.Trade
	remaining := order.Quantity()

	for {
		best, ok := opposite.PeekBest()
		if !ok {
			break
		}
		if !crosses(order.LimitPrice(), best.Order.LimitPrice()) {
			break
		}

		trade := domain.Trade{
			Aggressing: order.WithQuantity(remaining),
			Resting:    best.Order,
		}
		trades = append(trades, trade)
		m.notify(trade)

		restingQty := best.Order.Quantity()
		switch {
		case remaining < restingQty:
			opposite.ReplaceBest(restingQty - remaining)
			return trades
		case remaining == restingQty:
			opposite.PopBest()
			return trades
		default:
			opposite.PopBest()
			remaining -= restingQty
		}
	}

	own.Insert(order.WithQuantity(remaining), m.seq.Next())
	return trades
}

func (m *Matcher) notify(t domain.Trade) {
	if m.onTrade != nil {
		m.onTrade(t)
	}
}

// BestBid returns the best resting buy order.
func (m *Matcher) BestBid() (RestingOrder, bool) {
	return m.bids.PeekBest()
}

// BestAsk returns the best resting sell order.
func (m *Matcher) BestAsk() (RestingOrder, bool) {
	return m.asks.PeekBest()
}

// Bids returns the buy book. Callers must only read from it.
func (m *Matcher) Bids() *Book {
	return m.bids
}

// Asks returns the sell book. Callers must only read from it.
func (m *Matcher) Asks() *Book {
	return m.asks
}

// Depth returns the number of resting orders on each side.
func (m *Matcher) Depth() (bids, asks int) {
	return m.bids.Len(), m.asks.Len()
}
