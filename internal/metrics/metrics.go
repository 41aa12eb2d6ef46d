// Package metrics exposes matching activity as Prometheus metrics on a
// private registry.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/efreitasn/clob/internal/domain"
)

// Recorder collects order, trade and book-depth metrics.
type Recorder struct {
	registry *prometheus.Registry

	ordersPlaced   *prometheus.CounterVec
	trades         prometheus.Counter
	tradedQuantity prometheus.Counter
	bookOrders     *prometheus.GaugeVec
}

// NewRecorder registers the metrics under namespace.
func NewRecorder(namespace string) (*Recorder, error) {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		ordersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed, by side",
		}, []string{"side"}),
		trades: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trades_total",
			Help:      "Total number of trades executed",
		}),
		tradedQuantity: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "traded_quantity_total",
			Help:      "Total quantity executed across all trades",
		}),
		bookOrders: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "book_orders",
			Help:      "Resting orders currently on the book, by side",
		}, []string{"side"}),
	}

	for _, c := range []prometheus.Collector{r.ordersPlaced, r.trades, r.tradedQuantity, r.bookOrders} {
		if err := r.registry.Register(c); err != nil {
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return r, nil
}

// ObserveTrade records one executed trade. It has the shape of a trade
// handler.
func (r *Recorder) ObserveTrade(t domain.Trade) {
	r.trades.Inc()
	r.tradedQuantity.Add(float64(t.Quantity()))
}

// ObservePlacement records a placed order and the book depth after it.
func (r *Recorder) ObservePlacement(side domain.Side, bids, asks int) {
	r.ordersPlaced.WithLabelValues(side.String()).Inc()
	r.bookOrders.WithLabelValues(domain.SideBuy.String()).Set(float64(bids))
	r.bookOrders.WithLabelValues(domain.SideSell.String()).Set(float64(asks))
}

// Gatherer returns the registry backing the recorder.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteFile writes every metric to path in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
