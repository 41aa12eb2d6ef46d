package feed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/efreitasn/clob/internal/domain"
	"github.com/efreitasn/clob/internal/engine"
	"github.com/efreitasn/clob/internal/metrics"
)

// maxLineSize bounds a single record. Valid records are far shorter.
const maxLineSize = 1 << 20

// Summary reports what a Run processed.
type Summary struct {
	Orders int
	Trades int
}

// Runner feeds records into a Matcher. It installs its own trade handler
// on the Matcher, replacing any existing one.
type Runner struct {
	matcher  *engine.Matcher
	out      *bufio.Writer
	logger   *zap.Logger
	recorder *metrics.Recorder
	trades   int
}

// Option configures a Runner.
type Option func(*Runner)

// WithRecorder feeds every trade and placement into r.
func WithRecorder(r *metrics.Recorder) Option {
	return func(rn *Runner) {
		rn.recorder = r
	}
}

// NewRunner creates a Runner writing trades and the final book to out.
func NewRunner(m *engine.Matcher, out io.Writer, logger *zap.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	rn := &Runner{
		matcher: m,
		out:     bufio.NewWriter(out),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(rn)
	}
	m.OnTrade(rn.handleTrade)
	return rn
}

func (rn *Runner) handleTrade(t domain.Trade) {
	rn.trades++
	// bufio.Writer errors are sticky and surface on Flush.
	fmt.Fprintln(rn.out, t.String())
	if rn.recorder != nil {
		rn.recorder.ObserveTrade(t)
	}
}

// Run reads records from r until EOF, placing each order as it is read.
// It stops at the first malformed record. At end of input the book
// snapshot is written if it is not empty. ctx is checked between records.
func (rn *Runner) Run(ctx context.Context, r io.Reader) (Summary, error) {
	var sum Summary
	tradesBefore := rn.trades

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return rn.finish(sum, tradesBefore, err)
		}
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			return rn.finish(sum, tradesBefore, &ParseError{Line: lineNo, Reason: fmt.Sprintf("input line %d is empty", lineNo)})
		}

		order, err := ParseLine(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
				return rn.finish(sum, tradesBefore, pe)
			}
			return rn.finish(sum, tradesBefore, fmt.Errorf("line %d: %w", lineNo, err))
		}

		trades, err := rn.matcher.Place(order)
		if err != nil {
			return rn.finish(sum, tradesBefore, fmt.Errorf("line %d: %w", lineNo, err))
		}
		sum.Orders++

		bids, asks := rn.matcher.Depth()
		if rn.recorder != nil {
			rn.recorder.ObservePlacement(order.Side(), bids, asks)
		}
		rn.logger.Debug("order placed",
			zap.Int("line", lineNo),
			zap.String("order_id", order.ID()),
			zap.Stringer("side", order.Side()),
			zap.Int64("price", order.LimitPrice()),
			zap.Int64("quantity", order.Quantity()),
			zap.Int("trades", len(trades)),
			zap.Int("bids", bids),
			zap.Int("asks", asks),
		)
	}
	if err := scanner.Err(); err != nil {
		return rn.finish(sum, tradesBefore, fmt.Errorf("read input: %w", err))
	}
	if lineNo == 0 {
		return rn.finish(sum, tradesBefore, ErrEmptyInput)
	}

	if book := rn.matcher.OrderBookOutput(); book != "" {
		rn.out.WriteString(book)
	}
	sum, err := rn.finish(sum, tradesBefore, nil)
	if err != nil {
		return sum, err
	}
	rn.logger.Info("feed complete", zap.Int("orders", sum.Orders), zap.Int("trades", sum.Trades))
	return sum, nil
}

// finish flushes buffered output and fills in the trade count. A flush
// failure is reported only when there is no earlier error.
func (rn *Runner) finish(sum Summary, tradesBefore int, err error) (Summary, error) {
	sum.Trades = rn.trades - tradesBefore
	if flushErr := rn.out.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("write output: %w", flushErr)
	}
	return sum, err
}
