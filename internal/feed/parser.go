// Package feed reads newline-delimited order records, submits them to a
// Matcher and writes the resulting trades and final book.
package feed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/efreitasn/clob/internal/domain"
)

const fieldCount = 4

// ErrEmptyInput is returned when the input holds no records at all.
var ErrEmptyInput = errors.New("input is empty")

// ParseError describes a malformed record. Line is 1-based and zero when
// the error came from ParseLine directly.
type ParseError struct {
	Line   int
	Field  string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

// ParseLine parses a record of the form "orderId,side,price,quantity" where
// side is B or S. Out of range prices and quantities yield the domain
// validation error.
func ParseLine(line string) (domain.Order, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return domain.Order{}, &ParseError{
			Value:  line,
			Reason: fmt.Sprintf("expected %d fields, got %d", fieldCount, len(fields)),
		}
	}

	id := fields[0]
	if id == "" {
		return domain.Order{}, &ParseError{Field: "id", Reason: "order id must not be empty"}
	}

	price, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return domain.Order{}, &ParseError{
			Field:  "price",
			Value:  fields[2],
			Reason: fmt.Sprintf("price field is expected to be an integer, got %q", fields[2]),
		}
	}
	qty, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return domain.Order{}, &ParseError{
			Field:  "quantity",
			Value:  fields[3],
			Reason: fmt.Sprintf("quantity field is expected to be an integer, got %q", fields[3]),
		}
	}

	switch side := domain.Side(fields[1]); side {
	case domain.SideBuy:
		return domain.NewBuyOrder(id, price, qty)
	case domain.SideSell:
		return domain.NewSellOrder(id, price, qty)
	default:
		return domain.Order{}, &ParseError{
			Field:  "side",
			Value:  fields[1],
			Reason: fmt.Sprintf("side field is expected to be either %q or %q, got %q", domain.SideBuy, domain.SideSell, fields[1]),
		}
	}
}
