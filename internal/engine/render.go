package engine

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	quantityWidth = 12
	priceWidth    = 6
)

// emptyColumn pads a side that has run out of orders.
var emptyColumn = strings.Repeat(" ", quantityWidth+1+priceWidth)

// OrderBookOutput renders both books side by side, pairing the i-th best
// buy with the i-th best sell. Quantities use thousands separators, prices
// do not. Each line ends in a newline; an empty book renders as "".
func (m *Matcher) OrderBookOutput() string {
	bids := m.bids.Snapshot()
	asks := m.asks.Snapshot()

	var sb strings.Builder
	for i := 0; i < len(bids) || i < len(asks); i++ {
		if i < len(bids) {
			o := bids[i].Order
			fmt.Fprintf(&sb, "%*s %*d", quantityWidth, humanize.Comma(o.Quantity()), priceWidth, o.LimitPrice())
		} else {
			sb.WriteString(emptyColumn)
		}
		sb.WriteString(" | ")
		if i < len(asks) {
			o := asks[i].Order
			fmt.Fprintf(&sb, "%-*d %-*s", priceWidth, o.LimitPrice(), quantityWidth, humanize.Comma(o.Quantity()))
		} else {
			sb.WriteString(emptyColumn)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
