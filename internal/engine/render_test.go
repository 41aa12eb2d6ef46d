package engine

import (
	"strings"
	"testing"
)

func TestOrderBookOutput_Empty(t *testing.T) {
	m := NewMatcher()
	if out := m.OrderBookOutput(); out != "" {
		t.Errorf("OrderBookOutput() = %q, want empty", out)
	}
}

func TestOrderBookOutput_Layout(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, m *Matcher)
		want  string
	}{
		{
			name: "buys only",
			setup: func(t *testing.T, m *Matcher) {
				placeAll(t, m,
					mustBuy(t, "1", 99, 1000),
					mustBuy(t, "12", 99, 500),
					mustBuy(t, "123", 98, 1200),
				)
			},
			want: "       1,000     99 |                    \n" +
				"         500     99 |                    \n" +
				"       1,200     98 |                    \n",
		},
		{
			name: "sells only",
			setup: func(t *testing.T, m *Matcher) {
				placeAll(t, m, mustSell(t, "s", 101, 2000))
			},
			want: "                    | 101    2,000       \n",
		},
		{
			name: "paired by index",
			setup: func(t *testing.T, m *Matcher) {
				placeAll(t, m,
					mustBuy(t, "10000", 98, 25500),
					mustBuy(t, "10003", 99, 50000),
					mustSell(t, "10005", 105, 20000),
					mustSell(t, "10001", 100, 500),
				)
			},
			want: "      50,000     99 | 100    500         \n" +
				"      25,500     98 | 105    20,000      \n",
		},
		{
			name: "extreme values",
			setup: func(t *testing.T, m *Matcher) {
				placeAll(t, m,
					mustBuy(t, "b", 1, 999999999),
					mustSell(t, "s", 999999, 1),
				)
			},
			want: " 999,999,999      1 | 999999 1           \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher()
			tt.setup(t, m)
			if got := m.OrderBookOutput(); got != tt.want {
				t.Errorf("OrderBookOutput() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestOrderBookOutput_LineWidth(t *testing.T) {
	m := NewMatcher()
	placeAll(t, m,
		mustBuy(t, "a", 10, 1),
		mustBuy(t, "b", 9, 12345678),
		mustSell(t, "c", 20, 7),
	)
	for i, line := range strings.Split(strings.TrimSuffix(m.OrderBookOutput(), "\n"), "\n") {
		if len(line) != 41 {
			t.Errorf("line %d has width %d, want 41: %q", i, len(line), line)
		}
	}
}

func TestOrderBookOutput_DoesNotMutate(t *testing.T) {
	m := NewMatcher()
	placeAll(t, m,
		mustBuy(t, "b1", 99, 1000),
		mustBuy(t, "b2", 98, 500),
		mustSell(t, "s1", 101, 300),
	)

	first := m.OrderBookOutput()
	second := m.OrderBookOutput()
	if first != second {
		t.Errorf("consecutive renders differ:\n%q\n%q", first, second)
	}
	bids, asks := m.Depth()
	if bids != 2 || asks != 1 {
		t.Errorf("render changed depth to %d, %d", bids, asks)
	}

	// Matching after a render behaves as if no render happened.
	trades := placeAll(t, m, mustSell(t, "s2", 98, 1200))
	if len(trades) != 2 || trades[0].Resting.ID() != "b1" || trades[1].Resting.ID() != "b2" {
		t.Errorf("unexpected trades after render: %v", trades)
	}
}
