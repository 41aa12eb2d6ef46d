package feed

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efreitasn/clob/internal/domain"
)

func TestParseLine_Valid(t *testing.T) {
	o, err := ParseLine("10000,B,98,25500")
	require.NoError(t, err)
	assert.Equal(t, "10000", o.ID())
	assert.Equal(t, domain.SideBuy, o.Side())
	assert.Equal(t, int64(98), o.LimitPrice())
	assert.Equal(t, int64(25500), o.Quantity())

	o, err = ParseLine("10005,S,105,20000")
	require.NoError(t, err)
	assert.Equal(t, domain.SideSell, o.Side())
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{"too few fields", "1,B,100", ""},
		{"too many fields", "1,B,100,10,extra", ""},
		{"empty id", ",B,100,10", "id"},
		{"price not integer", "1,B,abc,10", "price"},
		{"price decimal", "1,B,100.5,10", "price"},
		{"quantity not integer", "1,S,100,ten", "quantity"},
		{"unknown side", "1,X,100,10", "side"},
		{"lowercase side", "1,b,100,10", "side"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "expected *ParseError, got %v", err)
			assert.Equal(t, tt.field, pe.Field)
			assert.NotEmpty(t, pe.Error())
		})
	}
}

func TestParseLine_OutOfRange(t *testing.T) {
	for _, line := range []string{"1,B,0,10", "1,S,1000000,10", "1,B,100,0", "1,S,100,1000000000"} {
		_, err := ParseLine(line)
		assert.ErrorIs(t, err, domain.ErrInvalidOrder, line)
	}
}

func TestParseError_LinePrefix(t *testing.T) {
	err := &ParseError{Line: 3, Reason: "boom"}
	assert.Equal(t, "line 3: boom", err.Error())
	assert.Equal(t, "boom", (&ParseError{Reason: "boom"}).Error())
}
