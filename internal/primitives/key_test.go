package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/calcx"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		want Event
	}{
		{"0", DigitEvent(calcx.Digit0)},
		{".", DigitEvent(calcx.DecimalDot)},
		{"/", OperationEvent(calcx.Divide)},
		{"×", OperationEvent(calcx.Multiply)},
		{"x", OperationEvent(calcx.Multiply)},
		{"-", OperationEvent(calcx.Subtract)},
		{"=", EqualsEvent()},
		{"Enter", EqualsEvent()},
		{"C", ClearEvent()},
		{"backspace", DeleteEvent()},
		{"⌫", DeleteEvent()},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKey_Unknown(t *testing.T) {
	_, err := ParseKey("%")
	require.ErrorIs(t, err, ErrUnknownKey)
}

func TestParseKeys(t *testing.T) {
	compact, err := ParseKeys("12+3=")
	require.NoError(t, err)
	spaced, err := ParseKeys("1 2 + 3 =")
	require.NoError(t, err)
	assert.Equal(t, compact, spaced)
	assert.Equal(t, []Event{
		DigitEvent(calcx.Digit1),
		DigitEvent(calcx.Digit2),
		OperationEvent(calcx.Add),
		DigitEvent(calcx.Digit3),
		EqualsEvent(),
	}, compact)
}

func TestParseKeys_NamedTokens(t *testing.T) {
	events, err := ParseKeys("9 del clear")
	require.NoError(t, err)
	assert.Equal(t, []Event{DigitEvent(calcx.Digit9), DeleteEvent(), ClearEvent()}, events)
}

func TestParseKeys_Error(t *testing.T) {
	events, err := ParseKeys("1+2%")
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.Nil(t, events)
}

func TestParseKeys_Empty(t *testing.T) {
	events, err := ParseKeys("   ")
	require.NoError(t, err)
	assert.Empty(t, events)
}
