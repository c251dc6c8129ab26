package shortlink

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, id := range []uint64{0, 1, 35, 36, 1295, 123456789, math.MaxUint64} {
		token := Encode(id)
		got, err := Decode(token)
		require.NoError(t, err, token)
		assert.Equal(t, id, got)
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "z", Encode(35))
	assert.Equal(t, "10", Encode(36))
	assert.Equal(t, "3w5e11264sgsf", Encode(math.MaxUint64))
}

func TestDecodeIsCaseInsensitive(t *testing.T) {
	id, err := Decode("Z")
	require.NoError(t, err)
	assert.Equal(t, uint64(35), id)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "symbols", token: "!!!"},
		{name: "empty", token: ""},
		{name: "too long", token: "10000000000000"},
		{name: "overflow", token: "3w5e11264sgsg"},
		{name: "sign", token: "-1"},
		{name: "space", token: "1 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
