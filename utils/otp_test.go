package utils

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroReader always yields zero bytes, pinning the generator to its lowest
// draw.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestDeliveryCodeFormatAndRange(t *testing.T) {
	gen := &DeliveryCodeGenerator{}
	fourDigits := regexp.MustCompile(`^[1-9][0-9]{3}$`)

	for i := 0; i < 500; i++ {
		code, err := gen.Generate()
		require.NoError(t, err)
		assert.Regexp(t, fourDigits, code)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestDeliveryCodeLowestDraw(t *testing.T) {
	gen := &DeliveryCodeGenerator{Rand: zeroReader{}}

	code, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, "1000", code)
}
