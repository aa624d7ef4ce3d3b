package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeCodec_RoundTrip(t *testing.T) {
	ct := []byte{0x01, 0x02, 0x03, 0xfe}
	iv := bytes.Repeat([]byte{0xab}, IVSize)

	e := EncodeEnvelope(ct, iv)
	gotCT, gotIV, err := DecodeEnvelope(e.String())

	require.NoError(t, err)
	assert.Equal(t, ct, gotCT)
	assert.Equal(t, iv, gotIV)
}

func TestDecodeEnvelope_Errors(t *testing.T) {
	_, _, err := DecodeEnvelope("not-a-valid-envelope")
	assert.ErrorIs(t, err, ErrMalformedEnvelope)

	_, _, err = DecodeEnvelope("AA==::AA==")
	assert.ErrorIs(t, err, ErrInvalidIVSize)

	_, _, err = DecodeEnvelope("::")
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestPKCS7(t *testing.T) {
	for n := 0; n <= 33; n++ {
		in := bytes.Repeat([]byte{'p'}, n)
		padded := pkcs7Pad(append([]byte(nil), in...), 16)
		assert.Zero(t, len(padded)%16)
		assert.Greater(t, len(padded), n)

		out, err := pkcs7Unpad(padded, 16)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}

	bad := [][]byte{
		nil,
		make([]byte, 15),
		append(bytes.Repeat([]byte{'x'}, 15), 0x00),
		append(bytes.Repeat([]byte{'x'}, 15), 0x11),
		append(bytes.Repeat([]byte{'x'}, 14), 0x01, 0x02),
	}
	for _, b := range bad {
		_, err := pkcs7Unpad(b, 16)
		assert.ErrorIs(t, err, errBadPadding)
	}
}
