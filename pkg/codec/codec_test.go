package codec

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGzipRoundTrip(t *testing.T) {
	out, err := Gzip.Encode([]byte("hi-gzipped"))
	require.NoError(t, err)
	require.True(t, len(out) > 2)
	assert.Equal(t, []byte{0x1f, 0x8b}, out[:2])

	zr, err := gzip.NewReader(bytes.NewReader(out))
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "hi-gzipped", string(got))
	assert.Equal(t, "gzip", Gzip.ContentEncoding())
}

func TestDeflateIsRawStream(t *testing.T) {
	out, err := Deflate.Encode([]byte("hi-deflated"))
	require.NoError(t, err)

	got, err := io.ReadAll(flate.NewReader(bytes.NewReader(out)))
	require.NoError(t, err)
	assert.Equal(t, "hi-deflated", string(got))
	assert.Equal(t, "deflate", Deflate.ContentEncoding())
}

func TestForAcceptEncoding(t *testing.T) {
	e, ok := ForAcceptEncoding("gzip")
	require.True(t, ok)
	assert.Equal(t, Gzip, e)

	e, ok = ForAcceptEncoding("deflate")
	require.True(t, ok)
	assert.Equal(t, Deflate, e)

	for _, v := range []string{"", "br", "gzip, deflate", "GZIP", "identity"} {
		_, ok := ForAcceptEncoding(v)
		assert.False(t, ok, v)
	}
}

func TestEncodeStringISO88591(t *testing.T) {
	b, err := EncodeString("ISO-8859-1", "testæ")
	require.NoError(t, err)
	assert.Equal(t, []byte{'t', 'e', 's', 't', 0xe6}, b)

	s, err := DecodeString("iso-8859-1", b)
	require.NoError(t, err)
	assert.Equal(t, "testæ", s)
}

func TestEncodeStringErrors(t *testing.T) {
	_, err := EncodeString("koi8-x", "a")
	assert.Error(t, err)

	_, err = EncodeString("ISO-8859-1", "日本")
	assert.Error(t, err)
}
