// pkg/codec/encoding.go
package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
)

// Encoder compresses a whole payload for a given Content-Encoding.
type Encoder interface {
	Encode(p []byte) ([]byte, error)
	ContentEncoding() string
}

type gzipEncoder struct{}
type deflateEncoder struct{}

var (
	// Gzip frames payloads per RFC 1952.
	Gzip Encoder = gzipEncoder{}
	// Deflate emits a raw RFC 1951 stream, no zlib header or checksum.
	Deflate Encoder = deflateEncoder{}
)

func (gzipEncoder) Encode(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	return finish(&buf, zw, p)
}

func (gzipEncoder) ContentEncoding() string { return "gzip" }

func (deflateEncoder) Encode(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("deflate writer: %w", err)
	}
	return finish(&buf, fw, p)
}

func (deflateEncoder) ContentEncoding() string { return "deflate" }

func finish(buf *bytes.Buffer, w io.WriteCloser, p []byte) ([]byte, error) {
	if _, err := w.Write(p); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress close: %w", err)
	}
	return buf.Bytes(), nil
}

// ForAcceptEncoding picks the encoder whose token equals the whole
// Accept-Encoding value. No q-value negotiation: "gzip" matches, "gzip, deflate"
// does not.
func ForAcceptEncoding(v string) (Encoder, bool) {
	switch v {
	case "gzip":
		return Gzip, true
	case "deflate":
		return Deflate, true
	default:
		return nil, false
	}
}
