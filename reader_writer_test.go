package dcl

import (
	"bytes"
	"testing"
)

func TestImplodeWriter_RoundTripWithExplodeReader(t *testing.T) {
	data := bytes.Repeat([]byte("writer-reader round trip "), 200)

	var buf bytes.Buffer
	w := NewImplodeWriter(&buf, &ImplodeOptions{Mode: ModeBinary, DictSize: dsizeBytes4K})

	if _, err := w.Write(data[:len(data)/2]); err != nil {
		t.Fatalf("Write (first half) failed: %v", err)
	}
	if _, err := w.Write(data[len(data)/2:]); err != nil {
		t.Fatalf("Write (second half) failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r := NewExplodeReader(bytes.NewReader(buf.Bytes()), nil)
	out := make([]byte, 0, len(data))
	chunk := make([]byte, 97)
	for {
		n, err := r.Read(chunk)
		out = append(out, chunk[:n]...)
		if err != nil {
			break
		}
	}

	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
	}
}

func TestImplodeWriter_DefaultsWhenOptionsNil(t *testing.T) {
	var buf bytes.Buffer
	w := NewImplodeWriter(&buf, nil)

	if _, err := w.Write([]byte("default options")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	hdr, err := ParseCompressionHeader(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseCompressionHeader failed: %v", err)
	}
	if hdr.Mode != ModeBinary || hdr.DictBytes != dsizeBytes4K {
		t.Fatalf("got %+v, want defaults Mode=%d DictBytes=%d", hdr, ModeBinary, dsizeBytes4K)
	}
}

func TestExplodeReader_SurfacesDecodeErrors(t *testing.T) {
	r := NewExplodeReader(bytes.NewReader([]byte{ModeBinary, dsizeBits4K}), nil)

	_, err := r.Read(make([]byte, 16))
	if err != ErrTruncatedStream {
		t.Fatalf("got err=%v, want ErrTruncatedStream", err)
	}

	// A second Read should keep returning the same error rather than re-decoding.
	_, err = r.Read(make([]byte, 16))
	if err != ErrTruncatedStream {
		t.Fatalf("second Read got err=%v, want ErrTruncatedStream", err)
	}
}
