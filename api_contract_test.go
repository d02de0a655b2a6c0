package dcl

import (
	"bytes"
	"testing"
)

func TestAPIContract_RoundTripBinary(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)

	compressed, err := ImplodeBytes(src, &ImplodeOptions{Mode: ModeBinary, DictSize: dsizeBytes4K})
	if err != nil {
		t.Fatalf("ImplodeBytes failed: %v", err)
	}

	out, err := Explode(compressed, nil)
	if err != nil {
		t.Fatalf("Explode failed: %v", err)
	}

	if !bytes.Equal(out, src) {
		t.Fatal("decoded output mismatch for Binary round trip")
	}
}

func TestAPIContract_RoundTripASCII(t *testing.T) {
	src := bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 40)

	compressed, err := ImplodeBytes(src, &ImplodeOptions{Mode: ModeASCII, DictSize: dsizeBytes2K})
	if err != nil {
		t.Fatalf("ImplodeBytes failed: %v", err)
	}

	out, err := Explode(compressed, nil)
	if err != nil {
		t.Fatalf("Explode failed: %v", err)
	}

	if !bytes.Equal(out, src) {
		t.Fatal("decoded output mismatch for ASCII round trip")
	}
}

func TestAPIContract_ExplodeRejectsEmptyInput(t *testing.T) {
	if _, err := Explode(nil, nil); err != ErrEmptyInput {
		t.Fatalf("got err=%v, want ErrEmptyInput", err)
	}
}

func TestAPIContract_ExplodeRejectsTruncatedHeader(t *testing.T) {
	if _, err := Explode([]byte{ModeBinary, dsizeBits4K}, nil); err != ErrTruncatedStream {
		t.Fatalf("got err=%v, want ErrTruncatedStream", err)
	}
}

func TestAPIContract_ExplodeRejectsInvalidMode(t *testing.T) {
	src := []byte{2, dsizeBits4K, 0x00, 0x00}
	if _, err := Explode(src, nil); err != ErrInvalidMode {
		t.Fatalf("got err=%v, want ErrInvalidMode", err)
	}
}

func TestAPIContract_ExplodeRejectsInvalidDictBits(t *testing.T) {
	src := []byte{ModeBinary, 3, 0x00, 0x00}
	if _, err := Explode(src, nil); err != ErrInvalidDictBits {
		t.Fatalf("got err=%v, want ErrInvalidDictBits", err)
	}
}

func TestAPIContract_ParseCompressionHeader(t *testing.T) {
	src, err := ImplodeBytes([]byte("hello"), &ImplodeOptions{Mode: ModeASCII, DictSize: dsizeBytes1K})
	if err != nil {
		t.Fatalf("ImplodeBytes failed: %v", err)
	}

	hdr, err := ParseCompressionHeader(src)
	if err != nil {
		t.Fatalf("ParseCompressionHeader failed: %v", err)
	}

	if hdr.Mode != ModeASCII || hdr.DictBytes != dsizeBytes1K {
		t.Fatalf("got %+v, want Mode=%d DictBytes=%d", hdr, ModeASCII, dsizeBytes1K)
	}
	if hdr.UncompressedSize != 0 {
		t.Fatalf("got UncompressedSize=%d, want 0 (wire format carries no such field)", hdr.UncompressedSize)
	}
}

func TestAPIContract_CompressionHeaderUncompressedSizeIsCallerSupplied(t *testing.T) {
	hdr := CompressionHeader{Mode: ModeBinary, DictBits: dsizeBits4K, DictBytes: dsizeBytes4K, UncompressedSize: 4096}
	if hdr.UncompressedSize != 4096 {
		t.Fatalf("got UncompressedSize=%d, want 4096", hdr.UncompressedSize)
	}
}
