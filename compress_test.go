package dcl

import (
	"bytes"
	"fmt"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, pkware dcl test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "ascii-text", data: bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog.\n"), 300)},
	}
}

func TestImplodeExplode_RoundTripAcrossModesAndDictSizes(t *testing.T) {
	modes := []int{ModeBinary, ModeASCII}
	dictSizes := []int{dsizeBytes1K, dsizeBytes2K, dsizeBytes4K}

	for _, in := range testInputSet() {
		for _, mode := range modes {
			for _, dictSize := range dictSizes {
				name := fmt.Sprintf("%s/mode-%d/dict-%d", in.name, mode, dictSize)
				t.Run(name, func(t *testing.T) {
					cmp, err := ImplodeBytes(in.data, &ImplodeOptions{Mode: mode, DictSize: dictSize})
					if err != nil {
						t.Fatalf("ImplodeBytes failed: %v", err)
					}
					if len(cmp) < 2 {
						t.Fatalf("compressed data too short: %d", len(cmp))
					}
					if cmp[0] != byte(mode) {
						t.Fatalf("header mode mismatch: got %d want %d", cmp[0], mode)
					}

					out, err := Explode(cmp, nil)
					if err != nil {
						t.Fatalf("Explode failed: %v", err)
					}
					if !bytes.Equal(out, in.data) {
						t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
					}
				})
			}
		}
	}
}

func TestImplodeBytesWithStats_ReportsCounters(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)

	cmp, stats, err := ImplodeBytesWithStats(data, &ImplodeOptions{Mode: ModeBinary, DictSize: dsizeBytes4K})
	if err != nil {
		t.Fatalf("ImplodeBytesWithStats failed: %v", err)
	}

	if stats.InputBytes != len(data) {
		t.Errorf("InputBytes = %d, want %d", stats.InputBytes, len(data))
	}
	if stats.OutputBytes != len(cmp) {
		t.Errorf("OutputBytes = %d, want %d", stats.OutputBytes, len(cmp))
	}
	if stats.LiteralCount == 0 && stats.MatchCount == 0 {
		t.Error("expected at least one literal or match to be emitted")
	}
	if stats.MatchCount > 0 && stats.LongestMatch < minMatchLen {
		t.Errorf("LongestMatch = %d, want >= %d when matches were found", stats.LongestMatch, minMatchLen)
	}
}

func TestImplode_RejectsInvalidOptions(t *testing.T) {
	_, err := ImplodeBytes([]byte("data"), &ImplodeOptions{Mode: 2, DictSize: dsizeBytes4K})
	if err != ErrInvalidMode {
		t.Fatalf("got err=%v, want ErrInvalidMode", err)
	}

	_, err = ImplodeBytes([]byte("data"), &ImplodeOptions{Mode: ModeBinary, DictSize: 3000})
	if err != ErrInvalidDictBits {
		t.Fatalf("got err=%v, want ErrInvalidDictBits", err)
	}

	_, err = implodeCore([]byte("data"), nil)
	if err != ErrOptionsRequired {
		t.Fatalf("got err=%v, want ErrOptionsRequired", err)
	}
}

func TestEmitMatch_RejectsInvalidMatchState(t *testing.T) {
	newState := func() *implodeState {
		s := &implodeState{mode: ModeBinary, dsizeBytes: dsizeBytes4K, dsizeBits: dsizeBits4K, dsizeMask: 0x3F}
		s.bw = newBitWriter()
		s.initLiteralTables()
		return s
	}

	t.Run("repLength too short", func(t *testing.T) {
		s := newState()
		s.distance = 0
		if err := s.emitMatch(minMatchLen - 1); err != ErrCompressInternal {
			t.Fatalf("got err=%v, want ErrCompressInternal", err)
		}
	})

	t.Run("repLength too long", func(t *testing.T) {
		s := newState()
		s.distance = 0
		if err := s.emitMatch(maxRepLength + 1); err != ErrCompressInternal {
			t.Fatalf("got err=%v, want ErrCompressInternal", err)
		}
	})

	t.Run("negative distance", func(t *testing.T) {
		s := newState()
		s.distance = -1
		if err := s.emitMatch(minMatchLen); err != ErrCompressInternal {
			t.Fatalf("got err=%v, want ErrCompressInternal", err)
		}
	})

	t.Run("distance exceeds distBits table for repLength 2", func(t *testing.T) {
		s := newState()
		s.distance = 4 * len(distBits)
		if err := s.emitMatch(2); err != ErrCompressInternal {
			t.Fatalf("got err=%v, want ErrCompressInternal", err)
		}
	})

	t.Run("distance exceeds distBits table for general case", func(t *testing.T) {
		s := newState()
		s.distance = (1 << s.dsizeBits) * len(distBits)
		if err := s.emitMatch(minMatchLen + 1); err != ErrCompressInternal {
			t.Fatalf("got err=%v, want ErrCompressInternal", err)
		}
	})

	t.Run("valid match does not error", func(t *testing.T) {
		s := newState()
		s.distance = 3
		if err := s.emitMatch(minMatchLen); err != nil {
			t.Fatalf("emitMatch failed: %v", err)
		}
	})
}

func FuzzImplodeExplodeRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(0), uint16(4096))
	f.Add([]byte("hello world"), uint8(1), uint16(2048))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(0), uint16(1024))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(1), uint16(4096))

	f.Fuzz(func(t *testing.T, data []byte, mode uint8, dictSize uint16) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		m := int(mode % 2)
		d := dsizeBytes4K
		switch dictSize % 3 {
		case 0:
			d = dsizeBytes1K
		case 1:
			d = dsizeBytes2K
		}

		cmp, err := ImplodeBytes(data, &ImplodeOptions{Mode: m, DictSize: d})
		if err != nil {
			t.Fatalf("ImplodeBytes failed: %v", err)
		}

		out, err := Explode(cmp, nil)
		if err != nil {
			t.Fatalf("Explode failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
