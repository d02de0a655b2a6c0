// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package dcl

// CompressionStats reports counters describing one ImplodeBytesWithStats
// call, grounded on the reference implementation's richer CompressionStats
// (original_source's common.rs).
type CompressionStats struct {
	// LiteralCount is the number of literal bytes emitted.
	LiteralCount int
	// MatchCount is the number of length/distance matches emitted.
	MatchCount int
	// LongestMatch is the longest match length found, in bytes (<= maxRepLength).
	LongestMatch int
	// InputBytes is len(src).
	InputBytes int
	// OutputBytes is the length of the compressed stream, header included.
	OutputBytes int
	// CompressionRatio is OutputBytes/InputBytes; 0 when InputBytes is 0.
	CompressionRatio float64
}

func compressionRatio(inputBytes, outputBytes int) float64 {
	if inputBytes == 0 {
		return 0
	}
	return float64(outputBytes) / float64(inputBytes)
}

// CompressionHeader is the parsed form of a PKWare DCL stream's 2-byte mode
// and dictionary-size header (the stream's 3rd byte is the first byte of
// the packed bit stream itself, not a distinct header field).
type CompressionHeader struct {
	Mode      int
	DictBits  uint32
	DictBytes int
	// UncompressedSize is an optional caller-supplied hint for the original
	// uncompressed length, mirroring the reference implementation's
	// CompressionHeader.uncompressed_size (original_source's common.rs).
	// The PKWare DCL wire format carries no such field itself, so
	// ParseCompressionHeader always leaves this at 0 (unknown); callers that
	// track the original size out-of-band (e.g. in a host container format)
	// can set it on a CompressionHeader of their own construction.
	UncompressedSize uint32
}

// ParseCompressionHeader reads the mode/dictionary-size header from src
// without decoding the rest of the stream.
func ParseCompressionHeader(src []byte) (CompressionHeader, error) {
	if len(src) < 3 {
		return CompressionHeader{}, ErrTruncatedStream
	}

	mode := int(src[0])
	if mode != ModeBinary && mode != ModeASCII {
		return CompressionHeader{}, ErrInvalidMode
	}

	dictBits := uint32(src[1])
	var dictBytes int
	switch dictBits {
	case dsizeBits1K:
		dictBytes = dsizeBytes1K
	case dsizeBits2K:
		dictBytes = dsizeBytes2K
	case dsizeBits4K:
		dictBytes = dsizeBytes4K
	default:
		return CompressionHeader{}, ErrInvalidDictBits
	}

	return CompressionHeader{Mode: mode, DictBits: dictBits, DictBytes: dictBytes}, nil
}
