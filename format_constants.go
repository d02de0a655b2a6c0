// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package dcl

// PKWare DCL format constants: header layout, buffer sizes, and the
// literal-stream value ranges used by both implode and explode.

// Compression modes, stored in header byte 0.
const (
	ModeBinary = 0
	ModeASCII  = 1
)

// Dictionary size in bits (header byte 1) and the matching byte size.
const (
	dsizeBits1K = 4
	dsizeBits2K = 5
	dsizeBits4K = 6

	dsizeBytes1K = 1024
	dsizeBytes2K = 2048
	dsizeBytes4K = 4096
)

// Literal stream value ranges decoded by decodeLit.
const (
	literalMatchBase  = 0x100 // rep_length = value - literalMatchBase + 2, see decodeLit
	literalEndOfMatch = 0xFE  // offset added to a match length to reach its literal-stream code
	literalEndStream  = 0x305 // end-of-stream marker
	literalError      = 0x306 // internal-only sentinel, never emitted on the wire
	literalsCount     = 0x306 // size of the literal/length code table (0x100 literals + 0x206 length codes)
)

// Buffer sizes, ported from the reference implementation's PKLib-compatible layout.
const (
	inBuffSize    = 0x800  // PKLib's raw input chunk size; unused here (compress loads 0x1000-byte chunks, explode reads the whole input slice)
	outBuffSize   = 0x802  // implode raw output chunk size (flush threshold 0x800 plus headroom)
	workBuffSize  = 0x2204 // implode dictionary + lookahead work buffer
	windowSize    = 0x2204 // explode output window (same layout as workBuffSize)
	windowFlushAt = 0x2000 // explode: rotate window once outputPos reaches this
	windowBase    = 0x1000 // explode: outputPos starts here, dictionary precedes it

	hashTableSize = 0x900 // implode: number of PAIR_HASH buckets (12-bit hash space)
	maxRepLength  = 0x204 // longest encodable match (516 bytes)
	minMatchLen   = 2     // shortest encodable match
)
