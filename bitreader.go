// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package dcl

// bitReader is the explode side's LSB-first bit-buffer reader, a direct port
// of PKLib's WasteBits/bit_buff/extra_bits mechanics (see decoder.rs).
type bitReader struct {
	src       []byte
	pos       int
	bitBuff   uint32
	extraBits uint32
}

func newBitReader(src []byte) *bitReader {
	return &bitReader{src: src}
}

// wasteBits discards n bits from bitBuff, refilling one byte at bit position 8
// when the buffer runs low. Returns false (stream end) once input is exhausted
// and more bits are still needed.
func (r *bitReader) wasteBits(n uint32) bool {
	if n <= r.extraBits {
		r.extraBits -= n
		r.bitBuff >>= n
		return true
	}

	r.bitBuff >>= r.extraBits

	if r.pos >= len(r.src) {
		return false
	}

	nextByte := uint32(r.src[r.pos])
	r.pos++

	r.bitBuff |= nextByte << 8
	r.bitBuff >>= n - r.extraBits
	r.extraBits = (r.extraBits + 8) - n
	return true
}
