// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package dcl

// decodeTables holds the per-stream lookup tables explode derives from the
// frozen static tables (tables.go) once per stream, via genDecodeTabs and
// genAscTabs below.
type decodeTables struct {
	lengthCodes  [0x100]uint8 // 8-bit bit-buffer slice -> length-code index
	distPosCodes [0x100]uint8 // 8-bit bit-buffer slice -> distance-code index

	chBitsAsc [256]uint8 // mutable copy of chBitsAsc; genAscTabs shortens entries

	offs2c34 [0x100]uint8
	offs2d34 [0x100]uint8
	offs2e34 [0x80]uint8
	offs2eb4 [0x100]uint8
}

// genDecodeTabs scatters code i across every 8-bit index whose low bits equal
// startIndexes[i], spaced by 1<<lengthBits[i]. It is the generic generator
// PKLib uses to build both the length-code and distance-code O(1) decode
// tables from their prefix-code bit-length/code tables.
func genDecodeTabs(positions *[0x100]uint8, startIndexes []uint8, lengthBits []uint8) {
	for i := range startIndexes {
		step := uint32(1) << lengthBits[i]
		index := uint32(startIndexes[i])

		for index < 0x100 {
			positions[index] = uint8(i) //nolint:gosec // G115: i < 64, always fits uint8
			index += step
		}
	}
}

// genAscTabs builds the four-table ASCII literal cascade (offs2c34/offs2d34/
// offs2e34/offs2eb4) used to resolve ASCII literal codes wider than 8 bits.
// It iterates byte values 255->0 descending so that, for codes sharing a
// scatter slot, the lowest byte value's entry is the one left standing
// ("last write wins" in descending order means smallest value wins).
func (t *decodeTables) genAscTabs() {
	for count := 255; count >= 0; count-- {
		chCode := chCodeAsc[count]
		bitsAsc := t.chBitsAsc[count]

		switch {
		case bitsAsc <= 8:
			add := uint32(1) << bitsAsc
			acc := uint32(chCode)
			for acc < 0x100 {
				t.offs2c34[acc] = uint8(count) //nolint:gosec // G115: count in 0..255
				acc += add
			}

		case chCode&0xFF != 0:
			acc8 := chCode & 0xFF
			t.offs2c34[acc8] = 0xFF

			if chCode&0x3F != 0 {
				bitsAsc -= 4
				t.chBitsAsc[count] = bitsAsc
				add := uint32(1) << bitsAsc
				acc := uint32(chCode >> 4)
				for acc < 0x100 {
					t.offs2d34[acc] = uint8(count) //nolint:gosec // G115: count in 0..255
					acc += add
				}
			} else {
				bitsAsc -= 6
				t.chBitsAsc[count] = bitsAsc
				add := uint32(1) << bitsAsc
				acc := uint32(chCode >> 6)
				for acc < 0x80 {
					t.offs2e34[acc] = uint8(count) //nolint:gosec // G115: count in 0..255
					acc += add
				}
			}

		default:
			bitsAsc -= 8
			t.chBitsAsc[count] = bitsAsc
			add := uint32(1) << bitsAsc
			acc := uint32(chCode >> 8)
			for acc < 0x100 {
				t.offs2eb4[acc] = uint8(count) //nolint:gosec // G115: count in 0..255
				acc += add
			}
		}
	}
}

// newDecodeTables builds the per-stream decode tables for the given mode.
func newDecodeTables(mode int) *decodeTables {
	t := &decodeTables{}
	genDecodeTabs(&t.lengthCodes, lenCode[:], lenBits[:])
	genDecodeTabs(&t.distPosCodes, distCode[:], distBits[:])

	if mode == ModeASCII {
		t.chBitsAsc = chBitsAsc
		t.genAscTabs()
	}

	return t
}
