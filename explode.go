// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package dcl

// explodeState holds one decode stream's live state: the bit reader, the
// per-stream derived decode tables, and the sliding output window. This is
// the Go analogue of PKLib's TDcmpStruct / the reference's ExplodeState.
type explodeState struct {
	br        *bitReader
	tables    *decodeTables
	mode      int
	dsizeBits uint32
	dsizeMask uint32

	window    [windowSize]byte
	outputPos int
}

// decodeLit is a port of PKLib's DecodeLit / decoder.rs's decode_lit.
// Returns a value in:
//   - [0, 0x100): a literal byte
//   - [0x100, 0x305): literalMatchBase + (matchLength-2), a match-length code
//   - literalEndStream: end of stream
//   - literalError: internal decode failure (malformed stream)
func (s *explodeState) decodeLit() uint32 {
	if s.br.bitBuff&1 != 0 {
		if !s.br.wasteBits(1) {
			return literalError
		}

		lengthCode := uint32(s.tables.lengthCodes[s.br.bitBuff&0xFF])
		if !s.br.wasteBits(uint32(lenBits[lengthCode])) {
			return literalError
		}

		finalCode := lengthCode
		if extraBits := exLenBits[lengthCode]; extraBits != 0 {
			extra := s.br.bitBuff & ((1 << extraBits) - 1)
			ok := s.br.wasteBits(uint32(extraBits))
			if !ok && lengthCode+uint32(extra) != 0x10E {
				return literalError
			}
			finalCode = uint32(lenBase[lengthCode]) + extra
		}

		return finalCode + literalMatchBase
	}

	if !s.br.wasteBits(1) {
		return literalError
	}

	if s.mode == ModeBinary {
		value := s.br.bitBuff & 0xFF
		if !s.br.wasteBits(8) {
			return literalError
		}
		return value
	}

	var value uint32
	if s.br.bitBuff&0xFF != 0 {
		val := uint32(s.tables.offs2c34[s.br.bitBuff&0xFF])
		if val == 0xFF {
			if s.br.bitBuff&0x3F != 0 {
				if !s.br.wasteBits(4) {
					return literalError
				}
				val = uint32(s.tables.offs2d34[s.br.bitBuff&0xFF])
			} else {
				if !s.br.wasteBits(6) {
					return literalError
				}
				val = uint32(s.tables.offs2e34[s.br.bitBuff&0x7F])
			}
		}
		value = val
	} else {
		if !s.br.wasteBits(8) {
			return literalError
		}
		value = uint32(s.tables.offs2eb4[s.br.bitBuff&0xFF])
	}

	if !s.br.wasteBits(uint32(s.tables.chBitsAsc[value])) {
		return literalError
	}
	return value
}

// decodeDist is a port of PKLib's DecodeDist / decoder.rs's decode_dist.
// repLength is the already-decoded match length (used for the 2-byte special case).
// Returns 0 on stream-end failure, otherwise distance+1 (PKLib stores distance-1).
func (s *explodeState) decodeDist(repLength uint32) uint32 {
	distPosCode := s.tables.distPosCodes[s.br.bitBuff&0xFF]
	distPosBits := distBits[distPosCode]

	if !s.br.wasteBits(uint32(distPosBits)) {
		return 0
	}

	var distance uint32
	if repLength == 2 {
		distance = (uint32(distPosCode) << 2) | (s.br.bitBuff & 0x03)
		if !s.br.wasteBits(2) {
			return 0
		}
	} else {
		distance = (uint32(distPosCode) << s.dsizeBits) | (s.br.bitBuff & s.dsizeMask)
		if !s.br.wasteBits(s.dsizeBits) {
			return 0
		}
	}

	return distance + 1
}

// explodeCore decodes a full PKWare DCL stream (header included) to a freshly
// allocated output slice. maxOutputSize, if nonzero, bounds the output.
func explodeCore(src []byte, maxOutputSize int) ([]byte, error) {
	if len(src) < 4 {
		return nil, ErrTruncatedStream
	}

	mode := int(src[0])
	if mode != ModeBinary && mode != ModeASCII {
		return nil, ErrInvalidMode
	}

	dsizeBits := uint32(src[1])
	if dsizeBits < dsizeBits1K || dsizeBits > dsizeBits4K {
		return nil, ErrInvalidDictBits
	}

	s := acquireExplodeState()
	defer releaseExplodeState(s)

	s.mode = mode
	s.dsizeBits = dsizeBits
	s.dsizeMask = 0xFFFF >> (16 - dsizeBits)
	s.tables = newDecodeTables(mode)
	s.outputPos = windowBase
	s.br = &bitReader{src: src[3:], bitBuff: uint32(src[2])}

	out := make([]byte, 0, len(src)*2)

	for {
		lit := s.decodeLit()
		switch {
		case lit == literalEndStream:
			if s.outputPos > windowBase {
				out = append(out, s.window[windowBase:s.outputPos]...)
			}
			if maxOutputSize > 0 && len(out) > maxOutputSize {
				return nil, ErrWindowOverflow
			}
			return out, nil

		case lit == literalError:
			if s.br.pos >= len(s.br.src) {
				return nil, ErrTruncatedStream
			}
			return nil, ErrMalformedStream

		case lit >= literalMatchBase:
			repLength := lit - literalMatchBase + 2
			minusDist := s.decodeDist(repLength)
			if minusDist == 0 {
				if s.br.pos >= len(s.br.src) {
					return nil, ErrTruncatedStream
				}
				return nil, ErrMalformedStream
			}

			targetPos := s.outputPos
			sourcePos := targetPos - int(minusDist)
			if sourcePos < 0 {
				return nil, ErrWindowUnderflow
			}
			if targetPos+int(repLength) > windowSize {
				return nil, ErrWindowOverflow
			}

			copyMatch(s.window[:], targetPos, int(minusDist), int(repLength))
			s.outputPos += int(repLength)

		default:
			if s.outputPos >= windowSize {
				return nil, ErrWindowOverflow
			}
			s.window[s.outputPos] = byte(lit)
			s.outputPos++
		}

		if s.outputPos >= windowFlushAt {
			out = append(out, s.window[windowBase:windowFlushAt]...)
			if maxOutputSize > 0 && len(out) > maxOutputSize {
				return nil, ErrWindowOverflow
			}

			remaining := s.outputPos - windowBase
			copy(s.window[:remaining], s.window[windowBase:s.outputPos])
			s.outputPos = remaining
		}
	}
}
