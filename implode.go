// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package dcl

import "bytes"

// implodeState holds one compress stream's live state: literal/length code
// tables, the PAIR_HASH match-finder tables, the sliding work buffer holding
// dictionary history plus lookahead, and the bit-packed output. Go analogue
// of PKLib's tCmpStruct (other_examples blast writer's tCmpStruct).
type implodeState struct {
	mode       int
	dsizeBytes int
	dsizeBits  uint32
	dsizeMask  uint32
	distance   int

	literalBits  [literalsCount]uint8
	literalCodes [literalsCount]uint16

	phashToIndex [hashTableSize]uint16
	phashOffs    [workBuffSize]uint16
	kmpNext      [maxRepLength]uint16

	workBuff [workBuffSize]byte

	bw *bitWriter

	literalCount int
	matchCount   int
	longestMatch int
}

// initLiteralTables builds literalBits/literalCodes: the first 0x100 entries
// encode raw byte literals (Binary: 9-bit, code=i*2; ASCII: ChBitsAsc[i]+1
// bits, code=ChCodeAsc[i]*2), and the remaining 0x206 entries encode the 16
// match-length codes, each expanded over its extra-bit range. Ported from
// PKLib's implode() literal-table setup (other_examples blast writer's
// implode, and original_source's init_literal_tables).
func (s *implodeState) initLiteralTables() {
	switch s.mode {
	case ModeBinary:
		var code uint16
		for i := 0; i < 0x100; i++ {
			s.literalBits[i] = 9
			s.literalCodes[i] = code
			code += 2
		}
	case ModeASCII:
		for i := 0; i < 0x100; i++ {
			s.literalBits[i] = chBitsAsc[i] + 1
			s.literalCodes[i] = chCodeAsc[i] * 2
		}
	}

	count := 0x100
	for i := 0; i < 16; i++ {
		extra := exLenBits[i]
		for n := 0; n < (1 << extra); n++ {
			s.literalBits[count] = extra + lenBits[i] + 1
			s.literalCodes[count] = (uint16(n) << (lenBits[i] + 1)) | ((uint16(lenCode[i]) & 0xFF) * 2) | 1
			count++
		}
	}
}

// newImplodeState builds a compressor for the given mode and dictionary size
// in bytes (1024, 2048, or 4096), acquiring its state from implodeStatePool.
func newImplodeState(mode int, dictSize int) (*implodeState, error) {
	if mode != ModeBinary && mode != ModeASCII {
		return nil, ErrInvalidMode
	}

	s := acquireImplodeState()
	s.mode = mode
	s.dsizeBytes = dictSize
	s.bw = newBitWriter()

	switch dictSize {
	case dsizeBytes4K:
		s.dsizeBits = dsizeBits4K
		s.dsizeMask = 0x3F
	case dsizeBytes2K:
		s.dsizeBits = dsizeBits2K
		s.dsizeMask = 0x1F
	case dsizeBytes1K:
		s.dsizeBits = dsizeBits1K
		s.dsizeMask = 0x0F
	default:
		return nil, ErrInvalidDictBits
	}

	s.initLiteralTables()
	return s, nil
}

func (s *implodeState) emitCode(code int) {
	s.bw.outputBits(uint(s.literalBits[code]), uint32(s.literalCodes[code]))
}

func (s *implodeState) emitLiteral(value byte) {
	s.emitCode(int(value))
	s.literalCount++
}

// emitMatch encodes a length/distance match. repLength and s.distance come
// directly out of findRep/findLongerRep; if either falls outside the range
// the literal-stream/distance tables can encode, that is an internal
// invariant violation in the match finder rather than a malformed-input
// condition, so it is reported via ErrCompressInternal instead of silently
// indexing out of bounds.
func (s *implodeState) emitMatch(repLength int) error {
	if repLength < minMatchLen || repLength > maxRepLength || s.distance < 0 {
		return ErrCompressInternal
	}

	s.emitCode(repLength + int(literalEndOfMatch))
	s.matchCount++
	if repLength > s.longestMatch {
		s.longestMatch = repLength
	}

	if repLength == 2 {
		distHigh := s.distance >> 2
		if distHigh >= len(distBits) {
			return ErrCompressInternal
		}
		s.bw.outputBits(uint(distBits[distHigh]), uint32(distCode[distHigh]))
		s.bw.outputBits(2, uint32(s.distance&3))
		return nil
	}

	distHigh := s.distance >> s.dsizeBits
	if distHigh >= len(distBits) {
		return ErrCompressInternal
	}
	s.bw.outputBits(uint(distBits[distHigh]), uint32(distCode[distHigh]))
	s.bw.outputBits(uint(s.dsizeBits), uint32(s.distance)&s.dsizeMask)
	return nil
}

// compress is a direct port of PKLib's writeCmpData (other_examples blast
// writer's writeCmpData): it reads src in 0x1000-byte chunks into workBuff,
// extends the PAIR_HASH tables incrementally across chunk boundaries (the
// three-phase sortBuffer dispatch), and emits literal/match codes until src
// is exhausted, finishing with the end-of-stream literal. Returns
// ErrCompressInternal if emitMatch ever rejects a length/distance pair the
// match finder produced.
func (s *implodeState) compress(src []byte) ([]byte, error) {
	r := bytes.NewReader(src)

	loadBase := s.dsizeBytes + 0x204
	workBuffOffset := loadBase
	inputDataEnded := false
	phase := 0

	for !inputDataEnded {
		bytesToLoad := 0x1000
		totalLoaded := 0

		for bytesToLoad != 0 {
			chunk := make([]byte, bytesToLoad)
			n, _ := r.Read(chunk)
			copy(s.workBuff[loadBase+totalLoaded:loadBase+totalLoaded+bytesToLoad], chunk)
			if n == 0 {
				inputDataEnded = true
				break
			}
			bytesToLoad -= n
			totalLoaded += n
		}

		inputDataEndIndex := s.dsizeBytes + totalLoaded
		if inputDataEnded {
			inputDataEndIndex += 0x204
		}

		switch phase {
		case 0:
			s.sortBuffer(workBuffOffset, inputDataEndIndex+1)
			phase++
			if s.dsizeBytes != 0x1000 {
				phase++
			}
		case 1:
			s.sortBuffer(workBuffOffset-s.dsizeBytes+0x204, inputDataEndIndex+1)
			phase++
		default:
			s.sortBuffer(workBuffOffset-s.dsizeBytes, inputDataEndIndex+1)
		}

		for workBuffOffset < inputDataEndIndex {
			repLength := s.findRep(workBuffOffset)

		retry:
			for repLength != 0 {
				var saveRepLength int
				var saveDistance int

				if repLength == 2 && s.distance >= 0x100 {
					repLength = 0
					break
				}

				if inputDataEnded && workBuffOffset+repLength > inputDataEndIndex {
					repLength = inputDataEndIndex - workBuffOffset
					if repLength < 2 {
						repLength = 0
						break
					}
					if repLength == 2 && s.distance >= 0x100 {
						repLength = 0
						break
					}
					goto flushMatch
				}

				if repLength >= 8 || workBuffOffset+1 >= inputDataEndIndex {
					goto flushMatch
				}

				saveRepLength = repLength
				saveDistance = s.distance
				repLength = s.findRep(workBuffOffset + 1)

				if repLength > saveRepLength {
					if repLength > saveRepLength+1 || saveDistance > 0x80 {
						s.emitLiteral(s.workBuff[workBuffOffset])
						workBuffOffset++
						goto retry
					}
				}

				repLength = saveRepLength
				s.distance = saveDistance

			flushMatch:
				if err := s.emitMatch(repLength); err != nil {
					return nil, err
				}
				workBuffOffset += repLength
				goto advanced
			}

			s.emitLiteral(s.workBuff[workBuffOffset])
			workBuffOffset++
		advanced:
		}

		if !inputDataEnded {
			workBuffOffset -= 0x1000
			copy(s.workBuff[:s.dsizeBytes+0x204], s.workBuff[0x1000:0x1000+s.dsizeBytes+0x204])
		}
	}

	s.emitCode(literalEndStream)
	return s.bw.finish(), nil
}

// implodeCore validates opts and compresses src, returning a complete
// PKWare DCL stream (3-byte header included).
func implodeCore(src []byte, opts *ImplodeOptions) ([]byte, error) {
	out, _, err := implodeRun(src, opts)
	return out, err
}

// implodeCoreWithStats behaves like implodeCore but also returns counters
// describing the compressed stream.
func implodeCoreWithStats(src []byte, opts *ImplodeOptions) ([]byte, *CompressionStats, error) {
	return implodeRun(src, opts)
}

func implodeRun(src []byte, opts *ImplodeOptions) ([]byte, *CompressionStats, error) {
	if opts == nil {
		return nil, nil, ErrOptionsRequired
	}

	s, err := newImplodeState(opts.Mode, opts.DictSize)
	if err != nil {
		return nil, nil, err
	}
	defer releaseImplodeState(s)

	s.bw.outBuff[0] = byte(opts.Mode)
	s.bw.outBuff[1] = byte(s.dsizeBits)
	s.bw.outPos = 2

	out, err := s.compress(src)
	if err != nil {
		return nil, nil, err
	}
	stats := &CompressionStats{
		LiteralCount:     s.literalCount,
		MatchCount:       s.matchCount,
		LongestMatch:     s.longestMatch,
		InputBytes:       len(src),
		OutputBytes:      len(out),
		CompressionRatio: compressionRatio(len(src), len(out)),
	}

	return out, stats, nil
}
