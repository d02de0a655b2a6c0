// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package dcl

// bytePairHash computes PKLib's PAIR_HASH of two adjacent bytes: H(a,b) = 4a+5b.
// Both bytes are widened before multiplying, so the result spans 0..0x8F7 and
// indexes the full hashTableSize (0x900) bucket table.
func bytePairHash(a, b byte) uint16 {
	return uint16(a)*4 + uint16(b)*5
}

// sortBuffer builds phashToIndex/phashOffs over workBuff[bufferBegin:bufferEnd]
// via a three-pass counting sort, so that phashOffs contains, for every
// PAIR_HASH bucket, all matching positions in ascending order. Grounded on
// PKLib's SortBuffer (other_examples blast writer's sortBuffer).
func (s *implodeState) sortBuffer(bufferBegin, bufferEnd int) {
	for i := range s.phashToIndex {
		s.phashToIndex[i] = 0
	}
	if bufferEnd > len(s.workBuff)-1 {
		bufferEnd = len(s.workBuff) - 1
	}

	for p := bufferBegin; p < bufferEnd; p++ {
		h := bytePairHash(s.workBuff[p], s.workBuff[p+1])
		s.phashToIndex[h]++
	}

	var total uint16
	for i := range s.phashToIndex {
		total += s.phashToIndex[i]
		s.phashToIndex[i] = total
	}

	for p := bufferEnd - 1; p >= bufferBegin; p-- {
		h := bytePairHash(s.workBuff[p], s.workBuff[p+1])
		s.phashToIndex[h]--
		s.phashOffs[s.phashToIndex[h]] = uint16(p) //nolint:gosec // G115: p < workBuffSize (0x2204)
	}
}

// findRep searches for the longest repetition starting at workBuffOffset, a direct
// port of PKLib's FindRep (other_examples blast writer's findRep). On a match it
// sets s.distance (stored decremented by 1, per PKLib convention) and returns the
// match length; returns 0 when no usable repetition exists.
func (s *implodeState) findRep(workBuffOffset int) int {
	hash := int(bytePairHash(s.workBuff[workBuffOffset], s.workBuff[workBuffOffset+1]))
	minOffs := workBuffOffset - s.dsizeBytes + 1

	offsIndex := int(s.phashToIndex[hash])
	for int(s.phashOffs[offsIndex]) < minOffs {
		offsIndex++
	}
	s.phashToIndex[hash] = uint16(offsIndex) //nolint:gosec // G115: offsIndex < workBuffSize

	prevRep := int(s.phashOffs[offsIndex])
	repLimit := workBuffOffset - 1
	if prevRep >= repLimit {
		return 0
	}

	repLength := 1

	for {
		if s.workBuff[workBuffOffset] == s.workBuff[prevRep] &&
			s.workBuff[workBuffOffset+repLength-1] == s.workBuff[prevRep+repLength-1] {
			ip := workBuffOffset + 1
			prevRep++
			equalCount := 2

			for equalCount < maxRepLength && ip+1 < len(s.workBuff) {
				prevRep++
				ip++
				if s.workBuff[prevRep] != s.workBuff[ip] {
					break
				}
				equalCount++
			}

			if equalCount >= repLength {
				s.distance = workBuffOffset - prevRep + equalCount - 1
				repLength = equalCount
				if repLength > 10 {
					break
				}
			}
		}

		offsIndex++
		prevRep = int(s.phashOffs[offsIndex])
		if prevRep >= repLimit {
			if repLength >= 2 {
				return repLength
			}
			return 0
		}
	}

	if repLength == maxRepLength {
		s.distance--
		return repLength
	}

	if int(s.phashOffs[offsIndex+1]) >= repLimit {
		return repLength
	}

	return s.findLongerRep(workBuffOffset, offsIndex, repLength, repLimit)
}

// findLongerRep implements the second half of PKLib's FindRep: given an initial
// match longer than 10 bytes, it checks whether a later occurrence of the same
// PAIR_HASH leads to a longer repetition, using a KMP-style failure table
// (s.kmpNext, PKLib's "offs09BC") to skip positions that cannot possibly
// extend past the first match's length.
func (s *implodeState) findLongerRep(workBuffOffset, offsIndex, repLength, repLimit int) int {
	s.kmpNext[0] = 0xFFFF
	s.kmpNext[1] = 0
	diVal := 0

	offsInRep := 1
	for offsInRep < repLength {
		if s.workBuff[workBuffOffset+offsInRep] != s.workBuff[workBuffOffset+diVal] {
			next := s.kmpNext[diVal]
			if next != 0xFFFF {
				diVal = int(next)
				continue
			}
			diVal = -1 // wraps to 0 below, matching PKLib's uint16 0xFFFF+1 overflow
		}
		offsInRep++
		diVal++
		s.kmpNext[offsInRep] = uint16(diVal) //nolint:gosec // G115: diVal <= maxRepLength
	}

	prevRep := int(s.phashOffs[offsIndex])
	prevRepEnd := prevRep + repLength
	repLength2 := repLength

	for {
		next := s.kmpNext[repLength2]
		if next == 0xFFFF {
			next = 0
		}
		repLength2 = int(next)

		for first := true; first || prevRep+repLength2 < prevRepEnd; first = false {
			offsIndex++
			prevRep = int(s.phashOffs[offsIndex])
			if prevRep >= repLimit {
				return repLength
			}
		}

		preLastByte := s.workBuff[workBuffOffset+repLength-2]
		if preLastByte == s.workBuff[prevRep+repLength-2] {
			if prevRep+repLength2 != prevRepEnd {
				prevRepEnd = prevRep
				repLength2 = 0
			}
		} else {
			for s.workBuff[prevRep+repLength-2] != preLastByte || s.workBuff[prevRep] != s.workBuff[workBuffOffset] {
				offsIndex++
				prevRep = int(s.phashOffs[offsIndex])
				if prevRep >= repLimit {
					return repLength
				}
			}
			prevRepEnd = prevRep + 2
			repLength2 = 2
		}

		for workBuffOffset+repLength2 < len(s.workBuff) && s.workBuff[prevRepEnd] == s.workBuff[workBuffOffset+repLength2] {
			repLength2++
			if repLength2 >= maxRepLength {
				break
			}
			prevRepEnd++
		}

		if repLength2 >= repLength {
			s.distance = workBuffOffset - prevRep - 1
			repLength = repLength2
			if repLength == maxRepLength {
				return repLength
			}

			for offsInRep < repLength2 {
				if s.workBuff[workBuffOffset+offsInRep] != s.workBuff[workBuffOffset+diVal] {
					next := s.kmpNext[diVal]
					if next != 0xFFFF {
						diVal = int(next)
						continue
					}
					diVal = -1
				}
				diVal++
				offsInRep++
				s.kmpNext[offsInRep] = uint16(diVal) //nolint:gosec // G115: diVal <= maxRepLength
			}
		}
	}
}
