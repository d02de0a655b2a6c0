// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package dcl

// copyMatch copies length bytes from window[targetPos-dist:...] to
// window[targetPos:targetPos+length]. When dist < length the source region
// overlaps the destination (the match reaches back into bytes the match
// itself is writing), so a straight copy() would read un-written output;
// growing the copied region by doubling handles that overlap cheaply and
// replaces the naive byte-by-byte loop PKLib's own explode() implementation
// uses for this case.
func copyMatch(window []byte, targetPos, dist, length int) {
	srcPos := targetPos - dist

	if dist >= length {
		copy(window[targetPos:targetPos+length], window[srcPos:srcPos+length])
		return
	}

	copy(window[targetPos:targetPos+dist], window[srcPos:targetPos])
	copied := dist
	for copied < length {
		n := copy(window[targetPos+copied:targetPos+length], window[targetPos:targetPos+copied])
		copied += n
	}
}
