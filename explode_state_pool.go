// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package dcl

import "sync"

// explodeStatePool recycles explodeState values across decode calls. Each
// holds a fixed windowSize (0x2204) byte array, so pooling avoids a
// repeated large stack/heap allocation under sustained decode traffic.
var explodeStatePool = sync.Pool{
	New: func() any {
		return &explodeState{}
	},
}

func acquireExplodeState() *explodeState {
	s := explodeStatePool.Get().(*explodeState)
	*s = explodeState{}
	return s
}

func releaseExplodeState(s *explodeState) {
	if s == nil {
		return
	}
	s.br = nil
	s.tables = nil
	explodeStatePool.Put(s)
}
