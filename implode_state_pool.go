// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package dcl

import "sync"

// implodeStatePool recycles implodeState values across compress calls. Each
// holds the workBuff/phashOffs arrays (tens of kilobytes combined), so
// pooling matters more here than on the decode side.
var implodeStatePool = sync.Pool{
	New: func() any {
		return &implodeState{}
	},
}

func acquireImplodeState() *implodeState {
	s := implodeStatePool.Get().(*implodeState)
	*s = implodeState{}
	return s
}

func releaseImplodeState(s *implodeState) {
	if s == nil {
		return
	}
	s.bw = nil
	implodeStatePool.Put(s)
}
