// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package dcl

import (
	"bytes"
	"io"
)

// ExplodeReader adapts Explode to the io.Reader interface: it buffers the
// entire compressed stream from the wrapped reader on the first Read call,
// decodes it once, then serves the decoded bytes. PKWare DCL's window-based
// decode has no meaningful partial-stream entry point, so this wrapper
// exists for API symmetry with ExplodeFromReader rather than true
// incremental decoding.
type ExplodeReader struct {
	src  io.Reader
	opts *ExplodeOptions

	out *bytes.Reader
	err error
}

// NewExplodeReader wraps src so Read returns decoded PKWare DCL output.
// opts may be nil, which is equivalent to DefaultExplodeOptions().
func NewExplodeReader(src io.Reader, opts *ExplodeOptions) *ExplodeReader {
	if opts == nil {
		opts = DefaultExplodeOptions()
	}
	return &ExplodeReader{src: src, opts: opts}
}

func (r *ExplodeReader) Read(p []byte) (int, error) {
	if r.out == nil && r.err == nil {
		out, err := ExplodeFromReader(r.src, r.opts)
		if err != nil {
			r.err = err
		} else {
			r.out = bytes.NewReader(out)
		}
	}

	if r.err != nil {
		return 0, r.err
	}

	return r.out.Read(p)
}
