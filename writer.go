// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package dcl

import "io"

// ImplodeWriter buffers everything written to it and, on Close, compresses
// the accumulated bytes with ImplodeBytes and writes the result to dst.
// PKWare DCL's match finder scans the whole input (multi-phase PAIR_HASH
// construction across 0x1000-byte chunks), so there is no way to flush a
// partial prefix independently of what follows it.
type ImplodeWriter struct {
	dst  io.Writer
	opts *ImplodeOptions
	buf  []byte
	err  error
}

// NewImplodeWriter wraps dst so Close writes the PKWare DCL compression of
// everything written to the returned Writer. opts may be nil, which is
// equivalent to DefaultImplodeOptions().
func NewImplodeWriter(dst io.Writer, opts *ImplodeOptions) *ImplodeWriter {
	if opts == nil {
		opts = DefaultImplodeOptions()
	}
	return &ImplodeWriter{dst: dst, opts: opts}
}

func (w *ImplodeWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Close compresses the buffered input and writes it to the underlying
// writer. It is the caller's responsibility to call Close when done;
// writes are not flushed until Close.
func (w *ImplodeWriter) Close() error {
	if w.err != nil {
		return w.err
	}

	out, err := ImplodeBytes(w.buf, w.opts)
	if err != nil {
		return err
	}

	_, err = w.dst.Write(out)
	return err
}
