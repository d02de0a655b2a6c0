// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package dcl

import "errors"

// Sentinel errors for implode and explode.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidMode is returned when the header's compression-mode byte is neither Binary nor ASCII.
	ErrInvalidMode = errors.New("invalid compression mode")
	// ErrInvalidDictBits is returned when the header's dictionary-size byte is not 4, 5, or 6.
	ErrInvalidDictBits = errors.New("invalid dictionary size bits")
	// ErrTruncatedStream is returned when the input ends before the end-of-stream marker is read.
	ErrTruncatedStream = errors.New("truncated compressed stream")
	// ErrMalformedStream is returned when decoding a literal/length or distance code fails while input remains.
	ErrMalformedStream = errors.New("malformed compressed stream")
	// ErrWindowUnderflow is returned when a match's distance reaches before the start of the output.
	ErrWindowUnderflow = errors.New("match distance underflows output window")
	// ErrWindowOverflow is returned when decoded output would exceed the configured output limit.
	ErrWindowOverflow = errors.New("decoded output exceeds window")
	// ErrOptionsRequired is returned when an API call that needs Options receives nil.
	ErrOptionsRequired = errors.New("options required")
	// ErrInputTooLarge is returned when a *FromReader call reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")

	// ErrCompressInternal is returned when the encoder hits an internal invariant violation
	// (e.g. invalid match state, invalid hash-table state). Callers can use errors.Is(err, dcl.ErrCompressInternal).
	ErrCompressInternal = errors.New("internal compressor error")
)
