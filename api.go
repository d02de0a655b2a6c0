// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package dcl

// Explode decompresses a complete PKWare DCL stream (the 3-byte header plus
// the bit-packed literal/match stream). opts may be nil, which is equivalent
// to DefaultExplodeOptions().
func Explode(src []byte, opts *ExplodeOptions) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}
	if opts == nil {
		opts = DefaultExplodeOptions()
	}

	return explodeCore(src, opts.MaxOutputSize)
}

// ImplodeBytes compresses src into a complete PKWare DCL stream using opts.
// opts may be nil, which is equivalent to DefaultImplodeOptions().
func ImplodeBytes(src []byte, opts *ImplodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultImplodeOptions()
	}

	return implodeCore(src, opts)
}

// ImplodeBytesWithStats behaves like ImplodeBytes but also reports counters
// describing the compressed stream, for callers that want visibility into
// how much of the input was matched versus emitted as literals.
func ImplodeBytesWithStats(src []byte, opts *ImplodeOptions) ([]byte, *CompressionStats, error) {
	if opts == nil {
		opts = DefaultImplodeOptions()
	}

	out, stats, err := implodeCoreWithStats(src, opts)
	if err != nil {
		return nil, nil, err
	}
	return out, stats, nil
}
