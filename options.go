// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package dcl

// ExplodeOptions configures decompression.
// MaxOutputSize bounds decoded output (0 = unbounded, limited only by input length);
// MaxInputSize limits reads when using ExplodeFromReader.
type ExplodeOptions struct {
	// MaxOutputSize, if nonzero, aborts decoding with ErrWindowOverflow once exceeded.
	MaxOutputSize int
	// MaxInputSize limits how many bytes ExplodeFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultExplodeOptions returns options with no output or input bound.
func DefaultExplodeOptions() *ExplodeOptions {
	return &ExplodeOptions{}
}

// ImplodeOptions configures compression.
type ImplodeOptions struct {
	// Mode selects Binary (raw 9-bit literals) or ASCII (ChBitsAsc/ChCodeAsc prefix code) literals.
	Mode int
	// DictSize is the dictionary size in bytes: 1024, 2048, or 4096.
	DictSize int
}

// DefaultImplodeOptions returns options for Binary mode with a 4096-byte dictionary,
// matching the reference implementation's default choice for unknown input.
func DefaultImplodeOptions() *ImplodeOptions {
	return &ImplodeOptions{Mode: ModeBinary, DictSize: dsizeBytes4K}
}
