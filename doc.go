// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package dcl implements the PKWare Data Compression Library ("implode"/
"explode") codec, byte-for-bit interchangeable with the original PKWare
reference implementation used by MPQ archives and classic DOS-era
tooling.

The format has two compression modes (Binary and Ascii), three
dictionary sizes (1024/2048/4096 bytes), and a bit-packed literal/match
token stream terminated by an end-of-stream marker. CRC and multi-block
container framing are out of scope here; a host format layers those on
top.

# Explode

	out, err := dcl.Explode(compressed, dcl.DefaultExplodeOptions())

From an io.Reader:

	out, err := dcl.ExplodeFromReader(r, dcl.DefaultExplodeOptions())

# Implode

	out, err := dcl.ImplodeBytes(data, &dcl.ImplodeOptions{Mode: dcl.ModeBinary, DictSize: 4096})

ImplodeBytesWithStats additionally returns a CompressionStats summary.

NewExplodeReader and NewImplodeWriter adapt Explode/ImplodeBytes to
io.Reader/io.Writer for callers that prefer stream-shaped APIs; both
still buffer their full input, since the sliding-window decoder and the
PAIR_HASH match finder each require seeing the whole stream.
*/
package dcl
