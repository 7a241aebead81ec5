// Package persistence writes and reads graph snapshots.
//
// A snapshot is a single self-describing blob: a fixed header (magic,
// version, compression, codec name), the codec-encoded and optionally
// compressed graph payload, and a CRC32 trailer over everything before it.
// Given identical input ordering the bytes are deterministic, and a snapshot
// always round-trips to an equivalent graph.
package persistence

import (
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies geograph snapshot files (ASCII: "GGR1").
	MagicNumber = 0x47475231
	// Version is the current snapshot format version.
	Version = 0x00010000
)

var (
	// ErrInvalidMagic is returned when a file does not start with the
	// snapshot magic number.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrInvalidVersion is returned for snapshots written by an
	// incompatible format version.
	ErrInvalidVersion = errors.New("unsupported snapshot version")
	// ErrUnknownCodec is returned when the codec named in the header is not
	// registered.
	ErrUnknownCodec = errors.New("unknown codec")
)

// Compression selects the payload compression of a snapshot.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = iota
	// CompressionZstd compresses the payload with zstd (the default).
	CompressionZstd
	// CompressionLZ4 compresses the payload with the LZ4 frame format.
	CompressionLZ4
)

// String returns the stable name of the compression scheme.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// CompressionByName returns a Compression by its stable name.
func CompressionByName(name string) (Compression, bool) {
	switch name {
	case "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (c Compression) valid() bool {
	return c <= CompressionLZ4
}
