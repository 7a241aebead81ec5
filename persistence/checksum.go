package persistence

import (
	"fmt"
	"hash"
	"hash/crc32"
	"io"
)

// CRC32 (IEEE) guards snapshots against accidental corruption. It is not
// cryptographically secure and must not be relied on for tamper detection.

// ChecksumWriter wraps an io.Writer and computes a running CRC32 checksum.
type ChecksumWriter struct {
	w    io.Writer
	hash hash.Hash32
}

// NewChecksumWriter creates a new checksumming writer.
func NewChecksumWriter(w io.Writer) *ChecksumWriter {
	return &ChecksumWriter{w: w, hash: crc32.NewIEEE()}
}

// Write implements io.Writer.
func (cw *ChecksumWriter) Write(p []byte) (int, error) {
	if _, err := cw.hash.Write(p); err != nil {
		return 0, err
	}
	return cw.w.Write(p)
}

// Sum returns the current checksum value.
func (cw *ChecksumWriter) Sum() uint32 {
	return cw.hash.Sum32()
}

// ChecksumReader wraps an io.Reader and computes a running CRC32 checksum.
type ChecksumReader struct {
	r    io.Reader
	hash hash.Hash32
}

// NewChecksumReader creates a new checksumming reader.
func NewChecksumReader(r io.Reader) *ChecksumReader {
	return &ChecksumReader{r: r, hash: crc32.NewIEEE()}
}

// Read implements io.Reader.
func (cr *ChecksumReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		if _, hashErr := cr.hash.Write(p[:n]); hashErr != nil {
			return n, hashErr
		}
	}
	return n, err
}

// Sum returns the current checksum value.
func (cr *ChecksumReader) Sum() uint32 {
	return cr.hash.Sum32()
}

// Verify checks the computed checksum against the expected value.
func (cr *ChecksumReader) Verify(expected uint32) error {
	if actual := cr.Sum(); actual != expected {
		return &ChecksumMismatchError{Expected: expected, Actual: actual}
	}
	return nil
}

// ChecksumMismatchError is returned when checksum verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}
