package persistence

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/geograph/codec"
	"github.com/hupe1980/geograph/graph"
)

// Save writes g to w as a snapshot.
//
// Layout:
//
//	[Magic:4][Version:4][Compression:1][CodecNameLen:1][CodecName:N]
//	[PayloadLen:8][Payload][CRC32:4]
//
// All integers are little-endian. The checksum covers every byte before it.
// A nil codec falls back to codec.Default.
func Save(w io.Writer, g *graph.Graph, c codec.Codec, comp Compression) error {
	if c == nil {
		c = codec.Default
	}
	if !comp.valid() {
		return fmt.Errorf("invalid compression: %d", comp)
	}

	raw, err := c.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}

	payload, err := compress(raw, comp)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	cw := NewChecksumWriter(w)

	name := c.Name()
	if len(name) > 255 {
		return fmt.Errorf("codec name too long: %q", name)
	}

	if err := binary.Write(cw, binary.LittleEndian, uint32(MagicNumber)); err != nil {
		return err
	}
	if err := binary.Write(cw, binary.LittleEndian, uint32(Version)); err != nil {
		return err
	}
	if _, err := cw.Write([]byte{byte(comp), byte(len(name))}); err != nil {
		return err
	}
	if _, err := cw.Write([]byte(name)); err != nil {
		return err
	}
	if err := binary.Write(cw, binary.LittleEndian, uint64(len(payload))); err != nil {
		return err
	}
	if _, err := cw.Write(payload); err != nil {
		return err
	}

	return binary.Write(w, binary.LittleEndian, cw.Sum())
}

// Load reads a snapshot from r and returns the decoded graph.
//
// The codec is selected by the name recorded in the header; magic, version
// and checksum are verified.
func Load(r io.Reader) (*graph.Graph, error) {
	cr := NewChecksumReader(r)

	var magic, version uint32
	if err := binary.Read(cr, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if magic != MagicNumber {
		return nil, fmt.Errorf("%w: 0x%08x", ErrInvalidMagic, magic)
	}
	if err := binary.Read(cr, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if version != Version {
		return nil, fmt.Errorf("%w: 0x%08x", ErrInvalidVersion, version)
	}

	var meta [2]byte
	if _, err := io.ReadFull(cr, meta[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	comp := Compression(meta[0])
	if !comp.valid() {
		return nil, fmt.Errorf("invalid compression: %d", meta[0])
	}

	nameBuf := make([]byte, meta[1])
	if _, err := io.ReadFull(cr, nameBuf); err != nil {
		return nil, fmt.Errorf("read codec name: %w", err)
	}
	c, ok := codec.ByName(string(nameBuf))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, string(nameBuf))
	}

	var payloadLen uint64
	if err := binary.Read(cr, binary.LittleEndian, &payloadLen); err != nil {
		return nil, fmt.Errorf("read payload length: %w", err)
	}
	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(cr, payload); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	var expected uint32
	if err := binary.Read(r, binary.LittleEndian, &expected); err != nil {
		return nil, fmt.Errorf("read checksum: %w", err)
	}
	if err := cr.Verify(expected); err != nil {
		return nil, err
	}

	raw, err := decompress(payload, comp)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	var g graph.Graph
	if err := c.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}

	return &g, nil
}

// SaveFile writes g to path, creating or truncating the file.
func SaveFile(path string, g *graph.Graph, c codec.Codec, comp Compression) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot %s: %w", path, err)
	}

	if err := Save(f, g, c, comp); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot %s: %w", path, err)
	}

	return nil
}

// LoadFile reads the snapshot at path.
func LoadFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	return g, nil
}

func compress(data []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("invalid compression: %d", comp)
	}
}

func decompress(data []byte, comp Compression) ([]byte, error) {
	switch comp {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, fmt.Errorf("invalid compression: %d", comp)
	}
}
