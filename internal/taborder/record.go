package taborder

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// maxRecordSize caps the uncompressed size of a record, guarding against
// decompression bombs in a tampered settings database.
const maxRecordSize = 16 << 20

// ErrCorruptRecord is returned when a stored record cannot be decoded.
var ErrCorruptRecord = errors.New("corrupt tab order record")

// Encode serializes paths into a record: each non-empty path is written as a
// big-endian uint32 byte length followed by its bytes, the stream is
// compressed, and the result base64 encoded. Empty paths belong to unsaved
// documents and cannot be restored, so they are skipped.
func Encode(paths []string) (string, error) {
	var stream bytes.Buffer
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := binary.Write(&stream, binary.BigEndian, uint32(len(path))); err != nil {
			return "", err
		}
		stream.WriteString(path)
	}
	compressed, err := compress(stream.Bytes())
	if err != nil {
		return "", fmt.Errorf("compressing tab order: %w", err)
	}
	return base64.StdEncoding.EncodeToString(compressed), nil
}

// Decode parses a record produced by Encode, returning the paths in their
// saved order. An empty record decodes to an empty slice.
func Decode(record string) ([]string, error) {
	raw, err := base64.StdEncoding.DecodeString(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	stream, err := decompress(raw)
	if err != nil {
		return nil, err
	}
	var paths []string
	for len(stream) > 0 {
		if len(stream) < 4 {
			return nil, fmt.Errorf("%w: truncated length prefix", ErrCorruptRecord)
		}
		n := binary.BigEndian.Uint32(stream)
		stream = stream[4:]
		if uint64(n) > uint64(len(stream)) {
			return nil, fmt.Errorf("%w: truncated path", ErrCorruptRecord)
		}
		paths = append(paths, string(stream[:n]))
		stream = stream[n:]
	}
	return paths, nil
}

// compress prefixes a zlib stream of data with the uncompressed length as a
// big-endian uint32.
func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.BigEndian, uint32(len(data))); err != nil {
		return nil, err
	}
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: missing size header", ErrCorruptRecord)
	}
	size := binary.BigEndian.Uint32(data)
	if size == 0 {
		return nil, nil
	}
	if size > maxRecordSize {
		return nil, fmt.Errorf("%w: size %d exceeds limit", ErrCorruptRecord, size)
	}
	zr, err := zlib.NewReader(bytes.NewReader(data[4:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, int64(size)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	if uint32(len(out)) != size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrCorruptRecord, size, len(out))
	}
	return out, nil
}
