package postings

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/lexgo/core"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the block compression applied to a PackedList.
type Compression uint8

const (
	// CompressionNone stores the varint block as-is.
	CompressionNone Compression = iota
	// CompressionLZ4 uses LZ4 block compression (fast, moderate ratio).
	CompressionLZ4
	// CompressionZSTD uses ZSTD compression (slower, better ratio).
	CompressionZSTD
)

const blockHeaderSize = 8

var (
	ErrBlockTooSmall = errors.New("postings: block too small for header")
	ErrBlockCorrupt  = errors.New("postings: corrupted packed block")
)

// PackedList is a compact, immutable postings list: doc deltas and
// frequencies varint-encoded into a single block, optionally compressed.
// Positions are not retained. Iterators decode the block on creation and
// share the underlying data, so a PackedList may serve many terms lookups
// concurrently.
type PackedList struct {
	raw         []byte
	count       int
	compression Compression
}

// PackList encodes the given sorted doc ids into a PackedList. freqs may
// be nil, in which case every frequency is 1; otherwise it must be the
// same length as docs.
func PackList(docs []core.DocID, freqs []int, compression Compression) (*PackedList, error) {
	if freqs != nil && len(freqs) != len(docs) {
		return nil, fmt.Errorf("postings: freqs length %d does not match docs length %d", len(freqs), len(docs))
	}

	buf := make([]byte, 0, 2*len(docs)+binary.MaxVarintLen64)
	buf = binary.AppendUvarint(buf, uint64(len(docs)))

	prev := core.DocID(0)
	for i, doc := range docs {
		delta := doc
		if i > 0 {
			delta = doc - prev
		}
		prev = doc

		freq := 1
		if freqs != nil {
			freq = freqs[i]
		}

		buf = binary.AppendUvarint(buf, uint64(delta))
		buf = binary.AppendUvarint(buf, uint64(freq))
	}

	raw, err := encodeBlock(buf, compression)
	if err != nil {
		return nil, err
	}

	return &PackedList{
		raw:         raw,
		count:       len(docs),
		compression: compression,
	}, nil
}

// Count returns the number of documents in the list.
func (p *PackedList) Count() int {
	return p.count
}

// SizeBytes returns the encoded size of the list, header included.
func (p *PackedList) SizeBytes() int {
	return len(p.raw)
}

// Iterator decodes the block and returns a fresh iterator over it.
func (p *PackedList) Iterator() (*PackedIterator, error) {
	buf, err := decodeBlock(p.raw, p.compression)
	if err != nil {
		return nil, err
	}
	count, n := binary.Uvarint(buf)
	if n <= 0 || int(count) != p.count {
		return nil, ErrBlockCorrupt
	}
	return &PackedIterator{
		buf:   buf[n:],
		count: p.count,
		doc:   -1,
	}, nil
}

// Compile time check to ensure PackedIterator satisfies Iterator.
var _ Iterator = (*PackedIterator)(nil)

// PackedIterator iterates a decoded PackedList block.
type PackedIterator struct {
	buf      []byte
	off      int
	count    int
	consumed int
	doc      core.DocID
	freq     int
}

// DocID implements Iterator.
func (it *PackedIterator) DocID() core.DocID {
	return it.doc
}

// NextDoc implements Iterator.
func (it *PackedIterator) NextDoc() (core.DocID, error) {
	if it.consumed >= it.count {
		it.doc = core.NoMoreDocs
		return it.doc, nil
	}

	delta, n := binary.Uvarint(it.buf[it.off:])
	if n <= 0 {
		return core.NoMoreDocs, ErrBlockCorrupt
	}
	it.off += n

	freq, n := binary.Uvarint(it.buf[it.off:])
	if n <= 0 {
		return core.NoMoreDocs, ErrBlockCorrupt
	}
	it.off += n

	if it.consumed == 0 {
		it.doc = core.DocID(delta)
	} else {
		it.doc += core.DocID(delta)
	}
	it.freq = int(freq)
	it.consumed++

	return it.doc, nil
}

// Advance implements Iterator.
func (it *PackedIterator) Advance(target core.DocID) (core.DocID, error) {
	// Deltas force a sequential decode; there is no skip structure.
	for it.doc < target {
		if _, err := it.NextDoc(); err != nil {
			return core.NoMoreDocs, err
		}
	}
	return it.doc, nil
}

// Freq implements Iterator.
func (it *PackedIterator) Freq() (int, error) {
	return it.freq, nil
}

// NextPosition implements Iterator. Packed lists do not retain positions.
func (it *PackedIterator) NextPosition() (int, error) {
	return -1, nil
}

// StartOffset implements Iterator.
func (it *PackedIterator) StartOffset() (int, error) {
	return -1, nil
}

// EndOffset implements Iterator.
func (it *PackedIterator) EndOffset() (int, error) {
	return -1, nil
}

// Payload implements Iterator.
func (it *PackedIterator) Payload() ([]byte, error) {
	return nil, nil
}

// Cost implements Iterator.
func (it *PackedIterator) Cost() int64 {
	return int64(it.count)
}

// encodeBlock prefixes data with an 8-byte header (uncompressed size,
// compressed size) and applies the requested compression. A compressed
// size of 0 marks an uncompressed block; blocks that do not shrink below
// 90% stay uncompressed.
func encodeBlock(data []byte, compression Compression) ([]byte, error) {
	var compressed []byte
	switch compression {
	case CompressionNone:
	case CompressionLZ4:
		var err error
		compressed, err = compressBlockLZ4(data)
		if err != nil {
			return nil, err
		}
	case CompressionZSTD:
		compressed = zstdEncoder().EncodeAll(data, nil)
	default:
		return nil, fmt.Errorf("postings: unknown compression type %d", compression)
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0) // 0 = uncompressed
		copy(result[blockHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)
	return result, nil
}

// compressBlockLZ4 compresses data using LZ4. Returns nil if the data is
// incompressible.
func compressBlockLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

// decodeBlock reverses encodeBlock.
func decodeBlock(data []byte, compression Compression) ([]byte, error) {
	if len(data) < blockHeaderSize {
		return nil, ErrBlockTooSmall
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])

	if compressedSize == 0 {
		if uint32(len(data)) < blockHeaderSize+uncompressedSize {
			return nil, ErrBlockCorrupt
		}
		return data[blockHeaderSize : blockHeaderSize+uncompressedSize], nil
	}

	if uint32(len(data)) < blockHeaderSize+compressedSize {
		return nil, ErrBlockCorrupt
	}
	compressedData := data[blockHeaderSize : blockHeaderSize+compressedSize]
	result := make([]byte, uncompressedSize)

	switch compression {
	case CompressionZSTD:
		decoded, err := zstdDecoder().DecodeAll(compressedData, result[:0])
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, ErrBlockCorrupt
		}
		return decoded, nil
	default:
		n, err := lz4.UncompressBlock(compressedData, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, ErrBlockCorrupt
		}
		return result, nil
	}
}

var (
	zstdEncOnce sync.Once
	zstdEnc     *zstd.Encoder
	zstdDecOnce sync.Once
	zstdDec     *zstd.Decoder
)

// zstdEncoder returns the shared ZSTD encoder. EncodeAll is safe for
// concurrent use.
func zstdEncoder() *zstd.Encoder {
	zstdEncOnce.Do(func() {
		zstdEnc, _ = zstd.NewWriter(nil)
	})
	return zstdEnc
}

// zstdDecoder returns the shared ZSTD decoder. DecodeAll is safe for
// concurrent use.
func zstdDecoder() *zstd.Decoder {
	zstdDecOnce.Do(func() {
		zstdDec, _ = zstd.NewReader(nil)
	})
	return zstdDec
}
