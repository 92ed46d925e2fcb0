package imghash

import (
	"encoding/hex"
	"fmt"
)

// ImageHash is the bit matrix produced by a hasher. Position is significant:
// row and column encode spatial (or frequency) layout, so two hashes are
// comparable only when their shapes match.
type ImageHash struct {
	width, height int
	bits          []bool // row-major
}

func newImageHash(width, height int) *ImageHash {
	return &ImageHash{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// Width returns the number of bit columns.
func (h *ImageHash) Width() int { return h.width }

// Height returns the number of bit rows.
func (h *ImageHash) Height() int { return h.height }

// Bit returns the bit at the given row and column.
func (h *ImageHash) Bit(row, col int) bool {
	return h.bits[row*h.width+col]
}

// Encode serializes the bit matrix to a fixed-width hexadecimal string:
// bits are packed row-major, most significant bit first within each byte,
// with the last byte zero-padded when width*height is not a multiple of
// eight. An 8x8 hash encodes to 16 hex characters.
func (h *ImageHash) Encode() string {
	packed := make([]byte, (len(h.bits)+7)/8)
	for i, bit := range h.bits {
		if bit {
			packed[i/8] |= 1 << (7 - i%8)
		}
	}
	return hex.EncodeToString(packed)
}

// String returns the canonical hexadecimal encoding.
func (h *ImageHash) String() string { return h.Encode() }

// DecodeHash parses the canonical hexadecimal encoding of a width×height hash.
func DecodeHash(s string, width, height int) (*ImageHash, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid hash dimensions %dx%d", width, height)
	}
	packed, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hash encoding %q: %w", s, err)
	}
	if len(packed) != (width*height+7)/8 {
		return nil, fmt.Errorf("hash encoding %q has %d bytes, want %d for %dx%d",
			s, len(packed), (width*height+7)/8, width, height)
	}
	h := newImageHash(width, height)
	for i := range h.bits {
		h.bits[i] = packed[i/8]&(1<<(7-i%8)) != 0
	}
	return h, nil
}

// Equal reports whether two hashes have the same shape and identical bits.
func (h *ImageHash) Equal(other *ImageHash) bool {
	if h.width != other.width || h.height != other.height {
		return false
	}
	for i, bit := range h.bits {
		if bit != other.bits[i] {
			return false
		}
	}
	return true
}

// Distance returns the Hamming distance between two equally shaped hashes:
// the number of positions at which their bits differ.
func (h *ImageHash) Distance(other *ImageHash) (int, error) {
	if h.width != other.width || h.height != other.height {
		return 0, fmt.Errorf("hash shapes differ: %dx%d vs %dx%d",
			h.width, h.height, other.width, other.height)
	}
	distance := 0
	for i, bit := range h.bits {
		if bit != other.bits[i] {
			distance++
		}
	}
	return distance, nil
}

// Similar returns true if two hashes are within the given Hamming distance.
// A threshold of 10 is typically used for near-duplicate detection on
// 64-bit hashes.
func (h *ImageHash) Similar(other *ImageHash, threshold int) (bool, error) {
	distance, err := h.Distance(other)
	if err != nil {
		return false, err
	}
	return distance <= threshold, nil
}
