// Package imghash computes compact perceptual fingerprints of images.
// Visually similar images produce identical or near-identical fingerprints
// even after resizing, recompression or minor color shifts, while dissimilar
// images diverge. Fingerprints are compared with Hamming distance.
package imghash

import (
	"errors"
	"image"
)

// Hasher is implemented by every hashing algorithm in this package.
// A hasher is immutable after construction and safe for concurrent use;
// every call owns its own intermediate buffers.
type Hasher interface {
	// HashFromPath decodes the image file at path and hashes it.
	HashFromPath(path string) (*ImageHash, error)

	// HashFromImage hashes an already decoded image. It cannot fail.
	HashFromImage(img image.Image) *ImageHash
}

var (
	// ErrSourceUnavailable reports that the image source could not be read
	// (file missing, permission denied, I/O failure).
	ErrSourceUnavailable = errors.New("image source unavailable")

	// ErrCorruptImage reports that the source bytes could not be decoded
	// into pixels (malformed data or unsupported format).
	ErrCorruptImage = errors.New("unsupported or corrupt image")
)
