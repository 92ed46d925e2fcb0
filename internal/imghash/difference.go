package imghash

import (
	"fmt"
	"image"
)

// DifferenceHasher computes a gradient hash (dHash): the image is downsampled
// to (width+1)×height and each bit records whether a pixel is brighter than
// its right-hand neighbour. Robust against global brightness shifts because
// only relative intensities matter.
type DifferenceHasher struct {
	width  int
	height int
}

var _ Hasher = (*DifferenceHasher)(nil)

// NewDifferenceHasher validates the configuration. Both dimensions must be
// positive.
func NewDifferenceHasher(width, height int) (*DifferenceHasher, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("difference hasher dimensions must be positive, got %dx%d", width, height)
	}
	return &DifferenceHasher{width: width, height: height}, nil
}

// DefaultDifferenceHasher returns the standard 64-bit 8x8 configuration,
// sampled from a 9x8 grid.
func DefaultDifferenceHasher() *DifferenceHasher {
	return &DifferenceHasher{width: 8, height: 8}
}

// HashFromPixels hashes a row-major grayscale buffer of exactly width×height
// samples. The buffer must be one column wider than the hash so every output
// bit has a right-hand neighbour to compare against.
func (d *DifferenceHasher) HashFromPixels(pixels []uint8, width, height int) *ImageHash {
	if width != d.width+1 || height != d.height {
		panic(fmt.Sprintf("imghash: pixel buffer is %dx%d, hasher samples at %dx%d",
			width, height, d.width+1, d.height))
	}

	hash := newImageHash(d.width, d.height)
	for row := 0; row < d.height; row++ {
		for col := 0; col < d.width; col++ {
			left := pixels[row*width+col]
			right := pixels[row*width+col+1]
			hash.bits[row*d.width+col] = left > right
		}
	}
	return hash
}

// HashFromImage downsamples and grayscales img and hashes the result.
func (d *DifferenceHasher) HashFromImage(img image.Image) *ImageHash {
	pixels := grayscalePixels(img, d.width+1, d.height)
	return d.HashFromPixels(pixels, d.width+1, d.height)
}

// HashFromPath decodes the image file at path and hashes it.
func (d *DifferenceHasher) HashFromPath(path string) (*ImageHash, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return d.HashFromImage(img), nil
}
