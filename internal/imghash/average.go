package imghash

import (
	"fmt"
	"image"
)

// AverageHasher computes a mean-brightness hash (aHash): the image is
// downsampled to the hash resolution and each pixel is compared against the
// mean intensity. Cheaper than the perceptual hash but more sensitive to
// gamma and contrast changes since it uses no frequency transform.
type AverageHasher struct {
	width  int
	height int
}

var _ Hasher = (*AverageHasher)(nil)

// NewAverageHasher validates the configuration. Both dimensions must be
// positive.
func NewAverageHasher(width, height int) (*AverageHasher, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("average hasher dimensions must be positive, got %dx%d", width, height)
	}
	return &AverageHasher{width: width, height: height}, nil
}

// DefaultAverageHasher returns the standard 64-bit 8x8 configuration.
func DefaultAverageHasher() *AverageHasher {
	return &AverageHasher{width: 8, height: 8}
}

// HashFromPixels hashes a row-major grayscale buffer of exactly width×height
// samples, which must match the hasher dimensions.
func (a *AverageHasher) HashFromPixels(pixels []uint8, width, height int) *ImageHash {
	if width != a.width || height != a.height {
		panic(fmt.Sprintf("imghash: pixel buffer is %dx%d, hasher samples at %dx%d",
			width, height, a.width, a.height))
	}

	var sum float64
	for _, v := range pixels {
		sum += float64(v)
	}
	mean := sum / float64(len(pixels))

	hash := newImageHash(a.width, a.height)
	for i, v := range pixels {
		hash.bits[i] = float64(v) > mean
	}
	return hash
}

// HashFromImage downsamples and grayscales img and hashes the result.
func (a *AverageHasher) HashFromImage(img image.Image) *ImageHash {
	pixels := grayscalePixels(img, a.width, a.height)
	return a.HashFromPixels(pixels, a.width, a.height)
}

// HashFromPath decodes the image file at path and hashes it.
func (a *AverageHasher) HashFromPath(path string) (*ImageHash, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return a.HashFromImage(img), nil
}
