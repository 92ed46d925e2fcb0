package imghash

import (
	"fmt"
	"image"
)

// PerceptualHasher computes a frequency-domain hash (pHash). The image is
// sampled at Factor times the hash resolution, transformed with a separable
// 2D DCT-II, cropped to its low-frequency corner and thresholded against the
// median coefficient. The oversampling gives the low-frequency crop room to
// be meaningfully smaller than the sampled grid.
type PerceptualHasher struct {
	width  int // bit columns in the output hash
	height int // bit rows in the output hash
	factor int // oversampling ratio before the transform
}

var _ Hasher = (*PerceptualHasher)(nil)

// NewPerceptualHasher validates the configuration once so the per-call
// pipeline never has to. All three dimensions must be positive.
func NewPerceptualHasher(width, height, factor int) (*PerceptualHasher, error) {
	if width <= 0 || height <= 0 || factor <= 0 {
		return nil, fmt.Errorf("perceptual hasher dimensions must be positive, got %dx%d factor %d",
			width, height, factor)
	}
	return &PerceptualHasher{width: width, height: height, factor: factor}, nil
}

// DefaultPerceptualHasher returns the standard 64-bit configuration:
// an 8x8 hash sampled from a 32x32 grid.
func DefaultPerceptualHasher() *PerceptualHasher {
	return &PerceptualHasher{width: 8, height: 8, factor: 4}
}

// SampleWidth returns the pre-transform sampling width, width*factor.
func (p *PerceptualHasher) SampleWidth() int { return p.width * p.factor }

// SampleHeight returns the pre-transform sampling height, height*factor.
func (p *PerceptualHasher) SampleHeight() int { return p.height * p.factor }

// HashFromPixels runs the pure pipeline over a row-major grayscale buffer of
// exactly width×height samples, which must match SampleWidth and
// SampleHeight. It is total: given a contract-valid buffer it always
// produces a complete hash.
func (p *PerceptualHasher) HashFromPixels(pixels []uint8, width, height int) *ImageHash {
	if width != p.SampleWidth() || height != p.SampleHeight() {
		panic(fmt.Sprintf("imghash: pixel buffer is %dx%d, hasher samples at %dx%d",
			width, height, p.SampleWidth(), p.SampleHeight()))
	}

	samples := newMatrixFromBytes(pixels, width, height)
	coefs := dct2D(samples)
	low := coefs.crop(p.width, p.height)

	threshold := median(low.data)
	hash := newImageHash(p.width, p.height)
	for i, coef := range low.data {
		// Strictly greater: coefficients equal to the median stay false.
		hash.bits[i] = coef > threshold
	}
	return hash
}

// HashFromImage resizes and grayscales img to the sampling resolution and
// hashes the resulting intensities.
func (p *PerceptualHasher) HashFromImage(img image.Image) *ImageHash {
	pixels := grayscalePixels(img, p.SampleWidth(), p.SampleHeight())
	return p.HashFromPixels(pixels, p.SampleWidth(), p.SampleHeight())
}

// HashFromPath decodes the image file at path and hashes it.
func (p *PerceptualHasher) HashFromPath(path string) (*ImageHash, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return p.HashFromImage(img), nil
}
