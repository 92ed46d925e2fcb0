package imghash

import (
	"errors"
	"testing"
)

func TestAverageHashFromPixels(t *testing.T) {
	// Top half bright, bottom half dark: the mean sits between, so exactly
	// the bright rows exceed it.
	hasher := DefaultAverageHasher()
	pixels := make([]uint8, 64)
	for i := range pixels {
		if i < 32 {
			pixels[i] = 200
		} else {
			pixels[i] = 50
		}
	}

	hash := hasher.HashFromPixels(pixels, 8, 8)

	if hash.Encode() != "ffffffff00000000" {
		t.Errorf("Encode() = %q; want %q", hash.Encode(), "ffffffff00000000")
	}
}

func TestAverageHashUniformImage(t *testing.T) {
	// Every pixel equals the mean; strictly-greater thresholding leaves all
	// bits false.
	hasher := DefaultAverageHasher()
	pixels := make([]uint8, 64)
	for i := range pixels {
		pixels[i] = 128
	}

	hash := hasher.HashFromPixels(pixels, 8, 8)

	if hash.Encode() != "0000000000000000" {
		t.Errorf("Encode() = %q; want all-zero hash", hash.Encode())
	}
}

func TestAverageHashDeterministic(t *testing.T) {
	hasher := DefaultAverageHasher()
	img := gradientImage(50, 50)

	if !hasher.HashFromImage(img).Equal(hasher.HashFromImage(img)) {
		t.Error("repeated hashing diverged")
	}
}

func TestAverageHashFromNonexistentPath(t *testing.T) {
	hasher := DefaultAverageHasher()

	if _, err := hasher.HashFromPath("./does/not/exist.png"); !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestNewAverageHasherRejectsZeroDimensions(t *testing.T) {
	if _, err := NewAverageHasher(0, 8); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewAverageHasher(8, -2); err == nil {
		t.Error("expected error for negative height")
	}
}
