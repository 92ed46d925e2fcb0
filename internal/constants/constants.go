// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Hash geometry constants
const (
	// DefaultHashSize is the default width and height of the output bit matrix
	DefaultHashSize = 8

	// DefaultFactor is the default oversampling ratio for the perceptual hash:
	// the image is sampled at factor times the hash resolution before the DCT
	DefaultFactor = 4
)

// Duplicate detection constants
const (
	// DefaultDuplicateThreshold is the default max Hamming distance for
	// near-duplicate detection on 64-bit hashes
	DefaultDuplicateThreshold = 10

	// DefaultWorkers is the default number of parallel hashing workers for
	// directory scans
	DefaultWorkers = 5
)

// Server constants
const (
	// DefaultServerPort is the default HTTP API port
	DefaultServerPort = 8080

	// DefaultServerHost is the default HTTP API bind address
	DefaultServerHost = "0.0.0.0"

	// MaxUploadBytes is the maximum accepted multipart upload size
	MaxUploadBytes = 32 << 20
)

// SupportedExtensions lists the image file extensions considered during
// directory scans. Matching is case-insensitive.
var SupportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}
