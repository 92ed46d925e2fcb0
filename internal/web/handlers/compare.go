package handlers

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/imgprint/imgprint/internal/config"
	"github.com/imgprint/imgprint/internal/imghash"
)

// CompareHandler compares two uploaded images by perceptual hash.
type CompareHandler struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewCompareHandler creates a new compare handler.
func NewCompareHandler(cfg *config.Config, log *logrus.Logger) *CompareHandler {
	return &CompareHandler{cfg: cfg, log: log}
}

// CompareResponse is the JSON body returned for a comparison.
type CompareResponse struct {
	LeftHash  string `json:"left_hash"`
	RightHash string `json:"right_hash"`
	Distance  int    `json:"distance"`
	Threshold int    `json:"threshold"`
	Similar   bool   `json:"similar"`
}

// Compare handles POST /api/v1/compare. It expects a multipart form with
// "left" and "right" file fields and an optional "threshold" query parameter
// overriding the configured Hamming distance threshold.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	left, _, ok := decodeUpload(w, r, "left", h.log)
	if !ok {
		return
	}
	right, _, ok := decodeUpload(w, r, "right", h.log)
	if !ok {
		return
	}

	threshold := h.cfg.Dedupe.Threshold
	if s := r.URL.Query().Get("threshold"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "threshold must be a non-negative integer")
			return
		}
		threshold = n
	}

	hasher, err := imghash.NewPerceptualHasher(h.cfg.Hash.Width, h.cfg.Hash.Height, h.cfg.Hash.Factor)
	if err != nil {
		h.log.WithError(err).Error("invalid hash configuration")
		writeError(w, http.StatusInternalServerError, "invalid hash configuration")
		return
	}

	leftHash := hasher.HashFromImage(left)
	rightHash := hasher.HashFromImage(right)
	distance, err := leftHash.Distance(rightHash)
	if err != nil {
		// Both hashes come from the same hasher, so shapes always match.
		h.log.WithError(err).Error("hash comparison failed")
		writeError(w, http.StatusInternalServerError, "hash comparison failed")
		return
	}

	writeJSON(w, http.StatusOK, CompareResponse{
		LeftHash:  leftHash.Encode(),
		RightHash: rightHash.Encode(),
		Distance:  distance,
		Threshold: threshold,
		Similar:   distance <= threshold,
	})
}
