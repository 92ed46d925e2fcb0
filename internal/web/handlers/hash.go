package handlers

import (
	"errors"
	"fmt"
	"image"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/imgprint/imgprint/internal/config"
	"github.com/imgprint/imgprint/internal/constants"
	"github.com/imgprint/imgprint/internal/imghash"
)

// HashHandler computes fingerprints for uploaded images.
type HashHandler struct {
	cfg *config.Config
	log *logrus.Logger
}

// NewHashHandler creates a new hash handler.
func NewHashHandler(cfg *config.Config, log *logrus.Logger) *HashHandler {
	return &HashHandler{cfg: cfg, log: log}
}

// HashResponse is the JSON body returned for a hashed upload.
type HashResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name,omitempty"`
	PHash    string `json:"phash"`
	AHash    string `json:"ahash"`
	DHash    string `json:"dhash"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Hash handles POST /api/v1/hash. It expects a multipart form with an
// "image" file field and responds with all three fingerprints.
func (h *HashHandler) Hash(w http.ResponseWriter, r *http.Request) {
	img, filename, ok := decodeUpload(w, r, "image", h.log)
	if !ok {
		return
	}

	response, err := h.hashImage(img, filename)
	if err != nil {
		h.log.WithError(err).Error("failed to hash upload")
		writeError(w, http.StatusInternalServerError, "failed to hash image")
		return
	}

	h.log.WithFields(logrus.Fields{
		"id":    response.ID,
		"file":  filename,
		"phash": response.PHash,
	}).Debug("hashed upload")
	writeJSON(w, http.StatusOK, response)
}

func (h *HashHandler) hashImage(img image.Image, filename string) (*HashResponse, error) {
	phasher, err := imghash.NewPerceptualHasher(h.cfg.Hash.Width, h.cfg.Hash.Height, h.cfg.Hash.Factor)
	if err != nil {
		return nil, fmt.Errorf("invalid hash configuration: %w", err)
	}
	ahasher, err := imghash.NewAverageHasher(h.cfg.Hash.Width, h.cfg.Hash.Height)
	if err != nil {
		return nil, fmt.Errorf("invalid hash configuration: %w", err)
	}
	dhasher, err := imghash.NewDifferenceHasher(h.cfg.Hash.Width, h.cfg.Hash.Height)
	if err != nil {
		return nil, fmt.Errorf("invalid hash configuration: %w", err)
	}

	return &HashResponse{
		ID:       uuid.NewString(),
		FileName: filename,
		PHash:    phasher.HashFromImage(img).Encode(),
		AHash:    ahasher.HashFromImage(img).Encode(),
		DHash:    dhasher.HashFromImage(img).Encode(),
		Width:    h.cfg.Hash.Width,
		Height:   h.cfg.Hash.Height,
	}, nil
}

// decodeUpload pulls a single image file out of a multipart form and decodes
// it, writing the appropriate error response on failure.
func decodeUpload(w http.ResponseWriter, r *http.Request, field string, log *logrus.Logger) (image.Image, string, bool) {
	if err := r.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return nil, "", false
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("missing %q file field", field))
		return nil, "", false
	}
	defer closeUpload(file, log)

	img, err := imghash.DecodeImage(file)
	if err != nil {
		log.WithError(err).WithField("file", header.Filename).Warn("failed to decode upload")
		if errors.Is(err, imghash.ErrCorruptImage) {
			writeError(w, http.StatusBadRequest, "unsupported or corrupt image")
		} else {
			writeError(w, http.StatusInternalServerError, "failed to read image")
		}
		return nil, "", false
	}

	return img, header.Filename, true
}

func closeUpload(file multipart.File, log *logrus.Logger) {
	if err := file.Close(); err != nil {
		log.WithError(err).Warn("failed to close upload")
	}
}
