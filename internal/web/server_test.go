package web

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/imgprint/imgprint/internal/config"
	"github.com/imgprint/imgprint/internal/web/handlers"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(config.Load(), "127.0.0.1", 0)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("health returned %d; want 200", rec.Code)
	}
}

func TestHashEndpoint(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartUpload(t, map[string][]byte{
		"image": encodePNG(t, testImage(64, 64)),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hash", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("hash returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp handlers.HashResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.ID == "" {
		t.Error("response is missing an id")
	}
	if len(resp.PHash) != 16 || len(resp.AHash) != 16 || len(resp.DHash) != 16 {
		t.Errorf("expected 16-char hashes, got phash=%q ahash=%q dhash=%q",
			resp.PHash, resp.AHash, resp.DHash)
	}
	if resp.Width != 8 || resp.Height != 8 {
		t.Errorf("expected 8x8 geometry, got %dx%d", resp.Width, resp.Height)
	}
}

func TestHashEndpointRejectsCorruptUpload(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartUpload(t, map[string][]byte{
		"image": []byte("definitely not an image"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hash", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("corrupt upload returned %d; want 400", rec.Code)
	}
}

func TestHashEndpointRequiresImageField(t *testing.T) {
	s := newTestServer(t)

	body, contentType := multipartUpload(t, map[string][]byte{
		"wrong_field": encodePNG(t, testImage(16, 16)),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hash", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing field returned %d; want 400", rec.Code)
	}
}

func TestCompareEndpoint(t *testing.T) {
	s := newTestServer(t)

	img := encodePNG(t, testImage(64, 64))
	body, contentType := multipartUpload(t, map[string][]byte{
		"left":  img,
		"right": img,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compare", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("compare returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp handlers.CompareResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Distance != 0 {
		t.Errorf("identical uploads have distance %d; want 0", resp.Distance)
	}
	if !resp.Similar {
		t.Error("identical uploads reported dissimilar")
	}
	if resp.LeftHash != resp.RightHash {
		t.Errorf("identical uploads hashed differently: %s vs %s", resp.LeftHash, resp.RightHash)
	}
}

func TestCompareEndpointRejectsBadThreshold(t *testing.T) {
	s := newTestServer(t)

	img := encodePNG(t, testImage(32, 32))
	body, contentType := multipartUpload(t, map[string][]byte{
		"left":  img,
		"right": img,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compare?threshold=banana", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad threshold returned %d; want 400", rec.Code)
	}
}

func testImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 4), uint8(y * 4), 100, 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for field, data := range files {
		part, err := mw.CreateFormFile(field, field+".png")
		if err != nil {
			t.Fatalf("create form file failed: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("write form file failed: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer failed: %v", err)
	}
	return &buf, mw.FormDataContentType()
}
