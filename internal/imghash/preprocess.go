package imghash

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes an image from r. JPEG, PNG, GIF, BMP and WebP are
// supported.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptImage, err)
	}
	return img, nil
}

// decodeFile opens and decodes the image file at path.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()
	return DecodeImage(f)
}

// grayscalePixels scales img to width×height and converts it to 8-bit
// grayscale intensities, returned as a row-major buffer of width*height
// samples.
//
// The bilinear kernel and the ITU-R BT.601 luma weights are a compatibility
// contract: changing either changes every downstream coefficient and with it
// every stored hash.
func grayscalePixels(img image.Image, width, height int) []uint8 {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	buf := make([]uint8, width*height)
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := dst.At(x, y).RGBA()
			luma := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			buf[i] = uint8(luma)
			i++
		}
	}
	return buf
}
