package chart

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/chartkit/pkg/errors"
)

func TestBase64RoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 17, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 17; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 15), G: uint8(y * 28), B: uint8((x + y) * 7), A: 255})
		}
	}

	s, err := EncodeBase64(src)
	if err != nil {
		t.Fatalf("EncodeBase64: %v", err)
	}
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}

	img, err := DecodeBase64(s + "\n")
	if err != nil {
		t.Fatalf("DecodeBase64: %v", err)
	}
	got := imaging.Clone(img)
	if got.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("decoded pixels differ from source")
	}
}

func TestDecodeBase64Invalid(t *testing.T) {
	for _, s := range []string{"not base64!", base64.StdEncoding.EncodeToString([]byte("not a png"))} {
		if _, err := DecodeBase64(s); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("DecodeBase64(%q) = %v, want %v", s, err, errors.ErrCodeInvalidInput)
		}
	}
}

func TestCropToContent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	white := color.RGBA{255, 255, 255, 255}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 255, 255, 255, 255
	}
	for y := 20; y < 30; y++ {
		for x := 40; x < 45; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}

	got := cropToContent(img, [4]uint8{white.R, white.G, white.B, white.A}, 3)
	if b := got.Bounds(); b.Dx() != 5+6 || b.Dy() != 10+6 {
		t.Errorf("cropped size = %dx%d, want 11x16", b.Dx(), b.Dy())
	}

	blank := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if got := cropToContent(blank, [4]uint8{}, 3); got.Bounds() != blank.Bounds() {
		t.Errorf("blank canvas cropped to %v, want untouched", got.Bounds())
	}
}
