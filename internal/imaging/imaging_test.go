package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func createTestJPEG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	var buf bytes.Buffer
	jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	return buf.Bytes()
}

func createTestPNG(w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}

func TestPrepareJPEG(t *testing.T) {
	data := createTestJPEG(100, 100)
	photo, err := Prepare(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Prepare JPEG: %v", err)
	}
	if photo.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg, got %s", photo.MIME)
	}
	if len(photo.Data) == 0 {
		t.Error("expected non-empty data")
	}
}

func TestPreparePNG(t *testing.T) {
	data := createTestPNG(100, 100)
	photo, err := Prepare(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Prepare PNG: %v", err)
	}
	if photo.MIME != "image/jpeg" {
		t.Errorf("expected image/jpeg (always outputs JPEG), got %s", photo.MIME)
	}
}

func TestPrepareDownscale(t *testing.T) {
	data := createTestJPEG(2048, 2048)
	photo, err := Prepare(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Prepare large photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		t.Errorf("expected max %dx%d, got %dx%d", MaxDimension, MaxDimension, bounds.Dx(), bounds.Dy())
	}
}

func TestPrepareSmallImageNotUpscaled(t *testing.T) {
	data := createTestJPEG(50, 50)
	photo, err := Prepare(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Prepare small photo: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(photo.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 50 {
		t.Errorf("small photo should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestPrepareInvalidFormat(t *testing.T) {
	_, err := Prepare(bytes.NewReader([]byte("not an image")))
	if err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestPrepareGIFRejected(t *testing.T) {
	// GIF magic bytes.
	_, err := Prepare(bytes.NewReader([]byte("GIF89a...")))
	if err == nil {
		t.Error("expected error for GIF")
	}
}

func TestThumbnail(t *testing.T) {
	photo, err := Prepare(bytes.NewReader(createTestJPEG(800, 600)))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	thumb, err := Thumbnail(photo.Data)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(thumb.Data))
	if err != nil {
		t.Fatalf("decoding thumbnail: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > ThumbDimension || bounds.Dy() > ThumbDimension {
		t.Errorf("expected max %dx%d, got %dx%d", ThumbDimension, ThumbDimension, bounds.Dx(), bounds.Dy())
	}
	// Aspect ratio of 800x600 should survive as 256x192.
	if bounds.Dx() != 256 || bounds.Dy() != 192 {
		t.Errorf("expected 256x192 thumbnail, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestThumbnailSmallImageUnchanged(t *testing.T) {
	photo, err := Prepare(bytes.NewReader(createTestJPEG(120, 80)))
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	thumb, err := Thumbnail(photo.Data)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(thumb.Data))
	if err != nil {
		t.Fatalf("decoding thumbnail: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 80 {
		t.Errorf("small photo should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}
