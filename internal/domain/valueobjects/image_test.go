package valueobjects

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func createTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to create test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestNewImageData(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "empty data should fail",
			data:    []byte{},
			wantErr: true,
		},
		{
			name:    "nil data should fail",
			data:    nil,
			wantErr: true,
		},
		{
			name:    "invalid image data should fail",
			data:    []byte{0x00, 0x01, 0x02},
			wantErr: true,
		},
		{
			name:    "png should pass",
			data:    createTestPNG(t),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImageData(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewImageData() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedImage) {
				t.Errorf("expected ErrUnsupportedImage, got %v", err)
			}
		})
	}
}

func TestImageData_ToJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	if err != nil {
		t.Fatalf("Failed to create test JPEG: %v", err)
	}

	imageData, err := NewImageData(buf.Bytes())
	if err != nil {
		t.Fatalf("Failed to create ImageData: %v", err)
	}

	t.Run("JPEG to JPEG should return same instance", func(t *testing.T) {
		result, err := imageData.ToJPEG()
		if err != nil {
			t.Errorf("ToJPEG() error = %v", err)
		}
		if result != imageData {
			t.Errorf("Expected same instance for JPEG to JPEG conversion")
		}
	})

	t.Run("PNG converts to JPEG", func(t *testing.T) {
		pngData, err := NewImageData(createTestPNG(t))
		if err != nil {
			t.Fatalf("Failed to create ImageData: %v", err)
		}
		result, err := pngData.ToJPEG()
		if err != nil {
			t.Fatalf("ToJPEG() error = %v", err)
		}
		if !result.IsJPEG() {
			t.Errorf("Expected JPEG, got %v", result.Format())
		}
	})
}

func TestImageData_DataURLRoundTrip(t *testing.T) {
	raw := createTestPNG(t)
	imageData, err := NewImageData(raw)
	if err != nil {
		t.Fatalf("Failed to create ImageData: %v", err)
	}

	ref := imageData.ToDataURL()
	if !strings.HasPrefix(ref.String(), "data:image/png;base64,") {
		t.Fatalf("unexpected data url prefix: %.40s", ref)
	}

	parsed, err := ParseDataURL(ref)
	if err != nil {
		t.Fatalf("ParseDataURL() error = %v", err)
	}
	if !bytes.Equal(parsed.Data(), raw) {
		t.Error("data url should carry the uploaded bytes")
	}
}

func TestParseDataURL_Invalid(t *testing.T) {
	for _, ref := range []ImageReference{"", "hello", "data:image/png,abc", "data:image/png;base64,@@@"} {
		if _, err := ParseDataURL(ref); !errors.Is(err, ErrUnsupportedImage) {
			t.Errorf("ParseDataURL(%q) error = %v, want ErrUnsupportedImage", ref, err)
		}
	}
}
