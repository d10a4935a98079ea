package services

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
)

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func multipartRequest(t *testing.T, fields map[string]string, file []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField() error = %v", err)
		}
	}
	if file != nil {
		fw, err := mw.CreateFormFile("image", "shirt.png")
		if err != nil {
			t.Fatalf("CreateFormFile() error = %v", err)
		}
		fw.Write(file)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/selection/image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestFormService_ParseColor(t *testing.T) {
	s := NewFormService(1 << 20)

	tests := []struct {
		name      string
		values    url.Values
		wantSlot  valueobjects.Slot
		wantColor valueobjects.Color
		wantErr   bool
	}{
		{name: "picker value", values: url.Values{"slot": {"upper"}, "color": {"#1a2b3c"}}, wantSlot: "upper", wantColor: "#1a2b3c"},
		{name: "free text is kept", values: url.Values{"slot": {"shoe"}, "color": {"dark brown"}}, wantSlot: "shoe", wantColor: "dark brown"},
		{name: "empty text clears", values: url.Values{"slot": {"lower"}, "color": {""}}, wantSlot: "lower", wantColor: ""},
		{name: "unknown slot", values: url.Values{"slot": {"hat"}, "color": {"#000000"}}, wantErr: true},
		{name: "missing slot", values: url.Values{"color": {"#000000"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, color, err := s.ParseColor(formRequest(tt.values))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidForm) {
					t.Errorf("error should wrap ErrInvalidForm: %v", err)
				}
				return
			}
			if slot != tt.wantSlot || color != tt.wantColor {
				t.Errorf("ParseColor() = %q, %q; want %q, %q", slot, color, tt.wantSlot, tt.wantColor)
			}
		})
	}
}

func TestFormService_ParseSwatchAndOccasion(t *testing.T) {
	s := NewFormService(1 << 20)

	if _, _, err := s.ParseSwatch(formRequest(url.Values{"slot": {"upper"}, "color": {"#008000"}})); err != nil {
		t.Errorf("ParseSwatch() valid swatch error = %v", err)
	}
	if _, _, err := s.ParseSwatch(formRequest(url.Values{"slot": {"upper"}, "color": {"#008001"}})); !errors.Is(err, ErrInvalidForm) {
		t.Errorf("ParseSwatch() non swatch error = %v", err)
	}

	occasion, err := s.ParseOccasion(formRequest(url.Values{"occasion": {"function"}}))
	if err != nil || occasion != valueobjects.OccasionFunction {
		t.Errorf("ParseOccasion() = %q, %v", occasion, err)
	}
	if _, err := s.ParseOccasion(formRequest(url.Values{"occasion": {"wedding"}})); !errors.Is(err, ErrInvalidForm) {
		t.Errorf("ParseOccasion() unknown error = %v", err)
	}

	if _, err := s.ParseSlot(formRequest(url.Values{"slot": {"feet"}})); !errors.Is(err, ErrInvalidForm) {
		t.Errorf("ParseSlot() unknown error = %v", err)
	}
}

func TestFormService_ParseImageUpload(t *testing.T) {
	var img bytes.Buffer
	if err := png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}

	t.Run("valid upload", func(t *testing.T) {
		s := NewFormService(1 << 20)
		req := multipartRequest(t, map[string]string{"slot": "lower", "generation": "3"}, img.Bytes())

		input, err := s.ParseImageUpload(httptest.NewRecorder(), req)
		if err != nil {
			t.Fatalf("ParseImageUpload() error = %v", err)
		}
		if input.Slot != valueobjects.SlotLower || input.Generation != 3 {
			t.Errorf("input = %+v", input)
		}
		if !bytes.Equal(input.Data, img.Bytes()) {
			t.Errorf("uploaded bytes were altered")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		s := NewFormService(1 << 20)
		req := multipartRequest(t, map[string]string{"slot": "lower"}, nil)

		_, err := s.ParseImageUpload(httptest.NewRecorder(), req)
		if !errors.Is(err, ErrUnreadableUpload) {
			t.Errorf("expected ErrUnreadableUpload, got %v", err)
		}
	})

	t.Run("invalid generation", func(t *testing.T) {
		s := NewFormService(1 << 20)
		req := multipartRequest(t, map[string]string{"slot": "lower", "generation": "-1"}, img.Bytes())

		_, err := s.ParseImageUpload(httptest.NewRecorder(), req)
		if !errors.Is(err, ErrInvalidForm) {
			t.Errorf("expected ErrInvalidForm, got %v", err)
		}
	})

	t.Run("file over limit", func(t *testing.T) {
		s := NewFormService(16)
		req := multipartRequest(t, map[string]string{"slot": "upper"}, bytes.Repeat([]byte{0xFF}, 64))

		_, err := s.ParseImageUpload(httptest.NewRecorder(), req)
		if !errors.Is(err, ErrUnreadableUpload) {
			t.Errorf("expected ErrUnreadableUpload, got %v", err)
		}
	})
}
