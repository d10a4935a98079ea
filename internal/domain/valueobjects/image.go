package valueobjects

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"
)

var ErrUnsupportedImage = errors.New("unsupported image")

type ImageFormat string

const (
	JPEG ImageFormat = "jpeg"
	PNG  ImageFormat = "png"
	GIF  ImageFormat = "gif"
	WEBP ImageFormat = "webp"
)

// ImageReference is a data URL ("data:image/png;base64,...") owned by a
// single slot. The zero value means no image.
type ImageReference string

func (r ImageReference) IsEmpty() bool {
	return r == ""
}

func (r ImageReference) String() string {
	return string(r)
}

type ImageData struct {
	data   []byte
	format ImageFormat
}

func NewImageData(data []byte) (*ImageData, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: image data cannot be empty", ErrUnsupportedImage)
	}

	format, err := detectFormat(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	return &ImageData{
		data:   data,
		format: format,
	}, nil
}

// ParseDataURL decodes a reference produced by ToDataURL.
func ParseDataURL(ref ImageReference) (*ImageData, error) {
	header, payload, ok := strings.Cut(string(ref), ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, fmt.Errorf("%w: not a base64 data url", ErrUnsupportedImage)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	return NewImageData(data)
}

func (i *ImageData) Data() []byte {
	return i.data
}

func (i *ImageData) Format() ImageFormat {
	return i.format
}

func (i *ImageData) MimeType() string {
	return "image/" + string(i.format)
}

func (i *ImageData) IsJPEG() bool {
	return i.format == JPEG
}

func (i *ImageData) ToJPEG() (*ImageData, error) {
	if i.IsJPEG() {
		return i, nil
	}

	reader := bytes.NewReader(i.data)
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: 90}
	if err := jpeg.Encode(&buf, img, opts); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	return &ImageData{
		data:   buf.Bytes(),
		format: JPEG,
	}, nil
}

func (i *ImageData) ToBase64() string {
	return base64.StdEncoding.EncodeToString(i.data)
}

// ToDataURL keeps the uploaded bytes as they are.
func (i *ImageData) ToDataURL() ImageReference {
	return ImageReference("data:" + i.MimeType() + ";base64," + i.ToBase64())
}

func detectFormat(data []byte) (ImageFormat, error) {
	reader := bytes.NewReader(data)
	_, format, err := image.DecodeConfig(reader)
	if err != nil {
		return "", err
	}

	switch format {
	case "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	case "webp":
		return WEBP, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
