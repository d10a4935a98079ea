package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/application/usecases"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/validation"
)

var (
	// ErrInvalidForm is returned for missing or out-of-range form values.
	ErrInvalidForm = errors.New("invalid form")
	// ErrUnreadableUpload is returned when the multipart file cannot be read.
	ErrUnreadableUpload = errors.New("unreadable upload")
)

type SlotForm struct {
	Slot string `form:"slot" validate:"required,slot"`
}

// ColorForm carries picker and free-text input, which is stored as typed.
type ColorForm struct {
	Slot  string `form:"slot" validate:"required,slot"`
	Color string `form:"color"`
}

type SwatchForm struct {
	Slot  string `form:"slot" validate:"required,slot"`
	Color string `form:"color" validate:"required,swatch"`
}

type OccasionForm struct {
	Occasion string `form:"occasion" validate:"required,occasion"`
}

type ImageForm struct {
	Slot       string `form:"slot" validate:"required,slot"`
	Generation string `form:"generation" validate:"omitempty,number"`
}

type FormService struct {
	maxUploadBytes int64
}

func NewFormService(maxUploadBytes int64) *FormService {
	return &FormService{maxUploadBytes: maxUploadBytes}
}

func (s *FormService) ParseSlot(r *http.Request) (valueobjects.Slot, error) {
	form := SlotForm{Slot: r.FormValue("slot")}
	if err := s.validate(&form); err != nil {
		return "", err
	}
	return valueobjects.Slot(form.Slot), nil
}

func (s *FormService) ParseColor(r *http.Request) (valueobjects.Slot, valueobjects.Color, error) {
	form := ColorForm{Slot: r.FormValue("slot"), Color: r.FormValue("color")}
	if err := s.validate(&form); err != nil {
		return "", "", err
	}
	return valueobjects.Slot(form.Slot), valueobjects.Color(form.Color), nil
}

func (s *FormService) ParseSwatch(r *http.Request) (valueobjects.Slot, valueobjects.Color, error) {
	form := SwatchForm{Slot: r.FormValue("slot"), Color: r.FormValue("color")}
	if err := s.validate(&form); err != nil {
		return "", "", err
	}
	return valueobjects.Slot(form.Slot), valueobjects.Color(form.Color), nil
}

func (s *FormService) ParseOccasion(r *http.Request) (valueobjects.Occasion, error) {
	form := OccasionForm{Occasion: r.FormValue("occasion")}
	if err := s.validate(&form); err != nil {
		return "", err
	}
	return valueobjects.Occasion(form.Occasion), nil
}

// ParseImageUpload reads the multipart "image" file. Form errors wrap
// ErrInvalidForm; a missing or unreadable file wraps ErrUnreadableUpload.
func (s *FormService) ParseImageUpload(w http.ResponseWriter, r *http.Request) (usecases.ImageUploadInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		return usecases.ImageUploadInput{}, fmt.Errorf("%w: %v", ErrUnreadableUpload, err)
	}

	form := ImageForm{Slot: r.FormValue("slot"), Generation: r.FormValue("generation")}
	if err := s.validate(&form); err != nil {
		return usecases.ImageUploadInput{}, err
	}

	input := usecases.ImageUploadInput{
		Slot:       valueobjects.Slot(form.Slot),
		Generation: s.getUint(form.Generation, 0),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return input, fmt.Errorf("%w: %v", ErrUnreadableUpload, err)
	}
	defer file.Close()

	if header.Size > s.maxUploadBytes {
		return input, fmt.Errorf("%w: file is %d bytes, limit is %d", ErrUnreadableUpload, header.Size, s.maxUploadBytes)
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes))
	if err != nil {
		return input, fmt.Errorf("%w: %v", ErrUnreadableUpload, err)
	}
	input.Data = data

	return input, nil
}

func (s *FormService) validate(form any) error {
	if err := validation.ValidateStruct(form); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	return nil
}

func (s *FormService) getUint(value string, defaultValue uint64) uint64 {
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}
