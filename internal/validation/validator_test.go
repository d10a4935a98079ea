package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swatchForm struct {
	Slot  string `form:"slot" validate:"required,slot"`
	Color string `form:"color" validate:"required,swatch"`
}

type occasionForm struct {
	Occasion string `json:"occasion" validate:"required,occasion"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		wantFields []string
	}{
		{name: "valid swatch", input: &swatchForm{Slot: "upper", Color: "#FFA500"}},
		{name: "unknown slot", input: &swatchForm{Slot: "hat", Color: "#FFA500"}, wantFields: []string{"slot"}},
		{name: "non swatch color", input: &swatchForm{Slot: "shoe", Color: "#123456"}, wantFields: []string{"color"}},
		{name: "lowercase swatch", input: &swatchForm{Slot: "shoe", Color: "#ffa500"}, wantFields: []string{"color"}},
		{name: "both missing", input: &swatchForm{}, wantFields: []string{"slot", "color"}},
		{name: "valid occasion", input: &occasionForm{Occasion: "movie"}},
		{name: "unknown occasion", input: &occasionForm{Occasion: "party"}, wantFields: []string{"occasion"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr *RequestValidationError
			require.True(t, errors.As(err, &verr))

			var fields []string
			for _, fe := range verr.Errors() {
				fields = append(fields, fe.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidateStruct_Messages(t *testing.T) {
	err := ValidateStruct(&swatchForm{Slot: "", Color: "#123456"})
	require.Error(t, err)
	assert.Equal(t, "slot is required; color must be one of the predefined swatches", err.Error())
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
