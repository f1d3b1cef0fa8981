package validation

import (
	"errors"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type equipmentForm struct {
	Serial       string      `json:"serial_number" validate:"required,serial_number"`
	Email        string      `json:"email" validate:"omitempty,custom_email"`
	PurchaseDate null.String `json:"purchase_date" validate:"omitempty,iso_date"`
}

func failedFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs), "ожидались ошибки валидатора, получено %v", err)
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func TestValidate_AcceptsWellFormedForm(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&equipmentForm{
		Serial:       "CNC-2023-001",
		Email:        "tech@gearguard.com",
		PurchaseDate: null.StringFrom("2023-01-15"),
	}))
	assert.NoError(t, v.Validate(&equipmentForm{Serial: "PC/42"}), "пустая дата (null) пропускается")
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&equipmentForm{
		Serial:       "CNC 2023",
		Email:        "not-an-email",
		PurchaseDate: null.StringFrom("15.01.2023"),
	})

	assert.Equal(t, map[string]string{
		"serial_number": "serial_number",
		"email":         "custom_email",
		"purchase_date": "iso_date",
	}, failedFields(t, err))
}

func TestValidate_ImpossibleDate(t *testing.T) {
	err := New().Validate(&equipmentForm{Serial: "X1", PurchaseDate: null.StringFrom("2025-02-30")})

	assert.Equal(t, map[string]string{"purchase_date": "iso_date"}, failedFields(t, err))
}
