package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	Email string  `validate:"required,email"`
	Name  string  `validate:"required,min=2"`
	Qty   int     `validate:"min=1"`
	Price float64 `validate:"min=0"`
	Kind  string  `validate:"omitempty,oneof=basic pro"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(sampleForm{
		Email: "a@example.com",
		Name:  "Ana",
		Qty:   2,
		Price: 9.99,
	})
	assert.Nil(t, errs)
}

func TestValidateStruct_CollectsFieldErrors(t *testing.T) {
	errs := ValidateStruct(sampleForm{
		Email: "not-an-email",
		Name:  "A",
		Qty:   0,
		Price: -1,
		Kind:  "enterprise",
	})

	assert.Len(t, errs, 5)
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Minimum length is 2", errs["Name"])
	assert.Equal(t, "Must be at least 1", errs["Qty"])
	assert.Equal(t, "Must be at least 0", errs["Price"])
	assert.Equal(t, "Must be one of: basic, pro", errs["Kind"])
}

func TestFormatValidationErrors_Deterministic(t *testing.T) {
	errs := map[string]string{
		"Qty":   "Must be at least 1",
		"Email": "Invalid email format",
	}

	formatted := FormatValidationErrors(errs)
	assert.Equal(t, "Email: Invalid email format; Qty: Must be at least 1", formatted)
}
