package validation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"listing-engine/models"
	"listing-engine/validation"
)

// ---- SKU validator ----

func TestValidateSku_Valid(t *testing.T) {
	res := validation.ValidateSku("ABC-123")
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Error)
}

func TestValidateSku_Empty(t *testing.T) {
	res := validation.ValidateSku("")
	assert.False(t, res.IsValid)
	assert.Equal(t, "SKU is required", res.Error)
}

func TestValidateSku_Lowercase(t *testing.T) {
	res := validation.ValidateSku("abc-123")
	assert.False(t, res.IsValid)
	assert.Equal(t, "SKU may only contain uppercase letters, numbers and dashes", res.Error)
}

func TestValidateSku_NoDash(t *testing.T) {
	res := validation.ValidateSku("ABC123")
	assert.False(t, res.IsValid)
	assert.Equal(t, "SKU must contain at least one dash", res.Error)
}

func TestValidateSku_Charset(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"A-1", true},
		{"ACME-", true},
		{"TEE-01-RED", true},
		{"ABC_123", false},
		{"ABC 123", false},
		{"ABC-123é", false},
		{"Abc-123", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.valid, validation.ValidateSku(c.value).IsValid, "value %q", c.value)
	}
}

// ---- numeric validator ----

func TestValidateNumeric_ZeroPreFilled(t *testing.T) {
	res := validation.ValidateNumeric(models.NumberValue(0), "MSRP", true)
	assert.True(t, res.IsValid)
}

func TestValidateNumeric_ZeroNotPreFilled(t *testing.T) {
	res := validation.ValidateNumeric(models.NumberValue(0), "MSRP", false)
	assert.False(t, res.IsValid)
	assert.Equal(t, "MSRP must be a positive number", res.Error)
}

func TestValidateNumeric_NegativePreFilled(t *testing.T) {
	res := validation.ValidateNumeric(models.NumberValue(-1), "MSRP", true)
	assert.False(t, res.IsValid)
	assert.Equal(t, "MSRP cannot be negative", res.Error)
}

func TestValidateNumeric_Positive(t *testing.T) {
	assert.True(t, validation.ValidateNumeric(models.NumberValue(10), "MSRP", true).IsValid)
	assert.True(t, validation.ValidateNumeric(models.NumberValue(10), "MSRP", false).IsValid)
}

func TestValidateNumeric_NumericString(t *testing.T) {
	res := validation.ValidateNumeric(models.StringValue(" 12.5 "), "Product weight", false)
	assert.True(t, res.IsValid)
}

func TestValidateNumeric_NonNumericString(t *testing.T) {
	res := validation.ValidateNumeric(models.StringValue("abc"), "Product weight", false)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Product weight must be a number", res.Error)
}

func TestValidateNumeric_Absent(t *testing.T) {
	res := validation.ValidateNumeric(models.AbsentValue(), "MSRP", false)
	assert.False(t, res.IsValid)
	assert.Equal(t, "MSRP must be a number", res.Error)
}

func TestValidateNumeric_NaN(t *testing.T) {
	res := validation.ValidateNumeric(models.NumberValue(math.NaN()), "MSRP", true)
	assert.False(t, res.IsValid)
	assert.Equal(t, "MSRP must be a number", res.Error)
}

// ---- required validator ----

func TestValidateRequired_ZeroNumber(t *testing.T) {
	// Zero fails regardless of pre-filled status. The numeric rule tolerates
	// pre-filled zeros; the required rule never does.
	assert.False(t, validation.ValidateRequired(models.NumberValue(0), "Product weight", true).IsValid)
	assert.False(t, validation.ValidateRequired(models.NumberValue(0), "Product weight", false).IsValid)
}

func TestValidateRequired_BlankString(t *testing.T) {
	res := validation.ValidateRequired(models.StringValue("   "), "Brand name", true)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Brand name is required", res.Error)
}

func TestValidateRequired_Absent(t *testing.T) {
	res := validation.ValidateRequired(models.AbsentValue(), "Color", false)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Color is required", res.Error)
}

func TestValidateRequired_NaN(t *testing.T) {
	assert.False(t, validation.ValidateRequired(models.NumberValue(math.NaN()), "Product weight", true).IsValid)
}

func TestValidateRequired_PresentValues(t *testing.T) {
	assert.True(t, validation.ValidateRequired(models.StringValue("Red"), "Color", false).IsValid)
	assert.True(t, validation.ValidateRequired(models.NumberValue(0.3), "Product weight", false).IsValid)
	assert.True(t, validation.ValidateRequired(models.NumberValue(-1), "Product weight", false).IsValid)
}

func TestValidateRequired_OtherKindsPass(t *testing.T) {
	img := models.ImageValue(models.ImageRef{Source: models.ImageSourceURL, URL: "https://cdn.example.com/a.png"})
	assert.True(t, validation.ValidateRequired(img, "Main image", false).IsValid)

	insts := models.InstancesValue([]models.SubSkuInstance{{Sku: "A-1"}})
	assert.True(t, validation.ValidateRequired(insts, "Instances", false).IsValid)
}
