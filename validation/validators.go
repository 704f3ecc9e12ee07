package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"listing-engine/models"
)

// FieldResult is the outcome of one validator over one field value. Failures
// are user-facing messages, never errors.
type FieldResult struct {
	IsValid bool
	Error   string
}

var valid = FieldResult{IsValid: true}

func invalid(msg string) FieldResult {
	return FieldResult{Error: msg}
}

// skuPattern accepts uppercase letters, digits and dashes only.
var skuPattern = regexp.MustCompile(`^[A-Z0-9-]+$`)

// ValidateSku checks a SKU or SKU prefix: non-empty, limited to A-Z, 0-9 and
// dashes, and containing at least one dash.
func ValidateSku(value string) FieldResult {
	if value == "" {
		return invalid("SKU is required")
	}
	if !skuPattern.MatchString(value) {
		return invalid("SKU may only contain uppercase letters, numbers and dashes")
	}
	if !strings.Contains(value, "-") {
		return invalid("SKU must contain at least one dash")
	}
	return valid
}

// ValidateNumeric checks a price-like field. Pre-filled values keep the looser
// upstream rule: zero stays acceptable and only negatives fail. Values the
// user entered must be strictly positive.
func ValidateNumeric(value models.FieldValue, fieldName string, isPreFilled bool) FieldResult {
	num, ok := numericValue(value)
	if !ok || math.IsNaN(num) {
		return invalid(fieldName + " must be a number")
	}
	if isPreFilled {
		if num < 0 {
			return invalid(fieldName + " cannot be negative")
		}
		return valid
	}
	if num <= 0 {
		return invalid(fieldName + " must be a positive number")
	}
	return valid
}

// ValidateRequired checks presence. Strings must be non-blank after trimming;
// numbers must be non-zero and not NaN even when pre-filled, which is the
// deliberate split from ValidateNumeric's zero-tolerant pre-filled rule;
// absent values fail; every other kind passes. The pre-filled flag is
// accepted for call-site symmetry and has no effect here.
func ValidateRequired(value models.FieldValue, fieldName string, isPreFilled bool) FieldResult {
	switch value.Kind() {
	case models.ValueAbsent:
		return invalid(fieldName + " is required")
	case models.ValueString:
		s, _ := value.AsString()
		if strings.TrimSpace(s) == "" {
			return invalid(fieldName + " is required")
		}
		return valid
	case models.ValueNumber:
		n, _ := value.AsNumber()
		if n == 0 || math.IsNaN(n) {
			return invalid(fieldName + " is required")
		}
		return valid
	default:
		return valid
	}
}

// numericValue extracts a float from number values and numeric strings.
// Attribute bags imported from upstream feeds regularly carry numbers as
// strings, so those parse instead of failing outright.
func numericValue(value models.FieldValue) (float64, bool) {
	switch value.Kind() {
	case models.ValueNumber:
		n, _ := value.AsNumber()
		return n, true
	case models.ValueString:
		s, _ := value.AsString()
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
