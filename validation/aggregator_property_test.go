//go:build property
// +build property

package validation_test

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"listing-engine/models"
	"listing-engine/validation"
)

func TestValidationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("a pass over an unchanged array repeats exactly", prop.ForAll(
		func(title, brand string, msrp float64, priced bool) bool {
			d := &models.ListingDraft{Title: title, BrandName: brand}
			if priced {
				d.Msrp = models.Float64(msrp)
			}
			arr := []*models.ListingDraft{d, {}}
			return reflect.DeepEqual(validation.ValidateAll(arr), validation.ValidateAll(arr))
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.Float64Range(-1000, 1000),
		gen.Bool(),
	))

	properties.Property("pre-filled tracks the current text value", prop.ForAll(
		func(s string) bool {
			d := &models.ListingDraft{BrandName: s}
			return validation.IsPreFilled(d, models.MustParseFieldPath("brandName")) == (s != "")
		},
		gen.AnyString(),
	))

	properties.Property("every failure points at a draft in range", prop.ForAll(
		func(titles []string) bool {
			arr := make([]*models.ListingDraft, len(titles))
			for i, title := range titles {
				arr[i] = &models.ListingDraft{Title: title}
			}
			for k, msg := range validation.ValidateAll(arr) {
				if k.DraftIndex < 0 || k.DraftIndex >= len(arr) {
					return false
				}
				if k.FieldPath == "" || msg == "" {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
