package validation

import (
	"fmt"
	"sort"

	"listing-engine/models"
)

// FieldKey locates one validation failure: the draft's index in the array and
// the dotted path of the failing field.
type FieldKey struct {
	DraftIndex int
	FieldPath  string
}

// ErrorSet is the keyed failure set produced by one validation pass. Every
// pass rebuilds it wholesale; callers replace their previous set, never merge.
type ErrorSet map[FieldKey]string

// Valid reports whether the set holds no failures for any draft.
func (s ErrorSet) Valid() bool {
	return len(s) == 0
}

// Get returns the message recorded for one draft field, if any.
func (s ErrorSet) Get(draftIndex int, fieldPath string) (string, bool) {
	msg, ok := s[FieldKey{DraftIndex: draftIndex, FieldPath: fieldPath}]
	return msg, ok
}

// Errors returns every failure ordered by draft index, then field path.
func (s ErrorSet) Errors() []models.ValidationError {
	out := make([]models.ValidationError, 0, len(s))
	for k, msg := range s {
		out = append(out, models.ValidationError{
			DraftIndex: k.DraftIndex,
			FieldPath:  k.FieldPath,
			Message:    msg,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DraftIndex != out[j].DraftIndex {
			return out[i].DraftIndex < out[j].DraftIndex
		}
		return out[i].FieldPath < out[j].FieldPath
	})
	return out
}

// DraftErrors returns the failures recorded for one draft, ordered by path.
func (s ErrorSet) DraftErrors(draftIndex int) []models.ValidationError {
	var out []models.ValidationError
	for _, e := range s.Errors() {
		if e.DraftIndex == draftIndex {
			out = append(out, e)
		}
	}
	return out
}

// SubSkuPath is the error key for one instance's SKU field.
func SubSkuPath(i int) string {
	return fmt.Sprintf("%s.%d.sku", models.FieldSubSkuInstances, i)
}

// ValidateAll runs the full rule set over every draft in the array: the
// custom SKU prefix, the group SKU, the required scalars, the pricing fields,
// the required attributes and every sub-SKU instance's SKU. Recomputation is
// total: pre-filled status is re-derived per field on each call, so edits
// between passes can change which rule a field gets. A pass over an unchanged
// array always yields an identical set.
func ValidateAll(drafts []*models.ListingDraft) ErrorSet {
	errs := make(ErrorSet)
	for i, d := range drafts {
		validateDraft(errs, i, d)
	}
	return errs
}

// ValidateDraft runs the rule set over a single draft, keyed at draftIndex.
func ValidateDraft(draftIndex int, d *models.ListingDraft) ErrorSet {
	errs := make(ErrorSet)
	validateDraft(errs, draftIndex, d)
	return errs
}

func validateDraft(errs ErrorSet, draftIndex int, d *models.ListingDraft) {
	if d == nil {
		return
	}
	for _, f := range catalogFields {
		res := applyRule(f, d)
		if !res.IsValid {
			errs[FieldKey{DraftIndex: draftIndex, FieldPath: f.Path.String()}] = res.Error
		}
	}
	for i, inst := range d.SubSkuInstances {
		if res := ValidateSku(inst.Sku); !res.IsValid {
			errs[FieldKey{DraftIndex: draftIndex, FieldPath: SubSkuPath(i)}] = res.Error
		}
	}
}

func applyRule(f CatalogField, d *models.ListingDraft) FieldResult {
	switch f.Rule {
	case RuleSku:
		s, _ := d.Value(f.Path).AsString()
		return ValidateSku(s)
	case RuleNumeric:
		return ValidateNumeric(d.Value(f.Path), f.Label, IsPreFilled(d, f.Path))
	default:
		return ValidateRequired(d.Value(f.Path), f.Label, IsPreFilled(d, f.Path))
	}
}
