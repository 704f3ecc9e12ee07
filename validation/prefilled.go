package validation

import (
	"listing-engine/models"
)

// IsPreFilled reports whether the field at path currently looks like upstream
// data: it resolves to a non-absent, non-empty-string value, or it is the
// group SKU of a draft carrying a non-empty original group SKU.
//
// Classification is recomputed on every validation pass, never frozen at
// draft creation. Clearing a pre-filled field removes its status, so the rule
// applied to it tightens on the next pass; the question answered is "does
// this look like upstream data right now", not "did this originate upstream".
func IsPreFilled(d *models.ListingDraft, path models.FieldPath) bool {
	if d == nil {
		return false
	}
	if path.Kind() == models.PathTopLevel && path.Name() == models.FieldGroupSku && d.OriginalGroupSku != "" {
		return true
	}
	v := d.Value(path)
	switch v.Kind() {
	case models.ValueAbsent:
		return false
	case models.ValueString:
		s, _ := v.AsString()
		return s != ""
	default:
		return true
	}
}

// PreFilledPaths lists every cataloged field path currently classified
// pre-filled, in catalog order. The hosting UI renders provenance hints from
// it, including the protected original-group-SKU prefix.
func PreFilledPaths(d *models.ListingDraft) []string {
	var paths []string
	for _, f := range catalogFields {
		if IsPreFilled(d, f.Path) {
			paths = append(paths, f.Path.String())
		}
	}
	return paths
}
