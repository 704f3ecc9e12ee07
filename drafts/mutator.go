package drafts

import (
	"errors"
	"fmt"

	"listing-engine/models"
)

var (
	// ErrDraftIndex rejects operations addressing a draft index outside the
	// array.
	ErrDraftIndex = errors.New("draft index out of range")

	// ErrInstanceIndex rejects a group operation naming an instance index
	// outside the draft's sub-SKU list.
	ErrInstanceIndex = errors.New("instance index out of range")

	// ErrValueKind rejects a field edit whose value kind cannot be assigned
	// to the addressed field.
	ErrValueKind = errors.New("value kind not assignable")
)

// SetField applies one edit to the draft at draftIndex and returns a new
// array. The edited draft is a fresh object; every other element keeps its
// identity, which the hosting UI's change detection relies on. Text fields
// clear with an empty string value; pricing fields and the main image clear
// with the absent value. Unknown paths and kind mismatches signal a caller
// contract violation through the returned error, never through a validation
// message.
func SetField(drafts []*models.ListingDraft, draftIndex int, path models.FieldPath, value models.FieldValue) ([]*models.ListingDraft, error) {
	d, err := draftAt(drafts, draftIndex)
	if err != nil {
		return nil, err
	}
	updated, err := setDraftField(d, path, value)
	if err != nil {
		return nil, err
	}
	return replaceAt(drafts, draftIndex, updated), nil
}

// draftAt bounds-checks draftIndex and rejects nil entries.
func draftAt(drafts []*models.ListingDraft, draftIndex int) (*models.ListingDraft, error) {
	if draftIndex < 0 || draftIndex >= len(drafts) {
		return nil, fmt.Errorf("%w: %d of %d", ErrDraftIndex, draftIndex, len(drafts))
	}
	if drafts[draftIndex] == nil {
		return nil, fmt.Errorf("%w: nil draft at %d", ErrDraftIndex, draftIndex)
	}
	return drafts[draftIndex], nil
}

// replaceAt copies the array and swaps in the updated draft.
func replaceAt(drafts []*models.ListingDraft, i int, d *models.ListingDraft) []*models.ListingDraft {
	out := make([]*models.ListingDraft, len(drafts))
	copy(out, drafts)
	out[i] = d
	return out
}

// setDraftField clones the draft and assigns value at path.
func setDraftField(d *models.ListingDraft, path models.FieldPath, value models.FieldValue) (*models.ListingDraft, error) {
	cp := d.Clone()
	if path.Kind() == models.PathAttribute {
		if err := assignAttribute(cp, path.Name(), value); err != nil {
			return nil, err
		}
		return cp, nil
	}
	if err := assignTopLevel(cp, path.Name(), value); err != nil {
		return nil, err
	}
	return cp, nil
}

// assignAttribute merges one key into the attributes bag. Absent deletes the
// key; resolution treats a missing key as absent, so the two are equivalent.
func assignAttribute(d *models.ListingDraft, name string, value models.FieldValue) error {
	switch value.Kind() {
	case models.ValueAbsent, models.ValueString, models.ValueNumber:
	default:
		return kindError("attributes."+name, value)
	}
	if value.IsAbsent() {
		delete(d.Attributes, name)
		return nil
	}
	if d.Attributes == nil {
		d.Attributes = make(map[string]models.FieldValue, 1)
	}
	d.Attributes[name] = value
	return nil
}

func assignTopLevel(d *models.ListingDraft, name string, value models.FieldValue) error {
	switch name {
	case models.FieldSubSkuInstances:
		instances, ok := value.AsInstances()
		if !ok {
			return kindError(name, value)
		}
		d.SubSkuInstances = instances
	case models.FieldMainImage:
		switch value.Kind() {
		case models.ValueAbsent:
			d.MainImage = nil
		case models.ValueImage:
			img, _ := value.AsImage()
			d.MainImage = &img
		default:
			return kindError(name, value)
		}
	case models.FieldCustomSkuPrefix, models.FieldGroupSku, models.FieldOriginalGroupSku,
		models.FieldBrandName, models.FieldCategory, models.FieldCollectionName,
		models.FieldTitle, models.FieldDescription:
		s, ok := value.AsString()
		if !ok {
			return kindError(name, value)
		}
		setStringField(d, name, s)
	case models.FieldBrandRealPrice, models.FieldMsrp, models.FieldShippingPrice,
		models.FieldCommissionPrice, models.FieldProfitMarginPrice,
		models.FieldBrandMiscellaneous, models.FieldEcommerceMiscellaneous:
		switch value.Kind() {
		case models.ValueAbsent:
			setPriceField(d, name, nil)
		case models.ValueNumber:
			n, _ := value.AsNumber()
			setPriceField(d, name, models.Float64(n))
		default:
			return kindError(name, value)
		}
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownField, name)
	}
	return nil
}

func setStringField(d *models.ListingDraft, name, s string) {
	switch name {
	case models.FieldCustomSkuPrefix:
		d.CustomSkuPrefix = s
	case models.FieldGroupSku:
		d.GroupSku = s
	case models.FieldOriginalGroupSku:
		d.OriginalGroupSku = s
	case models.FieldBrandName:
		d.BrandName = s
	case models.FieldCategory:
		d.Category = s
	case models.FieldCollectionName:
		d.CollectionName = s
	case models.FieldTitle:
		d.Title = s
	case models.FieldDescription:
		d.Description = s
	}
}

func setPriceField(d *models.ListingDraft, name string, p *float64) {
	switch name {
	case models.FieldBrandRealPrice:
		d.BrandRealPrice = p
	case models.FieldMsrp:
		d.Msrp = p
	case models.FieldShippingPrice:
		d.ShippingPrice = p
	case models.FieldCommissionPrice:
		d.CommissionPrice = p
	case models.FieldProfitMarginPrice:
		d.ProfitMarginPrice = p
	case models.FieldBrandMiscellaneous:
		d.BrandMiscellaneous = p
	case models.FieldEcommerceMiscellaneous:
		d.EcommerceMiscellaneous = p
	}
}

func kindError(path string, value models.FieldValue) error {
	return fmt.Errorf("%w: cannot assign %s value to %s", ErrValueKind, value.Kind(), path)
}
