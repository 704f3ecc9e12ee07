package models

import (
	"errors"
	"fmt"
	"strings"
)

// PathKind separates the two shapes a field path can take.
type PathKind int

const (
	// PathTopLevel addresses a named top-level draft field.
	PathTopLevel PathKind = iota
	// PathAttribute addresses one key inside the attributes bag.
	PathAttribute
)

// Addressable top-level field names.
const (
	FieldCustomSkuPrefix  = "customSkuPrefix"
	FieldGroupSku         = "groupSku"
	FieldOriginalGroupSku = "originalGroupSku"
	FieldSubSkuInstances  = "subSkuInstances"
	FieldMainImage        = "mainImage"
	FieldBrandName        = "brandName"
	FieldCategory         = "category"
	FieldCollectionName   = "collectionName"
	FieldTitle            = "title"
	FieldDescription      = "description"

	FieldBrandRealPrice         = "brandRealPrice"
	FieldMsrp                   = "msrp"
	FieldShippingPrice          = "shippingPrice"
	FieldCommissionPrice        = "commissionPrice"
	FieldProfitMarginPrice      = "profitMarginPrice"
	FieldBrandMiscellaneous     = "brandMiscellaneous"
	FieldEcommerceMiscellaneous = "ecommerceMiscellaneous"
)

// attributePrefix routes dotted paths into the attributes bag.
const attributePrefix = "attributes."

// ErrUnknownField rejects paths outside the addressable field set. Receiving
// it means the caller and the draft shape disagree; it is a contract
// violation, never shown to the user.
var ErrUnknownField = errors.New("unknown draft field")

// topLevelFields is the closed set of addressable top-level names. Gallery
// images are deliberately not in it: slot edits go through the dedicated
// gallery operations, which carry append and splice semantics a plain field
// write cannot.
var topLevelFields = map[string]struct{}{
	FieldCustomSkuPrefix:        {},
	FieldGroupSku:               {},
	FieldOriginalGroupSku:       {},
	FieldSubSkuInstances:        {},
	FieldMainImage:              {},
	FieldBrandName:              {},
	FieldCategory:               {},
	FieldCollectionName:         {},
	FieldTitle:                  {},
	FieldDescription:            {},
	FieldBrandRealPrice:         {},
	FieldMsrp:                   {},
	FieldShippingPrice:          {},
	FieldCommissionPrice:        {},
	FieldProfitMarginPrice:      {},
	FieldBrandMiscellaneous:     {},
	FieldEcommerceMiscellaneous: {},
}

// FieldPath addresses one editable field in a draft: a top-level field by
// name, or one attribute key.
type FieldPath struct {
	kind PathKind
	name string
}

// TopLevelPath addresses the named top-level field.
func TopLevelPath(name string) (FieldPath, error) {
	if _, ok := topLevelFields[name]; !ok {
		return FieldPath{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return FieldPath{kind: PathTopLevel, name: name}, nil
}

// AttributePath addresses the named attribute key. The bag is flat, so names
// containing dots are rejected.
func AttributePath(name string) (FieldPath, error) {
	if name == "" {
		return FieldPath{}, fmt.Errorf("%w: empty attribute name", ErrUnknownField)
	}
	if strings.Contains(name, ".") {
		return FieldPath{}, fmt.Errorf("%w: nested attribute %q", ErrUnknownField, name)
	}
	return FieldPath{kind: PathAttribute, name: name}, nil
}

// ParseFieldPath parses a dotted path: "attributes.<name>" addresses the
// attributes bag, a known bare name addresses a top-level field, anything
// else fails with ErrUnknownField.
func ParseFieldPath(raw string) (FieldPath, error) {
	if strings.HasPrefix(raw, attributePrefix) {
		return AttributePath(strings.TrimPrefix(raw, attributePrefix))
	}
	if strings.Contains(raw, ".") {
		return FieldPath{}, fmt.Errorf("%w: %q", ErrUnknownField, raw)
	}
	return TopLevelPath(raw)
}

// MustParseFieldPath is ParseFieldPath for paths known at compile time.
func MustParseFieldPath(raw string) FieldPath {
	p, err := ParseFieldPath(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Kind reports which shape the path takes.
func (p FieldPath) Kind() PathKind {
	return p.kind
}

// Name is the field or attribute name the path addresses.
func (p FieldPath) Name() string {
	return p.name
}

// String renders the dotted form.
func (p FieldPath) String() string {
	if p.kind == PathAttribute {
		return attributePrefix + p.name
	}
	return p.name
}

// Value resolves the path against the draft. Missing attributes, nil pricing
// fields and a nil main image all resolve to the absent value.
func (d *ListingDraft) Value(p FieldPath) FieldValue {
	if d == nil {
		return AbsentValue()
	}
	if p.kind == PathAttribute {
		if v, ok := d.Attributes[p.name]; ok {
			return v
		}
		return AbsentValue()
	}
	switch p.name {
	case FieldCustomSkuPrefix:
		return StringValue(d.CustomSkuPrefix)
	case FieldGroupSku:
		return StringValue(d.GroupSku)
	case FieldOriginalGroupSku:
		return StringValue(d.OriginalGroupSku)
	case FieldSubSkuInstances:
		return InstancesValue(d.SubSkuInstances)
	case FieldMainImage:
		if d.MainImage == nil {
			return AbsentValue()
		}
		return ImageValue(*d.MainImage)
	case FieldBrandName:
		return StringValue(d.BrandName)
	case FieldCategory:
		return StringValue(d.Category)
	case FieldCollectionName:
		return StringValue(d.CollectionName)
	case FieldTitle:
		return StringValue(d.Title)
	case FieldDescription:
		return StringValue(d.Description)
	case FieldBrandRealPrice:
		return priceValue(d.BrandRealPrice)
	case FieldMsrp:
		return priceValue(d.Msrp)
	case FieldShippingPrice:
		return priceValue(d.ShippingPrice)
	case FieldCommissionPrice:
		return priceValue(d.CommissionPrice)
	case FieldProfitMarginPrice:
		return priceValue(d.ProfitMarginPrice)
	case FieldBrandMiscellaneous:
		return priceValue(d.BrandMiscellaneous)
	case FieldEcommerceMiscellaneous:
		return priceValue(d.EcommerceMiscellaneous)
	}
	return AbsentValue()
}

func priceValue(p *float64) FieldValue {
	if p == nil {
		return AbsentValue()
	}
	return NumberValue(*p)
}
