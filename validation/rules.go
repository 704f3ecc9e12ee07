package validation

import (
	"listing-engine/models"
)

// RuleKind selects which validator a cataloged field runs.
type RuleKind int

const (
	// RuleSku applies ValidateSku.
	RuleSku RuleKind = iota
	// RuleRequired applies ValidateRequired.
	RuleRequired
	// RuleNumeric applies ValidateNumeric.
	RuleNumeric
)

// CatalogField binds one draft field path to its validation rule and the
// label used in user-facing messages.
type CatalogField struct {
	Path  models.FieldPath
	Rule  RuleKind
	Label string
}

// RequiredAttributes are the attribute keys every listing must carry.
var RequiredAttributes = []string{
	"color",
	"material",
	"countryOfOrigin",
	"careInstructions",
	"productWeight",
	"shippingWeight",
	"packageLength",
	"packageWidth",
	"packageHeight",
	"shortDescription",
	"longDescription",
	"warranty",
}

// requiredScalarFields are the top-level text fields every listing must fill.
var requiredScalarFields = []string{
	models.FieldBrandName,
	models.FieldCategory,
	models.FieldCollectionName,
	models.FieldTitle,
	models.FieldDescription,
}

// pricingFields are the numeric fields checked with the pre-filled-aware rule.
var pricingFields = []string{
	models.FieldBrandRealPrice,
	models.FieldMsrp,
	models.FieldShippingPrice,
	models.FieldCommissionPrice,
	models.FieldProfitMarginPrice,
	models.FieldBrandMiscellaneous,
	models.FieldEcommerceMiscellaneous,
}

// fieldLabels maps field and attribute names to display labels.
var fieldLabels = map[string]string{
	models.FieldCustomSkuPrefix:        "Custom SKU prefix",
	models.FieldGroupSku:               "Group SKU",
	models.FieldBrandName:              "Brand name",
	models.FieldCategory:               "Category",
	models.FieldCollectionName:         "Collection name",
	models.FieldTitle:                  "Title",
	models.FieldDescription:            "Description",
	models.FieldBrandRealPrice:         "Brand real price",
	models.FieldMsrp:                   "MSRP",
	models.FieldShippingPrice:          "Shipping price",
	models.FieldCommissionPrice:        "Commission price",
	models.FieldProfitMarginPrice:      "Profit margin price",
	models.FieldBrandMiscellaneous:     "Brand miscellaneous",
	models.FieldEcommerceMiscellaneous: "E-commerce miscellaneous",

	"color":            "Color",
	"material":         "Material",
	"countryOfOrigin":  "Country of origin",
	"careInstructions": "Care instructions",
	"productWeight":    "Product weight",
	"shippingWeight":   "Shipping weight",
	"packageLength":    "Package length",
	"packageWidth":     "Package width",
	"packageHeight":    "Package height",
	"shortDescription": "Short description",
	"longDescription":  "Long description",
	"warranty":         "Warranty",
}

// FieldLabel returns the display label for a field or attribute name, falling
// back to the raw name.
func FieldLabel(name string) string {
	if l, ok := fieldLabels[name]; ok {
		return l
	}
	return name
}

// catalogFields is every per-draft field the aggregator examines, in report
// order. Sub-SKU instance SKUs are positional and appended per draft.
var catalogFields = buildCatalog()

func buildCatalog() []CatalogField {
	fields := make([]CatalogField, 0, 2+len(requiredScalarFields)+len(pricingFields)+len(RequiredAttributes))
	fields = append(fields, CatalogField{
		Path:  models.MustParseFieldPath(models.FieldCustomSkuPrefix),
		Rule:  RuleSku,
		Label: FieldLabel(models.FieldCustomSkuPrefix),
	})
	fields = append(fields, CatalogField{
		Path:  models.MustParseFieldPath(models.FieldGroupSku),
		Rule:  RuleRequired,
		Label: FieldLabel(models.FieldGroupSku),
	})
	for _, name := range requiredScalarFields {
		fields = append(fields, CatalogField{
			Path:  models.MustParseFieldPath(name),
			Rule:  RuleRequired,
			Label: FieldLabel(name),
		})
	}
	for _, name := range pricingFields {
		fields = append(fields, CatalogField{
			Path:  models.MustParseFieldPath(name),
			Rule:  RuleNumeric,
			Label: FieldLabel(name),
		})
	}
	for _, name := range RequiredAttributes {
		fields = append(fields, CatalogField{
			Path:  models.MustParseFieldPath("attributes." + name),
			Rule:  RuleRequired,
			Label: FieldLabel(name),
		})
	}
	return fields
}

// CatalogFields returns the examined per-draft fields in report order.
func CatalogFields() []CatalogField {
	return catalogFields
}
