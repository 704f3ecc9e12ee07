package models

// SourceProduct is the raw product selection handed over when the operator
// picks catalog products for the bulk-listing workflow. The catalog client
// owns fetching; only the shape matters here.
type SourceProduct struct {
	ProductID      string                `json:"productId" validate:"required"`
	Name           string                `json:"name" validate:"required"`
	Sku            string                `json:"sku" validate:"required"`
	BrandName      string                `json:"brandName"`
	Category       string                `json:"category"`
	CollectionName string                `json:"collectionName"`
	Description    string                `json:"description"`
	Msrp           *float64              `json:"msrp,omitempty" validate:"omitempty,gte=0"`
	BrandRealPrice *float64              `json:"brandRealPrice,omitempty" validate:"omitempty,gte=0"`
	ShippingPrice  *float64              `json:"shippingPrice,omitempty" validate:"omitempty,gte=0"`
	Images         []string              `json:"images,omitempty" validate:"omitempty,dive,url"`
	Attributes     map[string]FieldValue `json:"attributes,omitempty"`
}

// BundleProduct is one member of a suggested combination.
type BundleProduct struct {
	ProductID string   `json:"productId" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Sku       string   `json:"sku" validate:"required"`
	Quantity  int      `json:"quantity" validate:"gte=0"`
	Msrp      *float64 `json:"msrp,omitempty" validate:"omitempty,gte=0"`
	Image     string   `json:"image,omitempty" validate:"omitempty,url"`
}

// BundleSuggestion is one accepted combination suggestion. The suggestion
// generator and its scoring live upstream; only the accepted bundle's shape
// is consumed here.
type BundleSuggestion struct {
	ProductCount  int             `json:"productCount" validate:"required,min=1"`
	Products      []BundleProduct `json:"products" validate:"required,min=1,dive"`
	GroupSku      string          `json:"groupSku" validate:"required"`
	AggregateMsrp float64         `json:"aggregateMsrp" validate:"gte=0"`
}
