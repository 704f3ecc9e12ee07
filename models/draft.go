package models

// SubSkuInstance is one quantity-unit entry in a draft's sub-SKU list.
// Duplicate SKU values are allowed and meaningful: each element is an
// instance, not a unique key, and the index where a value first appears
// anchors that value's gallery slot.
type SubSkuInstance struct {
	Sku      string `json:"sku"`
	Quantity int    `json:"quantity"`
	IsCustom bool   `json:"isCustom"`
}

// ListingDraft is one product pending onboarding through the bulk-listing
// workflow. Drafts live only for the workflow session: created when it opens
// and discarded on submit or cancel, with every edit in between going through
// the drafts package. Nothing here persists and nothing here reaches the
// network.
//
// Pricing fields are pointers because absence is distinct from zero: a nil
// price was never filled, a zero price arrived as data, and the pre-filled
// classifier keys off that difference.
type ListingDraft struct {
	CustomSkuPrefix  string                `json:"customSkuPrefix"`
	GroupSku         string                `json:"groupSku"`
	OriginalGroupSku string                `json:"originalGroupSku,omitempty"`
	SubSkuInstances  []SubSkuInstance      `json:"subSkuInstances"`
	GalleryImages    []ImageRef            `json:"galleryImages"`
	MainImage        *ImageRef             `json:"mainImage,omitempty"`
	Attributes       map[string]FieldValue `json:"attributes,omitempty"`

	BrandName      string `json:"brandName"`
	Category       string `json:"category"`
	CollectionName string `json:"collectionName"`
	Title          string `json:"title"`
	Description    string `json:"description"`

	BrandRealPrice         *float64 `json:"brandRealPrice,omitempty"`
	Msrp                   *float64 `json:"msrp,omitempty"`
	ShippingPrice          *float64 `json:"shippingPrice,omitempty"`
	CommissionPrice        *float64 `json:"commissionPrice,omitempty"`
	ProfitMarginPrice      *float64 `json:"profitMarginPrice,omitempty"`
	BrandMiscellaneous     *float64 `json:"brandMiscellaneous,omitempty"`
	EcommerceMiscellaneous *float64 `json:"ecommerceMiscellaneous,omitempty"`
}

// Clone returns a deep copy. Mutating the copy never reaches the original,
// which the copy-on-write contract of every draft operation relies on.
func (d *ListingDraft) Clone() *ListingDraft {
	if d == nil {
		return nil
	}
	cp := *d
	if d.SubSkuInstances != nil {
		cp.SubSkuInstances = make([]SubSkuInstance, len(d.SubSkuInstances))
		copy(cp.SubSkuInstances, d.SubSkuInstances)
	}
	if d.GalleryImages != nil {
		cp.GalleryImages = make([]ImageRef, len(d.GalleryImages))
		copy(cp.GalleryImages, d.GalleryImages)
	}
	if d.MainImage != nil {
		img := *d.MainImage
		cp.MainImage = &img
	}
	if d.Attributes != nil {
		cp.Attributes = make(map[string]FieldValue, len(d.Attributes))
		for k, v := range d.Attributes {
			cp.Attributes[k] = v
		}
	}
	cp.BrandRealPrice = clonePrice(d.BrandRealPrice)
	cp.Msrp = clonePrice(d.Msrp)
	cp.ShippingPrice = clonePrice(d.ShippingPrice)
	cp.CommissionPrice = clonePrice(d.CommissionPrice)
	cp.ProfitMarginPrice = clonePrice(d.ProfitMarginPrice)
	cp.BrandMiscellaneous = clonePrice(d.BrandMiscellaneous)
	cp.EcommerceMiscellaneous = clonePrice(d.EcommerceMiscellaneous)
	return &cp
}

// FinalSku is the SKU the listing would submit under: the custom prefix with
// the group SKU suffix appended.
func (d *ListingDraft) FinalSku() string {
	return d.CustomSkuPrefix + d.GroupSku
}

func clonePrice(p *float64) *float64 {
	if p == nil {
		return nil
	}
	n := *p
	return &n
}

// Float64 returns a pointer to v, for seeding nullable pricing fields.
func Float64(v float64) *float64 {
	return &v
}

// ValidationError is one user-facing field failure, keyed to the draft it
// belongs to and the dotted path of the failing field.
type ValidationError struct {
	DraftIndex int    `json:"draftIndex"`
	FieldPath  string `json:"fieldPath"`
	Message    string `json:"message"`
}
