package drafts

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"listing-engine/models"
)

// payloadValidator checks inbound workflow payloads against their struct tags
// before any draft is built from them.
type payloadValidator struct {
	validate *validator.Validate
}

func newPayloadValidator() *payloadValidator {
	return &payloadValidator{
		validate: validator.New(),
	}
}

func (pv *payloadValidator) check(payload any) error {
	if err := pv.validate.Struct(payload); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

var intakeValidator = newPayloadValidator()

// NewFromProduct builds the draft for one selected catalog product. The
// upstream SKU seeds the group SKU and its protected original, the first
// upstream image becomes the main image and the rest seed the gallery in
// order. The single opening instance carries the upstream SKU.
func NewFromProduct(p models.SourceProduct) (*models.ListingDraft, error) {
	if err := intakeValidator.check(p); err != nil {
		return nil, fmt.Errorf("product selection: %w", err)
	}

	d := &models.ListingDraft{
		GroupSku:         p.Sku,
		OriginalGroupSku: p.Sku,
		Title:            p.Name,
		BrandName:        p.BrandName,
		Category:         p.Category,
		CollectionName:   p.CollectionName,
		Description:      p.Description,
		SubSkuInstances: []models.SubSkuInstance{
			{Sku: p.Sku, Quantity: 1, IsCustom: false},
		},
	}
	if p.Msrp != nil {
		d.Msrp = models.Float64(*p.Msrp)
	}
	if p.BrandRealPrice != nil {
		d.BrandRealPrice = models.Float64(*p.BrandRealPrice)
	}
	if p.ShippingPrice != nil {
		d.ShippingPrice = models.Float64(*p.ShippingPrice)
	}
	if len(p.Attributes) > 0 {
		d.Attributes = make(map[string]models.FieldValue, len(p.Attributes))
		for k, v := range p.Attributes {
			d.Attributes[k] = v
		}
	}
	for i, raw := range p.Images {
		ref, err := models.NewURLRef(raw)
		if err != nil {
			return nil, fmt.Errorf("product image %d: %w", i, err)
		}
		if i == 0 {
			d.MainImage = &ref
			continue
		}
		d.GalleryImages = append(d.GalleryImages, ref)
	}
	return d, nil
}

// NewFromBundle builds the merged draft for an accepted combination
// suggestion: one instance per member product with its quantity, the
// suggestion's group SKU as the protected original, and the aggregate MSRP as
// the seeded price. The first member image becomes the main image; gallery
// slots start empty so the operator assigns them per sub-SKU.
func NewFromBundle(b models.BundleSuggestion) (*models.ListingDraft, error) {
	if err := intakeValidator.check(b); err != nil {
		return nil, fmt.Errorf("bundle suggestion: %w", err)
	}

	d := &models.ListingDraft{
		GroupSku:         b.GroupSku,
		OriginalGroupSku: b.GroupSku,
	}
	if b.AggregateMsrp > 0 {
		d.Msrp = models.Float64(b.AggregateMsrp)
	}

	names := make([]string, 0, len(b.Products))
	for i, p := range b.Products {
		qty := p.Quantity
		if qty <= 0 {
			qty = 1
		}
		d.SubSkuInstances = append(d.SubSkuInstances, models.SubSkuInstance{
			Sku:      p.Sku,
			Quantity: qty,
			IsCustom: false,
		})
		names = append(names, p.Name)
		if p.Image == "" || d.MainImage != nil {
			continue
		}
		ref, err := models.NewURLRef(p.Image)
		if err != nil {
			return nil, fmt.Errorf("bundle product %d image: %w", i, err)
		}
		d.MainImage = &ref
	}
	d.Title = strings.Join(names, " + ")
	return d, nil
}
