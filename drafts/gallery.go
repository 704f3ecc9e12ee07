package drafts

import (
	"errors"
	"fmt"

	"listing-engine/models"
)

// ErrSlotIndex rejects a negative gallery slot.
var ErrSlotIndex = errors.New("gallery slot out of range")

// GalleryEntry is one row of the gallery view: the synthetic main-image entry
// or one distinct sub-SKU paired with its image slot.
type GalleryEntry struct {
	IsMain    bool
	Sku       string           // "" for the main-image entry
	Count     int              // occurrences of Sku; 0 for the main-image entry
	SlotIndex int              // index into GalleryImages; -1 for the main-image entry
	Image     *models.ImageRef // nil while the slot has no image
}

// Label renders the entry for display: the main-image marker, or the SKU
// annotated with its occurrence count when above one.
func (e GalleryEntry) Label() string {
	if e.IsMain {
		return "Main image"
	}
	if e.Count > 1 {
		return fmt.Sprintf("%s (%d)", e.Sku, e.Count)
	}
	return e.Sku
}

// GalleryEntries derives the ordered gallery view for one draft: the main
// image first when present, then one entry per distinct sub-SKU value in
// first-occurrence order, paired with the gallery image at that ordinal.
// Duplicate instances consume no extra slot. Images past the distinct count
// stay stored but are unreachable here; only the indexed slot operations
// touch them.
func GalleryEntries(d *models.ListingDraft) []GalleryEntry {
	if d == nil {
		return nil
	}
	var entries []GalleryEntry
	if d.MainImage != nil {
		img := *d.MainImage
		entries = append(entries, GalleryEntry{IsMain: true, SlotIndex: -1, Image: &img})
	}
	for i, g := range GroupSubSkus(d.SubSkuInstances) {
		e := GalleryEntry{Sku: g.Sku, Count: g.Count, SlotIndex: i}
		if i < len(d.GalleryImages) {
			img := d.GalleryImages[i]
			e.Image = &img
		}
		entries = append(entries, e)
	}
	return entries
}

// SetGalleryImage writes img into the slot of the draft at draftIndex. A slot
// at or past the current image count appends instead: an explicit push, never
// a sparse write, so the sequence can hold no holes. Negative slots are a
// contract violation.
func SetGalleryImage(drafts []*models.ListingDraft, draftIndex int, slot int, img models.ImageRef) ([]*models.ListingDraft, error) {
	if slot < 0 {
		return nil, fmt.Errorf("%w: %d", ErrSlotIndex, slot)
	}
	d, err := draftAt(drafts, draftIndex)
	if err != nil {
		return nil, err
	}
	cp := d.Clone()
	if slot < len(cp.GalleryImages) {
		cp.GalleryImages[slot] = img
	} else {
		cp.GalleryImages = append(cp.GalleryImages, img)
	}
	return replaceAt(drafts, draftIndex, cp), nil
}

// RemoveGalleryImage splices the slot out of the draft at draftIndex. Every
// later image shifts down one position and so re-pairs with the preceding
// sub-SKU slot; callers edit with that shift in mind. Out-of-range slots are
// a no-op returning the array unchanged.
func RemoveGalleryImage(drafts []*models.ListingDraft, draftIndex int, slot int) ([]*models.ListingDraft, error) {
	d, err := draftAt(drafts, draftIndex)
	if err != nil {
		return nil, err
	}
	if slot < 0 || slot >= len(d.GalleryImages) {
		return drafts, nil
	}
	cp := d.Clone()
	cp.GalleryImages = append(cp.GalleryImages[:slot], cp.GalleryImages[slot+1:]...)
	return replaceAt(drafts, draftIndex, cp), nil
}
