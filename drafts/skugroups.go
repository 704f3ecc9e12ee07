package drafts

import (
	"fmt"

	"listing-engine/models"
)

// SkuGroup is the derived view of every instance sharing one SKU value. It is
// rebuilt from the instance list on demand and never stored.
type SkuGroup struct {
	Sku             string `json:"sku"`
	Count           int    `json:"count"`
	IsCustom        bool   `json:"isCustom"`
	InstanceIndices []int  `json:"instanceIndices"`
}

// GroupSubSkus groups instances by SKU value in one left-to-right scan.
// Distinct values keep first-seen order; IsCustom comes from the value's
// first occurrence; repeat occurrences grow the count and the index list.
func GroupSubSkus(instances []models.SubSkuInstance) []SkuGroup {
	var groups []SkuGroup
	bySku := make(map[string]int, len(instances))
	for i, inst := range instances {
		if gi, ok := bySku[inst.Sku]; ok {
			groups[gi].Count++
			groups[gi].InstanceIndices = append(groups[gi].InstanceIndices, i)
			continue
		}
		bySku[inst.Sku] = len(groups)
		groups = append(groups, SkuGroup{
			Sku:             inst.Sku,
			Count:           1,
			IsCustom:        inst.IsCustom,
			InstanceIndices: []int{i},
		})
	}
	return groups
}

// AddSubSkuInstance appends a blank custom instance to the draft at
// draftIndex, opening a new group the user fills in afterwards.
func AddSubSkuInstance(drafts []*models.ListingDraft, draftIndex int) ([]*models.ListingDraft, error) {
	return updateInstances(drafts, draftIndex, func(instances []models.SubSkuInstance) ([]models.SubSkuInstance, bool, error) {
		out := make([]models.SubSkuInstance, 0, len(instances)+1)
		out = append(out, instances...)
		out = append(out, models.SubSkuInstance{Sku: "", Quantity: 1, IsCustom: true})
		return out, true, nil
	})
}

// AddDuplicateInstance appends one more instance of sku, growing that group's
// count by one.
func AddDuplicateInstance(drafts []*models.ListingDraft, draftIndex int, sku string) ([]*models.ListingDraft, error) {
	return updateInstances(drafts, draftIndex, func(instances []models.SubSkuInstance) ([]models.SubSkuInstance, bool, error) {
		out := make([]models.SubSkuInstance, 0, len(instances)+1)
		out = append(out, instances...)
		out = append(out, models.SubSkuInstance{Sku: sku, Quantity: 1, IsCustom: false})
		return out, true, nil
	})
}

// RemoveInstance drops the LAST instance holding sku. Removing from the tail
// keeps the position of every earlier instance, which anchors the gallery
// mapping. When no instance holds the value, the array comes back unchanged
// with no error.
func RemoveInstance(drafts []*models.ListingDraft, draftIndex int, sku string) ([]*models.ListingDraft, error) {
	return updateInstances(drafts, draftIndex, func(instances []models.SubSkuInstance) ([]models.SubSkuInstance, bool, error) {
		last := -1
		for i, inst := range instances {
			if inst.Sku == sku {
				last = i
			}
		}
		if last < 0 {
			return nil, false, nil
		}
		out := make([]models.SubSkuInstance, 0, len(instances)-1)
		out = append(out, instances[:last]...)
		out = append(out, instances[last+1:]...)
		return out, true, nil
	})
}

// RenameGroup overwrites the SKU of every listed instance index with newSku.
// One shared group input renames all duplicates in a single step, and the
// whole sequence is replaced at once so no validation pass can observe a
// half-renamed list. Indices are checked up front; a bad one fails the whole
// rename.
func RenameGroup(drafts []*models.ListingDraft, draftIndex int, newSku string, indices []int) ([]*models.ListingDraft, error) {
	return updateInstances(drafts, draftIndex, func(instances []models.SubSkuInstance) ([]models.SubSkuInstance, bool, error) {
		for _, i := range indices {
			if i < 0 || i >= len(instances) {
				return nil, false, fmt.Errorf("%w: %d of %d", ErrInstanceIndex, i, len(instances))
			}
		}
		if len(indices) == 0 {
			return nil, false, nil
		}
		out := make([]models.SubSkuInstance, len(instances))
		copy(out, instances)
		for _, i := range indices {
			out[i].Sku = newSku
		}
		return out, true, nil
	})
}

var instancesPath = models.MustParseFieldPath(models.FieldSubSkuInstances)

// updateInstances applies fn to the instance list of the draft at draftIndex
// and swaps the result in through the field mutator, keeping every other
// draft's identity. fn reports whether anything changed; an unchanged list
// returns the input array as-is.
func updateInstances(drafts []*models.ListingDraft, draftIndex int, fn func([]models.SubSkuInstance) ([]models.SubSkuInstance, bool, error)) ([]*models.ListingDraft, error) {
	d, err := draftAt(drafts, draftIndex)
	if err != nil {
		return nil, err
	}
	out, changed, err := fn(d.SubSkuInstances)
	if err != nil {
		return nil, err
	}
	if !changed {
		return drafts, nil
	}
	return SetField(drafts, draftIndex, instancesPath, models.InstancesValue(out))
}
