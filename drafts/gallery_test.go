package drafts_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"listing-engine/drafts"
	"listing-engine/models"
)

// ---- helpers ----

func urlRef(u string) models.ImageRef {
	return models.ImageRef{Source: models.ImageSourceURL, URL: u}
}

func galleryDrafts() []*models.ListingDraft {
	return []*models.ListingDraft{
		{
			GroupSku: "TEE-01",
			SubSkuInstances: []models.SubSkuInstance{
				{Sku: "TEE-01-A", Quantity: 1},
				{Sku: "TEE-01-A", Quantity: 1},
				{Sku: "TEE-01-B", Quantity: 1},
			},
			GalleryImages: []models.ImageRef{
				urlRef("https://cdn.example.com/0.jpg"),
				urlRef("https://cdn.example.com/1.jpg"),
			},
		},
		{GroupSku: "MUG-02"},
	}
}

// ---- gallery view ----

func TestGalleryEntries_DuplicatesShareOneSlot(t *testing.T) {
	entries := drafts.GalleryEntries(galleryDrafts()[0])

	assert.Len(t, entries, 2)

	assert.Equal(t, "TEE-01-A", entries[0].Sku)
	assert.Equal(t, 2, entries[0].Count)
	assert.Equal(t, 0, entries[0].SlotIndex)
	assert.Equal(t, "https://cdn.example.com/0.jpg", entries[0].Image.URL)
	assert.Equal(t, "TEE-01-A (2)", entries[0].Label())

	assert.Equal(t, "TEE-01-B", entries[1].Sku)
	assert.Equal(t, 1, entries[1].SlotIndex)
	assert.Equal(t, "https://cdn.example.com/1.jpg", entries[1].Image.URL)
	assert.Equal(t, "TEE-01-B", entries[1].Label())
}

func TestGalleryEntries_MainImageFirst(t *testing.T) {
	d := galleryDrafts()[0]
	d.MainImage = &models.ImageRef{Source: models.ImageSourceURL, URL: "https://cdn.example.com/main.jpg"}

	entries := drafts.GalleryEntries(d)
	assert.Len(t, entries, 3)
	assert.True(t, entries[0].IsMain)
	assert.Equal(t, -1, entries[0].SlotIndex)
	assert.Equal(t, "Main image", entries[0].Label())
	assert.Equal(t, "https://cdn.example.com/main.jpg", entries[0].Image.URL)
	assert.False(t, entries[1].IsMain)
}

func TestGalleryEntries_MissingImageLeavesSlotEmpty(t *testing.T) {
	d := &models.ListingDraft{
		SubSkuInstances: []models.SubSkuInstance{
			{Sku: "TEE-01-A"},
			{Sku: "TEE-01-B"},
		},
		GalleryImages: []models.ImageRef{urlRef("https://cdn.example.com/0.jpg")},
	}

	entries := drafts.GalleryEntries(d)
	assert.Len(t, entries, 2)
	assert.NotNil(t, entries[0].Image)
	assert.Nil(t, entries[1].Image)
}

func TestGalleryEntries_ExtraImagesUnreferenced(t *testing.T) {
	d := &models.ListingDraft{
		SubSkuInstances: []models.SubSkuInstance{{Sku: "TEE-01-A"}},
		GalleryImages: []models.ImageRef{
			urlRef("https://cdn.example.com/0.jpg"),
			urlRef("https://cdn.example.com/1.jpg"),
			urlRef("https://cdn.example.com/2.jpg"),
		},
	}

	entries := drafts.GalleryEntries(d)
	assert.Len(t, entries, 1)
	assert.Equal(t, "https://cdn.example.com/0.jpg", entries[0].Image.URL)
	assert.Len(t, d.GalleryImages, 3)
}

func TestGalleryEntries_Empty(t *testing.T) {
	assert.Empty(t, drafts.GalleryEntries(&models.ListingDraft{}))
	assert.Empty(t, drafts.GalleryEntries(nil))
}

// ---- slot operations ----

func TestSetGalleryImage_ReplacesInRange(t *testing.T) {
	in := galleryDrafts()
	next := urlRef("https://cdn.example.com/new.jpg")

	out, err := drafts.SetGalleryImage(in, 0, 0, next)
	assert.Nil(t, err)
	assert.Equal(t, "https://cdn.example.com/new.jpg", out[0].GalleryImages[0].URL)
	assert.Equal(t, "https://cdn.example.com/1.jpg", out[0].GalleryImages[1].URL)
	assert.Len(t, out[0].GalleryImages, 2)

	assert.Equal(t, "https://cdn.example.com/0.jpg", in[0].GalleryImages[0].URL)
	assert.Same(t, in[1], out[1])
}

func TestSetGalleryImage_AppendsBeyondLength(t *testing.T) {
	// A write past the end pushes onto the sequence instead of leaving a hole.
	in := galleryDrafts()
	next := urlRef("https://cdn.example.com/new.jpg")

	out, err := drafts.SetGalleryImage(in, 0, 7, next)
	assert.Nil(t, err)
	assert.Len(t, out[0].GalleryImages, 3)
	assert.Equal(t, "https://cdn.example.com/new.jpg", out[0].GalleryImages[2].URL)
}

func TestSetGalleryImage_AppendsToEmptyGallery(t *testing.T) {
	in := galleryDrafts()

	out, err := drafts.SetGalleryImage(in, 1, 0, urlRef("https://cdn.example.com/mug.jpg"))
	assert.Nil(t, err)
	assert.Len(t, out[1].GalleryImages, 1)
}

func TestSetGalleryImage_NegativeSlot(t *testing.T) {
	_, err := drafts.SetGalleryImage(galleryDrafts(), 0, -1, urlRef("https://cdn.example.com/x.jpg"))
	assert.True(t, errors.Is(err, drafts.ErrSlotIndex))
}

func TestRemoveGalleryImage_SplicesAndShifts(t *testing.T) {
	in := galleryDrafts()

	out, err := drafts.RemoveGalleryImage(in, 0, 0)
	assert.Nil(t, err)
	assert.Len(t, out[0].GalleryImages, 1)
	assert.Equal(t, "https://cdn.example.com/1.jpg", out[0].GalleryImages[0].URL)
	assert.Len(t, in[0].GalleryImages, 2)

	// The shift re-pairs the surviving image with the first sub-SKU slot.
	entries := drafts.GalleryEntries(out[0])
	assert.Equal(t, "TEE-01-A", entries[0].Sku)
	assert.Equal(t, "https://cdn.example.com/1.jpg", entries[0].Image.URL)
	assert.Nil(t, entries[1].Image)
}

func TestRemoveGalleryImage_OutOfRangeIsNoOp(t *testing.T) {
	in := galleryDrafts()

	out, err := drafts.RemoveGalleryImage(in, 0, 9)
	assert.Nil(t, err)
	assert.Same(t, in[0], out[0])

	out, err = drafts.RemoveGalleryImage(in, 0, -1)
	assert.Nil(t, err)
	assert.Same(t, in[0], out[0])
}

func TestGalleryOps_DraftIndexOutOfRange(t *testing.T) {
	in := galleryDrafts()

	_, err := drafts.SetGalleryImage(in, 9, 0, urlRef("https://cdn.example.com/x.jpg"))
	assert.True(t, errors.Is(err, drafts.ErrDraftIndex))

	_, err = drafts.RemoveGalleryImage(in, 9, 0)
	assert.True(t, errors.Is(err, drafts.ErrDraftIndex))
}
