package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"listing-engine/logger"
	"listing-engine/models"
	"listing-engine/preview"
	"listing-engine/validation"
)

// draftlint loads a draft-array fixture, runs the full validation pass over
// it and reports every field failure. With -probe it also checks that the
// referenced image URLs resolve to loadable images.
func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	var file, env string
	var probe, verbose bool
	flag.StringVar(&file, "file", "drafts.json", "path to the draft array fixture")
	flag.StringVar(&env, "env", os.Getenv("APP_ENV"), "logger environment (development or production)")
	flag.BoolVar(&probe, "probe", false, "probe referenced image URLs")
	flag.BoolVar(&verbose, "v", false, "dump the parsed drafts")
	flag.Parse()

	if env == "" {
		env = "development"
	}
	logger.Initialize(env)
	defer logger.Log.Sync()
	zap.ReplaceGlobals(logger.Log)

	runID := uuid.New().String()
	log := zap.L().With(zap.String("run_id", runID))

	drafts, err := loadDrafts(file)
	if err != nil {
		log.Fatal("Failed to load drafts", zap.String("file", file), zap.Error(err))
	}
	log.Info("Loaded drafts", zap.String("file", file), zap.Int("count", len(drafts)))

	if verbose {
		spew.Dump(drafts)
	}

	errs := validation.ValidateAll(drafts)
	for _, e := range errs.Errors() {
		fmt.Printf("draft %d  %-40s %s\n", e.DraftIndex, e.FieldPath, e.Message)
	}

	if probe {
		probeImages(log, drafts)
	}

	if !errs.Valid() {
		fmt.Printf("FAIL: %d field error(s) across %d draft(s)\n", len(errs), len(drafts))
		os.Exit(1)
	}
	fmt.Printf("OK: %d draft(s) ready for submission\n", len(drafts))
}

func loadDrafts(path string) ([]*models.ListingDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixture struct {
		Drafts []*models.ListingDraft `json:"drafts"`
	}
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fixture.Drafts, nil
}

// probeImages checks every referenced image URL synchronously; the tool has
// no UI to hand fire-and-forget results back to.
func probeImages(log *zap.Logger, drafts []*models.ListingDraft) {
	prober := preview.NewProber(preview.ConfigFromEnv(), log)
	ctx := context.Background()
	for i, d := range drafts {
		if d == nil {
			continue
		}
		for _, url := range draftImageURLs(d) {
			res := prober.Check(ctx, url)
			if res.OK {
				log.Info("Image reachable",
					zap.Int("draft", i),
					zap.String("url", url),
				)
				continue
			}
			log.Warn("Image unreachable",
				zap.Int("draft", i),
				zap.String("url", url),
				zap.Int("status", res.StatusCode),
				zap.String("content_type", res.ContentType),
			)
		}
	}
}

func draftImageURLs(d *models.ListingDraft) []string {
	var urls []string
	if d.MainImage != nil && d.MainImage.URL != "" {
		urls = append(urls, d.MainImage.URL)
	}
	for _, img := range d.GalleryImages {
		if img.URL != "" {
			urls = append(urls, img.URL)
		}
	}
	return urls
}
