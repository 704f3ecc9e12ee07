package preview

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Probe client defaults; override through ProberConfig.
const (
	DefaultTimeout        = 10 * time.Second
	DefaultRequestsPerSec = 5.0
	DefaultBurst          = 10
)

// allowedImageTypes lists the content types accepted as loadable previews.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ProberConfig tunes the outbound probe client.
type ProberConfig struct {
	Timeout        time.Duration
	RequestsPerSec float64
	Burst          int
}

// Result is the outcome of one URL probe.
type Result struct {
	URL         string
	OK          bool
	StatusCode  int
	ContentType string
}

// Prober issues GET probes to decide whether a user-entered URL resolves to a
// loadable image. Probe failures land in the result and a warn log; they are
// never escalated, since a broken preview does not invalidate anything.
type Prober struct {
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
	cfg     ProberConfig
}

// NewProber builds a prober with cfg, filling zero fields from the defaults.
func NewProber(cfg ProberConfig, logger *zap.Logger) *Prober {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = DefaultRequestsPerSec
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prober{
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), cfg.Burst),
		logger:  logger,
		cfg:     cfg,
	}
}

// Check probes url. OK is true only for a 2xx response carrying an allowed
// image content type.
func (p *Prober) Check(ctx context.Context, url string) Result {
	res := Result{URL: url}

	if err := p.limiter.Wait(ctx); err != nil {
		p.logger.Warn("Image probe cancelled while throttled",
			zap.String("url", url),
			zap.Error(err),
		)
		return res
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		p.logger.Warn("Failed to build image probe request",
			zap.String("url", url),
			zap.Error(err),
		)
		return res
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("Image probe failed",
			zap.String("url", url),
			zap.Error(err),
		)
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	res.ContentType = resp.Header.Get("Content-Type")
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Warn("Image probe got non-success status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return res
	}
	res.OK = isAllowedImageContentType(res.ContentType)
	if !res.OK {
		p.logger.Warn("Image probe got non-image content type",
			zap.String("url", url),
			zap.String("content_type", res.ContentType),
		)
	}
	return res
}

// isAllowedImageContentType strips media-type parameters and checks the
// allow-list.
func isAllowedImageContentType(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	return allowedImageTypes[mediaType]
}
