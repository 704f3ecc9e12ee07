package preview

import (
	"os"
	"strconv"
	"time"
)

// ConfigFromEnv builds a ProberConfig from environment variables, falling
// back to the package defaults. All variables are optional:
//
//	PREVIEW_TIMEOUT_SECONDS  probe request timeout
//	PREVIEW_RPS              outbound probes per second
//	PREVIEW_BURST            probe burst size
func ConfigFromEnv() ProberConfig {
	cfg := ProberConfig{
		Timeout:        DefaultTimeout,
		RequestsPerSec: DefaultRequestsPerSec,
		Burst:          DefaultBurst,
	}
	if v := os.Getenv("PREVIEW_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("PREVIEW_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil && rps > 0 {
			cfg.RequestsPerSec = rps
		}
	}
	if v := os.Getenv("PREVIEW_BURST"); v != "" {
		if burst, err := strconv.Atoi(v); err == nil && burst > 0 {
			cfg.Burst = burst
		}
	}
	return cfg
}
