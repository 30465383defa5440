package helpers

import (
	"time"

	"github.com/murad/unidir/internal/pkg/logger"
)

// ParseDuration parses a duration string such as "24h" or "10m". Invalid
// input logs a warning and falls back to the given default, so a bad config
// value degrades instead of failing startup.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).Str("value", value).Dur("fallback", fallback).Msg("Invalid duration in config, using fallback")
		return fallback
	}
	return d
}
