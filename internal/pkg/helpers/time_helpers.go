package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration reads a duration setting such as auth.session_max_age. An
// empty value means unset and yields fallback silently; an unparsable or
// non-positive value yields fallback with a warning naming the setting.
func ParseDuration(setting, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Warn().Err(err).
			Str("setting", setting).
			Str("value", value).
			Dur("fallback", fallback).
			Msg("Invalid duration setting, using fallback")
		return fallback
	}
	return d
}
