package pinyin

import "github.com/rs/zerolog"

// logger is the package-level logger of pinyin.
var logger zerolog.Logger

func init() {
	logger = zerolog.Nop()
}

// SetLogger sets the package-level logger used for build-time diagnostics.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// GetLogger returns the package-level logger.
func GetLogger() zerolog.Logger {
	return logger
}
