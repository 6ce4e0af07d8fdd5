package romaji

import "github.com/rs/zerolog"

// logger is the package-level logger of romaji.
var logger zerolog.Logger

func init() {
	logger = zerolog.Nop()
}

// SetLogger sets the package-level logger.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// GetLogger returns the package-level logger.
func GetLogger() zerolog.Logger {
	return logger
}
