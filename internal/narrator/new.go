package narrator

import (
	"strings"

	"github.com/nguyentantai21042004/product-narrator/internal/logger"
)

type implNarrator struct {
	synth     Synthesizer
	dir       string
	extension string
	logger    logger.Logger
}

// New creates a Narrator writing product<i>.<ext> files into dir
func New(synth Synthesizer, dir, extension string, log logger.Logger) Narrator {
	extension = strings.TrimPrefix(extension, ".")
	if extension == "" {
		extension = "mp3"
	}
	return &implNarrator{
		synth:     synth,
		dir:       dir,
		extension: extension,
		logger:    log,
	}
}
