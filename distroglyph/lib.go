package distroglyph

import (
	"github.com/anchore/distroglyph/distroglyph/logger"
	"github.com/anchore/distroglyph/internal/log"
)

func SetLogger(logger logger.Logger) {
	log.Log = logger
}
