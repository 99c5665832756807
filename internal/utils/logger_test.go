package utils

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitLoggerLevels(t *testing.T) {
	InitLogger(false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	InitLogger(true)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	InitLogger(false)
}

func TestGetLoggerTagsComponent(t *testing.T) {
	// Must not panic and must produce a usable child logger even
	// before InitLogger runs.
	log := GetLogger("scheduler")
	assert.NotPanics(t, func() {
		log.Debug().Str("op", "utils/test").Msg("component logger works")
	})
}
