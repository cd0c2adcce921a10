package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRNG(t *testing.T) {
	assert.Nil(t, seededRNG(0), "zero seed means time-based")

	a := seededRNG(99)
	b := seededRNG(99)
	require.NotNil(t, a)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	oldCycles, oldTick := flagCycles, flagTick
	defer func() { flagCycles, flagTick = oldCycles, oldTick }()

	flagCycles = 42
	flagTick = 100

	cfg := loadConfig()
	assert.Equal(t, 42, cfg.Cycles)
	assert.Equal(t, 100, cfg.TickMS)

	flagCycles, flagTick = 0, 0
	cfg = loadConfig()
	assert.Equal(t, 15, cfg.Cycles)
	assert.Equal(t, 800, cfg.TickMS)
}
