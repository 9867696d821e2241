package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_ErrorsAndWarnings(t *testing.T) {
	l := newLogger(LogLevelSilent)

	l.handleMsg(&BuildWarning{Kind: "Build", Message: "careful"})
	l.handleMsg(&UnitMessage{FilePath: "a.unit.toml", Message: "nope", IsError: true})
	l.handleMsg(&UnitMessage{FilePath: "a.unit.toml", Message: "hmm"})

	assert.Equal(t, 1, l.errorCount)
	assert.Len(t, l.warnings, 2)
	assert.Equal(t, 2, l.flushWarnings())
}

func TestInitialize_LogLevels(t *testing.T) {
	saved := logger
	defer func() { logger = saved }()

	for name, level := range map[string]int{
		"silent":  LogLevelSilent,
		"error":   LogLevelError,
		"warn":    LogLevelWarning,
		"verbose": LogLevelVerbose,
		"bogus":   LogLevelVerbose,
	} {
		Initialize(name)
		assert.Equal(t, level, logger.LogLevel, name)
		assert.True(t, ShouldProceed())
	}
}
