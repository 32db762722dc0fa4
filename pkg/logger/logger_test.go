package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		debug bool
	}{
		{level: "debug", debug: true},
		{level: "info", debug: false},
		{level: "warn", debug: false},
		{level: "nonsense", debug: false},
		{level: "", debug: false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewLogger(tt.level).(*logger)
			assert.Equal(t, tt.debug, l.Desugar().Core().Enabled(zap.DebugLevel))
		})
	}
}

func TestWith_KeepsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := New(zap.New(core))

	l.With("component", "verify").Warnw("draw mismatch", "nonce", 3)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "draw mismatch", entries[0].Message)
		fields := entries[0].ContextMap()
		assert.Equal(t, "verify", fields["component"])
		assert.Equal(t, int64(3), fields["nonce"])
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Infow("dropped", "k", "v")
	assert.NotNil(t, l.With("component", "test"))
}
