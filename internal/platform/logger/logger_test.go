package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		"WARNING": Warn,
		" error ": Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("console"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestZapLogger_FieldsAndWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))

	child := l.With(map[string]any{"component": "scheduler", "": "ignored"})
	child.Warn("tick failed", map[string]any{"err": errors.New("boom"), "medication_id": int64(3)})

	entries := logs.All()
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "tick failed", e.Message)
	assert.Equal(t, zapcore.WarnLevel, e.Level)

	ctx := e.ContextMap()
	assert.Equal(t, "scheduler", ctx["component"])
	assert.Equal(t, "boom", ctx["err"])
	assert.EqualValues(t, 3, ctx["medication_id"])
	_, hasEmpty := ctx[""]
	assert.False(t, hasEmpty)
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.Info("hello", nil)
	l.With(nil).Error("x", map[string]any{"a": 1})
}
