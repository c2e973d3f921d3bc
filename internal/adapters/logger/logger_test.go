package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/forge/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithOutput(&buf)

	l.Info("build started")
	l.Warn("slow target")
	l.Error(zerr.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "build started")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "slow target")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "boom")
}

func TestLogger_OutputIsVerbatim(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithOutput(&buf)

	l.Output("raw process output\n")
	assert.Equal(t, "raw process output\n", buf.String())
}

func TestLogger_OutputAppendsMissingNewline(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithOutput(&buf)

	l.Output("no trailing newline")
	assert.Equal(t, "no trailing newline\n", buf.String())
}

func TestLogger_SetOutputRedirects(t *testing.T) {
	var first, second bytes.Buffer
	l := logger.NewWithOutput(&first)

	l.SetOutput(&second)
	l.Output("later")

	assert.Empty(t, first.String())
	assert.Equal(t, "later\n", second.String())
}
