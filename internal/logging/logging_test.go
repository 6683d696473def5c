package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitWriter_ContextFallsBackToGlobalLogger(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	prevDefault := zerolog.DefaultContextLogger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		zerolog.DefaultContextLogger = prevDefault
	})

	var buf bytes.Buffer
	InitWriter(&buf, false)

	zerolog.Ctx(context.Background()).Info().Msg("hello sink")
	zerolog.Ctx(context.Background()).Debug().Msg("hidden")

	assert.Contains(t, buf.String(), "hello sink")
	assert.NotContains(t, buf.String(), "hidden")
	assert.False(t, DebugEnabled())
}

func TestInitWriter_DebugLevel(t *testing.T) {
	prevLevel := zerolog.GlobalLevel()
	prevDefault := zerolog.DefaultContextLogger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		zerolog.DefaultContextLogger = prevDefault
	})

	var buf bytes.Buffer
	InitWriter(&buf, true)

	zerolog.Ctx(context.Background()).Debug().Msg("visible")

	assert.Contains(t, buf.String(), "visible")
	assert.True(t, DebugEnabled())
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}
