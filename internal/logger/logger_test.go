package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/marcelsud/booklend/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Service: "booklend", Level: "debug", JSON: true, Out: &buf})
	require.NoError(t, err)

	log.Debug().Str("operation", "borrow_book").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "booklend", line["service"])
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "borrow_book", line["operation"])
	assert.Equal(t, "hello", line["message"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Level: "WARN", JSON: true, Out: &buf})
	require.NoError(t, err)

	log.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	log.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Out: &buf})
	require.NoError(t, err)

	log.Info().Msg("catalog loaded")
	assert.Contains(t, buf.String(), "catalog loaded")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logger.New(logger.Config{Level: "loud"})
	assert.ErrorContains(t, err, "parsing log level")
}
