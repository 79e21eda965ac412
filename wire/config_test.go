package wire

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestConfig_LoggerTracesFailures(t *testing.T) {
	var out bytes.Buffer
	logger := zerolog.New(&out).Level(zerolog.DebugLevel)
	c := NewCursorWithConfig([]byte{0x08, 0x96, 0x01, 0x1f}, Config{Logger: &logger})

	_, err := c.Tag()
	require.NoError(t, err)
	_, err = c.Uint64()
	require.NoError(t, err)
	require.Zero(t, out.Len(), "successful decodes must not log")

	_, err = c.Tag()
	require.ErrorIs(t, err, ErrInvalidWireType)

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &event))
	require.Equal(t, "debug", event["level"])
	require.Equal(t, "tag", event["op"])
	require.EqualValues(t, 3, event["offset"])
	require.EqualValues(t, 1, event["remaining"])
	require.Equal(t, "failed to parse wire type", event["error"])
}

func TestConfig_LoggerAboveDebugIsSilent(t *testing.T) {
	var out bytes.Buffer
	logger := zerolog.New(&out).Level(zerolog.InfoLevel)
	c := NewCursorWithConfig(nil, Config{Logger: &logger})

	_, err := c.Varint()
	require.ErrorIs(t, err, ErrEmptyBuffer)
	require.Zero(t, out.Len())
}

func TestConfig_ResetKeepsConfig(t *testing.T) {
	var out bytes.Buffer
	logger := zerolog.New(&out)
	c := NewCursorWithConfig([]byte{0x00}, Config{Logger: &logger})
	c.Reset([]byte{0x80})

	_, err := c.Varint()
	require.ErrorIs(t, err, ErrShortBuffer)
	require.True(t, strings.Contains(out.String(), `"op":"varint"`), out.String())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PROTOZERO_DEBUG", "")
	require.Nil(t, ConfigFromEnv().Logger)

	t.Setenv("PROTOZERO_DEBUG", "true")
	cfg := ConfigFromEnv()
	require.NotNil(t, cfg.Logger)
	require.Equal(t, zerolog.DebugLevel, cfg.Logger.GetLevel())
}
