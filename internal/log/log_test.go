package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	is := is.New(t)

	is.Equal(parseLevel("debug"), zerolog.DebugLevel)
	is.Equal(parseLevel("INFO"), zerolog.InfoLevel)
	is.Equal(parseLevel("warning"), zerolog.WarnLevel)
	is.Equal(parseLevel("error"), zerolog.ErrorLevel)
	is.Equal(parseLevel("off"), zerolog.Disabled)
	is.Equal(parseLevel("loud"), zerolog.WarnLevel)
}

// TestNewJSONLogger verifies level filtering and the component field
func TestNewJSONLogger(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	l := NewJSONLogger(&buf, "info").With().Str("component", "composer").Logger()
	l.Debug().Msg("hidden")
	l.Info().Str("language", "english").Msg("recovered mnemonic")

	var entry map[string]any
	is.NoErr(json.Unmarshal(buf.Bytes(), &entry))
	is.Equal(entry["level"], "info")
	is.Equal(entry["component"], "composer")
	is.Equal(entry["language"], "english")
	is.Equal(entry["message"], "recovered mnemonic")
}

func TestNewConsoleLogger(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "off")
	l.Error().Msg("nothing")
	is.Equal(buf.Len(), 0)
}
