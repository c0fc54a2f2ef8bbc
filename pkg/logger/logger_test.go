package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONRespeitaNivel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "WARN", Out: &buf})

	l.Info().Msg("ignorado")
	l.Warn().Str("categoria", "Bebidas").Msg("cascata parcial")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "cascata parcial", entry["message"])
	assert.Equal(t, "Bebidas", entry["categoria"])
	assert.Contains(t, entry, "time")
}

func TestComponent_AdicionaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "test", Level: "debug", Out: &buf}).Component("produtos")

	l.Debug().Msg("cascata de produto")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "produtos", entry["component"])
	assert.Equal(t, "debug", entry["level"])
}

func TestComponent_LoggerNuloDescarta(t *testing.T) {
	var l *Logger
	c := l.Component("http")
	require.NotNil(t, c)
	assert.NotPanics(t, func() { c.Error().Msg("nada") })
}

func TestNew_ConsoleEmDevelopment(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Env: "development", Out: &buf}).Info().Msg("iniciando aplicação")

	out := buf.String()
	assert.Contains(t, out, "iniciando aplicação")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "development escreve texto, não JSON")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		" Error ": zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verboso": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "nível %q", in)
	}
}
