package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

func TestNew_CampoServiceEnCadaLinea(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{
		Env:     "production",
		Level:   "info",
		Service: "farmacia-api",
		Output:  &buf,
	})

	log.Info().Msg("listo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "farmacia-api", line["service"])
	assert.Equal(t, "listo", line["message"])
	assert.NotEmpty(t, line["time"])
}

func TestNew_SinServiceNoEmiteElCampo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Info().Msg("listo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	_, ok := line["service"]
	assert.False(t, ok)
}

func TestWithComponent_EtiquetaElSublogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{
		Env:     "production",
		Level:   "info",
		Service: "farmacia-api",
		Output:  &buf,
	})

	log.WithComponent("ventas").Warn().Msg("stock bajo")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ventas", line["component"])
	assert.Equal(t, "farmacia-api", line["service"], "el sublogger conserva el campo service")
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verboso", Output: &buf})

	log.Debug().Msg("no debe salir")
	assert.Empty(t, buf.Bytes(), "debug queda por debajo del nivel por defecto")

	log.Info().Msg("sí sale")
	assert.NotEmpty(t, buf.Bytes())
}
