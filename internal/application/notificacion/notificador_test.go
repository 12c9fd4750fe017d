package notificacion_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-pyme/internal/application/notificacion"
	"github.com/tu-usuario/gestion-pyme/pkg/logger"
)

func resumenDePrueba() notificacion.ResumenDiario {
	return notificacion.ResumenDiario{
		NegocioID: "neg-1",
		Negocio:   "Tienda La Esquina",
		Fecha:     "2025-01-14",
		Ingresos:  decimal.NewFromInt(150000),
		Egresos:   decimal.NewFromInt(40000),
		Neto:      decimal.NewFromInt(110000),
		Total:     7,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// WebhookNotificador
// ──────────────────────────────────────────────────────────────────────────────

func TestWebhookNotificador_PosteaJSON(t *testing.T) {
	var recibido notificacion.ResumenDiario
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recibido))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := notificacion.NewWebhookNotificador(srv.URL)
	require.NoError(t, n.Enviar(context.Background(), resumenDePrueba()))

	assert.Equal(t, "neg-1", recibido.NegocioID)
	assert.Equal(t, "2025-01-14", recibido.Fecha)
	assert.True(t, recibido.Neto.Equal(decimal.NewFromInt(110000)))
	assert.Equal(t, 7, recibido.Total)
}

// Una respuesta no-2xx del webhook se reporta como error.
func TestWebhookNotificador_ErrorDelServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := notificacion.NewWebhookNotificador(srv.URL)
	err := n.Enviar(context.Background(), resumenDePrueba())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestWebhookNotificador_ServidorInalcanzable(t *testing.T) {
	n := notificacion.NewWebhookNotificador("http://127.0.0.1:1/webhook")
	err := n.Enviar(context.Background(), resumenDePrueba())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// LogNotificador
// ──────────────────────────────────────────────────────────────────────────────

// El notificador de log nunca falla: es el canal por defecto.
func TestLogNotificador_NoFalla(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	n := notificacion.NewLogNotificador(log)
	assert.NoError(t, n.Enviar(context.Background(), resumenDePrueba()))
}
