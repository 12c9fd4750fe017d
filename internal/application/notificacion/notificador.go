package notificacion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/pkg/logger"
)

// ResumenDiario cifras del día anterior de un negocio.
type ResumenDiario struct {
	NegocioID string          `json:"negocio_id"`
	Negocio   string          `json:"negocio"`
	Fecha     string          `json:"fecha"` // YYYY-MM-DD
	Ingresos  decimal.Decimal `json:"ingresos"`
	Egresos   decimal.Decimal `json:"egresos"`
	Neto      decimal.Decimal `json:"neto"`
	Total     int             `json:"total"`
}

// Notificador canal de salida de los resúmenes diarios.
type Notificador interface {
	Enviar(ctx context.Context, resumen ResumenDiario) error
}

// LogNotificador escribe el resumen al log estructurado. Es el canal por
// defecto cuando no hay webhook configurado.
type LogNotificador struct {
	log *logger.Logger
}

// NewLogNotificador construye el notificador de log.
func NewLogNotificador(log *logger.Logger) *LogNotificador {
	return &LogNotificador{log: log.Componente("notificaciones")}
}

// Enviar registra el resumen en el log.
func (n *LogNotificador) Enviar(_ context.Context, r ResumenDiario) error {
	n.log.Info().
		Str("negocio_id", r.NegocioID).
		Str("negocio", r.Negocio).
		Str("fecha", r.Fecha).
		Str("ingresos", r.Ingresos.String()).
		Str("egresos", r.Egresos.String()).
		Str("neto", r.Neto.String()).
		Int("movimientos", r.Total).
		Msg("Resumen diario")
	return nil
}

// WebhookNotificador envía el resumen como JSON a un webhook HTTP (ej: un
// canal de Slack o un servicio de correo propio).
type WebhookNotificador struct {
	url    string
	client *http.Client
}

// NewWebhookNotificador construye el notificador de webhook.
func NewWebhookNotificador(url string) *WebhookNotificador {
	return &WebhookNotificador{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Enviar hace POST del resumen al webhook configurado.
func (n *WebhookNotificador) Enviar(ctx context.Context, r ResumenDiario) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("notificaciones: serializar resumen: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notificaciones: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notificaciones: enviar webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notificaciones: webhook respondió %d", resp.StatusCode)
	}
	return nil
}
