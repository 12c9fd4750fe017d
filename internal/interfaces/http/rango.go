package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// parseRango lee fecha_desde y fecha_hasta de la query (YYYY-MM-DD, ambas
// opcionales) para los listados de transacciones.
func parseRango(c *fiber.Ctx) (desde, hasta *time.Time, err error) {
	if s := c.Query("fecha_desde"); s != "" {
		t, perr := time.Parse("2006-01-02", s)
		if perr != nil {
			return nil, nil, fmt.Errorf("fecha_desde %q", s)
		}
		desde = &t
	}
	if s := c.Query("fecha_hasta"); s != "" {
		t, perr := time.Parse("2006-01-02", s)
		if perr != nil {
			return nil, nil, fmt.Errorf("fecha_hasta %q", s)
		}
		// Inclusivo: cubrir el día completo
		t = t.Add(24*time.Hour - time.Nanosecond)
		hasta = &t
	}
	return desde, hasta, nil
}
