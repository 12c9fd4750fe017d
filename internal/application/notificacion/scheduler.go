package notificacion

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/movimiento"
	"github.com/tu-usuario/gestion-pyme/internal/domain/repository"
	"github.com/tu-usuario/gestion-pyme/pkg/logger"
)

// negociosPorPagina tamaño de página al recorrer los negocios registrados.
const negociosPorPagina = 100

// Scheduler planifica el envío del resumen diario de movimientos de cada
// negocio. Corre dentro del mismo proceso del API; el resumen cubre el día
// calendario anterior completo.
type Scheduler struct {
	cron        *cron.Cron
	negocioRepo repository.NegocioRepository
	movimientos *movimiento.MovimientoUseCase
	notificador Notificador
	log         *logger.Logger
}

// NewScheduler construye el planificador con la expresión cron dada.
func NewScheduler(
	cronSpec string,
	negocioRepo repository.NegocioRepository,
	movimientos *movimiento.MovimientoUseCase,
	notificador Notificador,
	log *logger.Logger,
) (*Scheduler, error) {
	s := &Scheduler{
		cron:        cron.New(),
		negocioRepo: negocioRepo,
		movimientos: movimientos,
		notificador: notificador,
		log:         log.Componente("scheduler"),
	}
	if _, err := s.cron.AddFunc(cronSpec, s.enviarResumenes); err != nil {
		return nil, err
	}
	return s, nil
}

// Start arranca el planificador en segundo plano.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("Planificador de resúmenes diarios iniciado")
}

// Stop detiene el planificador y espera a que termine el trabajo en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Planificador de resúmenes diarios detenido")
}

// enviarResumenes recorre todos los negocios y envía el resumen de ayer.
// Un fallo en un negocio no corta el recorrido.
func (s *Scheduler) enviarResumenes() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ayer := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	for offset := 0; ; offset += negociosPorPagina {
		negocios, err := s.negocioRepo.List(negociosPorPagina, offset)
		if err != nil {
			s.log.Error().Err(err).Msg("Error listando negocios para el resumen diario")
			return
		}
		if len(negocios) == 0 {
			return
		}

		for _, n := range negocios {
			if err := s.enviarResumen(ctx, n.ID, n.Nombre, ayer); err != nil {
				s.log.Error().Err(err).
					Str("negocio_id", n.ID).
					Msg("Error enviando resumen diario")
			}
		}
	}
}

func (s *Scheduler) enviarResumen(ctx context.Context, negocioID, nombre, fecha string) error {
	resp, err := s.movimientos.GetMovimientos(ctx, negocioID, dto.MovimientoFiltroRequest{
		FechaDesde: fecha,
		FechaHasta: fecha,
	})
	if err != nil {
		return err
	}
	// Sin movimientos no hay nada que contar.
	if resp.Resumen.Total == 0 {
		return nil
	}
	return s.notificador.Enviar(ctx, ResumenDiario{
		NegocioID: negocioID,
		Negocio:   nombre,
		Fecha:     fecha,
		Ingresos:  resp.Resumen.Ingresos,
		Egresos:   resp.Resumen.Egresos,
		Neto:      resp.Resumen.Neto,
		Total:     resp.Resumen.Total,
	})
}
