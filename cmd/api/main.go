package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/application/auth"
	"github.com/tu-usuario/gestion-pyme/internal/application/movimiento"
	"github.com/tu-usuario/gestion-pyme/internal/application/notificacion"
	"github.com/tu-usuario/gestion-pyme/internal/application/reporte"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
	infraexcel "github.com/tu-usuario/gestion-pyme/internal/infrastructure/excel"
	infrapdf "github.com/tu-usuario/gestion-pyme/internal/infrastructure/pdf"
	"github.com/tu-usuario/gestion-pyme/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestion-pyme/internal/interfaces/http"
	"github.com/tu-usuario/gestion-pyme/pkg/config"
	"github.com/tu-usuario/gestion-pyme/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	negocioRepo := postgres.NewNegocioRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	ingresoRepo := postgres.NewIngresoRepository(pool)
	egresoRepo := postgres.NewEgresoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, negocioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	negocioUC := usecase.NewNegocioUseCase(negocioRepo)
	catalogoUC := usecase.NewCatalogoUseCase(categoriaRepo, clienteRepo, proveedorRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	ingresoUC := usecase.NewIngresoUseCase(ingresoRepo)
	egresoUC := usecase.NewEgresoUseCase(egresoRepo)
	ventaUC := usecase.NewVentaUseCase(ventaRepo, txRunner)
	compraUC := usecase.NewCompraUseCase(compraRepo, txRunner)
	movimientoUC := movimiento.NewMovimientoUseCase(ingresoRepo, egresoRepo, ventaRepo, compraRepo)

	// Reportes: mismo payload agregado, dos renderizadores (PDF y Excel)
	reporteUC := reporte.NewReporteUseCase(
		ingresoRepo, egresoRepo, ventaRepo, compraRepo, productoRepo,
		infrapdf.NewMarotoRenderer(),
		infraexcel.NewExcelizeRenderer(),
		reporte.Config{
			VentaAltaUmbral: decimal.NewFromInt(int64(cfg.Reportes.VentaAltaUmbral)),
			MetaMensual:     decimal.NewFromInt(int64(cfg.Reportes.MetaMensual)),
			Timeout:         time.Duration(cfg.Reportes.TimeoutSegundos) * time.Second,
		},
	)

	// Resumen diario por negocio: cron dentro del mismo proceso del API.
	var scheduler *notificacion.Scheduler
	if cfg.Notificaciones.Habilitado {
		var notificador notificacion.Notificador
		if cfg.Notificaciones.WebhookURL != "" {
			notificador = notificacion.NewWebhookNotificador(cfg.Notificaciones.WebhookURL)
		} else {
			notificador = notificacion.NewLogNotificador(log)
		}
		scheduler, err = notificacion.NewScheduler(
			cfg.Notificaciones.CronSpec, negocioRepo, movimientoUC, notificador, log,
		)
		if err != nil {
			log.Fatal().Err(err).Str("cron", cfg.Notificaciones.CronSpec).Msg("planificador de resúmenes")
		}
		scheduler.Start()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión PyME API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		NegocioUC:    negocioUC,
		CatalogoUC:   catalogoUC,
		ProductoUC:   productoUC,
		IngresoUC:    ingresoUC,
		EgresoUC:     egresoUC,
		VentaUC:      ventaUC,
		CompraUC:     compraUC,
		MovimientoUC: movimientoUC,
		ReporteUC:    reporteUC,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log.Componente("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
