package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pyme/internal/application/auth"
	"github.com/tu-usuario/gestion-pyme/internal/application/movimiento"
	"github.com/tu-usuario/gestion-pyme/internal/application/reporte"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
	"github.com/tu-usuario/gestion-pyme/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	NegocioUC    *usecase.NegocioUseCase
	CatalogoUC   *usecase.CatalogoUseCase
	ProductoUC   *usecase.ProductoUseCase
	IngresoUC    *usecase.IngresoUseCase
	EgresoUC     *usecase.EgresoUseCase
	VentaUC      *usecase.VentaUseCase
	CompraUC     *usecase.CompraUseCase
	MovimientoUC *movimiento.MovimientoUseCase
	ReporteUC    *reporte.ReporteUseCase
	JWTSecret    string
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", conLogger(deps.Log))

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Negocios (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	negocios := api.Group("/negocios")
	negocioHandler := NewNegocioHandler(deps.NegocioUC)
	negocios.Get("/", negocioHandler.List)
	negocios.Post("/", negocioHandler.Create)
	negocios.Get("/:id", negocioHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogos (protegido)
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	categorias := protected.Group("/categorias")
	categorias.Post("/", catalogoHandler.CreateCategoria)
	categorias.Get("/", catalogoHandler.ListCategorias)
	categorias.Delete("/:id", catalogoHandler.DeleteCategoria)

	clientes := protected.Group("/clientes")
	clientes.Post("/", catalogoHandler.CreateCliente)
	clientes.Get("/", catalogoHandler.ListClientes)
	clientes.Delete("/:id", catalogoHandler.DeleteCliente)

	proveedores := protected.Group("/proveedores")
	proveedores.Post("/", catalogoHandler.CreateProveedor)
	proveedores.Get("/", catalogoHandler.ListProveedores)
	proveedores.Delete("/:id", catalogoHandler.DeleteProveedor)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Ingresos y egresos manuales (protegido)
	ingresos := protected.Group("/ingresos")
	ingresoHandler := NewIngresoHandler(deps.IngresoUC)
	ingresos.Post("/", ingresoHandler.Create)
	ingresos.Get("/", ingresoHandler.List)
	ingresos.Delete("/:id", ingresoHandler.Delete)

	egresos := protected.Group("/egresos")
	egresoHandler := NewEgresoHandler(deps.EgresoUC)
	egresos.Post("/", egresoHandler.Create)
	egresos.Get("/", egresoHandler.List)
	egresos.Delete("/:id", egresoHandler.Delete)

	// Ventas y compras (protegido)
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Delete("/:id", ventaHandler.Delete)

	compras := protected.Group("/compras")
	compraHandler := NewCompraHandler(deps.CompraUC)
	compras.Post("/", compraHandler.Create)
	compras.Get("/", compraHandler.List)
	compras.Get("/:id", compraHandler.GetByID)
	compras.Delete("/:id", compraHandler.Delete)

	// Historial unificado (protegido)
	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Get("/", movimientoHandler.List)

	// Reportes descargables (protegido)
	reportes := protected.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes.Post("/ventas", reporteHandler.Ventas)
	reportes.Post("/compras", reporteHandler.Compras)
	reportes.Post("/ingresos-egresos", reporteHandler.IngresosEgresos)
	reportes.Post("/inventario", reporteHandler.Inventario)
}
