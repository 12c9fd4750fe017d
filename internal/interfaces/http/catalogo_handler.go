package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/gestion-pyme/internal/application/dto"
	"github.com/tu-usuario/gestion-pyme/internal/application/usecase"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// CatalogoHandler maneja las peticiones HTTP de categorías, clientes y
// proveedores (protegido).
type CatalogoHandler struct {
	uc *usecase.CatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// CreateCategoria alta de categoría de ingreso o egreso.
func (h *CatalogoHandler) CreateCategoria(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	var in dto.CreateCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	if in.Tipo != entity.CategoriaIngreso && in.Tipo != entity.CategoriaEgreso {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser ingreso o egreso"})
	}
	out, err := h.uc.CreateCategoria(negocioID, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategorias lista categorías; ?tipo= filtra por ingreso/egreso.
func (h *CatalogoHandler) ListCategorias(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListCategorias(negocioID, c.Query("tipo"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategoria elimina una categoría del negocio.
func (h *CatalogoHandler) DeleteCategoria(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteCategoria(negocioID, c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCliente alta de cliente.
func (h *CatalogoHandler) CreateCliente(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.CreateCliente(negocioID, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListClientes lista clientes con paginación.
func (h *CatalogoHandler) ListClientes(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListClientes(negocioID, page.Limit, page.Offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DeleteCliente elimina un cliente del negocio.
func (h *CatalogoHandler) DeleteCliente(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteCliente(negocioID, c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateProveedor alta de proveedor.
func (h *CatalogoHandler) CreateProveedor(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	var in dto.CreateProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.CreateProveedor(negocioID, in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProveedores lista proveedores con paginación.
func (h *CatalogoHandler) ListProveedores(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListProveedores(negocioID, page.Limit, page.Offset)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// DeleteProveedor elimina un proveedor del negocio.
func (h *CatalogoHandler) DeleteProveedor(c *fiber.Ctx) error {
	negocioID, err := requerirNegocio(c)
	if err != nil {
		return err
	}
	if err := h.uc.DeleteProveedor(negocioID, c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
