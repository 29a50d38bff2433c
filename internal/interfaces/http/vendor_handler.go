package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/application/usecase"
	"github.com/tu-usuario/rocketry-hub/pkg/validator"
)

// VendorHandler maneja las peticiones HTTP de proveedores (protegido).
type VendorHandler struct {
	uc *usecase.VendorUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VendorListResponse
// @Router       /api/vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.VendorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [get]
func (h *VendorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVendorRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.VendorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendors [post]
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y email debe ser válido"})
	}
	out, err := h.uc.Create(c.Context(), &in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar proveedor (patch parcial)
// @Tags         vendors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del proveedor"
// @Param        body  body  dto.UpdateVendorRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.VendorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [put]
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ToggleActive godoc
// @Summary      Alternar estado activo del proveedor
// @Tags         vendors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.VendorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id}/toggle-active [post]
func (h *VendorHandler) ToggleActive(c *fiber.Ctx) error {
	out, err := h.uc.ToggleActive(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         vendors
// @Security     Bearer
// @Param        id  path  string  true  "ID del proveedor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [delete]
func (h *VendorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
