package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/application/usecase"
	"github.com/tu-usuario/rocketry-hub/pkg/validator"
)

// BOMHandler maneja las peticiones HTTP de bills of materials (protegido).
type BOMHandler struct {
	uc *usecase.BOMUseCase
}

// NewBOMHandler construye el handler.
func NewBOMHandler(uc *usecase.BOMUseCase) *BOMHandler {
	return &BOMHandler{uc: uc}
}

// List godoc
// @Summary      Listar BOM con faltantes y costos computados
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BOMListResponse
// @Router       /api/bom [get]
func (h *BOMHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener BOM por ID
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del BOM"
// @Success      200  {object}  dto.BOMResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bom/{id} [get]
func (h *BOMHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear BOM
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBOMRequest  true  "Datos del BOM"
// @Success      201   {object}  dto.BOMResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/bom [post]
func (h *BOMHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBOMRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y las líneas requieren itemName"})
	}
	out, err := h.uc.Create(c.Context(), &in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar BOM (las líneas se reemplazan completas)
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del BOM"
// @Param        body  body  dto.UpdateBOMRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.BOMResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bom/{id} [put]
func (h *BOMHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBOMRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar BOM
// @Tags         bom
// @Security     Bearer
// @Param        id  path  string  true  "ID del BOM"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bom/{id} [delete]
func (h *BOMHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar BOM a CSV con faltantes y costos computados
// @Tags         bom
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/bom/export [get]
func (h *BOMHandler) Export(c *fiber.Ctx) error {
	filename, content, err := h.uc.ExportCSV(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, filename, content)
}
