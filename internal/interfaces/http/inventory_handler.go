package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/application/usecase"
	"github.com/tu-usuario/rocketry-hub/internal/domain/csvcodec"
	"github.com/tu-usuario/rocketry-hub/pkg/validator"
)

// InventoryHandler maneja las peticiones HTTP de inventario (protegido).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.InventoryItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ítem de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInventoryItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.InventoryItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, category y vendor son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), &in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem (patch parcial)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.UpdateInventoryItemRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), &in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar inventario desde CSV (todo o nada)
// @Tags         inventory
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/import [post]
func (h *InventoryHandler) Import(c *fiber.Ctx) error {
	data, err := readUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo inválido"})
	}
	n, err := h.uc.ImportCSV(c.Context(), data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ImportResponse{Imported: n})
}

// Export godoc
// @Summary      Exportar inventario a CSV
// @Tags         inventory
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/inventory/export [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	filename, content, err := h.uc.ExportCSV(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, filename, content)
}

// Template godoc
// @Summary      Plantilla CSV de importación (solo cabecera)
// @Tags         inventory
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/inventory/template [get]
func (h *InventoryHandler) Template(c *fiber.Ctx) error {
	content, err := csvcodec.Template("inventory")
	if err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, "inventory-template.csv", content)
}
