package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/application/usecase"
	"github.com/tu-usuario/rocketry-hub/pkg/validator"
)

// PurchaseRequestHandler maneja las peticiones HTTP de solicitudes de compra.
type PurchaseRequestHandler struct {
	uc *usecase.PurchaseRequestUseCase
}

// NewPurchaseRequestHandler construye el handler.
func NewPurchaseRequestHandler(uc *usecase.PurchaseRequestUseCase) *PurchaseRequestHandler {
	return &PurchaseRequestHandler{uc: uc}
}

// List godoc
// @Summary      Listar solicitudes de compra
// @Tags         purchase-requests
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PurchaseRequestListResponse
// @Router       /api/purchase-requests [get]
func (h *PurchaseRequestHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud por ID
// @Tags         purchase-requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.PurchaseRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-requests/{id} [get]
func (h *PurchaseRequestHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear solicitud de compra
// @Tags         purchase-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequestRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.PurchaseRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-requests [post]
func (h *PurchaseRequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "itemName, vendor, requestedBy y quantity >= 1 son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar solicitud (patch parcial)
// @Tags         purchase-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.UpdatePurchaseRequestRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.PurchaseRequestResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-requests/{id} [put]
func (h *PurchaseRequestHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar una solicitud pendiente
// @Tags         purchase-requests
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.PurchaseRequestResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-requests/{id}/approve [post]
func (h *PurchaseRequestHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar una solicitud pendiente
// @Tags         purchase-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.RejectRequestRequest  false  "Motivo del rechazo"
// @Success      200   {object}  dto.PurchaseRequestResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-requests/{id}/reject [post]
func (h *PurchaseRequestHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectRequestRequest
	_ = c.BodyParser(&in) // cuerpo opcional
	out, err := h.uc.Reject(c.Context(), c.Params("id"), GetUserID(c), in.Notes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar solicitud
// @Tags         purchase-requests
// @Security     Bearer
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-requests/{id} [delete]
func (h *PurchaseRequestHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar solicitudes desde CSV (todo o nada)
// @Tags         purchase-requests
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/purchase-requests/import [post]
func (h *PurchaseRequestHandler) Import(c *fiber.Ctx) error {
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
// @Summary      Exportar solicitudes a CSV
// @Tags         purchase-requests
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Router       /api/purchase-requests/export [get]
func (h *PurchaseRequestHandler) Export(c *fiber.Ctx) error {
	filename, content, err := h.uc.ExportCSV(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return sendCSV(c, filename, content)
}
