package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/application/receiving"
)

// ReceivingHandler maneja el workflow de recepción: solicitud → pendiente →
// inventario, más el registro de recepciones.
type ReceivingHandler struct {
	uc *receiving.WorkflowUseCase
}

// NewReceivingHandler construye el handler.
func NewReceivingHandler(uc *receiving.WorkflowUseCase) *ReceivingHandler {
	return &ReceivingHandler{uc: uc}
}

// ListPending godoc
// @Summary      Listar inventario pendiente de recepción
// @Tags         receiving
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PendingItemResponse
// @Router       /api/pending [get]
func (h *ReceivingHandler) ListPending(c *fiber.Ctx) error {
	items, err := h.uc.ListPending(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.PendingItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *dto.ToPendingItemResponse(&items[i]))
	}
	return c.JSON(out)
}

// MoveToPending godoc
// @Summary      Mover una solicitud aprobada a pendiente de recepción
// @Tags         receiving
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      201  {object}  dto.PendingItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-requests/{id}/move-to-pending [post]
func (h *ReceivingHandler) MoveToPending(c *fiber.Ctx) error {
	pending, err := h.uc.MoveToPending(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPendingItemResponse(pending))
}

// EditPending godoc
// @Summary      Editar un pendiente (patch parcial, sin cambiar estado)
// @Tags         receiving
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pendiente"
// @Param        body  body  dto.EditPendingRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.PendingItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pending/{id} [put]
func (h *ReceivingHandler) EditPending(c *fiber.Ctx) error {
	var in dto.EditPendingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pending, err := h.uc.EditPending(c.Context(), c.Params("id"), receiving.EditPendingInput{
		Name:             in.Name,
		Description:      in.Description,
		UnitPrice:        in.UnitPrice,
		ExpectedQuantity: in.ExpectedQuantity,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToPendingItemResponse(pending))
}

// ConfirmReceipt godoc
// @Summary      Conciliar una recepción: el pendiente se convierte en stock
// @Tags         receiving
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pendiente"
// @Param        body  body  dto.ConfirmReceiptRequest  true  "Cantidad real y condición"
// @Success      200   {object}  dto.InventoryItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pending/{id}/confirm [post]
func (h *ReceivingHandler) ConfirmReceipt(c *fiber.Ctx) error {
	var in dto.ConfirmReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.ConfirmReceipt(c.Context(), receiving.ConfirmReceiptInput{
		PendingID:      c.Params("id"),
		ActualQuantity: in.ActualQuantity,
		Condition:      in.Condition,
		QualityNotes:   in.QualityNotes,
		Actor:          GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToInventoryItemResponse(item))
}

// ListLog godoc
// @Summary      Registro de recepciones conciliadas
// @Tags         receiving
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReceivingLogResponse
// @Router       /api/receiving-log [get]
func (h *ReceivingHandler) ListLog(c *fiber.Ctx) error {
	logs, err := h.uc.ListLog(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ReceivingLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.ReceivingLogResponse{
			ID:               l.ID,
			PendingItemID:    l.PendingItemID,
			InventoryItemID:  l.InventoryItemID,
			ItemName:         l.ItemName,
			Vendor:           l.Vendor,
			ExpectedQuantity: l.ExpectedQuantity,
			ActualQuantity:   l.ActualQuantity,
			Condition:        l.Condition,
			QualityNotes:     l.QualityNotes,
			ReceivedBy:       l.ReceivedBy,
			ReceivedAt:       l.ReceivedAt,
		})
	}
	return c.JSON(out)
}
