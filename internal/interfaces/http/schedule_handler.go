package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/rocketry-hub/internal/application/dto"
	"github.com/tu-usuario/rocketry-hub/internal/application/schedule"
	"github.com/tu-usuario/rocketry-hub/pkg/validator"
)

// ScheduleHandler maneja roster, tareas y vistas del planificador semanal.
type ScheduleHandler struct {
	scheduler *schedule.Scheduler
}

// NewScheduleHandler construye el handler.
func NewScheduleHandler(scheduler *schedule.Scheduler) *ScheduleHandler {
	return &ScheduleHandler{scheduler: scheduler}
}

// ListMembers godoc
// @Summary      Listar integrantes del roster
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.TeamMember
// @Router       /api/schedule/members [get]
func (h *ScheduleHandler) ListMembers(c *fiber.Ctx) error {
	return c.JSON(h.scheduler.Members())
}

// AddMember godoc
// @Summary      Agregar integrante al roster
// @Tags         schedule
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddMemberRequest  true  "Datos del integrante"
// @Success      201   {object}  entity.TeamMember
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/schedule/members [post]
func (h *ScheduleHandler) AddMember(c *fiber.Ctx) error {
	var in dto.AddMemberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	member := h.scheduler.AddMember(in.Name, in.Team, in.Role)
	return c.Status(fiber.StatusCreated).JSON(member)
}

// ListTasks godoc
// @Summary      Listar tareas ordenadas por fecha de inicio
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Task
// @Router       /api/schedule/tasks [get]
func (h *ScheduleHandler) ListTasks(c *fiber.Ctx) error {
	return c.JSON(h.scheduler.Tasks())
}

// AddTask godoc
// @Summary      Crear tarea
// @Tags         schedule
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  entity.Task
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/schedule/tasks [post]
func (h *ScheduleHandler) AddTask(c *fiber.Ctx) error {
	var in dto.AddTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido y estimatedHours >= 0"})
	}
	task, err := h.scheduler.AddTask(schedule.TaskInput{
		Title:          in.Title,
		Description:    in.Description,
		MemberID:       in.MemberID,
		Status:         in.Status,
		EstimatedHours: in.EstimatedHours,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// AssignTask godoc
// @Summary      Asignar tarea a un integrante
// @Tags         schedule
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.AssignTaskRequest  true  "Integrante destino"
// @Success      200   {object}  entity.Task
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/schedule/tasks/{id}/assign [post]
func (h *ScheduleHandler) AssignTask(c *fiber.Ctx) error {
	var in dto.AssignTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "memberId es requerido"})
	}
	task, err := h.scheduler.AssignTask(c.Params("id"), in.MemberID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

// UpdateTaskStatus godoc
// @Summary      Cambiar estado de una tarea con nota opcional
// @Tags         schedule
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  entity.Task
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/schedule/tasks/{id}/status [post]
func (h *ScheduleHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	var in dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	task, err := h.scheduler.UpdateTaskStatus(c.Params("id"), in.Status, in.Note)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(task)
}

// WeeklySchedule godoc
// @Summary      Vista semanal (semana que contiene la fecha dada, lunes a domingo)
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha en formato 2006-01-02 (default: hoy)"
// @Success      200   {object}  schedule.WeekView
// @Router       /api/schedule/week [get]
func (h *ScheduleHandler) WeeklySchedule(c *fiber.Ctx) error {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato 2006-01-02"})
		}
		date = parsed
	}
	return c.JSON(h.scheduler.WeeklySchedule(date))
}

// MemberWorkload godoc
// @Summary      Carga semanal de un integrante en porcentaje [0, 100]
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del integrante"
// @Success      200  {object}  dto.WorkloadResponse
// @Router       /api/schedule/members/{id}/workload [get]
func (h *ScheduleHandler) MemberWorkload(c *fiber.Ctx) error {
	id := c.Params("id")
	return c.JSON(dto.WorkloadResponse{MemberID: id, Percent: h.scheduler.MemberWorkload(id)})
}
