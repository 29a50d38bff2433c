package dto

import "time"

// AddMemberRequest alta de integrante del roster.
type AddMemberRequest struct {
	Name string `json:"name" validate:"required"`
	Team string `json:"team"`
	Role string `json:"role"`
}

// AddTaskRequest alta de tarea.
type AddTaskRequest struct {
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description"`
	MemberID       string    `json:"memberId"`
	Status         string    `json:"status"`
	EstimatedHours float64   `json:"estimatedHours" validate:"min=0"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
}

// AssignTaskRequest reasignación de tarea.
type AssignTaskRequest struct {
	MemberID string `json:"memberId" validate:"required"`
}

// UpdateTaskStatusRequest transición de estado con nota opcional.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

// WorkloadResponse carga semanal de un integrante en porcentaje [0, 100].
type WorkloadResponse struct {
	MemberID string  `json:"memberId"`
	Percent  float64 `json:"percent"`
}
