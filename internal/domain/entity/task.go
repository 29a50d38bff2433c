package entity

import "time"

// Estados de una tarea. Cualquier estado es alcanzable desde cualquier otro;
// el tablero no restringe transiciones.
const (
	TaskNotStarted = "not-started"
	TaskInProgress = "in-progress"
	TaskReview     = "review"
	TaskCompleted  = "completed"
)

// TaskStatuses valores admitidos para Task.Status.
var TaskStatuses = []string{TaskNotStarted, TaskInProgress, TaskReview, TaskCompleted}

// TaskNote anotación con marca de tiempo sobre una tarea.
type TaskNote struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// Task tarea de equipo para la sesión actual (solo en memoria).
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	MemberID       string     `json:"memberId"`
	Status         string     `json:"status"`
	EstimatedHours float64    `json:"estimatedHours"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	Notes          []TaskNote `json:"notes,omitempty"`
}

// TeamMember integrante del roster.
type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team string `json:"team"`
	Role string `json:"role,omitempty"`
}
