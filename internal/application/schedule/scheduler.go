// Package schedule mantiene el roster de equipo y las tareas de la sesión
// actual, solo en memoria (sin persistencia entre reinicios). Las
// transiciones de estado son libres: cualquier estado es alcanzable desde
// cualquier otro.
package schedule

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/validate"
)

// fullWeekHours base de cálculo de carga semanal por integrante.
const fullWeekHours = 40.0

// Scheduler roster + tareas en memoria, seguro para uso concurrente.
type Scheduler struct {
	mu      sync.Mutex
	members map[string]entity.TeamMember
	tasks   map[string]entity.Task
}

// NewScheduler construye un scheduler vacío.
func NewScheduler() *Scheduler {
	return &Scheduler{
		members: make(map[string]entity.TeamMember),
		tasks:   make(map[string]entity.Task),
	}
}

// AddMember registra un integrante del roster.
func (s *Scheduler) AddMember(name, team, role string) entity.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := entity.TeamMember{ID: uuid.New().String(), Name: name, Team: team, Role: role}
	s.members[m.ID] = m
	return m
}

// Members devuelve el roster ordenado por nombre.
func (s *Scheduler) Members() []entity.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.TeamMember, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// TaskInput datos para crear una tarea.
type TaskInput struct {
	Title          string
	Description    string
	MemberID       string
	Status         string
	EstimatedHours float64
	StartDate      time.Time
	EndDate        time.Time
}

// AddTask crea una tarea. Un estado desconocido cae a not-started; un rango de
// fechas invertido es entrada inválida.
func (s *Scheduler) AddTask(in TaskInput) (entity.Task, error) {
	if in.EndDate.Before(in.StartDate) {
		return entity.Task{}, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	task := entity.Task{
		ID:             uuid.New().String(),
		Title:          in.Title,
		Description:    in.Description,
		MemberID:       in.MemberID,
		Status:         validate.Enum(in.Status, entity.TaskStatuses, entity.TaskNotStarted),
		EstimatedHours: in.EstimatedHours,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
	}
	s.tasks[task.ID] = task
	return task, nil
}

// Tasks devuelve todas las tareas ordenadas por fecha de inicio.
func (s *Scheduler) Tasks() []entity.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out
}

// AssignTask reasigna la tarea al integrante indicado.
func (s *Scheduler) AssignTask(taskID, memberID string) (entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return entity.Task{}, domain.ErrNotFound
	}
	if _, ok := s.members[memberID]; !ok {
		return entity.Task{}, domain.ErrNotFound
	}
	task.MemberID = memberID
	s.tasks[taskID] = task
	return task, nil
}

// UpdateTaskStatus transiciona el estado (sin restricciones de transición) y
// agrega una nota con marca de tiempo si se indica.
func (s *Scheduler) UpdateTaskStatus(taskID, status, note string) (entity.Task, error) {
	normalized := validate.Enum(status, entity.TaskStatuses, "")
	if normalized == "" {
		return entity.Task{}, domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[taskID]
	if !ok {
		return entity.Task{}, domain.ErrNotFound
	}
	task.Status = normalized
	if note != "" {
		task.Notes = append(task.Notes, entity.TaskNote{At: time.Now(), Text: note})
	}
	s.tasks[taskID] = task
	return task, nil
}

// WeekView tareas que intersecan una semana, agrupadas por integrante.
type WeekView struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Tasks     []entity.Task
	PerMember map[string][]entity.Task
}

// weekBounds devuelve [lunes 00:00, domingo fin] de la semana de date.
func weekBounds(date time.Time) (time.Time, time.Time) {
	weekday := int(date.Weekday())
	if weekday == 0 { // domingo
		weekday = 7
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		AddDate(0, 0, -(weekday - 1))
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// WeeklySchedule devuelve las tareas cuyo rango interseca la semana de date
// (bordes [start,end] inclusivos).
func (s *Scheduler) WeeklySchedule(date time.Time) WeekView {
	start, end := weekBounds(date)
	view := WeekView{WeekStart: start, WeekEnd: end, PerMember: make(map[string][]entity.Task)}
	for _, task := range s.Tasks() {
		if task.StartDate.After(end) || task.EndDate.Before(start) {
			continue
		}
		view.Tasks = append(view.Tasks, task)
		view.PerMember[task.MemberID] = append(view.PerMember[task.MemberID], task)
	}
	return view
}

// MemberWorkload porcentaje de carga del integrante: suma de horas estimadas
// de sus tareas no completadas sobre 40h, acotado a [0, 100].
func (s *Scheduler) MemberWorkload(memberID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var hours float64
	for _, task := range s.tasks {
		if task.MemberID == memberID && task.Status != entity.TaskCompleted {
			hours += task.EstimatedHours
		}
	}
	pct := hours / fullWeekHours * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
