package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/rocketry-hub/internal/application/schedule"
	"github.com/tu-usuario/rocketry-hub/internal/domain"
	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func addTask(t *testing.T, s *schedule.Scheduler, memberID string, hours float64, status string, start, end time.Time) entity.Task {
	t.Helper()
	task, err := s.AddTask(schedule.TaskInput{
		Title:          "tarea",
		MemberID:       memberID,
		Status:         status,
		EstimatedHours: hours,
		StartDate:      start,
		EndDate:        end,
	})
	require.NoError(t, err)
	return task
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga de trabajo (acotada a [0, 100])
// ──────────────────────────────────────────────────────────────────────────────

// Con tareas no completadas que suman más de 40h el porcentaje es exactamente
// 100, nunca más.
func TestMemberWorkload_AcotadoEn100(t *testing.T) {
	s := schedule.NewScheduler()
	m := s.AddMember("Dana", "Avionics", "lead")

	addTask(t, s, m.ID, 30, entity.TaskInProgress, date(2026, 3, 2), date(2026, 3, 6))
	addTask(t, s, m.ID, 25, entity.TaskNotStarted, date(2026, 3, 2), date(2026, 3, 6))

	assert.Equal(t, 100.0, s.MemberWorkload(m.ID), "55h sobre 40h debe acotarse a 100")
}

func TestMemberWorkload_IgnoraCompletadas(t *testing.T) {
	s := schedule.NewScheduler()
	m := s.AddMember("Sam", "Recovery", "")

	addTask(t, s, m.ID, 20, entity.TaskCompleted, date(2026, 3, 2), date(2026, 3, 6))
	addTask(t, s, m.ID, 10, entity.TaskInProgress, date(2026, 3, 2), date(2026, 3, 6))

	assert.Equal(t, 25.0, s.MemberWorkload(m.ID), "solo cuentan las 10h no completadas")
}

func TestMemberWorkload_SinTareasEsCero(t *testing.T) {
	s := schedule.NewScheduler()
	m := s.AddMember("Ana", "Telemetry", "")
	assert.Equal(t, 0.0, s.MemberWorkload(m.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// Agenda semanal (bordes inclusivos)
// ──────────────────────────────────────────────────────────────────────────────

func TestWeeklySchedule_BordesInclusivos(t *testing.T) {
	s := schedule.NewScheduler()
	m := s.AddMember("Dana", "Avionics", "")

	// Semana del lunes 2026-03-02 al domingo 2026-03-08
	inside := addTask(t, s, m.ID, 4, "", date(2026, 3, 4), date(2026, 3, 5))
	endsAtStart := addTask(t, s, m.ID, 4, "", date(2026, 2, 25), date(2026, 3, 2))  // termina el lunes
	startsAtEnd := addTask(t, s, m.ID, 4, "", date(2026, 3, 8), date(2026, 3, 12))  // empieza el domingo
	before := addTask(t, s, m.ID, 4, "", date(2026, 2, 20), date(2026, 2, 28))
	after := addTask(t, s, m.ID, 4, "", date(2026, 3, 9), date(2026, 3, 13))

	view := s.WeeklySchedule(date(2026, 3, 4)) // miércoles de esa semana

	ids := make(map[string]bool)
	for _, task := range view.Tasks {
		ids[task.ID] = true
	}
	assert.True(t, ids[inside.ID])
	assert.True(t, ids[endsAtStart.ID], "una tarea que termina el lunes de la semana interseca")
	assert.True(t, ids[startsAtEnd.ID], "una tarea que empieza el domingo de la semana interseca")
	assert.False(t, ids[before.ID])
	assert.False(t, ids[after.ID])

	assert.Equal(t, date(2026, 3, 2), view.WeekStart, "la semana empieza en lunes")
	assert.Len(t, view.PerMember[m.ID], 3)
}

func TestWeeklySchedule_DomingoPerteneceASuSemana(t *testing.T) {
	s := schedule.NewScheduler()
	// Consultar un domingo debe devolver la semana que termina ese día, no la siguiente
	view := s.WeeklySchedule(date(2026, 3, 8))
	assert.Equal(t, date(2026, 3, 2), view.WeekStart)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones y asignación
// ──────────────────────────────────────────────────────────────────────────────

// Cualquier estado es alcanzable desde cualquier otro, incluso hacia atrás.
func TestUpdateTaskStatus_TransicionesLibres(t *testing.T) {
	s := schedule.NewScheduler()
	m := s.AddMember("Dana", "Avionics", "")
	task := addTask(t, s, m.ID, 4, entity.TaskCompleted, date(2026, 3, 2), date(2026, 3, 6))

	got, err := s.UpdateTaskStatus(task.ID, entity.TaskNotStarted, "se reabre por falla en banco de pruebas")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskNotStarted, got.Status)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "se reabre por falla en banco de pruebas", got.Notes[0].Text)
	assert.False(t, got.Notes[0].At.IsZero())
}

func TestUpdateTaskStatus_EstadoInvalido(t *testing.T) {
	s := schedule.NewScheduler()
	m := s.AddMember("Dana", "Avionics", "")
	task := addTask(t, s, m.ID, 4, "", date(2026, 3, 2), date(2026, 3, 6))

	_, err := s.UpdateTaskStatus(task.ID, "paused", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssignTask_ReasignaYValidaExistencia(t *testing.T) {
	s := schedule.NewScheduler()
	dana := s.AddMember("Dana", "Avionics", "")
	sam := s.AddMember("Sam", "Recovery", "")
	task := addTask(t, s, dana.ID, 4, "", date(2026, 3, 2), date(2026, 3, 6))

	got, err := s.AssignTask(task.ID, sam.ID)
	require.NoError(t, err)
	assert.Equal(t, sam.ID, got.MemberID)

	_, err = s.AssignTask(task.ID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.AssignTask("no-existe", sam.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddTask_RangoInvertidoRechazado(t *testing.T) {
	s := schedule.NewScheduler()
	_, err := s.AddTask(schedule.TaskInput{
		Title:     "al revés",
		StartDate: date(2026, 3, 6),
		EndDate:   date(2026, 3, 2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
