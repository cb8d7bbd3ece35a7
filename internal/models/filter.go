package models

import (
	"time"

	"github.com/magabrotheeeer/exercise-tracker/internal/lib/datefmt"
)

// LogFilter задаёт параметры выборки журнала упражнений.
// Nil-граница означает отсутствие ограничения с этой стороны,
// Limit равный нулю означает выборку без ограничения количества.
type LogFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// ExerciseLog результат выборки журнала: пользователь и отфильтрованные упражнения
// в порядке добавления.
type ExerciseLog struct {
	UserID   string
	Username string
	Log      []Exercise
}

// Count возвращает количество упражнений в выборке после фильтрации и ограничения.
func (l *ExerciseLog) Count() int {
	return len(l.Log)
}

// LogEntry одна запись журнала в ответе API.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse описывает журнал упражнений в ответе API.
type LogResponse struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// NewLogResponse формирует ответ API из результата выборки журнала.
// Count равен длине возвращаемого списка.
func NewLogResponse(l *ExerciseLog) LogResponse {
	entries := make([]LogEntry, 0, len(l.Log))
	for _, e := range l.Log {
		entries = append(entries, LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        datefmt.Render(e.Date),
		})
	}
	return LogResponse{
		ID:       l.UserID,
		Username: l.Username,
		Count:    len(entries),
		Log:      entries,
	}
}

// LogQuery сырые параметры запроса журнала в том виде, в котором они пришли от клиента.
type LogQuery struct {
	From  string
	To    string
	Limit string
}
