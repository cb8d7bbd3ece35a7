package models

import (
	"encoding/json"
	"time"

	"github.com/magabrotheeeer/exercise-tracker/internal/lib/datefmt"
)

// Exercise представляет одну запись журнала упражнений пользователя.
// Дата хранится как time.Time (начало календарного дня в UTC),
// в строку она превращается только на границе API.
type Exercise struct {
	Description string    // Описание упражнения
	Duration    int       // Длительность в минутах
	Date        time.Time // Дата выполнения
}

// DummyExercise используется для приёма данных из запроса на добавление упражнения.
// Длительность и дата приходят строками, чтобы их можно было проверить вручную.
type DummyExercise struct {
	Description string      `json:"description" form:"description" validate:"required"`
	Duration    json.Number `json:"duration" form:"duration" validate:"required,numeric"`
	Date        string      `json:"date,omitempty" form:"date"`
}

// ExerciseResponse описывает добавленное упражнение вместе с данными пользователя.
type ExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// NewExerciseResponse формирует ответ API на добавление упражнения.
func NewExerciseResponse(u *User, e *Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:          u.ID,
		Username:    u.Username,
		Date:        datefmt.Render(e.Date),
		Duration:    e.Duration,
		Description: e.Description,
	}
}
