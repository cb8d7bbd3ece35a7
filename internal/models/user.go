// Package models содержит доменные структуры трекера упражнений:
// пользователя, упражнение, параметры выборки журнала и DTO для HTTP-слоя.
package models

// User представляет зарегистрированного пользователя.
// Пользователь создаётся один раз и больше не изменяется.
type User struct {
	ID       string `json:"id"`       // Уникальный идентификатор, генерируется хранилищем
	Username string `json:"username"` // Имя пользователя
}

// DummyUser используется для приёма данных из запроса на создание пользователя.
type DummyUser struct {
	Username string `json:"username" form:"username" validate:"required"`
}

// UserResponse описывает пользователя в ответах API.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// NewUserResponse формирует ответ API из доменной модели.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		Username: u.Username,
		ID:       u.ID,
	}
}
