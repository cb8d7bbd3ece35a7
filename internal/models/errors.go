package models

import "errors"

var (
	// ErrValidation некорректные входные данные.
	ErrValidation = errors.New("validation error")
	// ErrUserNotFound пользователь с указанным идентификатором не существует.
	ErrUserNotFound = errors.New("user not found")
	// ErrStorage хранилище недоступно или вернуло ошибку.
	ErrStorage = errors.New("storage error")
)
