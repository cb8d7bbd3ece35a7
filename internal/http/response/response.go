// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов об ошибках HTTP‑обработчиков.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// ErrorResponse описывает JSON‑ответ с ошибкой.
// Поле Status всегда "Error", поле Error — текст ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

// StatusError — значение статуса для ответа с ошибкой.
const StatusError = "Error"

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// FromError сопоставляет ошибку бизнес-логики с HTTP-статусом и телом ответа.
// Текст ошибок хранилища наружу не отдаётся.
func FromError(err error, fallback string) (int, ErrorResponse) {
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound, Error("user not found")
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest, Error(validationMessage(err))
	default:
		return http.StatusInternalServerError, Error(fallback)
	}
}

// validationMessage оставляет от цепочки обёрток только пояснение после "validation error: ".
func validationMessage(err error) string {
	msg := err.Error()
	marker := models.ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return models.ErrValidation.Error()
}

// ValidationError формирует ErrorResponse на основе ошибок валидации структуры.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "numeric":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Error(strings.Join(errsMsgs, ", "))
}
