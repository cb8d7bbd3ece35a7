// Package add реализует HTTP-обработчик добавления упражнения в журнал пользователя.
//
// Handler принимает описание, длительность и необязательную дату,
// добавляет упражнение и возвращает его вместе с данными пользователя.
// Для неизвестного пользователя возвращается 404.
package add

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/request"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// Handler управляет HTTP-запросами на добавление упражнений.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления упражнения.
type Service interface {
	AddExercise(ctx context.Context, userID string, req models.DummyExercise) (*models.User, *models.Exercise, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить упражнение
// @Description Добавляет упражнение в журнал пользователя. Без даты используется текущий день.
// @Tags Exercises
// @Accept  json,x-www-form-urlencoded
// @Produce  json
// @Param _id path string true "ID пользователя"
// @Param request body models.DummyExercise true "Упражнение"
// @Success 200 {object} models.ExerciseResponse
// @Failure 400 {object} response.ErrorResponse "Некорректные данные"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/{_id}/exercises [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.add"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "_id")

	var req models.DummyExercise
	if err := request.Decode(r, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Debug("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, entry, err := h.service.AddExercise(r.Context(), userID, req)
	if err != nil {
		log.Error("failed to add exercise", slog.String("user_id", userID), sl.Err(err))
		status, resp := response.FromError(err, "could not add exercise")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("exercise added", slog.String("user_id", user.ID))
	render.JSON(w, r, models.NewExerciseResponse(user, entry))
}
