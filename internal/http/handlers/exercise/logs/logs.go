// Package logs реализует HTTP-обработчик получения журнала упражнений пользователя
// с необязательными фильтрами from, to и limit.
package logs

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// Handler обрабатывает запросы журнала упражнений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки журнала.
type Service interface {
	Log(ctx context.Context, userID string, q models.LogQuery) (*models.ExerciseLog, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Журнал упражнений
// @Description Возвращает упражнения пользователя в порядке добавления. from/to включительно, limit ограничивает количество. count равен длине log.
// @Tags Exercises
// @Produce  json
// @Param _id path string true "ID пользователя"
// @Param from query string false "Нижняя граница даты, yyyy-mm-dd"
// @Param to query string false "Верхняя граница даты, yyyy-mm-dd"
// @Param limit query int false "Максимальное количество записей"
// @Success 200 {object} models.LogResponse
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/{_id}/logs [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.logs"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID := chi.URLParam(r, "_id")
	query := r.URL.Query()
	q := models.LogQuery{
		From:  query.Get("from"),
		To:    query.Get("to"),
		Limit: query.Get("limit"),
	}

	res, err := h.service.Log(r.Context(), userID, q)
	if err != nil {
		log.Error("failed to read exercise log", slog.String("user_id", userID), sl.Err(err))
		status, resp := response.FromError(err, "could not read exercise log")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("exercise log read", slog.String("user_id", userID), slog.Int("count", res.Count()))
	render.JSON(w, r, models.NewLogResponse(res))
}
