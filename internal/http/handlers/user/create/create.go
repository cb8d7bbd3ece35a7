// Package create реализует HTTP-обработчик регистрации нового пользователя.
//
// Handler принимает имя пользователя (JSON или форма), валидирует его,
// вызывает бизнес-логику создания и возвращает {username, _id}.
package create

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/exercise-tracker/internal/http/request"
	"github.com/magabrotheeeer/exercise-tracker/internal/http/response"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// Handler управляет HTTP-запросами на создание пользователей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания пользователя.
type Service interface {
	CreateUser(ctx context.Context, username string) (*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать пользователя
// @Description Регистрирует пользователя и возвращает его идентификатор.
// @Tags Users
// @Accept  json,x-www-form-urlencoded
// @Produce  json
// @Param request body models.DummyUser true "Имя пользователя"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} response.ErrorResponse "Некорректное тело запроса"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyUser
	if err := request.Decode(r, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.service.CreateUser(r.Context(), req.Username)
	if err != nil {
		log.Error("failed to create user", sl.Err(err))
		status, resp := response.FromError(err, "could not create user")
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("user created", slog.String("id", user.ID))
	render.JSON(w, r, models.NewUserResponse(user))
}
