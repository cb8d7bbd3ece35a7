// Package exercise содержит бизнес-логику трекера упражнений:
// регистрацию пользователей, добавление упражнений и выборку журнала
// с фильтрацией по датам и ограничением количества.
package exercise

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/magabrotheeeer/exercise-tracker/internal/lib/datefmt"
	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

const usersCacheKey = "users:all"

// Repository определяет методы работы с пользователями и их упражнениями в хранилище.
type Repository interface {
	// CreateUser сохраняет нового пользователя и возвращает его с присвоенным ID.
	CreateUser(ctx context.Context, username string) (*models.User, error)
	// ListUsers возвращает всех пользователей в порядке регистрации.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// AddExercise атомарно добавляет упражнение в конец журнала пользователя.
	AddExercise(ctx context.Context, userID string, e models.Exercise) (*models.User, error)
	// ExerciseLog возвращает журнал пользователя, отфильтрованный по датам и ограниченный по количеству.
	ExerciseLog(ctx context.Context, userID string, filter models.LogFilter) (*models.ExerciseLog, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует операции трекера поверх хранилища.
type Service struct {
	repo  Repository
	cache Cache
	ttl   time.Duration
	log   *slog.Logger
	now   func() time.Time
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, cache Cache, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
		log:   log,
		now:   time.Now,
	}
}

// CreateUser регистрирует пользователя и сбрасывает кеш списка пользователей.
func (s *Service) CreateUser(ctx context.Context, username string) (*models.User, error) {
	const op = "services.exercise.CreateUser"

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%s: %w: username is empty", op, models.ErrValidation)
	}

	user, err := s.repo.CreateUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new user", slog.String("id", user.ID))

	if err := s.cache.Invalidate(usersCacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", usersCacheKey), sl.Err(err))
	}
	return user, nil
}

// ListUsers возвращает всех пользователей, используя кеш при наличии.
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "services.exercise.ListUsers"

	var users []*models.User
	found, err := s.cache.Get(usersCacheKey, &users)
	if err != nil {
		s.log.Warn("failed to read cache", slog.String("key", usersCacheKey), sl.Err(err))
	}
	if found {
		return users, nil
	}

	users, err = s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(usersCacheKey, users, s.ttl); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", usersCacheKey), sl.Err(err))
	}
	return users, nil
}

// AddExercise проверяет данные упражнения и добавляет его в журнал пользователя.
// Без даты используется текущий день.
func (s *Service) AddExercise(ctx context.Context, userID string, req models.DummyExercise) (*models.User, *models.Exercise, error) {
	const op = "services.exercise.AddExercise"

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, nil, fmt.Errorf("%s: %w: description is empty", op, models.ErrValidation)
	}

	duration, err := strconv.Atoi(strings.TrimSpace(req.Duration.String()))
	if err != nil || duration <= 0 {
		return nil, nil, fmt.Errorf("%s: %w: duration must be a positive integer, got %q",
			op, models.ErrValidation, req.Duration.String())
	}

	date := datefmt.Day(s.now())
	if strings.TrimSpace(req.Date) != "" {
		date, err = datefmt.Parse(req.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w: invalid date %q", op, models.ErrValidation, req.Date)
		}
	}

	entry := models.Exercise{
		Description: description,
		Duration:    duration,
		Date:        date,
	}

	user, err := s.repo.AddExercise(ctx, userID, entry)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("added exercise", slog.String("user_id", user.ID), slog.String("date", datefmt.Render(date)))

	return user, &entry, nil
}

// Log возвращает журнал упражнений пользователя.
//
// Некорректные from/to не являются ошибкой: граница считается отсутствующей.
// Некорректный или неположительный limit означает выборку без ограничения.
// Оба случая логируются, чтобы ошибки клиента не терялись.
func (s *Service) Log(ctx context.Context, userID string, q models.LogQuery) (*models.ExerciseLog, error) {
	const op = "services.exercise.Log"

	filter := s.parseFilter(q)

	res, err := s.repo.ExerciseLog(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func (s *Service) parseFilter(q models.LogQuery) models.LogFilter {
	var filter models.LogFilter

	if q.From != "" {
		from, err := datefmt.Parse(q.From)
		if err != nil {
			s.log.Warn("ignoring malformed from", slog.String("from", q.From), sl.Err(err))
		} else {
			filter.From = &from
		}
	}

	if q.To != "" {
		to, err := datefmt.Parse(q.To)
		if err != nil {
			s.log.Warn("ignoring malformed to", slog.String("to", q.To), sl.Err(err))
		} else {
			filter.To = &to
		}
	}

	if q.Limit != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(q.Limit))
		switch {
		case err != nil:
			s.log.Warn("ignoring malformed limit", slog.String("limit", q.Limit), sl.Err(err))
		case limit <= 0:
			s.log.Warn("ignoring non-positive limit", slog.Int("limit", limit))
		default:
			filter.Limit = limit
		}
	}

	return filter
}
