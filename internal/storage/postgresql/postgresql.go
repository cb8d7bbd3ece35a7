// Package postgresql реализует хранилище пользователей и их журналов упражнений
// на основе PostgreSQL. Схема создаётся миграциями из каталога migrations.
package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB      *sql.DB
	timeout time.Duration
}

// New создаёт подключение к PostgreSQL и проверяет его.
func New(storageConnectionString string, timeout time.Duration) (*Storage, error) {
	const op = "storage.postgresql.New"

	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB:      db,
		timeout: timeout,
	}, nil
}

// Ping проверяет доступность базы данных.
func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.DB.PingContext(ctx)
}

// Close закрывает пул соединений.
func (s *Storage) Close(_ context.Context) error {
	return s.DB.Close()
}

// CreateUser сохраняет нового пользователя и возвращает его UID.
func (s *Storage) CreateUser(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.postgresql.CreateUser"
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	uid := uuid.New()
	query := `INSERT INTO users (uid, username) VALUES ($1, $2)`
	if _, err := s.DB.ExecContext(ctx, query, uid, username); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}
	return &models.User{ID: uid.String(), Username: username}, nil
}

// ListUsers возвращает всех пользователей в порядке регистрации.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.postgresql.ListUsers"
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.DB.QueryContext(ctx, `SELECT uid, username FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.User, 0)
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
		}
		result = append(result, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}
	return result, nil
}

// AddExercise добавляет упражнение одним INSERT ... SELECT: если пользователя нет,
// ни одна строка не вставляется и возвращается ErrUserNotFound.
func (s *Storage) AddExercise(ctx context.Context, userID string, e models.Exercise) (*models.User, error) {
	const op = "storage.postgresql.AddExercise"

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	query := `WITH inserted AS (
			      INSERT INTO exercises (user_uid, description, duration, date)
			      SELECT uid, $2, $3, $4::date FROM users WHERE uid = $1
			      RETURNING user_uid
			  )
			  SELECT u.uid, u.username FROM inserted i JOIN users u ON u.uid = i.user_uid`
	var u models.User
	err = s.DB.QueryRowContext(ctx, query, uid, e.Description, e.Duration, e.Date.UTC()).Scan(&u.ID, &u.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}
	return &u, nil
}

// ExerciseLog возвращает журнал пользователя, отфильтрованный по датам (включительно)
// и ограниченный первыми limit записями в порядке добавления.
// LIMIT NULL в PostgreSQL означает отсутствие ограничения.
func (s *Storage) ExerciseLog(ctx context.Context, userID string, filter models.LogFilter) (*models.ExerciseLog, error) {
	const op = "storage.postgresql.ExerciseLog"

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var from, to any
	if filter.From != nil {
		from = filter.From.UTC()
	}
	if filter.To != nil {
		to = filter.To.UTC()
	}
	var limit sql.NullInt64
	if filter.Limit > 0 {
		limit = sql.NullInt64{Int64: int64(filter.Limit), Valid: true}
	}

	query := `SELECT u.uid, u.username, e.description, e.duration, e.date
			  FROM users u
			  LEFT JOIN LATERAL (
			      SELECT id, description, duration, date
			      FROM exercises
			      WHERE user_uid = u.uid
			        AND ($2::date IS NULL OR date >= $2::date)
			        AND ($3::date IS NULL OR date <= $3::date)
			      ORDER BY id
			      LIMIT $4
			  ) e ON true
			  WHERE u.uid = $1
			  ORDER BY e.id`
	rows, err := s.DB.QueryContext(ctx, query, uid, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result *models.ExerciseLog
	for rows.Next() {
		var (
			id, username string
			description  sql.NullString
			duration     sql.NullInt64
			date         sql.NullTime
		)
		if err = rows.Scan(&id, &username, &description, &duration, &date); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
		}
		if result == nil {
			result = &models.ExerciseLog{UserID: id, Username: username, Log: make([]models.Exercise, 0)}
		}
		if !description.Valid {
			continue
		}
		result.Log = append(result.Log, models.Exercise{
			Description: description.String,
			Duration:    int(duration.Int64),
			Date:        date.Time.UTC(),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}
	return result, nil
}
