// Package mongodb реализует хранилище пользователей и их журналов упражнений
// в MongoDB. Каждый пользователь хранится одним документом, упражнения лежат
// в массиве exercises в порядке добавления.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/magabrotheeeer/exercise-tracker/internal/config"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

const usersCollection = "users"

// Storage инкапсулирует подключение к MongoDB.
type Storage struct {
	client  *mongo.Client
	users   *mongo.Collection
	timeout time.Duration
}

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Username  string             `bson:"username"`
	Exercises []exerciseDoc      `bson:"exercises,omitempty"`
}

type exerciseDoc struct {
	Description string    `bson:"description"`
	Duration    int       `bson:"duration"`
	Date        time.Time `bson:"date"`
}

// New подключается к MongoDB и проверяет соединение.
func New(ctx context.Context, cfg config.Storage) (*Storage, error) {
	const op = "storage.mongodb.New"

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.ConnectionString).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		client:  client,
		users:   client.Database(cfg.Database).Collection(usersCollection),
		timeout: timeout,
	}, nil
}

// Ping проверяет доступность MongoDB.
func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

// Close закрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// CreateUser сохраняет нового пользователя с пустым журналом.
func (s *Storage) CreateUser(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.mongodb.CreateUser"
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc := userDoc{
		ID:       primitive.NewObjectID(),
		Username: username,
	}
	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}
	return &models.User{ID: doc.ID.Hex(), Username: doc.Username}, nil
}

// ListUsers возвращает всех пользователей в порядке создания.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.mongodb.ListUsers"
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"username": 1}).
		SetSort(bson.M{"_id": 1})
	cur, err := s.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}
	defer func() {
		_ = cur.Close(ctx)
	}()

	var docs []userDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}

	result := make([]*models.User, 0, len(docs))
	for _, d := range docs {
		result = append(result, &models.User{ID: d.ID.Hex(), Username: d.Username})
	}
	return result, nil
}

// AddExercise добавляет упражнение в конец журнала пользователя одной операцией $push,
// поэтому параллельные добавления не теряются.
func (s *Storage) AddExercise(ctx context.Context, userID string, e models.Exercise) (*models.User, error) {
	const op = "storage.mongodb.AddExercise"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	update := bson.M{"$push": bson.M{"exercises": exerciseDoc{
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date.UTC(),
	}}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"username": 1})

	var doc userDoc
	err = s.users.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}
	return &models.User{ID: doc.ID.Hex(), Username: doc.Username}, nil
}

// ExerciseLog выполняет выборку журнала на стороне MongoDB конвейером агрегации.
func (s *Storage) ExerciseLog(ctx context.Context, userID string, filter models.LogFilter) (*models.ExerciseLog, error) {
	const op = "storage.mongodb.ExerciseLog"

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cur, err := s.users.Aggregate(ctx, logPipeline(oid, filter))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}
	defer func() {
		_ = cur.Close(ctx)
	}()

	var docs []userDoc
	if err = cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrStorage, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}

	doc := docs[0]
	result := &models.ExerciseLog{
		UserID:   doc.ID.Hex(),
		Username: doc.Username,
		Log:      make([]models.Exercise, 0, len(doc.Exercises)),
	}
	for _, e := range doc.Exercises {
		result.Log = append(result.Log, models.Exercise{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date.UTC(),
		})
	}
	return result, nil
}
