package add

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/exercise-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

// MockService реализует интерфейс add.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) AddExercise(ctx context.Context, userID string, req models.DummyExercise) (*models.User, *models.Exercise, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.User), args.Get(1).(*models.Exercise), args.Error(2)
}

func TestAddHandler(t *testing.T) {
	const userID = "65a1f0c2e4b0a1b2c3d4e5f6"
	user := &models.User{ID: userID, Username: "alice"}

	tests := []struct {
		name           string
		userID         string
		contentType    string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное добавление",
			userID:      userID,
			contentType: "application/json",
			body:        `{"description":"run","duration":30,"date":"2024-01-01"}`,
			setupMock: func(m *MockService) {
				m.On("AddExercise", mock.Anything, userID, models.DummyExercise{
					Description: "run", Duration: "30", Date: "2024-01-01",
				}).Return(user, &models.Exercise{
					Description: "run", Duration: 30, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"_id":"65a1f0c2e4b0a1b2c3d4e5f6","username":"alice","date":"Mon Jan 01 2024","duration":30,"description":"run"}`,
		},
		{
			name:        "форма без даты",
			userID:      userID,
			contentType: "application/x-www-form-urlencoded",
			body:        "description=swim&duration=45&date=",
			setupMock: func(m *MockService) {
				m.On("AddExercise", mock.Anything, userID, models.DummyExercise{
					Description: "swim", Duration: "45",
				}).Return(user, &models.Exercise{
					Description: "swim", Duration: 45, Date: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"_id":"65a1f0c2e4b0a1b2c3d4e5f6","username":"alice","date":"Sat Feb 03 2024","duration":45,"description":"swim"}`,
		},
		{
			name:           "нечисловая длительность",
			userID:         userID,
			contentType:    "application/x-www-form-urlencoded",
			body:           "description=run&duration=long",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Duration can contain only numbers"}`,
		},
		{
			name:           "нет описания",
			userID:         userID,
			contentType:    "application/json",
			body:           `{"duration":10}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Description is a required field"}`,
		},
		{
			name:        "некорректная дата",
			userID:      userID,
			contentType: "application/json",
			body:        `{"description":"run","duration":10,"date":"someday"}`,
			setupMock: func(m *MockService) {
				m.On("AddExercise", mock.Anything, userID, mock.Anything).
					Return(nil, nil, fmt.Errorf("op: %w: invalid date %q", models.ErrValidation, "someday"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid date \"someday\""}`,
		},
		{
			name:        "пользователь не найден",
			userID:      "unknown",
			contentType: "application/json",
			body:        `{"description":"run","duration":10}`,
			setupMock: func(m *MockService) {
				m.On("AddExercise", mock.Anything, "unknown", mock.Anything).
					Return(nil, nil, fmt.Errorf("op: %w", models.ErrUserNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:        "ошибка хранилища",
			userID:      userID,
			contentType: "application/json",
			body:        `{"description":"run","duration":10}`,
			setupMock: func(m *MockService) {
				m.On("AddExercise", mock.Anything, userID, mock.Anything).
					Return(nil, nil, models.ErrStorage)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not add exercise"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(sl.Discard(), mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/users/"+tt.userID+"/exercises", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			// Устанавливаем URL params с помощью роутера chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("_id", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
