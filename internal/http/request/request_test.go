package request

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/exercise-tracker/internal/models"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        models.DummyExercise
		wantErr     bool
	}{
		{
			name:        "json with numeric duration",
			contentType: "application/json",
			body:        `{"description":"run","duration":30,"date":"2024-01-01"}`,
			want:        models.DummyExercise{Description: "run", Duration: "30", Date: "2024-01-01"},
		},
		{
			name:        "json with string duration",
			contentType: "application/json; charset=utf-8",
			body:        `{"description":"run","duration":"45"}`,
			want:        models.DummyExercise{Description: "run", Duration: "45"},
		},
		{
			name:        "form with extra fields",
			contentType: "application/x-www-form-urlencoded",
			body:        ":_id=abc&description=swim&duration=20&date=",
			want:        models.DummyExercise{Description: "swim", Duration: "20"},
		},
		{
			name:        "form with unknown keys only",
			contentType: "application/x-www-form-urlencoded",
			body:        "username=alice&description=row&duration=15",
			want:        models.DummyExercise{Description: "row", Duration: "15"},
		},
		{
			name:        "no content type falls back to json",
			contentType: "",
			body:        `{"description":"walk","duration":5}`,
			want:        models.DummyExercise{Description: "walk", Duration: "5"},
		},
		{
			name:        "broken json",
			contentType: "application/json",
			body:        `{"description":`,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			var got models.DummyExercise
			err := Decode(req, &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
