// Package datefmt разбирает даты из запросов и форматирует их для ответов API.
package datefmt

import (
	"errors"
	"strings"
	"time"
)

// Layout формат даты в ответах API, например "Mon Jan 01 2024".
const Layout = "Mon Jan 02 2006"

// ErrEmpty возвращается при разборе пустой строки.
var ErrEmpty = errors.New("empty date")

var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	Layout,
}

// Parse разбирает дату в одном из поддерживаемых форматов
// и возвращает начало соответствующего календарного дня в UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmpty
	}
	var err error
	for _, layout := range layouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, err
}

// Day отбрасывает время суток, оставляя календарный день в UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Render форматирует дату для ответа API. Результат не зависит от локали
// и часового пояса сервера.
func Render(t time.Time) string {
	return t.UTC().Format(Layout)
}
