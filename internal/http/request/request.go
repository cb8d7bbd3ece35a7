// Package request разбирает тела HTTP-запросов.
// Поддерживаются JSON и application/x-www-form-urlencoded: форма со стартовой
// страницы отправляет данные именно так.
package request

import (
	"net/http"

	"github.com/ajg/form"
	"github.com/go-chi/render"
)

// Decode разбирает тело запроса в v в зависимости от Content-Type.
// Лишние поля формы игнорируются, всё, что не форма, читается как JSON.
func Decode(r *http.Request, v any) error {
	switch render.GetRequestContentType(r) {
	case render.ContentTypeForm:
		d := form.NewDecoder(r.Body)
		d.IgnoreUnknownKeys(true)
		return d.Decode(v)
	default:
		return render.DecodeJSON(r.Body, v)
	}
}
