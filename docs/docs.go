// Package docs содержит описание API в формате Swagger для http-swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Список пользователей",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.UserResponse"}}},
                    "500": {"description": "Ошибка сервера", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Регистрирует пользователя и возвращает его идентификатор.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Создать пользователя",
                "parameters": [
                    {"description": "Имя пользователя", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.DummyUser"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UserResponse"}},
                    "400": {"description": "Некорректное тело запроса", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Ошибка сервера", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/users/{_id}/exercises": {
            "post": {
                "description": "Добавляет упражнение в журнал пользователя. Без даты используется текущий день.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Exercises"],
                "summary": "Добавить упражнение",
                "parameters": [
                    {"type": "string", "description": "ID пользователя", "name": "_id", "in": "path", "required": true},
                    {"description": "Упражнение", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.DummyExercise"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ExerciseResponse"}},
                    "400": {"description": "Некорректные данные", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Пользователь не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "422": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Ошибка сервера", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/users/{_id}/logs": {
            "get": {
                "description": "Возвращает упражнения пользователя в порядке добавления. from/to включительно, limit ограничивает количество. count равен длине log.",
                "produces": ["application/json"],
                "tags": ["Exercises"],
                "summary": "Журнал упражнений",
                "parameters": [
                    {"type": "string", "description": "ID пользователя", "name": "_id", "in": "path", "required": true},
                    {"type": "string", "description": "Нижняя граница даты, yyyy-mm-dd", "name": "from", "in": "query"},
                    {"type": "string", "description": "Верхняя граница даты, yyyy-mm-dd", "name": "to", "in": "query"},
                    {"type": "integer", "description": "Максимальное количество записей", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LogResponse"}},
                    "404": {"description": "Пользователь не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Ошибка сервера", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.DummyUser": {
            "type": "object",
            "required": ["username"],
            "properties": {"username": {"type": "string"}}
        },
        "models.DummyExercise": {
            "type": "object",
            "required": ["description", "duration"],
            "properties": {
                "description": {"type": "string"},
                "duration": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "models.UserResponse": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "_id": {"type": "string"}
            }
        },
        "models.ExerciseResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "username": {"type": "string"},
                "date": {"type": "string", "example": "Mon Jan 01 2024"},
                "duration": {"type": "integer"},
                "description": {"type": "string"}
            }
        },
        "models.LogEntry": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "duration": {"type": "integer"},
                "date": {"type": "string", "example": "Mon Jan 01 2024"}
            }
        },
        "models.LogResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "username": {"type": "string"},
                "count": {"type": "integer"},
                "log": {"type": "array", "items": {"$ref": "#/definitions/models.LogEntry"}}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "Error"},
                "error": {"type": "string", "example": "invalid request body"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Exercise Tracker API",
	Description:      "API для учёта пользователей и их упражнений",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
