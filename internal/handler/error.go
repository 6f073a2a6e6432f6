package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/teams-directory/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError преобразует ошибки хранилища в HTTP ответы. Пустой результат
// поиска ошибкой не считается и сюда не попадает
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	RespondWithError(w, r, http.StatusInternalServerError, string(domain.CodeInternal), "internal server error")
}
