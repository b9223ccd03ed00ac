package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

var messages = map[string]string{
	CodeValidation:  "Campo obrigatório inválido.",
	CodeConflict:    "Conflito de horário.",
	CodePastTime:    "Horário já passou.",
	CodeNotFound:    "Registro não encontrado.",
	CodePersistence: "Erro ao salvar dados.",
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// FromError traduz um erro de caso de uso na resposta HTTP correspondente.
func FromError(c *gin.Context, err error) {
	code := CodeOf(err)
	if code == "" {
		code = CodePersistence
	}

	c.JSON(StatusOf(err), HTTPError{
		Code:    code,
		Message: messages[code],
		Field:   FieldOf(err),
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}
