package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation  = "validation_error"
	CodeConflict    = "time_conflict"
	CodePastTime    = "past_time"
	CodeNotFound    = "not_found"
	CodePersistence = "persistence_error"
)

type BusinessError struct {
	Code  string
	Field string
	Err   error
}

func (e BusinessError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("%s (%s): %v", e.Code, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s (%s)", e.Code, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrValidation aponta o campo obrigatório vazio ou inválido.
func ErrValidation(field string) error {
	return BusinessError{Code: CodeValidation, Field: field}
}

func ErrTimeConflict() error {
	return BusinessError{Code: CodeConflict}
}

func ErrPastTime() error {
	return BusinessError{Code: CodePastTime}
}

func ErrNotFound(entity string) error {
	return BusinessError{Code: CodeNotFound, Field: entity}
}

// ErrPersistence embrulha uma falha opaca de armazenamento.
func ErrPersistence(err error) error {
	if err == nil {
		return nil
	}
	var be BusinessError
	if errors.As(err, &be) {
		return err
	}
	return BusinessError{Code: CodePersistence, Err: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf devolve o código de negócio, ou "" para erros desconhecidos.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

func FieldOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Field
	}
	return ""
}

func StatusOf(err error) int {
	switch CodeOf(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeConflict:
		return http.StatusConflict
	case CodePastTime:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
