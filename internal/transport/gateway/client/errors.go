package client

import (
	"errors"
	"fmt"
)

// ErrTransport сетевая ошибка при обращении к шлюзу (таймаут, обрыв соединения и т.п.).
var ErrTransport = errors.New("gateway transport error")

type StatusCodeError struct {
	Code int
	Body string
}

func NewStatusCodeError(code int, body string) *StatusCodeError {
	return &StatusCodeError{Code: code, Body: body}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}
