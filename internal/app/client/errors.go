package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork запрос не дошел до сервера или ответ не удалось прочитать
	ErrNetwork = errors.New("network failure")
	// ErrMalformedResponse ответ сервера не соответствует контракту
	ErrMalformedResponse = errors.New("malformed response")
	// ErrUnknownField поле черновика с таким именем не существует
	ErrUnknownField = errors.New("unknown field")
)

// NetworkError ошибка транспорта или разбора ответа
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

func malformed(op, format string, args ...any) error {
	return &NetworkError{
		Op:  op,
		Err: fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...)),
	}
}

// ServerError сервер ответил статусом не из 2xx
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Reason()
}

// Reason текст ошибки сервера или "HTTP {status}", если сервер его не прислал
func (e *ServerError) Reason() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// Reason текст причины для баннера ошибки
func Reason(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Reason()
	}
	return err.Error()
}
