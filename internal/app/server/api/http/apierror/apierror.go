package apierror

import (
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// Error тело любой ошибки API: {"error": "..."}
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error" doc:"Описание ошибки"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.Status
}

// New заменяет huma.NewError. Детали валидации huma дописываются к сообщению.
func New(status int, msg string, errs ...error) huma.StatusError {
	details := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err)
		}
	}
	if len(details) > 0 {
		msg = fmt.Sprintf("%s: %v", msg, errors.Join(details...))
	}

	return &Error{Status: status, Message: msg}
}

// Install подменяет фабрику ошибок huma
func Install() {
	huma.NewError = New
}
