package service

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки бизнес-правил обнаруживаются до любой мутации и возвращаются
// вызывающему без частичного эффекта; их текст показывается пользователю
// как есть. Ошибки хранилища превращаются в ErrServiceUnavailable.
var (
	ErrNotFound           = errors.New("запись не найдена")
	ErrAlreadyReviewed    = errors.New("заявка уже рассмотрена")
	ErrInvalidRange       = errors.New("дата окончания не может быть раньше даты начала")
	ErrServiceUnavailable = errors.New("хранилище временно недоступно")
)

// ValidationError — отсутствующие или некорректные входные данные
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InsufficientBalanceError — запрошено больше дней или часов, чем
// доступно; несет фактический остаток для сообщения пользователю
type InsufficientBalanceError struct {
	Remaining int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("недостаточно дней отпуска: доступно %d, запрошено %d рабочих дней",
		e.Remaining, e.Requested)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
