package service

import "fmt"

// MissingFieldsMessage - текст ошибки при незаполненных обязательных полях
const MissingFieldsMessage = "Missing required fields"

// InputError описывает некорректный запрос клиента. Сетевых запросов при этом не выполняется.
type InputError struct {
	Message string
	Fields  []string
}

func (e *InputError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %v", e.Message, e.Fields)
	}
	return e.Message
}

// InternalError - непредвиденный сбой при обработке запроса, перехваченный на границе сервиса
type InternalError struct {
	Cause any
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Cause)
}
