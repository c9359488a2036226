package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrCredentialsNotConfigured возвращается до сетевого запроса, если ключ API пуст
var ErrCredentialsNotConfigured = errors.New("API credentials not configured")

const unauthorizedHelp = "\n\nTroubleshooting:\n" +
	"1. Verify your API key is correct in the STAYAPI_KEY environment variable\n" +
	"2. Make sure there are no extra spaces or quotes in the key\n" +
	"3. Check that you're using the correct key from StayAPI dashboard\n" +
	"4. Restart the service after updating environment variables"

// UpstreamError описывает неуспешный ответ поставщика или непригодное тело ответа
type UpstreamError struct {
	StatusCode int    // HTTP статус, который будет возвращен клиенту
	Message    string // Сообщение поставщика или "HTTP <статус>"
	Details    any    // Разобранное тело ответа
	Help       string // Подсказка по устранению (для 401)
	Err        error  // Исходная ошибка, если есть
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream request failed (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("upstream request failed (status %d): %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// newStatusError разбирает тело неуспешного ответа. Не-JSON тело становится {"message": body}.
func newStatusError(status int, body []byte) *UpstreamError {
	var details map[string]any
	if err := json.Unmarshal(body, &details); err != nil || details == nil {
		details = map[string]any{"message": string(body)}
	}

	message, _ := details["message"].(string)
	if strings.TrimSpace(message) == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}

	upErr := &UpstreamError{
		StatusCode: status,
		Message:    message,
		Details:    details,
	}
	if status == http.StatusUnauthorized {
		upErr.Help = unauthorizedHelp
	}
	return upErr
}
