package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/akozadaev/go_hotel_search/internal/models"
	"github.com/akozadaev/go_hotel_search/internal/service"
	"github.com/akozadaev/go_hotel_search/internal/upstream"
)

// encodeFailureBody отдается, если ответ не удалось сериализовать
const encodeFailureBody = `{"error":"Internal server error","message":"Failed to encode response"}` + "\n"

// writeJSON кодирует ответ до отправки заголовков, поэтому ошибка кодирования превращается в 500
func (h *Handlers) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		h.loggerFrom(r.Context()).Error("error encoding response", "status", status, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, encodeFailureBody)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.loggerFrom(r.Context()).Warn("error writing response", "error", err)
	}
}

// writeError переводит ошибку сервиса в HTTP статус и тело ErrorResponse
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)
	logger := h.loggerFrom(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request rejected", "status", status, "error", err)
	}
	h.writeJSON(w, r, status, body)
}

func errorResponse(err error) (int, models.ErrorResponse) {
	var (
		inputErr    *service.InputError
		upstreamErr *upstream.UpstreamError
		internalErr *service.InternalError
	)

	switch {
	case errors.As(err, &inputErr):
		if inputErr.Message == service.MissingFieldsMessage {
			resp := models.ErrorResponse{Error: inputErr.Message}
			if len(inputErr.Fields) > 0 {
				resp.Details = inputErr.Fields
			}
			return http.StatusBadRequest, resp
		}
		return http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request",
			Message: inputErr.Message,
		}
	case errors.Is(err, upstream.ErrCredentialsNotConfigured):
		return http.StatusInternalServerError, models.ErrorResponse{
			Error:   "API credentials not configured",
			Message: "Please set STAYAPI_KEY in the service environment variables.",
		}
	case errors.As(err, &upstreamErr):
		status := upstreamErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return status, models.ErrorResponse{
			Error:   "Upstream request failed",
			Message: upstreamErr.Message,
			Details: upstreamErr.Details,
			Help:    upstreamErr.Help,
		}
	case errors.As(err, &internalErr):
		return http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Internal server error",
			Message: "Unexpected failure while processing hotels",
		}
	default:
		return http.StatusInternalServerError, models.ErrorResponse{
			Error: "Internal server error",
		}
	}
}
