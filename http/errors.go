package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"consorcio-simulator/repository"
	"consorcio-simulator/service"
)

// AppError is the JSON error body returned by every endpoint.
type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	StatusCode int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newAppError(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, StatusCode: status}
}

var (
	errMethodNotAllowed = newAppError("METHOD_NOT_ALLOWED", "método não permitido", http.StatusMethodNotAllowed)
	errInvalidBody      = newAppError("BAD_REQUEST", "corpo da requisição inválido", http.StatusBadRequest)
	errRateLimited      = newAppError("RATE_LIMITED", "limite de requisições excedido", http.StatusTooManyRequests)
	errInternal         = newAppError("INTERNAL_SERVER_ERROR", "erro interno do servidor", http.StatusInternalServerError)
)

// toAppError maps service errors to their HTTP representation.
func toAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var bidErr *service.BidExceedsBalanceError
	if errors.As(err, &bidErr) {
		return &AppError{
			Code:       "BID_EXCEEDS_BALANCE",
			Message:    bidErr.Error(),
			StatusCode: http.StatusUnprocessableEntity,
			Details: map[string]any{
				"own_bid_value":                 bidErr.Bid,
				"corrected_outstanding_balance": bidErr.Balance,
			},
		}
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return parseValidationError(validationErr)
	}

	switch {
	case errors.Is(err, repository.ErrSimulationNotFound):
		return newAppError("SIMULATION_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrNoViableScenario):
		return newAppError("NO_VIABLE_SCENARIO", err.Error(), http.StatusUnprocessableEntity)
	}
	return errInternal
}

func parseValidationError(err *service.ValidationError) *AppError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err.Err, &fieldErrs) {
		return newAppError("VALIDATION_ERROR", err.Err.Error(), http.StatusBadRequest)
	}

	fields := make([]map[string]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, map[string]string{
			"field":   fe.Field(),
			"message": translateFieldError(fe),
		})
	}
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "erro de validação nos campos",
		StatusCode: http.StatusBadRequest,
		Details:    map[string]any{"fields": fields},
	}
}

func translateFieldError(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s é obrigatório", name)
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s deve ser menor ou igual a %s", name, fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s não pode ser maior que %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um dos valores: %s", name, fe.Param())
	default:
		return fmt.Sprintf("validação '%s' falhou para %s", fe.Tag(), name)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := toAppError(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, appErr.StatusCode, appErr)
}

// writeJSON encodes into a buffer first so a failed encoding never leaves a
// half-written 200 response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("error writing response", "error", err)
	}
}
