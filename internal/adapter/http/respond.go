package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"funnel-engine/internal/core/port"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors to HTTP statuses. Server-side failures
// are logged and answered with a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		msg = "internal error"
	}
	h.writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, port.ErrCampaignNotFound):
		return http.StatusNotFound, "campaign_not_found"
	case errors.Is(err, port.ErrNoActiveVariations):
		return http.StatusNotFound, "campaign_unavailable"
	case errors.Is(err, port.ErrVisitorNotFound):
		return http.StatusNotFound, "visitor_not_found"
	case errors.Is(err, port.ErrVariationNotFound):
		return http.StatusNotFound, "variation_not_found"
	case errors.Is(err, port.ErrNoModuleVariant):
		return http.StatusNotFound, "presentation_unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads a JSON body into dst and validates it. Every failure is
// reported as port.ErrInvalidInput.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body", port.ErrInvalidInput)
	}
	if err := h.validate.Struct(dst); err != nil {
		var fields validator.ValidationErrors
		if !errors.As(err, &fields) {
			return fmt.Errorf("%w: %w", port.ErrInvalidInput, err)
		}
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			msgs = append(msgs, fmt.Sprintf("%s failed %q", f.Field(), f.Tag()))
		}
		return fmt.Errorf("%w: %s", port.ErrInvalidInput, strings.Join(msgs, ", "))
	}
	return nil
}
