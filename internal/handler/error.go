package handler

import (
	"log/slog"
	"net/http"

	"github.com/laa-civil/bulkclaim/internal/domain"
)

// ErrorResponse renders the error page for a failed request, mapping the
// domain error code to an HTTP status. Upstream failures are surfaced
// as-is; the front-end has no authority to retry or substitute defaults
// for financial data.
func ErrorResponse(w http.ResponseWriter, r *http.Request, renderer *Renderer, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	status := ErrorCodeToHTTPStatus(code)

	logError(logger, r, err, code, status)

	w.WriteHeader(status)
	renderer.RenderHTTP(w, "error", map[string]any{
		"Title":   "Sorry, there is a problem with the service",
		"Message": domain.ErrorMessage(err),
		"Status":  status,
	})
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	case domain.EUPSTREAM:
		return http.StatusBadGateway // 502
	case domain.EMALFORMED:
		return http.StatusBadGateway // 502
	case domain.EINTERNAL:
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// logError logs at a level appropriate to the failure class. Client-side
// problems are informational; upstream and internal failures are errors.
func logError(logger *slog.Logger, r *http.Request, err error, code string, status int) {
	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"code", code,
		"status", status,
		"op", domain.ErrorOp(err),
		"error", err,
	}

	switch code {
	case domain.EINVALID, domain.ENOTFOUND:
		logger.Info("request failed", attrs...)
	default:
		logger.Error("request failed", attrs...)
	}
}
