package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/kamataryo/sandbox-same-site-cookies/pkg/logger"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	Path       string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders the full error page for a status code
	ErrorPage func(ErrorPageParams) templ.Component

	// RequestID extracts the request id for logs and error pages
	RequestID func(context.Context) string
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// classifyError maps err to a status code, a message safe to display and a log level.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    ErrInternalServerError.Key,
		LogLevel:   slog.LevelError,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}
	if isClientError(info.StatusCode) {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo, requestID string) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestID),
		logger.Error(err),
		logger.Status(info.StatusCode),
		logger.Host(r.Host),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

func renderErrorPage(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	w, r := ctx.ResponseWriter(), ctx.Request()
	if cfg.ErrorPage == nil {
		http.Error(w, http.StatusText(info.StatusCode), info.StatusCode)
		return
	}

	page := cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		Path:       r.URL.Path,
	})
	if err := Templ(page, WithStatus(info.StatusCode)).Render(w, r); err != nil {
		log.Error("failed to render error page",
			logger.RequestID(requestID),
			logger.Error(err),
			logger.Event("render_error_page"),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// NewErrorHandler creates an error handler that logs the failure and renders
// the configured error page with the status carried by the error.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		var requestID string
		if cfg.RequestID != nil {
			requestID = cfg.RequestID(ctx)
		}
		info := classifyError(err)
		logError(log, ctx, err, info, requestID)
		renderErrorPage(ctx, cfg, info, requestID, log)
	}
}
