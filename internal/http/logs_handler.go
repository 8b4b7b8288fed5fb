package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brewops/cafe-service/internal/domain/model"
	"github.com/brewops/cafe-service/internal/i18n"
	"github.com/brewops/cafe-service/internal/service"
)

// LogsHandler provides HTTP handlers for querying stored request and audit logs.
type LogsHandler struct {
	loggingService service.LoggingService
}

// NewLogsHandler creates a new LogsHandler instance.
func NewLogsHandler(loggingService service.LoggingService) *LogsHandler {
	return &LogsHandler{loggingService: loggingService}
}

// queryOptions builds LogQueryOptions from query parameters.
func (h *LogsHandler) queryOptions(c *gin.Context) model.LogQueryOptions {
	opts := model.LogQueryOptions{
		RequestID: c.Query("request_id"),
		Level:     c.Query("level"),
		Method:    c.Query("method"),
		Path:      c.Query("path"),
		Limit:     limitFromQuery(c),
	}

	if skipStr := c.Query("skip"); skipStr != "" {
		if skip, err := strconv.Atoi(skipStr); err == nil && skip > 0 {
			opts.Skip = skip
		}
	}
	if startStr := c.Query("start"); startStr != "" {
		if start, err := time.Parse(time.RFC3339, startStr); err == nil {
			opts.StartTime = &start
		}
	}
	if endStr := c.Query("end"); endStr != "" {
		if end, err := time.Parse(time.RFC3339, endStr); err == nil {
			opts.EndTime = &end
		}
	}

	return opts
}

// Query handles GET /api/logs requests.
//
// @Summary      Query logs
// @Description  Returns stored request and audit log entries, newest first. Filterable by request ID, level, method, path prefix and time range.
// @Tags         Logs
// @Produce      json
// @Param        request_id query string false "Filter by request ID"
// @Param        level query string false "Filter by level (info, warn, error)"
// @Param        method query string false "Filter by HTTP method"
// @Param        path query string false "Filter by path (regex, case-insensitive)"
// @Param        start query string false "Start of time range (RFC 3339)"
// @Param        end query string false "End of time range (RFC 3339)"
// @Param        limit query int false "Limit number of results"
// @Param        skip query int false "Skip results for pagination"
// @Success      200 {object} dto.SuccessResponse "Matching log entries"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - owner role required"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/logs [get]
func (h *LogsHandler) Query(c *gin.Context) {
	builder := NewResponseBuilder(c)

	entries, err := h.loggingService.QueryLogs(c.Request.Context(), h.queryOptions(c))
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(entries)
}

// Count handles GET /api/logs/count requests.
//
// @Summary      Count logs
// @Description  Returns the number of stored log entries matching the same filters as the query endpoint.
// @Tags         Logs
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Matching entry count"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - owner role required"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/logs/count [get]
func (h *LogsHandler) Count(c *gin.Context) {
	builder := NewResponseBuilder(c)

	count, err := h.loggingService.CountLogs(c.Request.Context(), h.queryOptions(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(map[string]int64{"count": count})
}
