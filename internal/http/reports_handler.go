package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewops/cafe-service/internal/i18n"
	"github.com/brewops/cafe-service/internal/service"
)

// ReportsHandler provides HTTP handlers for daily reports.
type ReportsHandler struct {
	reportsService service.ReportsService
}

// NewReportsHandler creates a new ReportsHandler instance.
func NewReportsHandler(reportsService service.ReportsService) *ReportsHandler {
	return &ReportsHandler{reportsService: reportsService}
}

// Daily handles GET /api/reports/daily requests.
//
// @Summary      Daily summary
// @Description  Returns the summary for a day: cups sold, revenue, cost of goods sold and gross margin. A closed day returns the stored summary; an open day is computed live from the sales ledger.
// @Tags         Reports
// @Produce      json
// @Param        date query string false "Day to summarize (YYYY-MM-DD), defaults to today"
// @Success      200 {object} dto.SuccessResponse "Daily summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid date"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/reports/daily [get]
func (h *ReportsHandler) Daily(c *gin.Context) {
	builder := NewResponseBuilder(c)

	day, err := dayFromQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	summary, err := h.reportsService.Daily(c.Request.Context(), day)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(summary)
}

// CloseDay handles POST /api/reports/close requests.
//
// @Summary      Close a day
// @Description  Summarizes the day's sales and stores the summary. Closing is idempotent; closing the same day again overwrites the stored summary with a recomputed one.
// @Tags         Reports
// @Produce      json
// @Param        date query string false "Day to close (YYYY-MM-DD), defaults to today"
// @Success      200 {object} dto.SuccessResponse "Stored daily summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid date"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - owner role required"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/reports/close [post]
func (h *ReportsHandler) CloseDay(c *gin.Context) {
	builder := NewResponseBuilder(c)

	day, err := dayFromQuery(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	summary, err := h.reportsService.CloseDay(c.Request.Context(), day)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	auditLog(c, "daily_close", "Daily close performed", map[string]interface{}{
		"date":    summary.Date.Format("2006-01-02"),
		"revenue": summary.Revenue,
	})

	builder.SuccessOK(summary)
}

// History handles GET /api/reports/history requests.
//
// @Summary      Summary history
// @Description  Returns stored daily summaries, newest first.
// @Tags         Reports
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Stored summaries"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/reports/history [get]
func (h *ReportsHandler) History(c *gin.Context) {
	builder := NewResponseBuilder(c)

	summaries, err := h.reportsService.History(c.Request.Context(), limitFromQuery(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(summaries)
}
