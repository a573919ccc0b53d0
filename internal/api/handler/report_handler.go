package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasklite/task-tracker/internal/core/ports"
)

// ReportHandler serves the weekly activity report.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Weekly handles GET /v1/reports/weekly.
//
// @Summary      7-day activity report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  weeklyReportResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/reports/weekly [get]
func (h *ReportHandler) Weekly(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	report, err := h.reports.Weekly(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWeeklyResponse(report))
}
