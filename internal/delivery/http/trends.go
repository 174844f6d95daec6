package http

import (
	"net/http"

	"investment-assistant/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTrends(base *echo.Group) {
	v1 := base.Group("/v1/trends")
	{
		v1.POST("", h.UpsertTrend)
		v1.GET("", h.ListTrends)
		v1.GET("/:date", h.GetTrendByDate)
	}
}

func (h *HttpAPIHandler) UpsertTrend(c echo.Context) error {
	var req dto.UpsertTrendRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	id, err := h.service.TrendService.Upsert(c.Request().Context(), req.WeekStartDate, req.TrendContent)
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Trend saved", map[string]uint{"id": id}))
}

func (h *HttpAPIHandler) ListTrends(c echo.Context) error {
	trends, err := h.service.TrendService.List(c.Request().Context(), limitParam(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", trends))
}

func (h *HttpAPIHandler) GetTrendByDate(c echo.Context) error {
	trend, err := h.service.TrendService.GetByDate(c.Request().Context(), c.Param("date"))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", trend))
}
