package http

import (
	"net/http"

	"investment-assistant/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTrades(base *echo.Group) {
	v1 := base.Group("/v1/trades")
	{
		v1.POST("", h.RecordTrade)
		v1.GET("", h.ListTrades)
		v1.GET("/statistics", h.TradeStatistics)
	}
}

func (h *HttpAPIHandler) RecordTrade(c echo.Context) error {
	var req dto.RecordTradeRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	id, err := h.service.TradeService.Record(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Trade recorded", map[string]uint{"id": id}))
}

func (h *HttpAPIHandler) ListTrades(c echo.Context) error {
	ctx := c.Request().Context()

	if symbol := c.QueryParam("symbol"); symbol != "" {
		trades, err := h.service.TradeService.ListBySymbol(ctx, symbol)
		if err != nil {
			return h.handleError(c, err)
		}
		return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", trades))
	}

	trades, err := h.service.TradeService.List(ctx, limitParam(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", trades))
}

func (h *HttpAPIHandler) TradeStatistics(c echo.Context) error {
	stats, err := h.service.TradeService.Statistics(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", stats))
}
