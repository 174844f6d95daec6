package http

import (
	"net/http"
	"strings"

	"investment-assistant/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupMarket(base *echo.Group) {
	v1 := base.Group("/v1/market")
	{
		v1.GET("/quotes", h.MarketQuotes)
		v1.GET("/compare", h.MarketCompare)
		v1.GET("/search", h.MarketSearch)
	}
}

// symbolsParam accepts comma or space separated tickers.
func symbolsParam(c echo.Context) []string {
	raw := strings.ReplaceAll(c.QueryParam("symbols"), ",", " ")
	return strings.Fields(raw)
}

func (h *HttpAPIHandler) MarketQuotes(c echo.Context) error {
	view, err := h.service.MarketDataService.Quotes(c.Request().Context(), symbolsParam(c), c.QueryParam("range"))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", view))
}

func (h *HttpAPIHandler) MarketCompare(c echo.Context) error {
	view, err := h.service.MarketDataService.Compare(c.Request().Context(), symbolsParam(c), c.QueryParam("range"))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", view))
}

func (h *HttpAPIHandler) MarketSearch(c echo.Context) error {
	view, err := h.service.MarketDataService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", view))
}
