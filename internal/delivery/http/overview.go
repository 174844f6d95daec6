package http

import (
	"net/http"

	"investment-assistant/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupOverview(base *echo.Group) {
	base.GET("/v1/overview", h.Overview)
}

func (h *HttpAPIHandler) Overview(c echo.Context) error {
	overview, err := h.service.OverviewService.Overview(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", overview))
}
