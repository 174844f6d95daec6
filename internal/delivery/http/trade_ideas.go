package http

import (
	"net/http"

	"investment-assistant/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTradeIdeas(base *echo.Group) {
	v1 := base.Group("/v1/trade-ideas")
	{
		v1.POST("", h.CreateTradeIdea)
		v1.GET("", h.ListTradeIdeas)
		v1.PATCH("/:id/status", h.UpdateTradeIdeaStatus)
		v1.DELETE("/:id", h.DeleteTradeIdea)
		v1.POST("/backfill-prices", h.BackfillIdeaPrices)
	}
}

func (h *HttpAPIHandler) CreateTradeIdea(c echo.Context) error {
	var req dto.CreateTradeIdeaRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	id, err := h.service.TradeIdeaService.Create(c.Request().Context(), req)
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Trade idea created", map[string]uint{"id": id}))
}

func (h *HttpAPIHandler) ListTradeIdeas(c echo.Context) error {
	ideas, err := h.service.TradeIdeaService.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", ideas))
}

func (h *HttpAPIHandler) UpdateTradeIdeaStatus(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTradeIdeaStatusRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	if err := h.service.TradeIdeaService.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Status updated", nil))
}

func (h *HttpAPIHandler) DeleteTradeIdea(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.service.TradeIdeaService.Delete(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Trade idea deleted", nil))
}

func (h *HttpAPIHandler) BackfillIdeaPrices(c echo.Context) error {
	result, err := h.service.TradeIdeaService.BackfillCreationPrices(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Backfill complete", result))
}
