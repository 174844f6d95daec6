package http

import (
	"net/http"

	"investment-assistant/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupGptTrends(base *echo.Group) {
	v1 := base.Group("/v1/gpt-trends")
	{
		v1.POST("", h.CreateGptTrend)
		v1.GET("", h.ListGptTrends)
		v1.GET("/:id", h.GetGptTrend)
		v1.PUT("/:id", h.UpdateGptTrend)
		v1.PATCH("/:id/idea", h.UpdateGptTrendIdea)
		v1.DELETE("/:id", h.DeleteGptTrend)

		v1.POST("/:id/ideas", h.AddLegacyIdea)
		v1.GET("/:id/ideas", h.ListLegacyIdeas)
	}
	legacy := base.Group("/v1/gpt-ideas")
	{
		legacy.PUT("/:id", h.UpdateLegacyIdea)
		legacy.DELETE("/:id", h.DeleteLegacyIdea)
	}
}

func (h *HttpAPIHandler) CreateGptTrend(c echo.Context) error {
	var req dto.CreateGptTrendRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	id, err := h.service.GptTrendService.Create(c.Request().Context(), req.Title, req.TrendContent, req.IdeaContent)
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("GPT trend created", map[string]uint{"id": id}))
}

func (h *HttpAPIHandler) ListGptTrends(c echo.Context) error {
	trends, err := h.service.GptTrendService.List(c.Request().Context(), limitParam(c))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", trends))
}

func (h *HttpAPIHandler) GetGptTrend(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	trend, err := h.service.GptTrendService.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", trend))
}

func (h *HttpAPIHandler) UpdateGptTrend(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateGptTrendRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	if err := h.service.GptTrendService.Update(c.Request().Context(), id, req.Title, req.TrendContent, req.IdeaContent); err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("GPT trend updated", nil))
}

func (h *HttpAPIHandler) UpdateGptTrendIdea(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateGptIdeaRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	if err := h.service.GptTrendService.UpdateIdeaContent(c.Request().Context(), id, req.IdeaContent); err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Idea updated", nil))
}

func (h *HttpAPIHandler) DeleteGptTrend(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.service.GptTrendService.Delete(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("GPT trend deleted", nil))
}

func (h *HttpAPIHandler) AddLegacyIdea(c echo.Context) error {
	trendID, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.CreateLegacyIdeaRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	id, err := h.service.GptTrendService.AddLegacyIdea(c.Request().Context(), trendID, req.IdeaContent)
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Idea added", map[string]uint{"id": id}))
}

func (h *HttpAPIHandler) ListLegacyIdeas(c echo.Context) error {
	trendID, err := idParam(c)
	if err != nil {
		return err
	}

	ideas, err := h.service.GptTrendService.ListLegacyIdeas(c.Request().Context(), trendID)
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", ideas))
}

func (h *HttpAPIHandler) UpdateLegacyIdea(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateGptIdeaRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	if err := h.service.GptTrendService.UpdateLegacyIdea(c.Request().Context(), id, req.IdeaContent); err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Idea updated", nil))
}

func (h *HttpAPIHandler) DeleteLegacyIdea(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.service.GptTrendService.DeleteLegacyIdea(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Idea deleted", nil))
}
