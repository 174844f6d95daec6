package http

import (
	"net/http"

	"investment-assistant/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupPrompts(base *echo.Group) {
	v1 := base.Group("/v1/prompts")
	{
		v1.POST("", h.CreatePrompt)
		v1.GET("", h.ListPrompts)
		v1.GET("/categories", h.PromptCategories)
		v1.GET("/:id", h.GetPrompt)
		v1.PUT("/:id", h.UpdatePrompt)
		v1.DELETE("/:id", h.DeletePrompt)
	}
}

func (h *HttpAPIHandler) CreatePrompt(c echo.Context) error {
	var req dto.SavePromptRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	id, err := h.service.PromptService.Create(c.Request().Context(), req.Name, req.PromptContent, req.Category)
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Prompt created", map[string]uint{"id": id}))
}

func (h *HttpAPIHandler) ListPrompts(c echo.Context) error {
	prompts, err := h.service.PromptService.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", prompts))
}

func (h *HttpAPIHandler) PromptCategories(c echo.Context) error {
	categories, err := h.service.PromptService.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", categories))
}

func (h *HttpAPIHandler) GetPrompt(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	prompt, err := h.service.PromptService.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", prompt))
}

func (h *HttpAPIHandler) UpdatePrompt(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req dto.SavePromptRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	if err := h.service.PromptService.Update(c.Request().Context(), id, req.Name, req.PromptContent, req.Category); err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Prompt updated", nil))
}

func (h *HttpAPIHandler) DeletePrompt(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.service.PromptService.Delete(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Prompt deleted", nil))
}
