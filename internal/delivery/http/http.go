package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"investment-assistant/internal/dto"
	"investment-assistant/internal/service"
	"investment-assistant/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
	log       *logger.Logger
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, service *service.Service, log *logger.Logger) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
		log:       log,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("/api")
	h.SetupTrends(base)
	h.SetupGptTrends(base)
	h.SetupTradeIdeas(base)
	h.SetupTrades(base)
	h.SetupPrompts(base)
	h.SetupMarket(base)
	h.SetupOverview(base)
}

// bind decodes and validates a request body; failures are reported as 400s.
func (h *HttpAPIHandler) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.validator.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// handleError maps service errors onto the response envelope: caller
// mistakes become 400/404, anything else is a storage failure surfaced as
// a generic message with the detail kept in the logs.
func (h *HttpAPIHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse(err.Error()))
	default:
		h.log.Error("database error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError,
			dto.NewBaseResponse(http.StatusInternalServerError, "database error", nil))
	}
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return uint(id), nil
}

func limitParam(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		return 0
	}
	return limit
}
