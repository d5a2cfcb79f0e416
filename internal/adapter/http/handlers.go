package http

import (
	"net/http"
	"time"

	"intellidebt-backend/internal/riskmodel"

	"github.com/labstack/echo/v4"
)

type Handler struct{ model *riskmodel.Handle }

func NewHandler(model *riskmodel.Handle) *Handler { return &Handler{model: model} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "ok",
		"model_ready": h.model.Ready(),
		"time":        time.Now().UTC().Format(time.RFC3339Nano),
	})
}
