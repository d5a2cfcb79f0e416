package http

import (
	"net/http"
	"time"

	"intellidebt-backend/internal/riskmodel"
	"intellidebt-backend/internal/usecase/outreach"
	"intellidebt-backend/internal/usecase/segmentation"

	"github.com/labstack/echo/v4"
)

// InsightHandler serves the aggregate/operational endpoints: segment
// distribution, the reminder job trigger, and artifact hot reload.
type InsightHandler struct {
	segments  *segmentation.Usecase
	outreach  *outreach.Usecase
	model     *riskmodel.Handle
	modelPath string
}

func NewInsightHandler(segments *segmentation.Usecase, out *outreach.Usecase, model *riskmodel.Handle, modelPath string) *InsightHandler {
	return &InsightHandler{segments: segments, outreach: out, model: model, modelPath: modelPath}
}

func (h *InsightHandler) SegmentOverview(c echo.Context) error {
	out, err := h.segments.Overview(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InsightHandler) RunReminders(c echo.Context) error {
	count, err := h.outreach.Run(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"reminders_sent": count})
}

// ReloadModel loads a fresh artifact and swaps it in atomically. The old
// model keeps serving readers until the new one is fully validated.
func (h *InsightHandler) ReloadModel(c echo.Context) error {
	m, err := riskmodel.Load(h.modelPath)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	}
	h.model.Swap(m)
	return c.JSON(http.StatusOK, map[string]any{"model_version": m.Version()})
}
