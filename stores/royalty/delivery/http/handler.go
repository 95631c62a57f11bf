package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/OneIdeaStart/dewild-royalties/base/ctx"
	"github.com/OneIdeaStart/dewild-royalties/base/delivery"
	"github.com/OneIdeaStart/dewild-royalties/domain"
)

type royaltyHandler struct {
	royalty domain.RoyaltyUsecase
}

// New registers the trigger and log routes. These are thin callers into
// the orchestrator; the dashboard consumes the returned run report as-is.
func New(e *echo.Echo, royalty domain.RoyaltyUsecase) {
	handler := &royaltyHandler{
		royalty: royalty,
	}
	g := e.Group("/royalty")
	g.POST("/reconcile", handler.reconcileManual)
	g.POST("/reconcile/scheduled", handler.reconcileScheduled)
	g.GET("/logs", handler.recentLogs)
}

func (h *royaltyHandler) reconcileManual(c echo.Context) error {
	return h.reconcile(c, domain.TriggerManual)
}

func (h *royaltyHandler) reconcileScheduled(c echo.Context) error {
	return h.reconcile(c, domain.TriggerScheduled)
}

func (h *royaltyHandler) reconcile(c echo.Context, trigger domain.Trigger) error {
	context := c.Get("ctx").(ctx.Ctx)
	report, err := h.royalty.Reconcile(context, trigger)
	if err != nil {
		// the report still carries success=false for the dashboard
		return c.JSON(http.StatusInternalServerError, report)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *royaltyHandler) recentLogs(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	limit := 100
	if l := c.QueryParam("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		limit = parsed
	}

	logs, err := h.royalty.RecentLogs(context, limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, logs)
}
