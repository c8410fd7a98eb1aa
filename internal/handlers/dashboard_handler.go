package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/httpresp"
	"github.com/BruksfildServices01/sales-crm/internal/middleware"
	ucDashboard "github.com/BruksfildServices01/sales-crm/internal/usecase/dashboard"
)

type DashboardHandler struct {
	summary    *ucDashboard.Summary
	funnel     *ucDashboard.Funnel
	timeSeries *ucDashboard.TimeSeries
}

func NewDashboardHandler(
	summary *ucDashboard.Summary,
	funnel *ucDashboard.Funnel,
	timeSeries *ucDashboard.TimeSeries,
) *DashboardHandler {
	return &DashboardHandler{
		summary:    summary,
		funnel:     funnel,
		timeSeries: timeSeries,
	}
}

func rangeFrom(c *gin.Context) ucDashboard.RangeInput {
	return ucDashboard.RangeInput{From: c.Query("from"), To: c.Query("to")}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	s, err := h.summary.Execute(c.Request.Context(), middleware.ActorFrom(c), rangeFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *DashboardHandler) Funnel(c *gin.Context) {
	rows, err := h.funnel.Execute(c.Request.Context(), middleware.ActorFrom(c), rangeFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, rows)
}

func (h *DashboardHandler) TimeSeries(c *gin.Context) {
	points, err := h.timeSeries.Execute(c.Request.Context(), middleware.ActorFrom(c), rangeFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, points)
}
