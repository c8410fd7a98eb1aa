package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-crm/internal/dto"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/httpresp"
	"github.com/BruksfildServices01/sales-crm/internal/middleware"
	ucSale "github.com/BruksfildServices01/sales-crm/internal/usecase/sale"
)

type SaleHandler struct {
	list   *ucSale.ListSales
	update *ucSale.UpdateSale
}

func NewSaleHandler(list *ucSale.ListSales, update *ucSale.UpdateSale) *SaleHandler {
	return &SaleHandler{list: list, update: update}
}

type UpdateSaleRequest struct {
	AmountCents *int64               `json:"amount_cents" binding:"omitempty,min=0"`
	PlanName    dto.Nullable[string] `json:"plan_name"`
	PaymentRef  dto.Nullable[string] `json:"payment_ref"`
	PaidAt      dto.Nullable[string] `json:"paid_at"`
}

func (h *SaleHandler) List(c *gin.Context) {
	leads, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c), ucSale.ListSalesInput{
		Query:    c.Query("q"),
		PlanName: c.Query("plan_name"),
		Paid:     c.Query("paid"),
		From:     c.Query("from"),
		To:       c.Query("to"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.ToSaleDTOs(leads))
}

func (h *SaleHandler) Update(c *gin.Context) {
	var req UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	sale, l, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), ucSale.UpdateSaleInput{
		AmountCents: req.AmountCents,
		PlanName:    req.PlanName,
		PaymentRef:  req.PaymentRef,
		PaidAt:      req.PaidAt,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"sale": dto.ToSaleDTO(sale, l)})
}
