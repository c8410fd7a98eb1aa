package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-crm/internal/dto"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/httpresp"
	"github.com/BruksfildServices01/sales-crm/internal/middleware"
	ucLead "github.com/BruksfildServices01/sales-crm/internal/usecase/lead"
)

// ======================================================
// HANDLER
// ======================================================

type LeadHandler struct {
	create   *ucLead.CreateLead
	get      *ucLead.GetLead
	list     *ucLead.ListLeads
	update   *ucLead.UpdateLead
	delete   *ucLead.DeleteLead
	move     *ucLead.MoveLead
	markSold *ucLead.MarkSold
}

func NewLeadHandler(
	create *ucLead.CreateLead,
	get *ucLead.GetLead,
	list *ucLead.ListLeads,
	update *ucLead.UpdateLead,
	del *ucLead.DeleteLead,
	move *ucLead.MoveLead,
	markSold *ucLead.MarkSold,
) *LeadHandler {
	return &LeadHandler{
		create:   create,
		get:      get,
		list:     list,
		update:   update,
		delete:   del,
		move:     move,
		markSold: markSold,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateLeadRequest struct {
	Name       string  `json:"name" binding:"required,min=2"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	City       *string `json:"city"`
	Source     *string `json:"source"`
	Notes      *string `json:"notes"`
	ValueCents int64   `json:"value_cents" binding:"min=0"`
	StageID    string  `json:"stage_id" binding:"required"`
	OwnerID    string  `json:"owner_id"`
}

type UpdateLeadRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2"`
	ValueCents *int64  `json:"value_cents" binding:"omitempty,min=0"`

	Phone   dto.Nullable[string] `json:"phone"`
	Email   dto.Nullable[string] `json:"email"`
	City    dto.Nullable[string] `json:"city"`
	Source  dto.Nullable[string] `json:"source"`
	Notes   dto.Nullable[string] `json:"notes"`
	OwnerID dto.Nullable[string] `json:"owner_id"`
}

type MoveLeadRequest struct {
	StageID string `json:"stage_id" binding:"required"`
}

type MarkSoldRequest struct {
	AmountCents *int64  `json:"amount_cents" binding:"required,min=0"`
	PlanName    *string `json:"plan_name"`
	PaymentRef  *string `json:"payment_ref"`
}

// ======================================================
// QUERIES
// ======================================================

func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c), ucLead.ListLeadsInput{
		Query:   c.Query("q"),
		StageID: c.Query("stage_id"),
		OwnerID: c.Query("owner_id"),
		From:    c.Query("from"),
		To:      c.Query("to"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.ToLeadDTOs(leads))
}

func (h *LeadHandler) Get(c *gin.Context) {
	l, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"lead": dto.ToLeadDTO(l)})
}

// ======================================================
// COMMANDS
// ======================================================

func (h *LeadHandler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	l, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c), ucLead.CreateLeadInput{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		City:       req.City,
		Source:     req.Source,
		Notes:      req.Notes,
		ValueCents: req.ValueCents,
		StageID:    req.StageID,
		OwnerID:    req.OwnerID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"lead": dto.ToLeadDTO(l)})
}

func (h *LeadHandler) Update(c *gin.Context) {
	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	l, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), ucLead.UpdateLeadInput{
		Name:       req.Name,
		ValueCents: req.ValueCents,
		Phone:      req.Phone,
		Email:      req.Email,
		City:       req.City,
		Source:     req.Source,
		Notes:      req.Notes,
		OwnerID:    req.OwnerID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"lead": dto.ToLeadDTO(l)})
}

func (h *LeadHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

func (h *LeadHandler) Move(c *gin.Context) {
	var req MoveLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	l, err := h.move.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), req.StageID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"lead": dto.ToLeadDTO(l)})
}

func (h *LeadHandler) MarkSold(c *gin.Context) {
	var req MarkSoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	l, sale, err := h.markSold.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), ucLead.MarkSoldInput{
		AmountCents: *req.AmountCents,
		PlanName:    req.PlanName,
		PaymentRef:  req.PaymentRef,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"lead": dto.ToLeadDTO(l),
		"sale": sale,
	})
}
