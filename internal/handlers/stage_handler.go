package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-crm/internal/domain/stage"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/httpresp"
	"github.com/BruksfildServices01/sales-crm/internal/middleware"
	ucStage "github.com/BruksfildServices01/sales-crm/internal/usecase/stage"
)

type StageHandler struct {
	list    *ucStage.ListStages
	create  *ucStage.CreateStage
	update  *ucStage.UpdateStage
	reorder *ucStage.ReorderStages
}

func NewStageHandler(
	list *ucStage.ListStages,
	create *ucStage.CreateStage,
	update *ucStage.UpdateStage,
	reorder *ucStage.ReorderStages,
) *StageHandler {
	return &StageHandler{
		list:    list,
		create:  create,
		update:  update,
		reorder: reorder,
	}
}

// --------- Requests ---------

type CreateStageRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Order    int    `json:"order" binding:"required,min=1"`
	IsClosed bool   `json:"is_closed"`
}

type UpdateStageRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Order    *int    `json:"order" binding:"omitempty,min=1"`
	IsClosed *bool   `json:"is_closed"`
}

type ReorderRequest struct {
	Order []stage.Position `json:"order" binding:"required,min=1,dive"`
}

// --------- Handlers ---------

func (h *StageHandler) List(c *gin.Context) {
	stages, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, stages)
}

func (h *StageHandler) Create(c *gin.Context) {
	var req CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	s, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c), ucStage.CreateStageInput{
		Name:     req.Name,
		Order:    req.Order,
		IsClosed: req.IsClosed,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"stage": s})
}

func (h *StageHandler) Update(c *gin.Context) {
	var req UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	s, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), ucStage.UpdateStageInput{
		Name:     req.Name,
		Order:    req.Order,
		IsClosed: req.IsClosed,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"stage": s})
}

func (h *StageHandler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	stages, err := h.reorder.Execute(c.Request.Context(), middleware.ActorFrom(c), req.Order)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, stages)
}
