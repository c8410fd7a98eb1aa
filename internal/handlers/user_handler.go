package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/httpresp"
	"github.com/BruksfildServices01/sales-crm/internal/middleware"
	ucUser "github.com/BruksfildServices01/sales-crm/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	list       *ucUser.ListUsers
	create     *ucUser.CreateUser
	update     *ucUser.UpdateUser
	deactivate *ucUser.DeactivateUser
}

func NewUserHandler(
	list *ucUser.ListUsers,
	create *ucUser.CreateUser,
	update *ucUser.UpdateUser,
	deactivate *ucUser.DeactivateUser,
) *UserHandler {
	return &UserHandler{
		list:       list,
		create:     create,
		update:     update,
		deactivate: deactivate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Name      string `json:"name" binding:"required,min=2"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"omitempty,oneof=ADMIN MANAGER AGENT"`
	LeadScope string `json:"lead_scope" binding:"omitempty,oneof=ALL OWN"`
	Active    *bool  `json:"active"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
	Role      *string `json:"role" binding:"omitempty,oneof=ADMIN MANAGER AGENT"`
	LeadScope *string `json:"lead_scope" binding:"omitempty,oneof=ALL OWN"`
	Active    *bool   `json:"active"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	u, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c), ucUser.CreateUserInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		LeadScope: req.LeadScope,
		Active:    req.Active,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{"user": u})
}

func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	u, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), ucUser.UpdateUserInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		LeadScope: req.LeadScope,
		Active:    req.Active,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": u})
}

// Deactivate is the DELETE verb; users are never removed.
func (h *UserHandler) Deactivate(c *gin.Context) {
	if err := h.deactivate.Execute(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}
