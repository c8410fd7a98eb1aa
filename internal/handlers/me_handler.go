package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
	"github.com/BruksfildServices01/sales-crm/internal/httpresp"
	"github.com/BruksfildServices01/sales-crm/internal/middleware"
	ucAuth "github.com/BruksfildServices01/sales-crm/internal/usecase/auth"
)

type MeHandler struct {
	me *ucAuth.Me
}

func NewMeHandler(me *ucAuth.Me) *MeHandler {
	return &MeHandler{me: me}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.me.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": toSessionUser(u)})
}
