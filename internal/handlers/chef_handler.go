package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recipe-nest/internal/dto"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/httpresp"
	"github.com/BruksfildServices01/recipe-nest/internal/usecase/profile"
)

type ChefHandler struct {
	list *profile.ListChefs
}

func NewChefHandler(list *profile.ListChefs) *ChefHandler {
	return &ChefHandler{list: list}
}

func (h *ChefHandler) List(c *gin.Context) {
	chefs, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewChefSummaries(chefs))
}
