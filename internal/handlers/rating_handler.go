package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recipe-nest/internal/dto"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/httpresp"
	ucRating "github.com/BruksfildServices01/recipe-nest/internal/usecase/rating"
)

type RatingHandler struct {
	submit *ucRating.SubmitRating
}

func NewRatingHandler(submit *ucRating.SubmitRating) *RatingHandler {
	return &RatingHandler{submit: submit}
}

type RatingRequest struct {
	RecipeID uint `json:"recipeId" binding:"required"`
	Rating   int  `json:"rating"`
}

func (h *RatingHandler) Create(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	res, err := h.submit.Execute(c.Request.Context(), currentActor(c), req.RecipeID, req.Rating)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.RatingResultDTO{
		ID:            res.Rating.ID,
		RecipeID:      res.Rating.RecipeID,
		Rating:        res.Rating.RatingValue,
		RatedAt:       res.Rating.RatedAt,
		AverageRating: dto.Round2(res.Summary.Average),
		RatingCount:   res.Summary.Count,
	})
}
