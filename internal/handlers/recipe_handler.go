package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/dto"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/httpresp"
	ucRecipe "github.com/BruksfildServices01/recipe-nest/internal/usecase/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/usecase/upload"
)

const recipeNotFound = "recipe_not_found"

// ======================================================
// HANDLER
// ======================================================

type RecipeHandler struct {
	list   *ucRecipe.ListRecipes
	stats  *ucRecipe.ChefStats
	get    *ucRecipe.GetRecipe
	create *ucRecipe.CreateRecipe
	update *ucRecipe.UpdateRecipe
	remove *ucRecipe.DeleteRecipe

	maxUploadBytes int64
}

func NewRecipeHandler(
	list *ucRecipe.ListRecipes,
	stats *ucRecipe.ChefStats,
	get *ucRecipe.GetRecipe,
	create *ucRecipe.CreateRecipe,
	update *ucRecipe.UpdateRecipe,
	remove *ucRecipe.DeleteRecipe,
	maxUploadBytes int64,
) *RecipeHandler {
	return &RecipeHandler{
		list:           list,
		stats:          stats,
		get:            get,
		create:         create,
		update:         update,
		remove:         remove,
		maxUploadBytes: maxUploadBytes,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// RecipeRequest binds from multipart forms (capitalized field names) or JSON.
type RecipeRequest struct {
	Title        string  `json:"title" form:"Title"`
	Type         *string `json:"type" form:"Type"`
	Cuisine      *string `json:"cuisine" form:"Cuisine"`
	Description  string  `json:"description" form:"Description"`
	Ingredients  *string `json:"ingredients" form:"Ingredients"`
	Instructions *string `json:"instructions" form:"Instructions"`
}

func (r RecipeRequest) input() ucRecipe.Input {
	return ucRecipe.Input{
		Title:        r.Title,
		Type:         r.Type,
		Cuisine:      r.Cuisine,
		Description:  r.Description,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
	}
}

func (h *RecipeHandler) bind(c *gin.Context) (RecipeRequest, bool) {
	var req RecipeRequest
	if err := c.ShouldBind(&req); err != nil {
		if isTooLarge(err) {
			httperr.Respond(c, fileTooLarge("Image"))
		} else {
			httperr.Respond(c, httperr.FromBinding(err))
		}
		return req, false
	}
	return req, true
}

// ======================================================
// LISTINGS
// ======================================================

func (h *RecipeHandler) List(c *gin.Context) {
	f := recipe.Filter{
		Type:    c.Query("type"),
		Cuisine: c.Query("cuisine"),
		Query:   c.Query("q"),
	}
	if raw := strings.TrimSpace(c.Query("chefId")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.Respond(c, httperr.Validation("invalid_request", "Query parameters are invalid.").
				WithField("chefId", "must be a number"))
			return
		}
		f.ChefID = uint(id)
	}
	h.respondList(c, f)
}

func (h *RecipeHandler) Mine(c *gin.Context) {
	h.respondList(c, recipe.Filter{ChefID: currentActor(c).UserID})
}

func (h *RecipeHandler) All(c *gin.Context) {
	h.respondList(c, recipe.Filter{})
}

func (h *RecipeHandler) respondList(c *gin.Context, f recipe.Filter) {
	listings, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewRecipes(listings))
}

func (h *RecipeHandler) MyStats(c *gin.Context) {
	s, err := h.stats.Execute(c.Request.Context(), currentActor(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewChefStats(s))
}

// ======================================================
// SINGLE RECIPE
// ======================================================

func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", recipeNotFound)
	if !ok {
		return
	}

	l, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewRecipe(l))
}

func (h *RecipeHandler) Create(c *gin.Context) {
	limitBody(c, h.maxUploadBytes)

	req, ok := h.bind(c)
	if !ok {
		return
	}

	var image *upload.File
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		fh, _, err := formFile(c, "Image")
		if err != nil {
			httperr.Respond(c, upload.ErrInvalidImage("Image"))
			return
		}
		if fh != nil {
			if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
				httperr.Respond(c, fileTooLarge("Image"))
				return
			}
			f, err := fh.Open()
			if err != nil {
				httperr.Respond(c, err)
				return
			}
			defer f.Close()
			image = &upload.File{Name: fh.Filename, Body: f}
		}
	}

	l, err := h.create.Execute(c.Request.Context(), currentActor(c), req.input(), image)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.NewRecipe(l))
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", recipeNotFound)
	if !ok {
		return
	}
	limitBody(c, h.maxUploadBytes)

	req, ok := h.bind(c)
	if !ok {
		return
	}

	l, err := h.update.Execute(c.Request.Context(), currentActor(c), id, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewRecipe(l))
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", recipeNotFound)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), currentActor(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
