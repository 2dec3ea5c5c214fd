package recipe

import (
	"strings"

	domain "github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
	"github.com/BruksfildServices01/recipe-nest/internal/validators"
)

// Input carries the editable text fields of a recipe. Keys in validation
// errors use the multipart names clients send.
type Input struct {
	Title        string
	Type         *string
	Cuisine      *string
	Description  string
	Ingredients  *string
	Instructions *string
}

func (in Input) validate() (Input, error) {
	fields := validators.Fields{}
	out := Input{
		Title:        fields.Required("Title", in.Title, domain.MaxTitleLen),
		Type:         fields.Optional("Type", in.Type, domain.MaxTypeLen),
		Cuisine:      fields.Optional("Cuisine", in.Cuisine, domain.MaxCuisineLen),
		Description:  fields.Required("Description", in.Description, 0),
		Ingredients:  textOrNil(in.Ingredients),
		Instructions: textOrNil(in.Instructions),
	}
	if !fields.Empty() {
		be := httperr.Validation("validation_failed", "Title and Description are required.")
		for k, v := range fields {
			be = be.WithField(k, v)
		}
		return Input{}, be
	}
	return out, nil
}

func (in Input) apply(r *models.Recipe) {
	r.Title = in.Title
	r.Type = in.Type
	r.Cuisine = in.Cuisine
	r.Description = in.Description
	r.Ingredients = in.Ingredients
	r.Instructions = in.Instructions
}

func textOrNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
