package user

import (
	"github.com/BruksfildServices01/recipe-nest/internal/validators"
)

// ValidateChefFields requires title and specialty for chef accounts.
func ValidateChefFields(role Role, roleTitle, specialty *string, fields validators.Fields) {
	if !role.RequiresChefProfile() {
		return
	}
	if roleTitle == nil {
		fields.Add("roleTitle", "is required for chefs")
	}
	if specialty == nil {
		fields.Add("specialty", "is required for chefs")
	}
}
