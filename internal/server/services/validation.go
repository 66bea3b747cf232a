package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gamecatalog/internal/common"
	"github.com/dmitrijs2005/gamecatalog/internal/server/models"
)

// validateGame checks the provided fields of p. With requireAll every field
// must be present, as on create.
func validateGame(p *models.GamePatch, requireAll bool) error {
	var problems []string

	checkString := func(field string, v **string) {
		if *v == nil {
			if requireAll {
				problems = append(problems, field+" is required")
			}
			return
		}
		trimmed := strings.TrimSpace(**v)
		if trimmed == "" {
			problems = append(problems, field+" must not be empty")
			return
		}
		*v = &trimmed
	}

	checkString("name", &p.Name)

	switch {
	case p.Price == nil:
		if requireAll {
			problems = append(problems, "price is required")
		}
	case *p.Price < 0:
		problems = append(problems, "price must not be negative")
	}

	switch {
	case p.Space == nil:
		if requireAll {
			problems = append(problems, "space is required")
		}
	case *p.Space <= 0:
		problems = append(problems, "space must be positive")
	}

	checkString("description", &p.Description)
	checkString("genre", &p.Genre)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", common.ErrorValidation, strings.Join(problems, "; "))
	}
	return nil
}
