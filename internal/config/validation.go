package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/swatchy/internal/designsystem"
	"github.com/alexisbeaulieu97/swatchy/internal/shadow"
	swatchyerrors "github.com/alexisbeaulieu97/swatchy/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation on a design-system document.
func ValidateDocument(doc *designsystem.Document) error {
	if doc == nil {
		return swatchyerrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	if main := doc.Themes.Main; main != nil {
		for i, other := range doc.Themes.Others {
			if other.Name == main.Name {
				return swatchyerrors.NewValidationError(fmt.Sprintf("themes.others[%d].name", i), fmt.Sprintf("duplicates main theme %q", main.Name), nil)
			}
		}
	}

	for _, role := range doc.Semantic.Roles() {
		if role.Token == "" {
			continue
		}
		if _, ok := designsystem.ResolveToken(doc.Palettes, role.Token); !ok {
			return swatchyerrors.NewValidationError("semantic."+role.Role, fmt.Sprintf("references unknown token %q", role.Token), nil)
		}
	}

	for i, src := range doc.Shadows {
		if _, err := shadow.ParseComposite(src.Value); err != nil {
			return swatchyerrors.NewValidationError(fmt.Sprintf("shadows[%d].value", i), err.Error(), err)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into swatchy validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Value() != nil && ve.Tag() != "required" {
			msg = fmt.Sprintf("%s (value %v)", msg, ve.Value())
		}
		return swatchyerrors.NewValidationError(field, msg, err)
	}

	return swatchyerrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace. Names already come
// from yaml tags.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
