package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/swatchy/internal/color"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	tokenNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	paletteRefPrefix = "palette-"
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("token_name", func(fl validator.FieldLevel) bool {
			return tokenNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			_, _, err := color.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("palette_ref", func(fl validator.FieldLevel) bool {
			ref := fl.Field().String()
			return strings.HasPrefix(ref, paletteRefPrefix) && len(ref) > len(paletteRefPrefix)
		})

		validateInst = v
	})

	return validateInst
}
