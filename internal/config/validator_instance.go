package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	opNames = map[string]struct{}{
		OpAdd: {}, OpRemove: {}, OpUpdate: {}, OpMove: {}, OpDrop: {}, OpUndo: {}, OpRedo: {},
		OpSelect: {}, OpRandomize: {}, OpSetColor: {}, OpSiteType: {}, OpRadius: {}, OpShadow: {}, OpFonts: {},
		OpEffect: {},
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(fieldTagName)

		_ = v.RegisterValidation("site_type", func(fl validator.FieldLevel) bool {
			_, err := layout.ParseSiteType(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("theme_role", func(fl validator.FieldLevel) bool {
			_, err := color.ParseRole(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("font", func(fl validator.FieldLevel) bool {
			return theme.IsFont(fl.Field().String())
		})

		_ = v.RegisterValidation("script_op", func(fl validator.FieldLevel) bool {
			_, ok := opNames[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// fieldTagName reports fields by their yaml or mapstructure key so errors
// name what the user wrote.
func fieldTagName(field reflect.StructField) string {
	for _, key := range []string{"yaml", "mapstructure"} {
		name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
