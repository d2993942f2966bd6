package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
	gridsmitherrors "github.com/alexisbeaulieu97/gridsmith/pkg/errors"
)

// ValidateSettings performs schema validation on user settings.
func ValidateSettings(s *Settings) error {
	if s == nil {
		return gridsmitherrors.NewValidationError("settings", "settings are nil", nil)
	}
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidateTheme checks a theme loaded from disk: palette colors, tokens and fonts.
func ValidateTheme(t theme.DesignTheme) error {
	if err := validatorInstance().Struct(t); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidateScript performs schema validation and then checks that each op
// carries the fields its kind needs.
func ValidateScript(script *Script) error {
	if script == nil {
		return gridsmitherrors.NewValidationError("script", "script is nil", nil)
	}
	if err := validatorInstance().Struct(script); err != nil {
		return convertValidationError(err)
	}
	for i, op := range script.Ops {
		if err := ValidateOp(i, op); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOp checks the per-kind required fields of a single op.
func ValidateOp(index int, op Op) error {
	v := validatorInstance()
	if err := v.Struct(op); err != nil {
		return convertValidationError(err)
	}

	missing := func(field string) error {
		return gridsmitherrors.NewValidationError(
			fieldForOp(index, field),
			withLine(op.Line, fmt.Sprintf("%s op requires %q", op.Op, field)),
			nil,
		)
	}

	switch op.Op {
	case OpAdd:
		if op.Type == "" {
			return missing("type")
		}
		if op.Area == "" {
			return missing("area")
		}
	case OpRemove, OpSelect:
		if op.ID == "" {
			return missing("id")
		}
	case OpUpdate:
		if op.ID == "" {
			return missing("id")
		}
		if op.Label == nil && op.Props == nil {
			return missing("label")
		}
	case OpMove:
		if op.ID == "" {
			return missing("id")
		}
		if op.Area == "" {
			return missing("area")
		}
	case OpDrop:
		if op.ID == "" {
			return missing("id")
		}
		if op.Over == "" {
			return missing("over")
		}
	case OpSetColor:
		if op.Role == "" {
			return missing("role")
		}
		if op.Hex == "" {
			return missing("hex")
		}
	case OpSiteType:
		if op.SiteType == "" {
			return missing("site_type")
		}
	case OpRadius:
		if _, err := theme.ParseRadius(op.Value); err != nil {
			return gridsmitherrors.NewValidationError(fieldForOp(index, "value"), withLine(op.Line, err.Error()), err)
		}
	case OpShadow:
		if _, err := theme.ParseShadow(op.Value); err != nil {
			return gridsmitherrors.NewValidationError(fieldForOp(index, "value"), withLine(op.Line, err.Error()), err)
		}
	case OpFonts:
		if op.Heading == "" && op.Body == "" {
			return missing("heading")
		}
	case OpEffect:
		if op.Effect == nil {
			return missing("effect")
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return gridsmitherrors.NewValidationError(field, msg, err)
	}

	return gridsmitherrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForOp(index int, field string) string {
	return fmt.Sprintf("ops[%d].%s", index, field)
}

func withLine(line int, msg string) string {
	if line > 0 {
		return fmt.Sprintf("line %d: %s", line, msg)
	}
	return msg
}
