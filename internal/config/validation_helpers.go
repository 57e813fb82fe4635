package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	jcrosserrors "github.com/alexisbeaulieu97/jcross/pkg/errors"
)

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return jcrosserrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into jcross validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return jcrosserrors.NewValidationError(field, msg, err)
	}

	return jcrosserrors.NewValidationError("config", err.Error(), err)
}

var fieldNames = map[string]string{
	"themeid":       "theme_id",
	"minwidth":      "min_width",
	"minheight":     "min_height",
	"humanreadable": "human_readable",
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.ToLower(part)
		if mapped, ok := fieldNames[name]; ok {
			name = mapped
		}
		lowered = append(lowered, name)
	}
	return strings.Join(lowered, ".")
}
