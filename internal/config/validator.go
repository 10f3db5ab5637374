package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeExtensions = map[string]struct{}{".json": {}, ".yaml": {}, ".yml": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_path", func(fl validator.FieldLevel) bool {
			path := fl.Field().String()
			if strings.Contains(path, "\x00") {
				return false
			}
			_, ok := themeExtensions[strings.ToLower(filepath.Ext(path))]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks settings values.
func Validate(s Settings) error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return tonalerrors.NewValidationError("settings", err.Error(), err)
	}

	ve := ves[0]
	field := strings.ToLower(strings.TrimPrefix(ve.Namespace(), "Settings."))
	if field == "loglevel" {
		field = "log_level"
	}
	msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
	if ve.Tag() == "theme_path" {
		msg = fmt.Sprintf("%s must be a .json, .yaml or .yml file", field)
	}
	return tonalerrors.NewValidationError(field, msg, err)
}
