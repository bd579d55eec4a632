package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/dateformatters/internal/locale"
	"github.com/julianstephens/dateformatters/internal/models"
	"github.com/julianstephens/dateformatters/internal/utils"
)

// Validate checks the configuration against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()

	_ = validate.RegisterValidation("style", func(fl validator.FieldLevel) bool {
		_, err := models.ParseStyle(fl.Field().String())
		return err == nil
	})

	// The built-in timezone tag rejects "Local"
	_ = validate.RegisterValidation("tz", func(fl validator.FieldLevel) bool {
		return utils.ValidateTimezone(fl.Field().String())
	})

	_ = validate.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		_, err := locale.Resolve(fl.Field().String())
		return err == nil
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q check (value %q)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
