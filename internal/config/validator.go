package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// newValidator builds the validator behind ConfigLoader. Messages report
// fields by their mapstructure keys so an error reads like the YAML file
// that caused it.
func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations > %w", err)
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		key, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if key == "-" {
			return ""
		}
		return key
	})

	// card.template_path must name a template the renderer can open; the
	// stock "file" rule only checks existence.
	if err := validate.RegisterValidation("file", isReadableFile); err != nil {
		return nil, nil, fmt.Errorf("validate.RegisterValidation > %w", err)
	}
	if err := validate.RegisterTranslation("file", trans,
		func(ut ut.Translator) error {
			return ut.Add("file", "{0} must point to a readable template file", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			message, _ := ut.T("file", configKey(fe))
			return message
		},
	); err != nil {
		return nil, nil, fmt.Errorf("validate.RegisterTranslation > %w", err)
	}

	return validate, trans, nil
}

// configKey strips the root struct name from a field namespace, leaving
// the dotted key as it appears in the config file, e.g.
// "Config.card.template_path" becomes "card.template_path".
func configKey(fe validator.FieldError) string {
	_, key, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return key
}

func isReadableFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = file.Close()
	return true
}
