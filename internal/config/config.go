package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type AnkiConfig struct {
	URL   string `mapstructure:"url"`
	Deck  string `mapstructure:"deck"`
	Model string `mapstructure:"model"`
}

type CardConfig struct {
	Template     string   `mapstructure:"template" validate:"omitempty,oneof=vocabulary simple"`
	TemplatePath string   `mapstructure:"template_path" validate:"omitempty,file"`
	ExtraTags    []string `mapstructure:"extra_tags"`
}

type LanguagesConfig struct {
	Source string `mapstructure:"source" validate:"required"`
	Target string `mapstructure:"target" validate:"required"`
}

type TranslateConfig struct {
	// Mirrors overrides the built-in translation mirror order when non-empty.
	Mirrors   []string `mapstructure:"mirrors"`
	Retries   uint     `mapstructure:"retries"`
	BackoffMs uint64   `mapstructure:"backoff_ms"`
}

type Config struct {
	Anki      AnkiConfig      `mapstructure:"anki"`
	Card      CardConfig      `mapstructure:"card"`
	Languages LanguagesConfig `mapstructure:"languages"`
	Translate TranslateConfig `mapstructure:"translate"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vocabforge")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("anki.url", "http://127.0.0.1:8765")
	v.SetDefault("anki.model", "Basic")
	v.SetDefault("card.template", "vocabulary")
	v.SetDefault("languages.source", "en")
	v.SetDefault("languages.target", "ru")
	v.SetDefault("translate.retries", 2)
	v.SetDefault("translate.backoff_ms", 500)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything has a default.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	cfg.Card.ExtraTags = trimmed(cfg.Card.ExtraTags)
	cfg.Translate.Mirrors = trimmed(cfg.Translate.Mirrors)

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// trimmed drops surrounding whitespace and empty values.
func trimmed(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		result = append(result, value)
	}
	return result
}
