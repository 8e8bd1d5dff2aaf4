package card

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed templates/vocabulary.html.go.tmpl
var fallbackVocabularyTemplate string

//go:embed templates/simple.html.go.tmpl
var fallbackSimpleTemplate string

// TemplateKind selects which embedded card template renders the note fields.
type TemplateKind string

const (
	KindVocabulary TemplateKind = "vocabulary"
	KindSimple     TemplateKind = "simple"
)

// AllKinds lists the supported template kinds.
var AllKinds = []TemplateKind{KindVocabulary, KindSimple}

func ParseTemplateKind(value string) (TemplateKind, error) {
	for _, kind := range AllKinds {
		if value == string(kind) {
			return kind, nil
		}
	}
	return "", fmt.Errorf("invalid template kind: %s", value)
}

// Renderer renders a VocabularyCard into Fields using one template kind.
type Renderer struct {
	kind     TemplateKind
	template *template.Template
}

// NewRenderer parses the template for kind. A non-empty templatePath
// overrides the embedded template when the file parses; otherwise the
// embedded one is used.
func NewRenderer(kind TemplateKind, templatePath string) (*Renderer, error) {
	fallback := fallbackVocabularyTemplate
	if kind == KindSimple {
		fallback = fallbackSimpleTemplate
	}

	tmpl, err := parseTemplateWithFallback(templatePath, fallback, string(kind))
	if err != nil {
		return nil, fmt.Errorf("parseTemplateWithFallback > %w", err)
	}
	return &Renderer{kind: kind, template: tmpl}, nil
}

// Render executes the front and back templates. For the simple kind the part
// of speech is appended as an extra tag, matching what the compact layout
// drops from the card body.
func (r *Renderer) Render(card VocabularyCard) (Fields, error) {
	var front, back bytes.Buffer
	if err := r.template.ExecuteTemplate(&front, "front", card); err != nil {
		return Fields{}, fmt.Errorf("template.ExecuteTemplate(front) > %w", err)
	}
	if err := r.template.ExecuteTemplate(&back, "back", card); err != nil {
		return Fields{}, fmt.Errorf("template.ExecuteTemplate(back) > %w", err)
	}

	tags := append([]string(nil), card.ExtraTags...)
	if r.kind == KindSimple && card.PartOfSpeech != "" {
		tags = append(tags, card.PartOfSpeech)
	}

	return Fields{
		Front: front.String(),
		Back:  back.String(),
		Tags:  tags,
	}, nil
}

func parseTemplateWithFallback(templatePath, fallbackTemplate, name string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":      strings.Join,
		"highlight": highlightExample,
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(name).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// highlightExample bolds the highlighted span inside the example sentence.
func highlightExample(example ExampleSentence) string {
	if example.Highlight == "" {
		return example.Sentence
	}
	return strings.ReplaceAll(example.Sentence, example.Highlight, "<b>"+example.Highlight+"</b>")
}
