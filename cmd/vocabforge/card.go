package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/vocabforge/vocabforge/internal/anki"
	"github.com/vocabforge/vocabforge/internal/card"
	"github.com/vocabforge/vocabforge/internal/config"
	"github.com/vocabforge/vocabforge/internal/dictionary"
	"github.com/vocabforge/vocabforge/internal/enrich"
	"github.com/vocabforge/vocabforge/internal/thesaurus"
	"github.com/vocabforge/vocabforge/internal/translate"
)

// templateFlag is a pflag.Value restricted to the supported card templates.
type templateFlag card.TemplateKind

func (t *templateFlag) Set(val string) error {
	kind, err := card.ParseTemplateKind(val)
	if err != nil {
		return err
	}
	*t = templateFlag(kind)
	return nil
}

func (t templateFlag) String() string {
	return string(t)
}

func (t *templateFlag) Type() string {
	return "template"
}

var _ pflag.Value = (*templateFlag)(nil)

type cardFlags struct {
	deck             string
	model            string
	template         templateFlag
	sourceLang       string
	targetLang       string
	mirrors          []string
	translateRetries uint
	backoffMs        uint64
}

func newCardCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "card",
		Short: "Build vocabulary cards from dictionary, synonym and translation services",
	}

	var cardFlags cardFlags
	flags := rootCommand.PersistentFlags()
	flags.StringVarP(&cardFlags.deck, "deck", "d", "", "Anki deck to add notes to")
	flags.StringVarP(&cardFlags.model, "model", "m", "", "Anki note model")
	flags.VarP(&cardFlags.template, "template", "t", fmt.Sprintf("Card template. Possible values are %v", card.AllKinds))
	flags.StringVar(&cardFlags.sourceLang, "source-lang", "", "Source language code")
	flags.StringVar(&cardFlags.targetLang, "target-lang", "", "Target language code")
	flags.StringSliceVar(&cardFlags.mirrors, "translate-mirror", nil, "Translation mirror base URL. Repeatable; tried in order")
	flags.UintVar(&cardFlags.translateRetries, "translate-retries", 0, "Maximum retries per translation mirror")
	flags.Uint64Var(&cardFlags.backoffMs, "translate-backoff-ms", 0, "Base backoff in milliseconds for translation retries")

	var output string
	buildCommand := &cobra.Command{
		Use:   "build [term]",
		Short: "Build a card and print it without touching Anki",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyCardFlags(cmd.Flags(), &cardFlags, cfg)

			vocabularyCard, err := buildVocabularyCard(cmd.Context(), cfg, term)
			if err != nil {
				return fmt.Errorf("buildVocabularyCard > %w", err)
			}

			switch output {
			case "yaml":
				contents, err := yaml.Marshal(vocabularyCard)
				if err != nil {
					return fmt.Errorf("yaml.Marshal > %w", err)
				}
				cmd.Print(string(contents))
				return nil
			case "text":
				fields, err := renderNoteFields(cfg, vocabularyCard, term)
				if err != nil {
					return err
				}
				printNoteFields(cmd, fields)
				return nil
			default:
				return fmt.Errorf("invalid output format: %s", output)
			}
		},
	}
	buildCommand.Flags().StringVarP(&output, "output", "o", "text", "Output format. Possible values are [text yaml]")

	addCommand := &cobra.Command{
		Use:   "add [term]",
		Short: "Build a card and add it to Anki through AnkiConnect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyCardFlags(cmd.Flags(), &cardFlags, cfg)
			if cfg.Anki.Deck == "" {
				return errors.New("a deck must be provided via --deck or the config file")
			}

			vocabularyCard, err := buildVocabularyCard(cmd.Context(), cfg, term)
			if err != nil {
				return fmt.Errorf("buildVocabularyCard > %w", err)
			}
			fields, err := renderNoteFields(cfg, vocabularyCard, term)
			if err != nil {
				return err
			}

			client := anki.NewClient(anki.Config{BaseURL: cfg.Anki.URL})
			noteID, err := client.AddNote(cmd.Context(), anki.Note{
				Deck:  cfg.Anki.Deck,
				Model: cfg.Anki.Model,
				Fields: map[string]string{
					"Front": fields.Front,
					"Back":  fields.Back,
				},
				Tags: fields.Tags,
			})
			if err != nil {
				if errors.Is(err, anki.ErrDuplicateNote) {
					cmd.Printf("Note for term %q already exists in deck %q; skipping.\n", term, cfg.Anki.Deck)
					return nil
				}
				return fmt.Errorf("client.AddNote > %w", err)
			}

			cmd.Printf("Added note with ID: %d\n", noteID)
			return nil
		},
	}

	rootCommand.AddCommand(buildCommand, addCommand)
	return &rootCommand
}

// applyCardFlags overlays explicitly set flags onto the loaded config.
func applyCardFlags(flags *pflag.FlagSet, cardFlags *cardFlags, cfg *config.Config) {
	if flags.Changed("deck") {
		cfg.Anki.Deck = cardFlags.deck
	}
	if flags.Changed("model") {
		cfg.Anki.Model = cardFlags.model
	}
	if flags.Changed("template") {
		cfg.Card.Template = string(cardFlags.template)
	}
	if flags.Changed("source-lang") {
		cfg.Languages.Source = cardFlags.sourceLang
	}
	if flags.Changed("target-lang") {
		cfg.Languages.Target = cardFlags.targetLang
	}
	if flags.Changed("translate-mirror") {
		cfg.Translate.Mirrors = cardFlags.mirrors
	}
	if flags.Changed("translate-retries") {
		cfg.Translate.Retries = cardFlags.translateRetries
	}
	if flags.Changed("translate-backoff-ms") {
		cfg.Translate.BackoffMs = cardFlags.backoffMs
	}
}

func buildVocabularyCard(ctx context.Context, cfg *config.Config, term string) (card.VocabularyCard, error) {
	gateway := translate.NewGateway(
		cfg.Translate.Mirrors,
		cfg.Translate.Retries,
		time.Duration(cfg.Translate.BackoffMs)*time.Millisecond,
	)
	defer func() {
		_ = gateway.Close()
	}()

	enricher := enrich.NewEnricher(
		dictionary.NewFetcher(dictionary.Config{}),
		thesaurus.NewFetcher(thesaurus.Config{}),
		gateway,
		cfg.Languages.Source,
		cfg.Languages.Target,
	)
	return enricher.BuildCard(ctx, term)
}

// renderNoteFields renders the card with the configured template and merges
// in the term tag and configured extra tags.
func renderNoteFields(cfg *config.Config, vocabularyCard card.VocabularyCard, term string) (card.Fields, error) {
	kind := card.TemplateKind(cfg.Card.Template)
	renderer, err := card.NewRenderer(kind, cfg.Card.TemplatePath)
	if err != nil {
		return card.Fields{}, fmt.Errorf("card.NewRenderer > %w", err)
	}
	fields, err := renderer.Render(vocabularyCard)
	if err != nil {
		return card.Fields{}, fmt.Errorf("renderer.Render > %w", err)
	}

	fields.Tags = mergeNoteTags(fields.Tags, card.TermTag(term), cfg.Card.ExtraTags)
	return fields, nil
}

// mergeNoteTags appends the term tag and the configured extra tags, skipping
// any tag that is already present.
func mergeNoteTags(tags []string, termTag string, extraTags []string) []string {
	merged := append([]string(nil), tags...)
	for _, tag := range append([]string{termTag}, extraTags...) {
		exists := false
		for _, existing := range merged {
			if existing == tag {
				exists = true
				break
			}
		}
		if !exists {
			merged = append(merged, tag)
		}
	}
	return merged
}

func printNoteFields(cmd *cobra.Command, fields card.Fields) {
	bold := color.New(color.Bold)
	cmd.Println(bold.Sprint("Front"))
	cmd.Println(fields.Front)
	cmd.Println()
	cmd.Println(bold.Sprint("Back"))
	cmd.Println(fields.Back)
	cmd.Println()
	cmd.Println(bold.Sprint("Tags"))
	cmd.Println(strings.Join(fields.Tags, " "))
}
