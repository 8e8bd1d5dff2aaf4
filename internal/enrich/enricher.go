// Package enrich drives the two-phase enrichment pipeline that turns a term
// into a vocabulary card: dictionary and synonym lookups fan out first, then
// every translatable piece fans out against the translation gateway. Lookup
// and translation failures degrade to defaults; building a card never fails
// for an unreachable backend.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vocabforge/vocabforge/internal/card"
	"github.com/vocabforge/vocabforge/internal/dictionary"
)

//go:generate mockgen -source=enricher.go -destination=../mocks/enrich/mock_clients.go -package=mock_enrich

type DictionaryClient interface {
	Fetch(ctx context.Context, term string) (dictionary.Record, error)
}

type SynonymClient interface {
	Fetch(ctx context.Context, term string) ([]string, error)
}

type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) string
}

type Enricher struct {
	dictionary DictionaryClient
	thesaurus  SynonymClient
	translator Translator
	sourceLang string
	targetLang string
}

func NewEnricher(
	dictionaryClient DictionaryClient,
	synonymClient SynonymClient,
	translator Translator,
	sourceLang string,
	targetLang string,
) *Enricher {
	return &Enricher{
		dictionary: dictionaryClient,
		thesaurus:  synonymClient,
		translator: translator,
		sourceLang: sourceLang,
		targetLang: targetLang,
	}
}

// BuildCard assembles the enriched card for term. The error return exists
// only for unexpected programming errors; failures of any remote dependency
// are absorbed into placeholder or original-language content.
func (e *Enricher) BuildCard(ctx context.Context, term string) (card.VocabularyCard, error) {
	var record dictionary.Record
	var related []string

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		result, err := e.dictionary.Fetch(groupCtx, term)
		if err != nil {
			slog.Default().Warn("dictionary lookup failed",
				"term", term,
				"error", err,
			)
			return nil
		}
		record = result
		return nil
	})
	group.Go(func() error {
		result, err := e.thesaurus.Fetch(groupCtx, term)
		if err != nil {
			slog.Default().Warn("synonym lookup failed",
				"term", term,
				"error", err,
			)
			return nil
		}
		related = result
		return nil
	})
	if err := group.Wait(); err != nil {
		return card.VocabularyCard{}, fmt.Errorf("group.Wait > %w", err)
	}

	synonyms := MergeSynonyms(record.Synonyms, related)

	definition := record.Definition
	if definition == "" {
		definition = fmt.Sprintf("No definition found for %s.", term)
	}

	var heading, usage string
	translatedSynonyms := make([]string, len(synonyms))

	group, groupCtx = errgroup.WithContext(ctx)
	group.Go(func() error {
		heading = e.translator.Translate(groupCtx, term, e.sourceLang, e.targetLang)
		return nil
	})
	group.Go(func() error {
		usage = e.translator.Translate(groupCtx, definition, e.sourceLang, e.targetLang)
		return nil
	})
	for i, synonym := range synonyms {
		i, synonym := i, synonym
		group.Go(func() error {
			// Results are paired by index so completion order cannot
			// reorder the synonym list.
			translatedSynonyms[i] = e.translator.Translate(groupCtx, synonym, e.sourceLang, e.targetLang)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return card.VocabularyCard{}, fmt.Errorf("group.Wait > %w", err)
	}

	if strings.TrimSpace(heading) == "" {
		heading = term
	}
	if strings.TrimSpace(usage) == "" {
		usage = definition
	}
	for i, synonym := range synonyms {
		if strings.TrimSpace(translatedSynonyms[i]) == "" {
			translatedSynonyms[i] = synonym
		}
	}

	example := record.Example
	if example == "" {
		example = fmt.Sprintf("This sentence uses the word %s.", term)
	}
	highlight := ""
	if strings.Contains(example, term) {
		highlight = term
	}

	return card.VocabularyCard{
		Term:                term,
		Pronunciation:       record.Pronunciation,
		PartOfSpeech:        record.PartOfSpeech,
		Example:             card.ExampleSentence{Sentence: example, Highlight: highlight},
		TranslationHeading:  heading,
		TranslationSynonyms: strings.Join(translatedSynonyms, ", "),
		TranslationUsage:    usage,
		ExtraTags:           []string{e.sourceLang, e.targetLang, "auto-generated"},
	}, nil
}
