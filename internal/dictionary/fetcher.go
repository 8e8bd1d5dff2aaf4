package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

var (
	// ErrNotFound is returned when the service has no entry for a term.
	ErrNotFound = errors.New("no dictionary entry")
	// ErrNoDefinition is returned when no meaning carries a usable definition.
	ErrNoDefinition = errors.New("no usable definition")
)

type Config struct {
	BaseURL string
}

// Fetcher looks up a term in the Free Dictionary API.
type Fetcher struct {
	client  *resty.Client
	baseURL string
}

func NewFetcher(config Config) *Fetcher {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Fetcher{
		client:  resty.New(),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Fetch looks up term and reduces the response to a Record: the first entry's
// pronunciation, the first meaning that carries a non-empty definition, that
// meaning's first example, and the union of its synonym lists.
func (f *Fetcher) Fetch(ctx context.Context, term string) (Record, error) {
	var record Record
	res, err := f.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/%s", f.baseURL, url.PathEscape(term)))
	if err != nil {
		return record, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return record, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var entries []Entry
	if err := json.Unmarshal(res.Body(), &entries); err != nil {
		return record, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if len(entries) == 0 {
		return record, fmt.Errorf("term %q: %w", term, ErrNotFound)
	}
	entry := entries[0]

	pronunciation := entry.Phonetic
	if pronunciation == "" {
		for _, phonetic := range entry.Phonetics {
			if phonetic.Text != "" {
				pronunciation = phonetic.Text
				break
			}
		}
	}

	meaning, ok := firstUsableMeaning(entry.Meanings)
	if !ok {
		return record, fmt.Errorf("term %q: %w", term, ErrNoDefinition)
	}

	var definition, example string
	for _, def := range meaning.Definitions {
		if definition == "" && def.Definition != "" {
			definition = def.Definition
		}
		if example == "" && def.Example != "" {
			example = def.Example
		}
	}

	return Record{
		Pronunciation: pronunciation,
		PartOfSpeech:  meaning.PartOfSpeech,
		Definition:    definition,
		Example:       example,
		Synonyms:      collectSynonyms(meaning),
	}, nil
}

// firstUsableMeaning returns the first meaning holding at least one
// definition with non-empty text.
func firstUsableMeaning(meanings []Meaning) (Meaning, bool) {
	for _, meaning := range meanings {
		for _, def := range meaning.Definitions {
			if def.Definition != "" {
				return meaning, true
			}
		}
	}
	return Meaning{}, false
}
