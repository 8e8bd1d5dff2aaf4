// Package thesaurus looks up related words through the Datamuse API.
package thesaurus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://api.datamuse.com/words"
	maxSynonyms    = 5
)

type Config struct {
	BaseURL string
}

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
		baseURL: baseURL,
	}
}

type wordEntry struct {
	Word string `json:"word"`
}

// Fetch returns up to 5 synonyms for term, unfiltered, in service order.
func (f *Fetcher) Fetch(ctx context.Context, term string) ([]string, error) {
	res, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("rel_syn", term).
		SetQueryParam("max", fmt.Sprintf("%d", maxSynonyms)).
		Get(f.baseURL)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var entries []wordEntry
	if err := json.Unmarshal(res.Body(), &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}

	words := make([]string, 0, len(entries))
	for _, entry := range entries {
		words = append(words, entry.Word)
	}
	return words, nil
}
