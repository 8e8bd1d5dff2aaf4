// Package anki creates notes in a running Anki instance through the
// AnkiConnect add-on.
package anki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "http://127.0.0.1:8765"

	// connectVersion is the AnkiConnect API version this client speaks.
	connectVersion = 6
)

// ErrDuplicateNote is returned when Anki rejects a note as a duplicate
// within the target deck.
var ErrDuplicateNote = errors.New("duplicate note")

type Config struct {
	BaseURL string
}

type Client struct {
	client *resty.Client
}

func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	return &Client{client: client}
}

// Note is one note to add, already rendered into model fields.
type Note struct {
	Deck   string
	Model  string
	Fields map[string]string
	Tags   []string
}

type connectRequest struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type connectResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

type noteParams struct {
	Note noteBody `json:"note"`
}

type noteBody struct {
	DeckName  string            `json:"deckName"`
	ModelName string            `json:"modelName"`
	Fields    map[string]string `json:"fields"`
	Tags      []string          `json:"tags"`
	Options   noteOptions       `json:"options"`
}

type noteOptions struct {
	AllowDuplicate bool   `json:"allowDuplicate"`
	DuplicateScope string `json:"duplicateScope"`
}

// AddNote adds note to its deck and returns the created note ID. A duplicate
// rejection from Anki is reported as ErrDuplicateNote.
func (c *Client) AddNote(ctx context.Context, note Note) (int64, error) {
	response, err := c.invoke(ctx, "addNote", noteParams{
		Note: noteBody{
			DeckName:  note.Deck,
			ModelName: note.Model,
			Fields:    note.Fields,
			Tags:      note.Tags,
			Options: noteOptions{
				AllowDuplicate: false,
				DuplicateScope: "deck",
			},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("c.invoke > %w", err)
	}

	var noteID int64
	if err := json.Unmarshal(response, &noteID); err != nil {
		return 0, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return noteID, nil
}

func (c *Client) invoke(ctx context.Context, action string, params any) (json.RawMessage, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(connectRequest{
			Action:  action,
			Version: connectVersion,
			Params:  params,
		}).
		Post("/")
	if err != nil {
		return nil, fmt.Errorf("client.R.Post > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var response connectResponse
	if err := json.Unmarshal(res.Body(), &response); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if response.Error != nil && *response.Error != "" {
		if strings.Contains(strings.ToLower(*response.Error), "duplicate") {
			return nil, fmt.Errorf("action %s: %s: %w", action, *response.Error, ErrDuplicateNote)
		}
		return nil, fmt.Errorf("action %s: %s", action, *response.Error)
	}
	return response.Result, nil
}
