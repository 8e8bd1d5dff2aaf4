package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string

		want            Record
		wantErr         error
		wantErrorString string
	}{
		{
			name:       "full entry",
			statusCode: http.StatusOK,
			body: `[{
				"word": "happy",
				"phonetic": "/ˈhæpi/",
				"meanings": [{
					"partOfSpeech": "adjective",
					"synonyms": ["glad"],
					"definitions": [
						{"definition": "Feeling contented.", "synonyms": ["joyful"]},
						{"definition": "Fortunate.", "example": "A happy coincidence."}
					]
				}]
			}]`,
			want: Record{
				Pronunciation: "/ˈhæpi/",
				PartOfSpeech:  "adjective",
				Definition:    "Feeling contented.",
				Example:       "A happy coincidence.",
				Synonyms:      []string{"glad", "joyful"},
			},
		},
		{
			name:       "pronunciation falls back to phonetic variants",
			statusCode: http.StatusOK,
			body: `[{
				"word": "lead",
				"phonetics": [{"text": ""}, {"text": "/liːd/"}],
				"meanings": [{
					"partOfSpeech": "verb",
					"definitions": [{"definition": "To guide."}]
				}]
			}]`,
			want: Record{
				Pronunciation: "/liːd/",
				PartOfSpeech:  "verb",
				Definition:    "To guide.",
				Synonyms:      []string{},
			},
		},
		{
			name:       "skips meanings without definition text",
			statusCode: http.StatusOK,
			body: `[{
				"word": "run",
				"meanings": [
					{"partOfSpeech": "noun", "definitions": [{"definition": ""}]},
					{"partOfSpeech": "verb", "definitions": [{"definition": "To move quickly."}]}
				]
			}]`,
			want: Record{
				PartOfSpeech: "verb",
				Definition:   "To move quickly.",
				Synonyms:     []string{},
			},
		},
		{
			name:       "example may come from a later definition",
			statusCode: http.StatusOK,
			body: `[{
				"word": "walk",
				"meanings": [{
					"partOfSpeech": "verb",
					"definitions": [
						{"definition": "To move on foot."},
						{"definition": "", "example": "We walk to school."}
					]
				}]
			}]`,
			want: Record{
				PartOfSpeech: "verb",
				Definition:   "To move on foot.",
				Example:      "We walk to school.",
				Synonyms:     []string{},
			},
		},
		{
			name:       "no entries",
			statusCode: http.StatusOK,
			body:       `[]`,
			wantErr:    ErrNotFound,
		},
		{
			name:       "no usable definition",
			statusCode: http.StatusOK,
			body: `[{
				"word": "hm",
				"meanings": [{"partOfSpeech": "interjection", "definitions": []}]
			}]`,
			wantErr: ErrNoDefinition,
		},
		{
			name:            "not found status",
			statusCode:      http.StatusNotFound,
			body:            `{"title": "No Definitions Found"}`,
			wantErrorString: "status code: 404",
		},
		{
			name:            "malformed payload",
			statusCode:      http.StatusOK,
			body:            `{not json`,
			wantErrorString: "json.Unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.statusCode)
				_, err := w.Write([]byte(tt.body))
				assert.NoError(t, err)
			}))
			defer server.Close()

			fetcher := NewFetcher(Config{BaseURL: server.URL})
			got, err := fetcher.Fetch(context.Background(), "term")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantErrorString != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetcher_Fetch_EscapesTerm(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, err := w.Write([]byte(`[{"word": "taken aback", "meanings": [{"definitions": [{"definition": "Surprised."}]}]}]`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	fetcher := NewFetcher(Config{BaseURL: server.URL})
	_, err := fetcher.Fetch(context.Background(), "taken aback")
	require.NoError(t, err)
	assert.Equal(t, "/taken%20aback", gotPath)
}
