package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_Translate(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		maxRetries  uint
		handlers    []http.HandlerFunc
		want        string
		wantHits    []int32
	}{
		{
			name:       "first mirror succeeds",
			text:       "happy",
			maxRetries: 2,
			handlers: []http.HandlerFunc{
				func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "/en/es/happy", r.URL.EscapedPath())
					_, err := w.Write([]byte(`{"translation": "feliz"}`))
					assert.NoError(t, err)
				},
				func(w http.ResponseWriter, r *http.Request) {
					t.Error("second mirror must not be called")
				},
			},
			want:     "feliz",
			wantHits: []int32{1, 0},
		},
		{
			name:       "rate limited mirror makes initial plus maxRetries attempts",
			text:       "happy",
			maxRetries: 2,
			handlers: []http.HandlerFunc{
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusTooManyRequests)
				},
			},
			want:     "",
			wantHits: []int32{3},
		},
		{
			name:       "status error falls over to next mirror",
			text:       "happy",
			maxRetries: 0,
			handlers: []http.HandlerFunc{
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				},
				func(w http.ResponseWriter, r *http.Request) {
					_, err := w.Write([]byte(`{"translation": "feliz"}`))
					assert.NoError(t, err)
				},
			},
			want:     "feliz",
			wantHits: []int32{1, 1},
		},
		{
			name:       "malformed payload is not retried against the same mirror",
			text:       "happy",
			maxRetries: 2,
			handlers: []http.HandlerFunc{
				func(w http.ResponseWriter, r *http.Request) {
					_, err := w.Write([]byte(`{not json`))
					assert.NoError(t, err)
				},
				func(w http.ResponseWriter, r *http.Request) {
					_, err := w.Write([]byte(`{"translation": "feliz"}`))
					assert.NoError(t, err)
				},
			},
			want:     "feliz",
			wantHits: []int32{1, 1},
		},
		{
			name:       "empty translation falls over to next mirror",
			text:       "happy",
			maxRetries: 0,
			handlers: []http.HandlerFunc{
				func(w http.ResponseWriter, r *http.Request) {
					_, err := w.Write([]byte(`{"translation": ""}`))
					assert.NoError(t, err)
				},
				func(w http.ResponseWriter, r *http.Request) {
					_, err := w.Write([]byte(`{"translation": "feliz"}`))
					assert.NoError(t, err)
				},
			},
			want:     "feliz",
			wantHits: []int32{1, 1},
		},
		{
			name:       "all mirrors exhausted degrades to empty",
			text:       "happy",
			maxRetries: 0,
			handlers: []http.HandlerFunc{
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusBadGateway)
				},
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusTooManyRequests)
				},
			},
			want:     "",
			wantHits: []int32{1, 1},
		},
		{
			name:       "blank text short-circuits without a request",
			text:       "   ",
			maxRetries: 2,
			handlers: []http.HandlerFunc{
				func(w http.ResponseWriter, r *http.Request) {
					t.Error("no request expected for blank text")
				},
			},
			want:     "",
			wantHits: []int32{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]int32, len(tt.handlers))
			mirrors := make([]string, len(tt.handlers))
			for i, handler := range tt.handlers {
				i, handler := i, handler
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					atomic.AddInt32(&hits[i], 1)
					handler(w, r)
				}))
				defer server.Close()
				mirrors[i] = server.URL
			}

			gateway := NewGateway(mirrors, tt.maxRetries, time.Millisecond)
			defer func() {
				require.NoError(t, gateway.Close())
			}()

			got := gateway.Translate(context.Background(), tt.text, "en", "es")
			assert.Equal(t, tt.want, got)
			for i := range hits {
				assert.Equal(t, tt.wantHits[i], atomic.LoadInt32(&hits[i]), "mirror %d hits", i)
			}
		})
	}
}

func TestGateway_Translate_TransportErrorFallsOver(t *testing.T) {
	// A mirror that is already closed produces a connection error.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	alive := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"translation": "feliz"}`))
		assert.NoError(t, err)
	}))
	defer alive.Close()

	gateway := NewGateway([]string{dead.URL, alive.URL}, 0, time.Millisecond)
	defer func() {
		require.NoError(t, gateway.Close())
	}()

	got := gateway.Translate(context.Background(), "happy", "en", "es")
	assert.Equal(t, "feliz", got)
}

func TestGateway_Translate_PathEscapesText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/es/good%20day", r.URL.EscapedPath())
		_, err := w.Write([]byte(`{"translation": "buen día"}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	gateway := NewGateway([]string{server.URL}, 0, time.Millisecond)
	defer func() {
		require.NoError(t, gateway.Close())
	}()

	got := gateway.Translate(context.Background(), "good day", "en", "es")
	assert.Equal(t, "buen día", got)
}

func TestNewGateway_EmptyMirrorListUsesDefaults(t *testing.T) {
	gateway := NewGateway(nil, 0, 0)
	defer func() {
		require.NoError(t, gateway.Close())
	}()

	assert.Equal(t, DefaultMirrors, gateway.mirrors)
}

func TestBackoffState(t *testing.T) {
	tests := []struct {
		name string
		base time.Duration
		want []time.Duration
	}{
		{
			name: "base below floor is clamped",
			base: 0,
			want: []time.Duration{200 * time.Millisecond, 300 * time.Millisecond, 450 * time.Millisecond},
		},
		{
			name: "base above floor grows by 1.5",
			base: 500 * time.Millisecond,
			want: []time.Duration{500 * time.Millisecond, 750 * time.Millisecond, 1125 * time.Millisecond},
		},
		{
			name: "growth rounds to whole milliseconds",
			base: 333 * time.Millisecond,
			want: []time.Duration{333 * time.Millisecond, 500 * time.Millisecond, 750 * time.Millisecond},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backoff := newBackoffState(tt.base)
			for i, want := range tt.want {
				assert.Equal(t, want, backoff.next(), "delay %d", i)
			}
		})
	}
}
