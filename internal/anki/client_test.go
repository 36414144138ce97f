package anki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ankibot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func newTestClient(url string) *Client {
	return NewClient(url, "Default", "Basic", 5*time.Second, testutil.NewTestLogger())
}

func TestClient_Exists(t *testing.T) {
	tests := []struct {
		name     string
		result   string
		expected bool
	}{
		{
			name:     "word found",
			result:   `[1496198395707]`,
			expected: true,
		},
		{
			name:     "word not found",
			result:   `[]`,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var req struct {
					Action  string            `json:"action"`
					Version int               `json:"version"`
					Params  map[string]string `json:"params"`
				}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "findNotes", req.Action)
				assert.Equal(t, 6, req.Version)
				assert.Equal(t, `deck:"Default" Front:"receive"`, req.Params["query"])

				_, _ = w.Write([]byte(`{"result": ` + tt.result + `, "error": null}`))
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			exists, err := client.Exists(context.Background(), "receive")

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestClient_Add_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Action string `json:"action"`
			Params struct {
				Note struct {
					DeckName  string `json:"deckName"`
					ModelName string `json:"modelName"`
					Fields    struct {
						Front string `json:"Front"`
						Back  string `json:"Back"`
					} `json:"fields"`
					Options struct {
						AllowDuplicate bool   `json:"allowDuplicate"`
						DuplicateScope string `json:"duplicateScope"`
					} `json:"options"`
				} `json:"note"`
			} `json:"params"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "addNote", req.Action)
		assert.Equal(t, "Default", req.Params.Note.DeckName)
		assert.Equal(t, "Basic", req.Params.Note.ModelName)
		assert.Equal(t, "receive", req.Params.Note.Fields.Front)
		assert.Contains(t, req.Params.Note.Fields.Back, "Translation")
		assert.False(t, req.Params.Note.Options.AllowDuplicate)
		assert.Equal(t, "deck", req.Params.Note.Options.DuplicateScope)

		_, _ = w.Write([]byte(`{"result": 1496198395707, "error": null}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	noteID, err := client.Add(context.Background(), "receive", "<b>1. Translation</b>")

	assert.NoError(t, err)
	assert.Equal(t, int64(1496198395707), noteID)
}

func TestClient_Add_Duplicate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": null, "error": "cannot create note because it is a duplicate"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Add(context.Background(), "receive", "content")

	assert.ErrorIs(t, err, ErrDuplicateNote)
}

func TestClient_Add_OtherError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": null, "error": "deck was not found: Missing"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Add(context.Background(), "receive", "content")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateNote)
	assert.Contains(t, err.Error(), "deck was not found")
}

func TestClient_Sync(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected bool
	}{
		{
			name:     "sync succeeds",
			response: `{"result": null, "error": null}`,
			expected: true,
		},
		{
			name:     "sync fails",
			response: `{"result": null, "error": "sync failed: no network"}`,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var req struct {
					Action string `json:"action"`
				}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "sync", req.Action)

				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			assert.Equal(t, tt.expected, client.Sync(context.Background()))
		})
	}
}

func TestClient_DeckStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Action string              `json:"action"`
			Params map[string][]string `json:"params"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "getDeckStats", req.Action)
		assert.Equal(t, []string{"Default"}, req.Params["decks"])

		_, _ = w.Write([]byte(`{
			"result": {
				"1651445861967": {
					"deck_id": 1651445861967,
					"name": "Default",
					"new_count": 20,
					"learn_count": 2,
					"review_count": 5,
					"total_in_deck": 150
				}
			},
			"error": null
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	stats, err := client.DeckStats(context.Background())

	assert.NoError(t, err)
	assert.Len(t, stats, 1)
	assert.Equal(t, "Default", stats[0].Name)
	assert.Equal(t, 20, stats[0].NewCount)
	assert.Equal(t, 2, stats[0].LearnCount)
	assert.Equal(t, 5, stats[0].ReviewCount)
	assert.Equal(t, 150, stats[0].TotalInDeck)
}

func TestClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte("AnkiConnect v.6"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	assert.True(t, client.Ping(context.Background()))

	server.Close()
	assert.False(t, client.Ping(context.Background()))
}

func TestClient_Invoke_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal error"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Exists(context.Background(), "receive")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_Invoke_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Exists(context.Background(), "receive")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal response")
}
