package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"sort"
	"strings"
	"time"

	"ankibot/internal/domain"

	"go.uber.org/zap"
)

// startupWait bounds how long EnsureRunning polls after launching Anki.
const startupWait = 15 * time.Second

// ErrDuplicateNote is returned by Add when the deck already holds a note
// with the same front field.
var ErrDuplicateNote = errors.New("note is a duplicate")

// Client talks to a local Anki instance through the AnkiConnect add-on.
type Client struct {
	url        string
	deck       string
	noteModel  string
	httpClient *http.Client
	logger     *zap.Logger
}

// AnkiConnect envelope structures
type connectRequest struct {
	Action  string      `json:"action"`
	Version int         `json:"version"`
	Params  interface{} `json:"params,omitempty"`
}

type connectResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

type noteFields struct {
	Front string `json:"Front"`
	Back  string `json:"Back"`
}

type noteOptions struct {
	AllowDuplicate bool   `json:"allowDuplicate"`
	DuplicateScope string `json:"duplicateScope"`
}

type notePayload struct {
	DeckName  string      `json:"deckName"`
	ModelName string      `json:"modelName"`
	Fields    noteFields  `json:"fields"`
	Options   noteOptions `json:"options"`
}

type deckStatPayload struct {
	Name        string `json:"name"`
	NewCount    int    `json:"new_count"`
	LearnCount  int    `json:"learn_count"`
	ReviewCount int    `json:"review_count"`
	TotalInDeck int    `json:"total_in_deck"`
}

// NewClient creates an AnkiConnect client for one deck/note model.
// timeout bounds every request; sync is the slowest action it covers.
func NewClient(url, deck, noteModel string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		url:        strings.TrimSuffix(url, "/"),
		deck:       deck,
		noteModel:  noteModel,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Ping reports whether AnkiConnect answers on the configured URL.
func (c *Client) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// EnsureRunning checks AnkiConnect and launches the Anki desktop app when
// it is down, polling until it answers or the startup window closes.
func (c *Client) EnsureRunning(ctx context.Context) error {
	if c.Ping(ctx) {
		return nil
	}

	c.logger.Info("Anki is not responding, launching process")

	cmd := exec.Command("anki")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start anki: %w", err)
	}
	// Anki outlives the bot; Wait only reaps the child.
	go func() { _ = cmd.Wait() }()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	deadline := time.NewTimer(startupWait)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return fmt.Errorf("anki did not come up within %s", startupWait)
		case <-ticker.C:
			if c.Ping(ctx) {
				c.logger.Info("Anki started successfully")
				return nil
			}
		}
	}
}

// Exists checks whether the deck already has a note for the word.
func (c *Client) Exists(ctx context.Context, word string) (bool, error) {
	query := fmt.Sprintf("deck:%q Front:%q", c.deck, word)

	raw, err := c.invoke(ctx, "findNotes", map[string]string{"query": query})
	if err != nil {
		return false, err
	}

	var noteIDs []int64
	if err := json.Unmarshal(raw, &noteIDs); err != nil {
		return false, fmt.Errorf("decode note ids: %w", err)
	}

	return len(noteIDs) > 0, nil
}

// Add creates a note with the word on the front and rendered markup on the
// back, returning the new note id.
func (c *Client) Add(ctx context.Context, word, markup string) (int64, error) {
	c.logger.Info("Adding card to Anki", zap.String("word", word))

	params := map[string]notePayload{
		"note": {
			DeckName:  c.deck,
			ModelName: c.noteModel,
			Fields:    noteFields{Front: word, Back: markup},
			Options:   noteOptions{AllowDuplicate: false, DuplicateScope: "deck"},
		},
	}

	raw, err := c.invoke(ctx, "addNote", params)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return 0, ErrDuplicateNote
		}
		return 0, err
	}

	var noteID int64
	if err := json.Unmarshal(raw, &noteID); err != nil {
		return 0, fmt.Errorf("decode note id: %w", err)
	}

	return noteID, nil
}

// Sync triggers a collection sync. Failures are logged, not returned: the
// card is already saved locally and the caller only reports sync status.
func (c *Client) Sync(ctx context.Context) bool {
	_, err := c.invoke(ctx, "sync", nil)
	if err != nil {
		c.logger.Error("Anki sync failed", zap.Error(err))
		return false
	}

	c.logger.Info("Anki sync completed")
	return true
}

// DeckStats fetches counters for the configured deck.
func (c *Client) DeckStats(ctx context.Context) ([]domain.DeckStat, error) {
	params := map[string][]string{"decks": {c.deck}}

	raw, err := c.invoke(ctx, "getDeckStats", params)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]deckStatPayload)
	if err := json.Unmarshal(raw, &byID); err != nil {
		return nil, fmt.Errorf("decode deck stats: %w", err)
	}

	stats := make([]domain.DeckStat, 0, len(byID))
	for _, s := range byID {
		stats = append(stats, domain.DeckStat{
			Name:        s.Name,
			NewCount:    s.NewCount,
			LearnCount:  s.LearnCount,
			ReviewCount: s.ReviewCount,
			TotalInDeck: s.TotalInDeck,
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })

	return stats, nil
}

// invoke posts one AnkiConnect action and unwraps the result envelope.
func (c *Client) invoke(ctx context.Context, action string, params interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(connectRequest{Action: action, Version: 6, Params: params})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ankiconnect status %d: %s", resp.StatusCode, string(respBody))
	}

	var cr connectResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	if cr.Error != nil && *cr.Error != "" {
		return nil, fmt.Errorf("ankiconnect: %s", *cr.Error)
	}

	return cr.Result, nil
}
