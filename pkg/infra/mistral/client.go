package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/surpriz/hospitalidee-moderation/pkg/domain/moderation"
	"github.com/surpriz/hospitalidee-moderation/pkg/infra/httpx"
	"github.com/surpriz/hospitalidee-moderation/pkg/infra/prometheus"
)

const (
	ModerationURL  = "https://api.mistral.ai/v1/moderations"
	DefaultModel   = "mistral-moderation-latest"
	DefaultTimeout = 10 * time.Second
)

// ResultCache memoizes per-text classification scores.
type ResultCache interface {
	Get(ctx context.Context, text string) ([]moderation.CategoryScores, bool)
	Set(ctx context.Context, text string, scores []moderation.CategoryScores)
}

type Config struct {
	APIKey  string
	Model   string
	URL     string
	Timeout time.Duration
}

// Client talks to the Mistral moderation endpoint. A failed call is
// downgraded to an untriggered classification so the pipeline keeps
// running; the error detail is preserved on the result.
type Client struct {
	config  Config
	client  httpx.Client
	breaker httpx.CircuitBreaker
	cache   ResultCache
	logger  *logrus.Logger
}

func NewClient(config Config, client httpx.Client, cache ResultCache, logger *logrus.Logger) *Client {
	if client == nil {
		client = &http.Client{}
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.URL == "" {
		config.URL = ModerationURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	return &Client{
		config:  config,
		client:  client,
		breaker: httpx.NewCircuitBreaker("mistral-moderation", 30*time.Second, 5),
		cache:   cache,
		logger:  logger,
	}
}

type moderationRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type moderationResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Results []moderationResult `json:"results"`
}

type moderationResult struct {
	Categories     map[string]bool    `json:"categories"`
	CategoryScores map[string]float64 `json:"category_scores"`
}

// Classify sends text to the moderation endpoint and derives the
// trigger decision from the caller's (pre-clamped) threshold.
func (c *Client) Classify(ctx context.Context, text string, threshold float64) moderation.Classification {
	if c.cache != nil {
		if scores, ok := c.cache.Get(ctx, text); ok {
			prometheus.ClassifierRequestTotal.WithLabelValues("cache_hit").Inc()
			return classificationFromScores(scores, threshold)
		}
	}

	scores, err := c.fetchScores(ctx, text)
	if err != nil {
		prometheus.ClassifierRequestTotal.WithLabelValues("error").Inc()
		c.logger.WithError(err).Error("classification call failed, continuing without classifier signal")
		return moderation.Classification{Triggered: false, Err: err.Error()}
	}

	prometheus.ClassifierRequestTotal.WithLabelValues("success").Inc()
	if c.cache != nil {
		c.cache.Set(ctx, text, scores)
	}
	return classificationFromScores(scores, threshold)
}

func classificationFromScores(scores []moderation.CategoryScores, threshold float64) moderation.Classification {
	trigger := moderation.TriggerScore(threshold)
	triggered := false
	for _, segment := range scores {
		for _, score := range segment {
			if score >= trigger {
				triggered = true
				break
			}
		}
		if triggered {
			break
		}
	}
	return moderation.Classification{Triggered: triggered, Scores: scores}
}

func (c *Client) fetchScores(ctx context.Context, text string) ([]moderation.CategoryScores, error) {
	payload, err := json.Marshal(moderationRequest{
		Model: c.config.Model,
		Input: []string{text},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal moderation request: %w", err)
	}

	var scores []moderation.CategoryScores
	start := time.Now()
	err = c.breaker.Execute(func() error {
		var execErr error
		scores, execErr = c.doRequest(ctx, payload)
		return execErr
	})
	prometheus.ClassifierLatency.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (c *Client) doRequest(ctx context.Context, payload []byte) ([]moderation.CategoryScores, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create moderation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("moderation call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read moderation response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("moderation API returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded moderationResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to unmarshal moderation response: %w", err)
	}

	scores := make([]moderation.CategoryScores, 0, len(decoded.Results))
	for _, result := range decoded.Results {
		scores = append(scores, result.CategoryScores)
	}
	return scores, nil
}
