// Package client is a Go consumer of the spendaily API. It keeps per-collection
// caches of the server's derived state and subscribes to the websocket feed so
// that mutations made elsewhere invalidate the right entries without polling.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"spendaily/internal/budget"
	"spendaily/internal/dto"
	"spendaily/internal/events"
)

const (
	defaultCacheTTL     = 30 * time.Second
	eagerRefreshTimeout = 5 * time.Second
)

// Config carries the connection parameters for a Client.
type Config struct {
	BaseURL  string
	Token    string
	CacheTTL time.Duration
	Logger   *zap.Logger
}

// Client wraps the HTTP API with cached reads. Use Connect to attach the
// websocket feed; without it entries only refresh when their TTL lapses.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zap.Logger

	budget       *cached[budget.Report]
	transactions *cached[[]dto.TransactionResponse]
	goals        *cached[[]dto.SavingsGoalResponse]
	settings     *cached[dto.BudgetSettingsResponse]

	socket *SocketManager
}

func New(cfg Config) *Client {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		token:        cfg.Token,
		http:         &http.Client{Timeout: 15 * time.Second},
		logger:       logger,
		budget:       newCached[budget.Report](ttl),
		transactions: newCached[[]dto.TransactionResponse](ttl),
		goals:        newCached[[]dto.SavingsGoalResponse](ttl),
		settings:     newCached[dto.BudgetSettingsResponse](ttl),
	}
}

// Connect dials the websocket endpoint derived from the base URL and wires
// incoming events into cache invalidation.
func (c *Client) Connect() {
	if c.socket != nil {
		return
	}

	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/ws?token=" + c.token
	c.socket = NewSocketManager(wsURL, c.logger)
	c.socket.AddListener(c.HandleEvent)
	c.socket.Start()
}

func (c *Client) Connected() bool {
	return c.socket != nil && c.socket.Connected()
}

func (c *Client) Close() {
	if c.socket != nil {
		c.socket.Close()
	}
}

func (c *Client) DailyBudget(ctx context.Context) (budget.Report, error) {
	return c.budget.get(ctx, c.fetchBudget)
}

func (c *Client) Transactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	return c.transactions.get(ctx, c.fetchTransactions)
}

func (c *Client) SavingsGoals(ctx context.Context) ([]dto.SavingsGoalResponse, error) {
	return c.goals.get(ctx, c.fetchGoals)
}

func (c *Client) BudgetSettings(ctx context.Context) (dto.BudgetSettingsResponse, error) {
	return c.settings.get(ctx, c.fetchSettings)
}

// HandleEvent maps one server event onto the caches it stale-marks. The daily
// budget is derived from every collection, so every mutation invalidates it;
// the budget and settings entries are refreshed eagerly since the next render
// almost always wants them.
func (c *Client) HandleEvent(e events.Event) {
	switch e.Type {
	case events.TransactionAdded, events.TransactionUpdated, events.TransactionDeleted:
		c.transactions.invalidate()
		c.budget.invalidate()
		eagerRefresh(c, "daily budget", c.budget, c.fetchBudget)
	case events.SavingsGoalAdded, events.SavingsGoalUpdated, events.SavingsGoalDeleted:
		c.goals.invalidate()
		c.budget.invalidate()
		eagerRefresh(c, "daily budget", c.budget, c.fetchBudget)
	case events.BudgetSettingsUpdated:
		c.settings.invalidate()
		c.budget.invalidate()
		eagerRefresh(c, "budget settings", c.settings, c.fetchSettings)
		eagerRefresh(c, "daily budget", c.budget, c.fetchBudget)
	case events.Connect:
	default:
		c.logger.Debug("ignoring unknown event type", zap.String("type", string(e.Type)))
	}
}

func eagerRefresh[T any](c *Client, name string, entry *cached[T], fetch func(context.Context) (T, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), eagerRefreshTimeout)
	defer cancel()

	if err := entry.refresh(ctx, fetch); err != nil {
		c.logger.Warn("eager refresh failed, entry stays stale",
			zap.String("collection", name), zap.Error(err))
	}
}

func (c *Client) fetchBudget(ctx context.Context) (budget.Report, error) {
	return getJSON[budget.Report](ctx, c, "/api/daily-budget")
}

func (c *Client) fetchTransactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	return getJSON[[]dto.TransactionResponse](ctx, c, "/api/transactions")
}

func (c *Client) fetchGoals(ctx context.Context) ([]dto.SavingsGoalResponse, error) {
	return getJSON[[]dto.SavingsGoalResponse](ctx, c, "/api/savings-goals")
}

func (c *Client) fetchSettings(ctx context.Context) (dto.BudgetSettingsResponse, error) {
	return getJSON[dto.BudgetSettingsResponse](ctx, c, "/api/budget-settings")
}

func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return out, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return out, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return out, fmt.Errorf("request %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}
