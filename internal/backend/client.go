package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stagedoor/internal/model"
)

// Client is a simple HTTP client for the remote booking data store. It
// exposes only the read contracts the engine consumes; persistence lives
// entirely on the other side.
type Client struct {
	baseURL    string
	apiKey     string
	orgID      string
	httpClient *http.Client

	redis    *redis.Client
	cacheTTL time.Duration
}

// NewClient constructs a client with baseURL, API key and organization id.
func NewClient(baseURL, apiKey, orgID string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		orgID:      orgID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// UseRedisCache configures optional Redis caching for GET endpoints.
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	c.cacheTTL = ttl
}

// EventsByMonth fetches all scheduled events for a calendar month across
// all stores of the organization.
func (c *Client) EventsByMonth(ctx context.Context, year int, month time.Month) ([]model.Event, error) {
	endpoint := fmt.Sprintf("%s/api/v1/events?year=%d&month=%d&organization_id=%s",
		c.baseURL, year, int(month), url.QueryEscape(c.orgID))
	cacheKey := fmt.Sprintf("events:%s:%04d-%02d", c.orgID, year, int(month))

	var wrap struct {
		Events []model.Event `json:"events"`
	}
	if c.readCache(ctx, cacheKey, &wrap) {
		return wrap.Events, nil
	}
	if err := c.doGet(ctx, endpoint, &wrap); err != nil {
		return nil, fmt.Errorf("events by month: %w", err)
	}
	c.writeCache(ctx, cacheKey, wrap)
	return wrap.Events, nil
}

// Stores fetches all stores of the organization.
func (c *Client) Stores(ctx context.Context) ([]model.Store, error) {
	endpoint := fmt.Sprintf("%s/api/v1/stores?organization_id=%s", c.baseURL, url.QueryEscape(c.orgID))
	cacheKey := "stores:" + c.orgID

	var wrap struct {
		Stores []model.Store `json:"stores"`
	}
	if c.readCache(ctx, cacheKey, &wrap) {
		return wrap.Stores, nil
	}
	if err := c.doGet(ctx, endpoint, &wrap); err != nil {
		return nil, fmt.Errorf("stores: %w", err)
	}
	c.writeCache(ctx, cacheKey, wrap)
	return wrap.Stores, nil
}

// BusinessHoursSettings fetches the operating configuration for the given
// stores. Stores without a record are simply absent from the result.
func (c *Client) BusinessHoursSettings(ctx context.Context, storeIDs []string) ([]model.BusinessHoursSetting, error) {
	ids := strings.Join(storeIDs, ",")
	endpoint := fmt.Sprintf("%s/api/v1/business-hours?store_ids=%s", c.baseURL, url.QueryEscape(ids))
	cacheKey := "hours:" + ids

	var wrap struct {
		Settings []model.BusinessHoursSetting `json:"settings"`
	}
	if c.readCache(ctx, cacheKey, &wrap) {
		return wrap.Settings, nil
	}
	if err := c.doGet(ctx, endpoint, &wrap); err != nil {
		return nil, fmt.Errorf("business hours: %w", err)
	}
	c.writeCache(ctx, cacheKey, wrap)
	return wrap.Settings, nil
}

// StaffAssignedEvents fetches a staff member's assigned events in the date
// range. Personal schedules are always fetched fresh, never cached.
func (c *Client) StaffAssignedEvents(ctx context.Context, staffID, from, to string) ([]model.Event, error) {
	endpoint := fmt.Sprintf("%s/api/v1/staff/%s/events?from=%s&to=%s",
		c.baseURL, url.PathEscape(staffID), url.QueryEscape(from), url.QueryEscape(to))

	var wrap struct {
		Events []model.Event `json:"events"`
	}
	if err := c.doGet(ctx, endpoint, &wrap); err != nil {
		return nil, fmt.Errorf("staff assigned events: %w", err)
	}
	return wrap.Events, nil
}

func (c *Client) readCache(ctx context.Context, key string, out any) bool {
	if c.redis == nil || c.cacheTTL <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

func (c *Client) writeCache(ctx context.Context, key string, val any) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, data, c.cacheTTL).Err()
}

func (c *Client) doGet(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("http %d", resp.StatusCode)
	}
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}
