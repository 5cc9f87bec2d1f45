// Package client is a Go client of the industry-flow REST API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"industry-flow/internal/entities"
	"industry-flow/internal/mapper"
	api "industry-flow/internal/oapi"

	"github.com/hashicorp/golang-lru/v2/expirable"
	fastshot "github.com/opus-domini/fast-shot"
	"go.uber.org/zap"
)

const (
	// DefaultStaleTime is how long project reads are served from the cache.
	DefaultStaleTime = 5 * time.Minute
	defaultCacheSize = 128
	defaultTimeout   = 15 * time.Second
)

// Options tunes the client.
type Options struct {
	Timeout   time.Duration
	StaleTime time.Duration
	CacheSize int
}

// Client calls the REST API with a session token. Project reads are cached
// for a fixed staleness window; notification reads always hit the server.
type Client struct {
	http  fastshot.ClientHttpMethods
	log   *zap.SugaredLogger
	cache *expirable.LRU[string, []entities.Project]

	mu    sync.RWMutex
	token string
}

// New constructs a client for the API rooted at baseURL (e.g. http://localhost:8080/api).
func New(baseURL string, log *zap.SugaredLogger, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.StaleTime <= 0 {
		opts.StaleTime = DefaultStaleTime
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheSize
	}

	return &Client{
		http: fastshot.NewClient(strings.TrimRight(baseURL, "/")).
			Config().SetTimeout(opts.Timeout).
			Config().SetFollowRedirects(true).
			Header().Add("Accept", "application/json").
			Build(),
		log:   log.Named("client"),
		cache: expirable.NewLRU[string, []entities.Project](opts.CacheSize, nil, opts.StaleTime),
	}
}

// SetToken sets the session token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	c.cache.Purge()
}

func (c *Client) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return "Bearer " + c.token
}

// Login signs in and keeps the returned token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (entities.Session, error) {
	resp, err := c.http.
		POST("/auth/login").
		Context().Set(ctx).
		Header().Add("Content-Type", "application/json").
		Body().AsJSON(api.LoginRequest{Email: email, Password: password}).
		Send()
	if err != nil {
		return entities.Session{}, fmt.Errorf("login: %w", err)
	}
	defer resp.Body().Close()

	var body api.LoginResponse
	if err := parseResponse(resp, &body); err != nil {
		return entities.Session{}, err
	}

	c.SetToken(body.Token)
	return entities.Session{
		Token:     body.Token,
		ExpiresAt: body.ExpiresAt,
		User: entities.User{
			ID:        body.User.Id,
			Email:     body.User.Email,
			Name:      body.User.Name,
			Role:      entities.Role(body.User.Role),
			CreatedAt: body.User.CreatedAt,
		},
	}, nil
}

// ListProjects returns projects matching filter, from the cache when fresh.
func (c *Client) ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]entities.Project, error) {
	query := projectQuery(filter)
	key := "projects?" + encodeQuery(query)
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	req := c.http.GET("/projects").
		Context().Set(ctx).
		Header().Add("Authorization", c.bearer())
	for _, k := range sortedKeys(query) {
		req = req.Query().AddParam(k, query[k])
	}
	resp, err := req.Send()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer resp.Body().Close()

	var body api.ProjectList
	if err := parseResponse(resp, &body); err != nil {
		return nil, err
	}

	res := make([]entities.Project, 0, len(body.Projects))
	for _, p := range body.Projects {
		res = append(res, mapper.FromOAPIProjectResource(p))
	}
	c.cache.Add(key, res)
	return res, nil
}

// GetProject returns one project, from the cache when fresh.
func (c *Client) GetProject(ctx context.Context, id string) (*entities.Project, error) {
	key := "project/" + id
	if cached, ok := c.cache.Get(key); ok && len(cached) == 1 {
		p := cached[0]
		return &p, nil
	}

	resp, err := c.http.
		GET("/projects/"+url.PathEscape(id)).
		Context().Set(ctx).
		Header().Add("Authorization", c.bearer()).
		Send()
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	defer resp.Body().Close()

	var body api.Project
	if err := parseResponse(resp, &body); err != nil {
		return nil, err
	}

	p := mapper.FromOAPIProjectResource(body)
	c.cache.Add(key, []entities.Project{p})
	return &p, nil
}

// ChangeProjectStage moves a project in the pipeline and drops cached project reads.
func (c *Client) ChangeProjectStage(ctx context.Context, id string, stage entities.PipelineStage) (*entities.Project, error) {
	defer c.cache.Purge()

	resp, err := c.http.
		PATCH("/projects/"+url.PathEscape(id)+"/stage").
		Context().Set(ctx).
		Header().Add("Authorization", c.bearer()).
		Header().Add("Content-Type", "application/json").
		Body().AsJSON(api.StageChangeRequest{Stage: api.PipelineStage(stage)}).
		Send()
	if err != nil {
		return nil, fmt.Errorf("change project stage: %w", err)
	}
	defer resp.Body().Close()

	var body api.StageChangeResponse
	if err := parseResponse(resp, &body); err != nil {
		return nil, err
	}
	p := mapper.FromOAPIProjectResource(body.Project)
	return &p, nil
}

// ListNotifications returns the caller's notifications, newest first. Never cached.
func (c *Client) ListNotifications(ctx context.Context, unreadOnly bool) ([]entities.Notification, error) {
	req := c.http.GET("/notifications").
		Context().Set(ctx).
		Header().Add("Authorization", c.bearer())
	if unreadOnly {
		req = req.Query().AddParam("unread_only", "true")
	}
	resp, err := req.Send()
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer resp.Body().Close()

	var body api.NotificationList
	if err := parseResponse(resp, &body); err != nil {
		return nil, err
	}

	res := make([]entities.Notification, 0, len(body.Notifications))
	for _, n := range body.Notifications {
		res = append(res, mapper.FromOAPINotification(n))
	}
	return res, nil
}

// MarkNotificationRead flags one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	defer c.cache.Purge()

	resp, err := c.http.
		POST("/notifications/"+url.PathEscape(id)+"/read").
		Context().Set(ctx).
		Header().Add("Authorization", c.bearer()).
		Send()
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	defer resp.Body().Close()

	var body api.Notification
	return parseResponse(resp, &body)
}

func projectQuery(f entities.ProjectFilter) map[string]string {
	q := map[string]string{}
	set := func(k, v string) {
		if entities.IsFilterSet(v) {
			q[k] = v
		}
	}
	set("search", f.Search)
	set("sector", f.Sector)
	set("status", f.Status)
	set("stage", f.Stage)
	set("client", f.Client)
	set("manager_id", f.ManagerID)
	set("sort_by", f.SortBy)
	set("order", f.Order)
	if f.Limit > 0 {
		q["limit"] = strconv.Itoa(f.Limit)
	}
	if f.Offset > 0 {
		q["offset"] = strconv.Itoa(f.Offset)
	}
	return q
}

func encodeQuery(q map[string]string) string {
	v := url.Values{}
	for k, val := range q {
		v.Set(k, val)
	}
	return v.Encode()
}

func sortedKeys(q map[string]string) []string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func parseResponse[T any](resp *fastshot.Response, result *T) error {
	if resp.Status().IsError() {
		return responseError(resp)
	}
	if err := resp.Body().AsJSON(result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func responseError(resp *fastshot.Response) error {
	msg, err := resp.Body().AsString()
	if err != nil {
		return fmt.Errorf("failed to read error response: %w", err)
	}

	var body api.ErrorResponse
	if json.Unmarshal([]byte(msg), &body) == nil && body.Error.Code != "" {
		return &APIError{Code: body.Error.Code, Message: body.Error.Message}
	}
	return errors.New(strings.TrimSpace(msg))
}
