package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/confideapp/confide/internal/model"
)

// Confession content bounds enforced locally before any network call.
const (
	ConfessionMaxLen = 2000
	ReplyMaxLen      = 500
)

// FeedParams filters the confession feed.
type FeedParams struct {
	Mood   string // empty = all moods
	Page   int
	Limit  int
	SortBy string // "recent" (default) or "top"
}

type feedResponse struct {
	Confessions []model.Confession `json:"confessions"`
	Total       int                `json:"total"`
}

// Feed lists confessions, newest first unless sorted otherwise.
func (c *Client) Feed(ctx context.Context, params FeedParams) ([]model.Confession, int, error) {
	q := url.Values{}
	if params.Mood != "" {
		q.Set("mood", params.Mood)
	}
	if params.Page > 0 {
		q.Set("page", fmt.Sprint(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", fmt.Sprint(params.Limit))
	}
	if params.SortBy != "" {
		q.Set("sort", params.SortBy)
	}
	path := "/api/v1/confessions"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var resp feedResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Confessions, resp.Total, nil
}

// Confession fetches a single confession by id.
func (c *Client) Confession(ctx context.Context, id string) (*model.Confession, error) {
	var conf model.Confession
	if err := c.get(ctx, "/api/v1/confessions/"+url.PathEscape(id), &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// PostConfession publishes a new confession tagged with a mood.
func (c *Client) PostConfession(ctx context.Context, content, mood string) (*model.Confession, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("confession content is required")
	}
	if len(content) > ConfessionMaxLen {
		return nil, fmt.Errorf("confession exceeds %d characters", ConfessionMaxLen)
	}
	if !model.ValidMood(mood) {
		return nil, fmt.Errorf("unknown mood %q", mood)
	}
	var conf model.Confession
	err := c.post(ctx, "/api/v1/confessions", map[string]string{
		"content": content,
		"mood":    mood,
	}, &conf)
	if err != nil {
		return nil, err
	}
	return &conf, nil
}

// DeleteConfession removes one of the caller's own confessions.
func (c *Client) DeleteConfession(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/v1/confessions/"+url.PathEscape(id))
}

// React toggles the caller's reaction on a confession and returns the new
// reaction count.
func (c *Client) React(ctx context.Context, id string) (int, error) {
	var resp struct {
		Reactions int  `json:"reactions"`
		Reacted   bool `json:"reacted"`
	}
	err := c.post(ctx, "/api/v1/confessions/"+url.PathEscape(id)+"/react", nil, &resp)
	if err != nil {
		return 0, err
	}
	return resp.Reactions, nil
}

// RecordView reports that a confession was displayed. Best-effort; the feed
// does not block on it.
func (c *Client) RecordView(ctx context.Context, id string) error {
	return c.post(ctx, "/api/v1/confessions/"+url.PathEscape(id)+"/view", nil, nil)
}

// Spotlight spends credits to pin a confession to the top of the feed.
func (c *Client) Spotlight(ctx context.Context, id string) error {
	return c.post(ctx, "/api/v1/confessions/"+url.PathEscape(id)+"/spotlight", nil, nil)
}

// Boost spends credits to raise a confession's feed ranking.
func (c *Client) Boost(ctx context.Context, id string) error {
	return c.post(ctx, "/api/v1/confessions/"+url.PathEscape(id)+"/boost", nil, nil)
}
