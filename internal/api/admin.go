package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/confideapp/confide/internal/model"
)

type adminUsersResponse struct {
	Users []model.AdminUser `json:"users"`
}

// AdminUsers lists managed users. Requires an admin session; non-admin
// tokens get an application-level failure from the server.
func (c *Client) AdminUsers(ctx context.Context, query string) ([]model.AdminUser, error) {
	path := "/api/v1/admin/users"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}
	var resp adminUsersResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// AdminBan bans a user for a duration tier ("day", "week", "permanent").
func (c *Client) AdminBan(ctx context.Context, userID, duration, reason string) error {
	return c.post(ctx, "/api/v1/admin/users/"+url.PathEscape(userID)+"/ban",
		map[string]string{"duration": duration, "reason": reason}, nil)
}

// AdminUnban lifts a user's ban without payment.
func (c *Client) AdminUnban(ctx context.Context, userID string) error {
	return c.post(ctx, "/api/v1/admin/users/"+url.PathEscape(userID)+"/unban", nil, nil)
}

// AdminDeleteConfession removes any user's confession.
func (c *Client) AdminDeleteConfession(ctx context.Context, confessionID string) error {
	return c.delete(ctx, "/api/v1/admin/confessions/"+url.PathEscape(confessionID))
}

// AdminAnalytics fetches the moderation analytics snapshot.
func (c *Client) AdminAnalytics(ctx context.Context) (*model.Analytics, error) {
	var analytics model.Analytics
	if err := c.get(ctx, "/api/v1/admin/analytics", &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// AdminBroadcast sends a message to every user.
func (c *Client) AdminBroadcast(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("broadcast content is required")
	}
	return c.post(ctx, "/api/v1/admin/broadcast", map[string]string{"content": content}, nil)
}

// AdminReply sends a direct message to one user's thread.
func (c *Client) AdminReply(ctx context.Context, userID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("message content is required")
	}
	return c.post(ctx, "/api/v1/admin/users/"+url.PathEscape(userID)+"/messages",
		map[string]string{"content": content}, nil)
}
