package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/confideapp/confide/internal/model"
)

// UnreadCount returns the number of unread messages from the admin team.
// Results are idempotent snapshots; the poller overwrites older values.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		Unread int `json:"unread"`
	}
	if err := c.get(ctx, "/api/v1/messages/unread", &resp); err != nil {
		return 0, err
	}
	return resp.Unread, nil
}

type conversationResponse struct {
	Messages []model.Message `json:"messages"`
}

// Conversation returns the caller's message thread with the admin team and
// marks it read server-side.
func (c *Client) Conversation(ctx context.Context) ([]model.Message, error) {
	var resp conversationResponse
	if err := c.get(ctx, "/api/v1/messages", &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// SendMessage sends a message to the admin team.
func (c *Client) SendMessage(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("message content is required")
	}
	return c.post(ctx, "/api/v1/messages", map[string]string{"content": content}, nil)
}
