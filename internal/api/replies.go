package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/confideapp/confide/internal/model"
)

type repliesResponse struct {
	Replies []model.Reply `json:"replies"`
}

// Replies lists the replies to a confession.
func (c *Client) Replies(ctx context.Context, confessionID string) ([]model.Reply, error) {
	var resp repliesResponse
	err := c.get(ctx, "/api/v1/confessions/"+url.PathEscape(confessionID)+"/replies", &resp)
	if err != nil {
		return nil, err
	}
	return resp.Replies, nil
}

// Reply posts a reply to a confession.
func (c *Client) Reply(ctx context.Context, confessionID, content string) (*model.Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("reply content is required")
	}
	if len(content) > ReplyMaxLen {
		return nil, fmt.Errorf("reply exceeds %d characters", ReplyMaxLen)
	}
	var reply model.Reply
	err := c.post(ctx, "/api/v1/confessions/"+url.PathEscape(confessionID)+"/replies",
		map[string]string{"content": content}, &reply)
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// LikeReply toggles a like on a reply and returns the new like count.
func (c *Client) LikeReply(ctx context.Context, replyID string) (int, error) {
	var resp struct {
		Likes int  `json:"likes"`
		Liked bool `json:"liked"`
	}
	err := c.post(ctx, "/api/v1/replies/"+url.PathEscape(replyID)+"/like", nil, &resp)
	if err != nil {
		return 0, err
	}
	return resp.Likes, nil
}

// DeleteReply removes one of the caller's own replies.
func (c *Client) DeleteReply(ctx context.Context, replyID string) error {
	return c.delete(ctx, "/api/v1/replies/"+url.PathEscape(replyID))
}
