package api

import (
	"context"
	"net/url"

	"github.com/confideapp/confide/internal/model"
)

type giftsResponse struct {
	Gifts []model.Gift `json:"gifts"`
}

// Gifts lists the virtual gift catalog with credit costs.
func (c *Client) Gifts(ctx context.Context) ([]model.Gift, error) {
	var resp giftsResponse
	if err := c.get(ctx, "/api/v1/gifts", &resp); err != nil {
		return nil, err
	}
	return resp.Gifts, nil
}

// SendGift sends a virtual gift to a confession's author. Credit accounting
// is entirely server-side; the caller's balance is only a pre-check hint.
func (c *Client) SendGift(ctx context.Context, confessionID, giftID string) error {
	return c.post(ctx, "/api/v1/confessions/"+url.PathEscape(confessionID)+"/gift",
		map[string]string{"gift_id": giftID}, nil)
}

// ActivePoll fetches the current community poll, if one is running.
func (c *Client) ActivePoll(ctx context.Context) (*model.Poll, error) {
	var poll model.Poll
	if err := c.get(ctx, "/api/v1/polls/active", &poll); err != nil {
		return nil, err
	}
	return &poll, nil
}

// Vote casts the caller's vote for a poll option.
func (c *Client) Vote(ctx context.Context, pollID, optionID string) error {
	return c.post(ctx, "/api/v1/polls/"+url.PathEscape(pollID)+"/vote",
		map[string]string{"option_id": optionID}, nil)
}
