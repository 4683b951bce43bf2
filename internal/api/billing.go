package api

import (
	"context"
	"fmt"

	"github.com/confideapp/confide/internal/model"
)

type packagesResponse struct {
	Packages []model.CreditPackage `json:"packages"`
}

// CreditPackages lists the purchasable credit bundles.
func (c *Client) CreditPackages(ctx context.Context) ([]model.CreditPackage, error) {
	var resp packagesResponse
	if err := c.get(ctx, "/api/v1/billing/packages", &resp); err != nil {
		return nil, err
	}
	return resp.Packages, nil
}

// CreateOrder asks the server to create a payment order for the given
// purchase intent. The reference selects a credit package or a ban-duration
// tier; the subscription intent takes none.
func (c *Client) CreateOrder(ctx context.Context, intent, reference string) (*model.Order, error) {
	var path string
	body := map[string]string{}
	switch intent {
	case model.IntentCredits:
		if reference == "" {
			return nil, fmt.Errorf("credit purchase requires a package id")
		}
		path = "/api/v1/billing/orders/credits"
		body["package_id"] = reference
	case model.IntentSubscription:
		path = "/api/v1/billing/orders/subscription"
	case model.IntentUnban:
		if reference == "" {
			return nil, fmt.Errorf("unban payment requires a ban duration id")
		}
		path = "/api/v1/billing/orders/unban"
		body["ban_id"] = reference
	default:
		return nil, fmt.Errorf("unknown purchase intent %q", intent)
	}

	var order model.Order
	if err := c.post(ctx, path, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyPayment forwards the gateway's payment proof for server-side
// verification. Only a successful return from this call may be treated as
// proof of payment; the client never self-grants an entitlement.
func (c *Client) VerifyPayment(ctx context.Context, proof model.PaymentProof) error {
	return c.post(ctx, "/api/v1/billing/verify", proof, nil)
}
