package model

// Purchase intents. Each maps to its own order-creation endpoint; the
// checkout flow downstream of order creation is identical for all three.
const (
	IntentCredits      = "credits"
	IntentSubscription = "subscription"
	IntentUnban        = "unban"
)

// Order is a server-created payment order. Amount is in the currency's
// minor unit, as the gateway expects.
type Order struct {
	ID         string `json:"order_id"`
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	GatewayKey string `json:"key"`
	Label      string `json:"label,omitempty"`
}

// PaymentProof carries the three opaque identifiers the gateway hands back
// on success. They are forwarded to the verification endpoint unmodified;
// the client never interprets them.
type PaymentProof struct {
	PaymentID string `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Signature string `json:"signature"`
}

// CreditPackage is a purchasable credit bundle.
type CreditPackage struct {
	ID      string `json:"id"`
	Credits int    `json:"credits"`
	Amount  int64  `json:"amount"`
	Label   string `json:"label"`
}

// Gift is a virtual gift type that can be sent with a confession reply.
type Gift struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cost  int    `json:"cost"`
	Emoji string `json:"emoji"`
}
