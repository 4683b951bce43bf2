// Package checkout orchestrates purchases through the hosted payment page.
// One purchase is a single operation that resolves to exactly one of three
// outcomes: verified success, verification failure, or dismissal. An
// entitlement only counts as granted after the server verifies the payment
// proof; the client never self-grants.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/confideapp/confide/internal/logger"
	"github.com/confideapp/confide/internal/model"
)

const shutdownGrace = 2 * time.Second

// ErrBusy is returned when a purchase is started while another is still in
// flight. One bridge owns at most one order+verification sequence at a time.
var ErrBusy = errors.New("a purchase is already in progress")

// Outcome is the terminal state of one purchase attempt.
type Outcome int

const (
	// OutcomeVerified: server confirmed the payment; entitlement granted.
	OutcomeVerified Outcome = iota
	// OutcomeFailed: gateway failure or verification rejection; nothing
	// granted, nothing retried.
	OutcomeFailed
	// OutcomeDismissed: the user closed or abandoned the checkout; no
	// server call was made, no charge is assumed.
	OutcomeDismissed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVerified:
		return "verified"
	case OutcomeFailed:
		return "failed"
	default:
		return "dismissed"
	}
}

// Result describes how a purchase ended.
type Result struct {
	Outcome Outcome
	Order   *model.Order
	// Err carries the failure detail for OutcomeFailed.
	Err error
}

// Biller is the slice of the API client the bridge needs. *api.Client
// satisfies it.
type Biller interface {
	CreateOrder(ctx context.Context, intent, reference string) (*model.Order, error)
	VerifyPayment(ctx context.Context, proof model.PaymentProof) error
}

// Options configures a Bridge.
type Options struct {
	Biller Biller
	// CheckoutBase is the hosted payment page. The order parameters and the
	// loopback callback URL are appended as query parameters.
	CheckoutBase string
	// ListenAddr for the loopback redirect listener; port 0 = ephemeral.
	ListenAddr string
	// OpenURL launches the user's browser. Defaults to the platform opener.
	OpenURL func(string) error
	// WaitTimeout bounds how long a checkout may stay open before it is
	// treated as dismissed.
	WaitTimeout time.Duration
	// OnVerified runs after a verified purchase; the caller refreshes every
	// entitlement-dependent view from a fresh server snapshot here.
	OnVerified func()
}

// Bridge runs purchase flows. Safe for use from a single UI goroutine; the
// mutex only guards the in-flight flag.
type Bridge struct {
	biller       Biller
	checkoutBase string
	listenAddr   string
	openURL      func(string) error
	waitTimeout  time.Duration
	onVerified   func()

	mu         sync.Mutex
	processing bool
}

// NewBridge constructs a Bridge with defaults filled in.
func NewBridge(opts Options) *Bridge {
	b := &Bridge{
		biller:       opts.Biller,
		checkoutBase: opts.CheckoutBase,
		listenAddr:   opts.ListenAddr,
		openURL:      opts.OpenURL,
		waitTimeout:  opts.WaitTimeout,
		onVerified:   opts.OnVerified,
	}
	if b.checkoutBase == "" {
		b.checkoutBase = "https://checkout.confide.app/pay"
	}
	if b.listenAddr == "" {
		b.listenAddr = "127.0.0.1:0"
	}
	if b.openURL == nil {
		b.openURL = openBrowser
	}
	if b.waitTimeout <= 0 {
		b.waitTimeout = 5 * time.Minute
	}
	if b.onVerified == nil {
		b.onVerified = func() {}
	}
	return b
}

// Processing reports whether a purchase is in flight.
func (b *Bridge) Processing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.processing
}

func (b *Bridge) begin() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.processing {
		return ErrBusy
	}
	b.processing = true
	return nil
}

func (b *Bridge) finish() {
	b.mu.Lock()
	b.processing = false
	b.mu.Unlock()
}

// Purchase runs one complete checkout: create the server order, open the
// hosted payment page, wait for its redirect, and verify the proof. The
// returned Result is terminal; nothing is retried automatically. An error
// is returned only when the flow could not start (busy, order creation,
// listener, browser).
func (b *Bridge) Purchase(ctx context.Context, intent, reference string) (*Result, error) {
	if err := b.begin(); err != nil {
		return nil, err
	}
	defer b.finish()

	order, err := b.biller.CreateOrder(ctx, intent, reference)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	logger.Info("checkout order created",
		logger.F("intent", intent),
		logger.F("order_id", order.ID),
		logger.F("amount", order.Amount))

	l, err := newListener(b.listenAddr, uuid.New().String())
	if err != nil {
		return nil, err
	}
	defer l.Close()

	if err := b.openURL(b.checkoutURL(order, l.CallbackURL())); err != nil {
		return nil, fmt.Errorf("open checkout page: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, b.waitTimeout)
	defer cancel()
	callback := l.Wait(waitCtx)

	switch callback.Status {
	case "success":
		// The proof is forwarded unmodified; only the server can turn it
		// into an entitlement.
		if err := b.biller.VerifyPayment(ctx, callback.Proof); err != nil {
			logger.Warn("payment verification failed",
				logger.F("order_id", order.ID), logger.F("error", err))
			return &Result{Outcome: OutcomeFailed, Order: order, Err: err}, nil
		}
		logger.Info("payment verified", logger.F("order_id", order.ID))
		b.onVerified()
		return &Result{Outcome: OutcomeVerified, Order: order}, nil

	case "failed":
		reason := callback.Reason
		if reason == "" {
			reason = "payment failed"
		}
		return &Result{Outcome: OutcomeFailed, Order: order, Err: errors.New(reason)}, nil

	default:
		return &Result{Outcome: OutcomeDismissed, Order: order}, nil
	}
}

// checkoutURL builds the hosted page URL from the server's order response.
func (b *Bridge) checkoutURL(order *model.Order, callbackURL string) string {
	q := url.Values{}
	q.Set("key", order.GatewayKey)
	q.Set("order_id", order.ID)
	q.Set("amount", fmt.Sprint(order.Amount))
	q.Set("currency", order.Currency)
	q.Set("name", "Confide")
	if order.Label != "" {
		q.Set("description", order.Label)
	}
	q.Set("callback_url", callbackURL)
	return b.checkoutBase + "?" + q.Encode()
}

func openBrowser(target string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", target).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target).Start()
	default:
		return exec.Command("xdg-open", target).Start()
	}
}
