package checkout

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/confideapp/confide/internal/logger"
	"github.com/confideapp/confide/internal/model"
)

// callbackResult is what the gateway redirect delivered: a payment proof on
// success, or a failure/dismissal signal.
type callbackResult struct {
	Status string // "success", "failed", "dismissed"
	Proof  model.PaymentProof
	Reason string
}

// listener is the loopback HTTP server that receives the hosted checkout's
// redirect. One listener serves exactly one purchase attempt, identified by
// a nonce so stray requests are ignored.
type listener struct {
	echo    *echo.Echo
	ln      net.Listener
	nonce   string
	results chan callbackResult
}

// newListener binds the loopback address and registers the callback route.
// addr may carry port 0 for an ephemeral port.
func newListener(addr, nonce string) (*listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("checkout: bind callback listener: %w", err)
	}

	l := &listener{
		ln:      ln,
		nonce:   nonce,
		results: make(chan callbackResult, 1),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.GET("/callback", l.handleCallback)
	e.Listener = ln
	l.echo = e

	go func() {
		if err := e.Start(""); err != nil && err != http.ErrServerClosed {
			logger.Error("checkout listener stopped", logger.F("error", err))
		}
	}()

	return l, nil
}

// CallbackURL is the redirect target handed to the hosted checkout page.
func (l *listener) CallbackURL() string {
	return fmt.Sprintf("http://%s/callback?nonce=%s", l.ln.Addr().String(), l.nonce)
}

func (l *listener) handleCallback(c echo.Context) error {
	if c.QueryParam("nonce") != l.nonce {
		return c.String(http.StatusForbidden, "unknown checkout attempt")
	}

	result := callbackResult{
		Status: c.QueryParam("status"),
		Reason: c.QueryParam("reason"),
		Proof: model.PaymentProof{
			PaymentID: c.QueryParam("payment_id"),
			OrderID:   c.QueryParam("order_id"),
			Signature: c.QueryParam("signature"),
		},
	}
	switch result.Status {
	case "success", "failed", "dismissed":
	default:
		return c.String(http.StatusBadRequest, "unknown checkout status")
	}

	// First terminal signal wins; the widget fires exactly one.
	select {
	case l.results <- result:
	default:
	}

	return c.HTML(http.StatusOK,
		"<html><body><p>Payment step finished. You can close this tab and return to the terminal.</p></body></html>")
}

// Wait blocks until the redirect arrives or ctx expires. Expiry is treated
// as a dismissal: the user walked away, nothing to verify.
func (l *listener) Wait(ctx context.Context) callbackResult {
	select {
	case result := <-l.results:
		return result
	case <-ctx.Done():
		return callbackResult{Status: "dismissed", Reason: "timed out waiting for checkout"}
	}
}

// Close shuts the listener down.
func (l *listener) Close() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := l.echo.Shutdown(shutdownCtx); err != nil {
		logger.Debug("checkout listener shutdown", logger.F("error", err))
	}
}
