package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/confideapp/confide/internal/model"
)

// fakeBiller records order creation and verification calls.
type fakeBiller struct {
	order     *model.Order
	orderErr  error
	verifyErr error

	verifyCalls int
	gotProof    model.PaymentProof
}

func (f *fakeBiller) CreateOrder(ctx context.Context, intent, reference string) (*model.Order, error) {
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return f.order, nil
}

func (f *fakeBiller) VerifyPayment(ctx context.Context, proof model.PaymentProof) error {
	f.verifyCalls++
	f.gotProof = proof
	return f.verifyErr
}

func testOrder() *model.Order {
	return &model.Order{ID: "order_77", Amount: 19900, Currency: "INR", GatewayKey: "key_test", Label: "120 credits"}
}

// gatewayStub plays the hosted checkout page: it inspects the URL the
// bridge opened and hits the loopback callback with the given parameters.
func gatewayStub(t *testing.T, params url.Values) func(string) error {
	t.Helper()
	return func(opened string) error {
		parsed, err := url.Parse(opened)
		if err != nil {
			t.Errorf("bridge opened invalid URL %q: %v", opened, err)
			return err
		}
		callback := parsed.Query().Get("callback_url")
		if callback == "" {
			t.Errorf("checkout URL missing callback_url: %q", opened)
			return fmt.Errorf("missing callback_url")
		}
		go func() {
			resp, err := http.Get(callback + "&" + params.Encode())
			if err == nil {
				resp.Body.Close()
			}
		}()
		return nil
	}
}

func TestPurchaseVerifiedSuccess(t *testing.T) {
	biller := &fakeBiller{order: testOrder()}
	verified := false
	bridge := NewBridge(Options{
		Biller: biller,
		OpenURL: gatewayStub(t, url.Values{
			"status":     {"success"},
			"payment_id": {"pay_abc"},
			"order_id":   {"order_77"},
			"signature":  {"sig_xyz"},
		}),
		WaitTimeout: 5 * time.Second,
		OnVerified:  func() { verified = true },
	})

	result, err := bridge.Purchase(context.Background(), model.IntentCredits, "pack_small")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if result.Outcome != OutcomeVerified {
		t.Fatalf("outcome = %s, want verified", result.Outcome)
	}
	if biller.verifyCalls != 1 {
		t.Fatalf("verify calls = %d, want 1", biller.verifyCalls)
	}
	want := model.PaymentProof{PaymentID: "pay_abc", OrderID: "order_77", Signature: "sig_xyz"}
	if biller.gotProof != want {
		t.Fatalf("proof = %+v, want %+v", biller.gotProof, want)
	}
	if !verified {
		t.Fatalf("OnVerified must run after a verified purchase")
	}
	if bridge.Processing() {
		t.Fatalf("processing flag must be cleared")
	}
}

func TestPurchaseVerificationRejected(t *testing.T) {
	biller := &fakeBiller{order: testOrder(), verifyErr: errors.New("signature mismatch")}
	verified := false
	bridge := NewBridge(Options{
		Biller: biller,
		OpenURL: gatewayStub(t, url.Values{
			"status":     {"success"},
			"payment_id": {"pay_abc"},
			"order_id":   {"order_77"},
			"signature":  {"sig_bad"},
		}),
		WaitTimeout: 5 * time.Second,
		OnVerified:  func() { verified = true },
	})

	result, err := bridge.Purchase(context.Background(), model.IntentSubscription, "")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if result.Outcome != OutcomeFailed {
		t.Fatalf("outcome = %s, want failed", result.Outcome)
	}
	if result.Err == nil {
		t.Fatalf("failed result must carry the verification error")
	}
	if verified {
		t.Fatalf("a rejected verification must not grant anything")
	}
}

func TestPurchaseGatewayFailure(t *testing.T) {
	biller := &fakeBiller{order: testOrder()}
	bridge := NewBridge(Options{
		Biller: biller,
		OpenURL: gatewayStub(t, url.Values{
			"status": {"failed"},
			"reason": {"card declined"},
		}),
		WaitTimeout: 5 * time.Second,
	})

	result, err := bridge.Purchase(context.Background(), model.IntentUnban, "ban_week")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if result.Outcome != OutcomeFailed {
		t.Fatalf("outcome = %s, want failed", result.Outcome)
	}
	if biller.verifyCalls != 0 {
		t.Fatalf("nothing to verify on a gateway failure, got %d calls", biller.verifyCalls)
	}
}

func TestPurchaseDismissed(t *testing.T) {
	biller := &fakeBiller{order: testOrder()}
	bridge := NewBridge(Options{
		Biller:      biller,
		OpenURL:     gatewayStub(t, url.Values{"status": {"dismissed"}}),
		WaitTimeout: 5 * time.Second,
	})

	result, err := bridge.Purchase(context.Background(), model.IntentCredits, "pack_small")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if result.Outcome != OutcomeDismissed {
		t.Fatalf("outcome = %s, want dismissed", result.Outcome)
	}
	if biller.verifyCalls != 0 {
		t.Fatalf("dismissal must not call verification")
	}
}

func TestPurchaseTimesOutAsDismissed(t *testing.T) {
	biller := &fakeBiller{order: testOrder()}
	bridge := NewBridge(Options{
		Biller:      biller,
		OpenURL:     func(string) error { return nil }, // user never completes
		WaitTimeout: 50 * time.Millisecond,
	})

	result, err := bridge.Purchase(context.Background(), model.IntentCredits, "pack_small")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if result.Outcome != OutcomeDismissed {
		t.Fatalf("outcome = %s, want dismissed on timeout", result.Outcome)
	}
}

func TestPurchaseOrderCreationFailure(t *testing.T) {
	biller := &fakeBiller{orderErr: errors.New("server unavailable")}
	bridge := NewBridge(Options{Biller: biller, OpenURL: func(string) error { return nil }})

	if _, err := bridge.Purchase(context.Background(), model.IntentCredits, "pack_small"); err == nil {
		t.Fatalf("expected order creation error")
	}
	if bridge.Processing() {
		t.Fatalf("processing flag must be cleared after a failed start")
	}
}

func TestConcurrentPurchaseIsRejected(t *testing.T) {
	biller := &fakeBiller{order: testOrder()}
	opened := make(chan struct{})
	release := make(chan struct{})

	bridge := NewBridge(Options{
		Biller: biller,
		OpenURL: func(string) error {
			close(opened)
			<-release
			return fmt.Errorf("aborted")
		},
		WaitTimeout: 5 * time.Second,
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = bridge.Purchase(context.Background(), model.IntentCredits, "pack_small")
	}()

	<-opened
	if _, err := bridge.Purchase(context.Background(), model.IntentCredits, "pack_small"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	close(release)
	<-done
}

func TestCallbackNonceMismatchIgnored(t *testing.T) {
	biller := &fakeBiller{order: testOrder()}
	bridge := NewBridge(Options{
		Biller: biller,
		OpenURL: func(opened string) error {
			parsed, _ := url.Parse(opened)
			callback := parsed.Query().Get("callback_url")
			cbURL, _ := url.Parse(callback)
			go func() {
				// A stray request with the wrong nonce must be rejected...
				stray := *cbURL
				q := stray.Query()
				q.Set("nonce", "intruder")
				q.Set("status", "success")
				stray.RawQuery = q.Encode()
				if resp, err := http.Get(stray.String()); err == nil {
					if resp.StatusCode != http.StatusForbidden {
						t.Errorf("stray nonce got status %d, want 403", resp.StatusCode)
					}
					resp.Body.Close()
				}
				// ...while the genuine redirect still completes the flow.
				if resp, err := http.Get(callback + "&status=dismissed"); err == nil {
					resp.Body.Close()
				}
			}()
			return nil
		},
		WaitTimeout: 5 * time.Second,
	})

	result, err := bridge.Purchase(context.Background(), model.IntentCredits, "pack_small")
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if result.Outcome != OutcomeDismissed {
		t.Fatalf("outcome = %s, want dismissed", result.Outcome)
	}
}
