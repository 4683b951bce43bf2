package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/confideapp/confide/internal/model"
)

type staticToken string

func (s staticToken) Token() (string, bool) { return string(s), s != "" }

func TestNoTokenOmitsAuthorizationHeader(t *testing.T) {
	var gotAuth []string
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth, present = r.Header["Authorization"]
		w.Write([]byte(`{"success":true,"data":{"unread":0}}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	if _, err := client.UnreadCount(context.Background()); err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if present {
		t.Fatalf("Authorization header must be absent without a token, got %v", gotAuth)
	}
}

func TestTokenAttachedAsBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"unread":3}}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, Tokens: staticToken("tok-123")})
	n, err := client.UnreadCount(context.Background())
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if n != 3 {
		t.Fatalf("unread = %d, want 3", n)
	}
}

func TestApplicationFailureIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":false,"error":"insufficient credits"}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, Tokens: staticToken("tok")})
	err := client.SendGift(context.Background(), "c1", "rose")
	if err == nil {
		t.Fatalf("expected error")
	}
	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "insufficient credits" {
		t.Fatalf("message = %q", apiErr.Message)
	}
	if apiErr.Status != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", apiErr.Status)
	}
}

func TestNonJSONBodyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := client.Me(context.Background())
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
}

func TestMissingDataPayloadIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := client.Me(context.Background())
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T: %v", err, err)
	}
}

func TestFeedDecodesConfessions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("mood"); got != "joy" {
			t.Errorf("mood query = %q, want joy", got)
		}
		w.Write([]byte(`{"success":true,"data":{"confessions":[
			{"id":"c1","content":"first","mood":"joy","reactions":2},
			{"id":"c2","content":"second","mood":"joy","reactions":0}
		],"total":2}}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	confessions, total, err := client.Feed(context.Background(), FeedParams{Mood: "joy"})
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if total != 2 || len(confessions) != 2 {
		t.Fatalf("got %d confessions, total %d", len(confessions), total)
	}
	if confessions[0].ID != "c1" || confessions[0].Reactions != 2 {
		t.Fatalf("unexpected first confession: %+v", confessions[0])
	}
}

func TestPostConfessionLocalValidation(t *testing.T) {
	// No server: validation must reject before any network call.
	client := NewClient(Options{BaseURL: "http://127.0.0.1:0"})

	if _, err := client.PostConfession(context.Background(), "   ", model.MoodJoy); err == nil {
		t.Fatalf("empty content must be rejected locally")
	}
	if _, err := client.PostConfession(context.Background(), "hello", "ecstatic"); err == nil {
		t.Fatalf("unknown mood must be rejected locally")
	}
}

func TestVerifyPaymentForwardsProofUnmodified(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decodeJSONBody(t, r, &body)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, Tokens: staticToken("tok")})
	proof := model.PaymentProof{PaymentID: "pay_1", OrderID: "order_1", Signature: "sig_1"}
	if err := client.VerifyPayment(context.Background(), proof); err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if body["payment_id"] != "pay_1" || body["order_id"] != "order_1" || body["signature"] != "sig_1" {
		t.Fatalf("proof not forwarded verbatim: %v", body)
	}
	if len(body) != 3 {
		t.Fatalf("expected exactly the three identifiers, got %v", body)
	}
}
