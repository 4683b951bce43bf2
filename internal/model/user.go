package model

import "time"

// Username length bounds enforced locally before any network call.
const (
	UsernameMinLen = 3
	UsernameMaxLen = 24
)

// Profile is the server's view of the current user. Entitlement-dependent
// fields (credits, premium, ban state) are only ever updated from a fresh
// server snapshot, never mutated locally.
type Profile struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Credits       int        `json:"credits"`
	GiftsReceived int        `json:"gifts_received"`
	Premium       bool       `json:"premium"`
	PremiumUntil  *time.Time `json:"premium_until,omitempty"`
	Banned        bool       `json:"banned"`
	BanReason     string     `json:"ban_reason,omitempty"`
	BannedUntil   *time.Time `json:"banned_until,omitempty"`
	IsAdmin       bool       `json:"is_admin"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AdminUser is the admin panel's row for a managed user.
type AdminUser struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Confessions   int       `json:"confessions"`
	Reports       int       `json:"reports"`
	Banned        bool      `json:"banned"`
	CreatedAt     time.Time `json:"created_at"`
	LastSeenAt    time.Time `json:"last_seen_at"`
	GiftsReceived int       `json:"gifts_received"`
}

// Analytics is the admin analytics snapshot.
type Analytics struct {
	Users          int `json:"users"`
	Confessions    int `json:"confessions"`
	Replies        int `json:"replies"`
	GiftsSent      int `json:"gifts_sent"`
	ActiveToday    int `json:"active_today"`
	PendingReports int `json:"pending_reports"`
}

// Message is one entry in the admin/user conversation.
type Message struct {
	ID        string    `json:"id"`
	FromAdmin bool      `json:"from_admin"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
