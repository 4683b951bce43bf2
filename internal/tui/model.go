package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/confideapp/confide/internal/api"
	"github.com/confideapp/confide/internal/logger"
	"github.com/confideapp/confide/internal/model"
	"github.com/confideapp/confide/internal/notify"
	"github.com/confideapp/confide/internal/session"
	"github.com/confideapp/confide/internal/theme"
)

// View represents which screen is showing
type View int

const (
	ViewFeed View = iota
	ViewReplies
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeCompose
	ModeReply
	ModeHelp
)

// Model is the main TUI model
type Model struct {
	client   *api.Client
	sessions *session.Store
	resolver *theme.Resolver

	// Feed state
	confessions []model.Confession
	cursor      int
	moodFilter  string // empty = all moods

	// Replies state
	view    View
	replies []model.Reply
	current *model.Confession

	// Profile snapshot; entitlement values come only from here.
	profile *model.Profile

	// Notifications
	poller   *notify.Poller
	unreadCh chan int
	unread   int

	// UI state
	width   int
	height  int
	mode    Mode
	input   textinput.Model
	mood    int // compose mood index into model.Moods
	styles  Styles
	message string
	busy    bool
}

// Options wires the TUI to the rest of the client.
type Options struct {
	Client       *api.Client
	Sessions     *session.Store
	Resolver     *theme.Resolver
	PollInterval time.Duration
}

// NewModel creates the TUI model. The unread poller starts only for a
// logged-in session and is stopped when the TUI exits.
func NewModel(opts Options) Model {
	logger.Info("Initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "What do you need to get off your chest?"
	ti.CharLimit = api.ConfessionMaxLen
	ti.Width = 60

	m := Model{
		client:   opts.Client,
		sessions: opts.Sessions,
		resolver: opts.Resolver,
		input:    ti,
		styles:   NewStyles(opts.Resolver.Active()),
		unreadCh: make(chan int, 1),
	}

	if opts.Sessions.LoggedIn() {
		m.poller = notify.NewPoller(opts.Client.UnreadCount, opts.PollInterval, func(n int) {
			// Non-blocking: the channel holds the latest snapshot only.
			select {
			case m.unreadCh <- n:
			default:
			}
		})
		m.poller.Start()
	}

	return m
}

// Messages flowing back from async commands.
type (
	feedLoadedMsg struct {
		confessions []model.Confession
		err         error
	}
	repliesLoadedMsg struct {
		replies []model.Reply
		err     error
	}
	profileLoadedMsg struct {
		profile *model.Profile
		err     error
	}
	actionDoneMsg struct {
		note string
		err  error
	}
	unreadMsg int
)

// Init loads the feed and profile and subscribes to unread updates.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadFeedCmd(), m.loadProfileCmd()}
	if m.poller != nil {
		cmds = append(cmds, m.waitUnreadCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) loadFeedCmd() tea.Cmd {
	mood := m.moodFilter
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		confessions, _, err := m.client.Feed(ctx, api.FeedParams{Mood: mood, Limit: 50})
		return feedLoadedMsg{confessions: confessions, err: err}
	}
}

func (m Model) loadRepliesCmd(confessionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		replies, err := m.client.Replies(ctx, confessionID)
		return repliesLoadedMsg{replies: replies, err: err}
	}
}

func (m Model) loadProfileCmd() tea.Cmd {
	if !m.sessions.LoggedIn() {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		profile, err := m.client.Me(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

// waitUnreadCmd blocks on the poller's channel and re-arms itself after
// every delivery.
func (m Model) waitUnreadCmd() tea.Cmd {
	ch := m.unreadCh
	return func() tea.Msg {
		return unreadMsg(<-ch)
	}
}

func (m *Model) currentConfession() *model.Confession {
	if m.cursor < len(m.confessions) {
		return &m.confessions[m.cursor]
	}
	return nil
}

// Close stops background work. Called when the program exits.
func (m *Model) Close() {
	if m.poller != nil {
		m.poller.Stop()
	}
}
