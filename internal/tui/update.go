package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/confideapp/confide/internal/model"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case feedLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Feed error: %v", msg.err)
			return m, nil
		}
		m.confessions = msg.confessions
		if m.cursor >= len(m.confessions) {
			m.cursor = 0
		}
		return m, nil

	case repliesLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Replies error: %v", msg.err)
			return m, nil
		}
		m.replies = msg.replies
		m.view = ViewReplies
		return m, nil

	case profileLoadedMsg:
		if msg.err != nil {
			// Entitlement display simply stays stale; the feed still works.
			m.message = fmt.Sprintf("Profile error: %v", msg.err)
			return m, nil
		}
		m.profile = msg.profile
		m.resolver.SetGiftCount(msg.profile.GiftsReceived)
		return m, nil

	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.message = msg.note
		return m, m.loadFeedCmd()

	case unreadMsg:
		m.unread = int(msg)
		return m, m.waitUnreadCmd()

	case tea.KeyMsg:
		switch m.mode {
		case ModeCompose, ModeReply:
			return m.updateInput(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		limit := len(m.confessions)
		if m.view == ViewReplies {
			limit = len(m.replies)
		}
		if m.cursor < limit-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Back):
		if m.view == ViewReplies {
			m.view = ViewFeed
			m.replies = nil
			m.current = nil
			m.cursor = 0
		}

	case key.Matches(msg, keys.Enter):
		if m.view == ViewFeed {
			if conf := m.currentConfession(); conf != nil {
				m.current = conf
				m.cursor = 0
				m.busy = true
				// Best-effort view tracking; the feed never blocks on it.
				id := conf.ID
				go func() {
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = m.client.RecordView(ctx, id)
				}()
				return m, m.loadRepliesCmd(conf.ID)
			}
		}

	case key.Matches(msg, keys.React):
		if conf := m.currentConfession(); conf != nil && m.view == ViewFeed {
			id := conf.ID
			m.busy = true
			return m, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				if _, err := m.client.React(ctx, id); err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{note: "Reacted"}
			}
		}

	case key.Matches(msg, keys.Compose):
		if !m.sessions.LoggedIn() {
			m.message = "Log in first: confide auth login"
			return m, nil
		}
		m.mode = ModeCompose
		m.mood = 0
		m.input.SetValue("")
		m.input.Placeholder = "What do you need to get off your chest?"
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Reply):
		if m.view == ViewReplies && m.current != nil {
			m.mode = ModeReply
			m.input.SetValue("")
			m.input.Placeholder = "Write a reply..."
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, keys.Mood):
		m.moodFilter = nextMoodFilter(m.moodFilter)
		m.busy = true
		return m, m.loadFeedCmd()

	case key.Matches(msg, keys.Theme):
		m.cycleTheme()

	case key.Matches(msg, keys.Refresh):
		m.busy = true
		return m, tea.Batch(m.loadFeedCmd(), m.loadProfileCmd())

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp

	case key.Matches(msg, keys.Logout):
		if m.sessions.LoggedIn() {
			if err := m.sessions.ClearToken(); err != nil {
				m.message = fmt.Sprintf("Logout error: %v", err)
			} else {
				m.profile = nil
				m.message = "Logged out"
				if m.poller != nil {
					m.poller.Stop()
					m.poller = nil
				}
			}
		} else {
			m.message = "Not logged in"
		}
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case msg.String() == "tab":
		if m.mode == ModeCompose {
			m.mood = (m.mood + 1) % len(model.Moods)
		}
		return m, nil

	case key.Matches(msg, keys.Enter):
		value := m.input.Value()
		if value == "" {
			m.mode = ModeNormal
			return m, nil
		}

		switch m.mode {
		case ModeCompose:
			mood := model.Moods[m.mood]
			m.mode = ModeNormal
			m.busy = true
			return m, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				if _, err := m.client.PostConfession(ctx, value, mood); err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{note: "Confessed"}
			}

		case ModeReply:
			confessionID := m.current.ID
			m.mode = ModeNormal
			m.busy = true
			return m, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				if _, err := m.client.Reply(ctx, confessionID, value); err != nil {
					return actionDoneMsg{err: err}
				}
				return actionDoneMsg{note: "Replied"}
			}
		}

		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleTheme steps through the unlocked themes in order.
func (m *Model) cycleTheme() {
	unlocked := m.resolver.Unlocked()
	if len(unlocked) == 0 {
		return
	}
	activeID := m.resolver.Active().ID
	next := unlocked[0]
	for i, def := range unlocked {
		if def.ID == activeID {
			next = unlocked[(i+1)%len(unlocked)]
			break
		}
	}
	if err := m.resolver.Switch(next.ID); err != nil {
		m.message = fmt.Sprintf("Theme error: %v", err)
		return
	}
	m.styles = NewStyles(m.resolver.Active())
	m.message = fmt.Sprintf("Theme: %s", next.Name)
}

// nextMoodFilter cycles all -> each mood -> all.
func nextMoodFilter(current string) string {
	if current == "" {
		return model.Moods[0]
	}
	for i, mood := range model.Moods {
		if mood == current {
			if i == len(model.Moods)-1 {
				return ""
			}
			return model.Moods[i+1]
		}
	}
	return ""
}
